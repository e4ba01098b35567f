package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/gomap"
	"github.com/joshuapare/nbtkit/nbt/query"
	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/nbtfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newQueryCmd())
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <file> <expression>",
		Short: "Select tags with an expression",
		Long: `The query command evaluates a boolean expression against every tag
and prints the matches. Expressions see the variables name, type, path,
depth, len and value.

Example:
  nbtctl query level.dat 'type == "TAG_Int" and value > 100'
  nbtctl query level.dat 'path startsWith "Data/Player" and len > 0'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args)
		},
	}
	return cmd
}

func runQuery(args []string) error {
	file, src := args[0], args[1]

	q, err := query.Compile(src)
	if err != nil {
		return fmt.Errorf("invalid expression: %w", err)
	}

	printVerbose("Opening file: %s\n", file)
	root, _, err := nbtfile.Load(file)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	idx := walker.BuildIndex(root)
	var matches []walker.Entry
	for _, e := range idx.Entries() {
		ok, err := q.Match(e.Tag, e.Path, e.Depth)
		if err != nil {
			return fmt.Errorf("expression failed at %s: %w", e.Path, err)
		}
		if ok {
			matches = append(matches, e)
		}
	}

	if jsonOut {
		out := make([]map[string]any, 0, len(matches))
		for _, e := range matches {
			out = append(out, map[string]any{
				"path":  e.Path,
				"type":  e.Tag.Type().String(),
				"value": gomap.FromTag(e.Tag),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, e := range matches {
		fmt.Printf("%s (%s)\n", e.Path, e.Tag.Type())
	}
	if !quiet {
		fmt.Printf("\n%d match(es)\n", len(matches))
	}
	return nil
}
