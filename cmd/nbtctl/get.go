package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/gomap"
	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/nbtfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get a tag value by path",
		Long: `The get command looks up a single tag by slash-separated path
and prints its value. List elements are addressed by index.

Example:
  nbtctl get level.dat "Data/LevelName"
  nbtctl get level.dat "Data/Player/Pos/0"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	file, path := args[0], args[1]
	printVerbose("Opening file: %s\n", file)

	root, _, err := nbtfile.Load(file)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	idx := walker.BuildIndex(root)
	tag, ok := idx.Get(path)
	if !ok {
		return fmt.Errorf("path not found: %s", path)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"path":  path,
			"type":  tag.Type().String(),
			"value": gomap.FromTag(tag),
		})
	}

	if !quiet {
		fmt.Printf("%s (%s): ", path, tag.Type())
	}
	fmt.Println(formatValue(gomap.FromTag(tag)))
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", x)
	}
}
