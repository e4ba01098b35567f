package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/nbtfile"
	"github.com/spf13/cobra"
)

var (
	searchName     string
	searchLike     string
	searchTypes    []string
	searchAncestor string
	searchLimit    int
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().StringVar(&searchName, "name", "", "Exact name match")
	cmd.Flags().StringVar(&searchLike, "like", "", "Substring name match")
	cmd.Flags().StringSliceVar(&searchTypes, "type", nil, "Tag type filter (byte, short, int, long, float, double, byte_array, string, list, compound, int_array, long_array)")
	cmd.Flags().StringVar(&searchAncestor, "under", "", "Only match tags with an ancestor of this exact name")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "Stop after N matches (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <file>",
		Short: "Search tags by name and type",
		Long: `The search command walks the whole tree and prints the path of
every tag matching the given predicates. Predicates combine with AND.

Example:
  nbtctl search level.dat --like pos
  nbtctl search level.dat --type compound --under Player`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

func runSearch(args []string) error {
	file := args[0]
	printVerbose("Opening file: %s\n", file)

	f, err := buildFilter()
	if err != nil {
		return err
	}

	root, _, err := nbtfile.Load(file)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	idx := walker.BuildIndex(root)
	var results []walker.Entry
	for _, e := range idx.Entries() {
		if !f.Matches(e.Tag) {
			continue
		}
		results = append(results, e)
		if searchLimit > 0 && len(results) >= searchLimit {
			break
		}
	}

	if jsonOut {
		out := make([]map[string]any, 0, len(results))
		for _, e := range results {
			out = append(out, map[string]any{
				"path": e.Path,
				"type": e.Tag.Type().String(),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, e := range results {
		fmt.Printf("%s (%s)\n", e.Path, e.Tag.Type())
	}
	if !quiet {
		fmt.Printf("\n%d match(es)\n", len(results))
	}
	return nil
}

func buildFilter() (*walker.Filter, error) {
	f := &walker.Filter{
		NameExact: searchName,
		NameLike:  searchLike,
	}
	for _, s := range searchTypes {
		typ, err := parseType(s)
		if err != nil {
			return nil, err
		}
		f.Types = append(f.Types, typ)
	}
	if searchAncestor != "" {
		f.Ancestor = &walker.Filter{NameExact: searchAncestor}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

var typesByName = map[string]nbt.TagType{
	"byte":       nbt.TypeByte,
	"short":      nbt.TypeShort,
	"int":        nbt.TypeInt,
	"long":       nbt.TypeLong,
	"float":      nbt.TypeFloat,
	"double":     nbt.TypeDouble,
	"byte_array": nbt.TypeByteArray,
	"string":     nbt.TypeString,
	"list":       nbt.TypeList,
	"compound":   nbt.TypeCompound,
	"int_array":  nbt.TypeIntArray,
	"long_array": nbt.TypeLongArray,
}

func parseType(s string) (nbt.TagType, error) {
	typ, ok := typesByName[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown tag type: %s", s)
	}
	return typ, nil
}
