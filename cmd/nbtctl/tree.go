package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/nbtfile"
	"github.com/spf13/cobra"
)

var treeDepth int

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 3, "Maximum depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Display tree structure",
		Long: `The tree command displays a hierarchical view of container tags,
with scalar children summarized per container.

Example:
  nbtctl tree level.dat
  nbtctl tree level.dat "Data/Player" --depth 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	root, _, err := nbtfile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	start := root
	if len(args) > 1 {
		idx := walker.BuildIndex(root)
		tag, ok := idx.Get(args[1])
		if !ok {
			return fmt.Errorf("path not found: %s", args[1])
		}
		start = tag
	}

	container := color.New(color.FgCyan, color.Bold)
	leaf := color.New(color.FgGreen)
	typ := color.New(color.Faint)
	if noColor {
		color.NoColor = true
	}

	return walker.Walk(start, func(t *nbt.Tag, depth int) error {
		if treeDepth > 0 && depth >= treeDepth {
			return walker.SkipChildren
		}
		indent := strings.Repeat("  ", depth)
		name := t.Name()
		if name == "" {
			name = "-"
		}
		paint := leaf
		if t.Type().IsContainer() {
			paint = container
		}
		fmt.Printf("%s%s %s\n", indent, paint.Sprint(name), typ.Sprintf("(%s)", t.Type()))
		return nil
	})
}
