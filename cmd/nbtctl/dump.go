package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/nbtfile"
	"github.com/spf13/cobra"
)

var (
	dumpFormat  string
	dumpDepth   int
	dumpPreview int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "Output format (text, json, yaml)")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().IntVar(&dumpPreview, "preview", printer.DefaultMaxArrayPreview,
		"Array elements to show before eliding (0 = all)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the full tag tree",
		Long: `The dump command decodes an NBT file and prints its entire tag tree.

Example:
  nbtctl dump level.dat
  nbtctl dump level.dat --format json
  nbtctl dump level.dat --depth 2 --preview 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	root, c, err := nbtfile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}
	if c != nil {
		printVerbose("Compression: %s\n", c.Name())
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.Format(dumpFormat)
	opts.MaxDepth = dumpDepth
	opts.MaxArrayPreview = dumpPreview
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	return printer.New(os.Stdout, opts).Print(root)
}
