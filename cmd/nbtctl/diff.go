package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/nbtfile"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Compare two files",
		Long: `The diff command decodes both files, renders each as a text dump
and prints a line diff. Compression differences do not show up; only
the decoded trees are compared.

Example:
  nbtctl diff level.dat level.dat.bak`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	a, err := renderDump(args[0])
	if err != nil {
		return err
	}
	b, err := renderDump(args[1])
	if err != nil {
		return err
	}

	if a == b {
		if !quiet {
			fmt.Println("Files are identical")
		}
		return nil
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if noColor {
		color.NoColor = true
	}

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				add.Printf("+ %s\n", line)
			case diffmatchpatch.DiffDelete:
				del.Printf("- %s\n", line)
			case diffmatchpatch.DiffEqual:
				if verbose {
					fmt.Printf("  %s\n", line)
				}
			}
		}
	}
	return fmt.Errorf("files differ")
}

func renderDump(path string) (string, error) {
	printVerbose("Opening file: %s\n", path)
	root, _, err := nbtfile.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", path, err)
	}
	var buf bytes.Buffer
	opts := printer.DefaultOptions()
	opts.Format = printer.FormatText
	if err := printer.New(&buf, opts).Print(root); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", path, err)
	}
	return buf.String(), nil
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
