package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jeedd/project"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [path]",
		Short: "List the deployment descriptors found below a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runScan(root, cmd.OutOrStdout())
		},
	}
}

func runScan(root string, out io.Writer) error {
	sources, err := project.Scan(root)
	if err != nil {
		return err
	}

	broken := 0
	for _, src := range sources {
		module := src.Module
		if rel, err := filepath.Rel(root, module); err == nil && !project.IsVirtual(module) {
			module = rel
		}
		if src.Err != nil {
			fmt.Fprintf(out, "%s\t%s\t%s\t%v\n", src.Kind, src.Path, module, src.Err)
			broken++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", src.Kind, src.Path, module)
	}
	fmt.Fprintf(out, "%d descriptors, %d unreadable\n", len(sources), broken)
	return nil
}
