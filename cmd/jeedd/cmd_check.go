package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/format"
	"github.com/dhamidi/jeedd/jee"
	"github.com/dhamidi/jeedd/project"
	"github.com/dhamidi/jeedd/workspace"
)

func newCheckCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report problems in the deployment descriptors below each path",
		Long: `Find the deployment descriptors of Maven projects, exploded or packed
archives and plain directories, decode them and print every condition as
one tab separated line.

Exits with status 1 when any condition or unreadable descriptor is found.

With --watch, the single path is polled for changed descriptors until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch takes exactly one path")
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return runWatch(ctx, args[0], cmd.OutOrStdout())
			}

			found := 0
			for _, root := range args {
				n, err := runCheck(root, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				found += n
			}
			if found > 0 {
				return errFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep checking changed descriptors")

	return cmd
}

// runCheck prints the problems of every descriptor below root and returns
// how many it found.
func runCheck(root string, out io.Writer) (int, error) {
	sources, err := project.Scan(root)
	if err != nil {
		return 0, err
	}

	found := 0
	for _, src := range sources {
		if src.Err != nil {
			fmt.Fprintf(out, "%s: %v\n", src.Path, src.Err)
			found++
			continue
		}
		_, diags, err := jee.DecodeDescriptor(src.Content, binding.WithFile(src.Path))
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", src.Path, err)
			found++
			continue
		}
		found += report(out, diags)
	}
	return found, nil
}

func report(out io.Writer, diags binding.Diagnostics) int {
	for _, c := range diags {
		fmt.Fprintln(out, format.ConditionLine(c))
	}
	return len(diags)
}

func runWatch(ctx context.Context, root string, out io.Writer) error {
	w := workspace.New(root)
	fw := workspace.NewFileWatcher(w, func(path string, f *workspace.File) {
		switch {
		case f == nil:
			fmt.Fprintf(out, "%s: removed\n", path)
		case f.Err != nil:
			fmt.Fprintf(out, "%s: %v\n", path, f.Err)
		case len(f.Diagnostics) == 0:
			fmt.Fprintf(out, "%s: ok\n", path)
		default:
			report(out, f.Diagnostics)
		}
	})
	fw.Start()
	defer fw.Stop()

	<-ctx.Done()
	return nil
}
