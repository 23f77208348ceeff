package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/format"
	"github.com/dhamidi/jeedd/jee"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Normalise a deployment descriptor",
		Long: `Decode a deployment descriptor and write it back in canonical form:
namespace, element order and indentation follow the schema.

If no file is provided, reads the descriptor from stdin.

Conditions found while decoding are printed to stderr. Content behind a
condition is dropped from the output, so -w refuses to overwrite a file
that has any.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			output, diags, err := reformat(source, filename)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			for _, c := range diags {
				fmt.Fprintln(cmd.ErrOrStderr(), format.ConditionLine(c))
			}

			if fmtOverwrite {
				if len(diags) > 0 {
					return fmt.Errorf("%s: %d conditions, not overwriting", filename, len(diags))
				}
				return os.WriteFile(filename, output, 0644)
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}

func reformat(source []byte, filename string) ([]byte, binding.Diagnostics, error) {
	d, diags, err := jee.DecodeDescriptor(source, binding.WithFile(filename))
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, diags, fmt.Errorf("%s: document element is nil", filename)
	}
	output, encDiags, err := jee.EncodeDescriptor(d, binding.WithFile(filename))
	if err != nil {
		return nil, nil, err
	}
	if !bytes.HasSuffix(output, []byte("\n")) {
		output = append(output, '\n')
	}
	return output, append(diags, encDiags...), nil
}
