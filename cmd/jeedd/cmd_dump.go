package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/format"
	"github.com/dhamidi/jeedd/jee"
	"github.com/dhamidi/jeedd/project"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the decoded record of a deployment descriptor",
		Long: `Decode a deployment descriptor and print the record with its conditions.

The file may point into an archive, as in shop.ear!shop.war!WEB-INF/web.xml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := format.New(dumpFormat, cmd.OutOrStdout())
			if enc == nil {
				return fmt.Errorf("unknown format: %s (expected %s)", dumpFormat, strings.Join(format.Names, ", "))
			}

			filename := args[0]
			data, err := project.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			d, diags, err := jee.DecodeDescriptor(data, binding.WithFile(filename))
			if err != nil {
				return err
			}

			if err := enc.Encode(&format.Result{Path: filename, Descriptor: d, Diagnostics: diags}); err != nil {
				return fmt.Errorf("encode %s: %w", dumpFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
