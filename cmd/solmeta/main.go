// Command solmeta prints the package name and component extracted from a
// Solus/PiSi metadata.xml document.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/solus-project/solmeta"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "solmeta: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "solmeta <metadata.xml>",
		Short:         "Inspect a Solus/PiSi metadata.xml document",
		Long:          "solmeta loads a metadata.xml document and prints the package name\nand the component the package belongs to.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []solmeta.Option
			if verbose {
				opts = append(opts, solmeta.WithLogger(solmeta.NewConsoleLogger(stderr)))
			}

			meta := solmeta.New(opts...)
			if err := meta.LoadFile(args[0]); err != nil {
				return err
			}

			if name, ok := meta.PackageName(); ok {
				fmt.Fprintf(stdout, "Name:   %s\n", name)
			}
			if component, ok := meta.Component(); ok {
				fmt.Fprintf(stdout, "PartOf: %s\n", component)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit parser diagnostics on stderr")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}
