package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/soypat/fanmount/fastener"
	"github.com/spf13/cobra"
)

var specCmd = &cobra.Command{
	Use:   "spec [name [attribute]]",
	Short: "Print fastener specifications",
	Long: `Print fastener specifications from the catalog.

Without arguments the catalog names are listed in order. With a name the
attributes of that fastener are printed in catalog order. With an attribute
only its value is printed.`,
	Example: `  fanmount spec
  fanmount spec M6
  fanmount spec 1/4-20 thread_pitch`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSpec,
}

func runSpec(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range catalog.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	}
	s, err := catalog.Resolve(fastener.Name(args[0]))
	if err != nil {
		return err
	}
	if len(args) == 2 {
		v, err := s.Text(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, key := range s.Keys() {
		v, err := s.Text(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", key, v)
	}
	return tw.Flush()
}
