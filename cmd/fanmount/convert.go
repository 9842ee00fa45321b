package main

import (
	"fmt"
	"strconv"

	"github.com/soypat/fanmount/fastener"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert fastener dimensions",
}

var convertFlatsCmd = &cobra.Command{
	Use:   "flats <across-flats>",
	Short: "Hexagon corner diameter and radius from the across-flats size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "diameter %g\nradius   %g\n",
			fastener.HexFlatsToDiameter(f), fastener.HexFlatsToRadius(f))
		return nil
	},
}

var convertTurnsCmd = &cobra.Command{
	Use:     "turns <name> <distance>",
	Short:   "Thread turns in an axial distance",
	Example: "  fanmount convert turns M6 12",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertWith(cmd, args, (*fastener.Spec).DistanceToTurns)
	},
}

var convertDistanceCmd = &cobra.Command{
	Use:     "distance <name> <turns>",
	Short:   "Axial distance of a number of thread turns",
	Example: "  fanmount convert distance 1/4-20 10",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertWith(cmd, args, (*fastener.Spec).TurnsToDistance)
	},
}

func init() {
	convertCmd.AddCommand(convertFlatsCmd)
	convertCmd.AddCommand(convertTurnsCmd)
	convertCmd.AddCommand(convertDistanceCmd)
}

func convertWith(cmd *cobra.Command, args []string, conv func(*fastener.Spec, float64) (float64, error)) error {
	s, err := catalog.Resolve(fastener.Name(args[0]))
	if err != nil {
		return err
	}
	v, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	got, err := conv(s, v)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", got)
	return nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
