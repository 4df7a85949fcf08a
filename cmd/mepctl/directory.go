package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"writeyourmep/pkg/email"
)

func newCountriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, country := range opts.store(cmd.Context(), cmd).Countries() {
				fmt.Fprintln(cmd.OutOrStdout(), country)
			}
			return nil
		},
	}
}

func newMepsCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "meps <country>",
		Short: "List a country's representatives",
		Long: `List a country's representatives with their decoded email address.

Representatives whose address cannot be decoded are hidden unless --all is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reps, ok := opts.store(cmd.Context(), cmd).Representatives(args[0])
			if !ok {
				return fmt.Errorf("country %q not found", args[0])
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEMAIL\tGROUP\tNATIONAL GROUP")
			for _, rep := range reps {
				addr, valid := rep.Email()
				if !valid {
					if !all {
						continue
					}
					addr = "(invalid: " + rep.ObfuscatedEmail + ")"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rep.Name, addr, rep.PoliticalGroup, rep.NationalGroup)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include representatives without a usable address")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <obfuscated>",
		Short: "Recover an address from its stored form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, ok := email.Recover(args[0])
			if !ok {
				return fmt.Errorf("%q does not decode to a valid address", args[0])
			}
			first, last := email.DeriveNameFromEmail(addr)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\n", addr, first, last)
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <address>",
		Short: "Produce the stored form of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !email.Valid(args[0]) {
				return fmt.Errorf("%q is not a valid address", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), email.Obfuscate(args[0]))
			return nil
		},
	}
}
