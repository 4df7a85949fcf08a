package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"writeyourmep/internal/letter"
	"writeyourmep/pkg/email"
)

type letterOptions struct {
	firstName string
	lastName  string
	country   string
	mepName   string
	template  string
	to        string
}

func newLetterCmd() *cobra.Command {
	opts := &letterOptions{template: string(letter.AIRisk)}

	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Render a letter and, with --to, its mailto link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLetter(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.firstName, "first-name", "", "sender first name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "", "sender last name")
	cmd.Flags().StringVar(&opts.country, "country", "", "sender country")
	cmd.Flags().StringVar(&opts.mepName, "mep", "", "representative name")
	cmd.Flags().StringVar(&opts.template, "template", opts.template, "letter template (ai_risk, whistleblower)")
	cmd.Flags().StringVar(&opts.to, "to", "", "representative address for the mailto link")
	for _, name := range []string{"first-name", "last-name", "country", "mep"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runLetter(cmd *cobra.Command, opts *letterOptions) error {
	t, err := letter.ParseTemplate(opts.template)
	if err != nil {
		return err
	}
	gen, err := letter.NewGenerator(t)
	if err != nil {
		return err
	}

	l := gen.Generate(letter.Fields{
		FirstName: opts.firstName,
		LastName:  opts.lastName,
		Country:   opts.country,
		MEPName:   opts.mepName,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subject: %s\n\n%s\n", l.Subject, l.Body)

	if opts.to == "" {
		return nil
	}
	if !email.Valid(opts.to) {
		return fmt.Errorf("%q is not a valid address", opts.to)
	}
	fmt.Fprintf(out, "\n%s\n", letter.MailtoLink(opts.to, l.Subject, l.Body))
	return nil
}
