package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse"
	"github.com/zostay/go-mailparse/inspect"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE...",
		Short: "Shows the subject, date and addresses of messages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range args {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := a.runSummary(cmd, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runSummary(cmd *cobra.Command, path string) error {
	m, err := a.parseInput(cmd, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path != "-" {
		fmt.Fprintf(out, "File:      %s\n", path)
	}
	fmt.Fprintf(out, "Subject:   %s\n", m.Subject())
	if date, err := m.Date(); err == nil {
		fmt.Fprintf(out, "Date:      %s\n", date.UTC().Format("2006-01-02 15:04:05 MST"))
	}

	fields := append([]string{"to", "from", "cc", "bcc"}, a.cfg.Parser.AddressFields...)
	for _, f := range fields {
		if addrs := m.AddressesByField(f); len(addrs) > 0 {
			fmt.Fprintf(out, "%-10s %s\n", strings.ToLower(f)+":", strings.Join(addrs, ", "))
		}
	}

	fmt.Fprintf(out, "Parts:     %d\n", len(m.Parts()))
	fmt.Fprintf(out, "Enveloped: %t\n", m.HasEnvelopedEmail())
	if env := m.EnvelopedEmail(); env != nil {
		subject, _ := env.GetSubject()
		fmt.Fprintf(out, "  Subject: %s\n", subject)
	}
	fmt.Fprintf(out, "Logging:   %s\n", strings.Join(m.LoggingEmails(), " "))

	if _, found := m.PrimaryContent(mailparse.NoGlue); !found {
		fmt.Fprintln(out, "Content:   none")
	}
	for _, p := range m.ProblematicParts() {
		fmt.Fprintf(out, "Problem:   %s content is not valid in its charset\n", inspect.MediaType(p))
	}

	return nil
}
