package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	errNoContent      = errors.New("message has no text or html content")
	errCharsetProblem = errors.New("message content could not be converted to UTF-8")
)

func newContentCmd(a *app) *cobra.Command {
	var htmlGlue, textGlue string

	cmd := &cobra.Command{
		Use:   "content FILE",
		Short: "Prints the primary content of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("html-glue") {
				a.cfg.Glue.HTML = htmlGlue
			}
			if cmd.Flags().Changed("text-glue") {
				a.cfg.Glue.Text = textGlue
			}
			return a.runContent(cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&htmlGlue, "html-glue", "", "text placed between html parts")
	cmd.Flags().StringVar(&textGlue, "text-glue", "", "text placed between plain text parts")

	return cmd
}

func (a *app) runContent(cmd *cobra.Command, path string) error {
	m, err := a.parseInput(cmd, path)
	if err != nil {
		return err
	}

	content, found := m.PrimaryContent(a.cfg.GlueFunc())
	switch {
	case m.HasProblematicParts():
		return &ExitError{Code: ExitCharsetProblem, Err: errCharsetProblem}
	case !found:
		return &ExitError{Code: ExitNoContent, Err: errNoContent}
	}

	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
