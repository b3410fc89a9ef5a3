package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emersion/go-mbox"
	"github.com/spf13/cobra"
)

func newMboxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mbox FILE",
		Short: "Summarizes every message in an mbox file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMbox(cmd, args[0])
		},
	}
}

func (a *app) runMbox(cmd *cobra.Command, path string) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("unable to open mbox: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	pr := a.parser()
	out := cmd.OutOrStdout()
	mr := mbox.NewReader(in)
	for i := 1; ; i++ {
		r, err := mr.NextMessage()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("unable to read message %d of mbox: %w", i, err)
		}

		m, err := pr.ParseReader(r)
		if err != nil {
			a.logger.Warn("skipping message", "index", i, "error", err)
			continue
		}

		_, found := m.PrimaryContent(nil)
		fmt.Fprintf(out, "%d\t%d\t%t\t%s\t%s\n",
			i, len(m.Parts()), found,
			strings.Join(m.AddressesByField("from"), ","), m.Subject())
	}
}
