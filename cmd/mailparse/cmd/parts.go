package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse/inspect"
	"github.com/zostay/go-mailparse/tree"
)

func newPartsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parts FILE",
		Short: "Shows the tree of parts in a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParts(cmd, args[0])
		},
	}
}

func (a *app) runParts(cmd *cobra.Command, path string) error {
	m, err := a.parseInput(cmd, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return tree.Walker(func(depth, _ int, n *tree.Node) error {
		p := n.Part()
		content, _ := p.Content()

		var flags []string
		if n.Enveloped() {
			flags = append(flags, "enveloped")
		}
		if p.IsMultipart() {
			flags = append(flags, fmt.Sprintf("%d parts", len(n.Children())))
		} else {
			flags = append(flags, fmt.Sprintf("%d bytes", len(content)))
		}

		_, err := fmt.Fprintf(out, "%s%s (%s)\n",
			strings.Repeat("  ", depth), inspect.MediaType(p), strings.Join(flags, ", "))
		return err
	}).Walk(m.Tree())
}
