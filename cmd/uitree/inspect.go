package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/uitree"
)

func newInspectCmd(opts *options) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "inspect <layout.yaml>",
		Short: "Print the node tree of a layout",
		Long: `Inspect builds the layout into a tree and prints every node in
identity order with its path and the clips driving it. --match limits the
output to nodes whose path matches a glob ("**" crosses levels).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			tree, err := opts.loadTree(cmd, args[0], cfg)
			if err != nil {
				return err
			}

			nodes := tree.Nodes()
			if match != "" {
				if nodes, err = tree.Match(match); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%d nodes)", args[0], tree.Len())))
			for _, n := range nodes {
				fmt.Fprintln(out, nodeLine(n, match == ""))
			}
			if len(nodes) == 0 {
				fmt.Fprintln(out, dimStyle.Render("no nodes match "+match))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "only print nodes whose path matches this glob")
	return cmd
}

// nodeLine renders one node: indented name when nested is set, otherwise the
// full path, followed by its identity and clips.
func nodeLine(n *uitree.Node, nested bool) string {
	var b strings.Builder
	label := n.Path()
	if nested {
		b.WriteString(strings.Repeat("  ", n.Depth()))
		label = n.Name
	}
	fmt.Fprintf(&b, "%-3d ", n.ID())
	b.WriteString(label)
	if a, ok := n.Behavior().(*uitree.AnimatedBehavior); ok {
		b.WriteString(" ")
		b.WriteString(clipStyle.Render(clipSummary(a)))
	}
	return b.String()
}

func clipSummary(a *uitree.AnimatedBehavior) string {
	show, hide := a.ShowClip, a.HideClip
	if show == "" {
		show = "-"
	}
	if hide == "" {
		hide = "-"
	}
	return "show=" + show + " hide=" + hide
}
