package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phanxgames/uitree"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui <layout.yaml>",
		Short: "Browse a layout and toggle its panels interactively",
		Long: `Tui shows the node tree with each node's live state. Move with
up/down (or k/j), show with s, hide with h, show children with c, and
quit with q. The tree is advanced one frame per tick at the configured fps.`,
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
			p := tea.NewProgram(newTUIModel(tree, cfg), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
}

type frameMsg time.Time

type tuiModel struct {
	tree     *uitree.Tree
	cursor   int
	dt       float32
	interval time.Duration
	frames   int
	status   string
	err      error
}

func newTUIModel(tree *uitree.Tree, cfg *Config) tuiModel {
	return tuiModel{
		tree:     tree,
		dt:       cfg.DT(),
		interval: time.Second / time.Duration(cfg.FPS),
		status:   "ready",
	}
}

func (m tuiModel) Init() tea.Cmd {
	return m.tick()
}

func (m tuiModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.tree.Update(m.dt)
		m.frames++
		return m, m.tick()
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m tuiModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.tree.Len()-1 {
			m.cursor++
		}
	case "s":
		return m.apply("show", (*uitree.Node).Show), nil
	case "h":
		return m.apply("hide", (*uitree.Node).Hide), nil
	case "c":
		return m.apply("show children", (*uitree.Node).ShowChildren), nil
	}
	return m, nil
}

func (m tuiModel) apply(op string, fn func(*uitree.Node) error) tuiModel {
	n, ok := m.tree.NodeByID(m.cursor)
	if !ok {
		return m
	}
	m.err = fn(n)
	switch {
	case errors.Is(m.err, uitree.ErrBlockedByAncestor):
		m.status = fmt.Sprintf("%s %s rejected: ancestor is hiding", op, n.Path())
	case m.err != nil:
		m.status = m.err.Error()
	default:
		m.status = fmt.Sprintf("%s %s", op, n.Path())
	}
	return m
}

func (m tuiModel) View() string {
	var b strings.Builder
	for _, n := range m.tree.Nodes() {
		marker := "  "
		if n.ID() == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s%-20s %s\n", marker, strings.Repeat("  ", n.Depth()), n.Name, renderState(n.State()))
	}

	status := dimStyle.Render(m.status)
	if m.err != nil {
		status = errStyle.Render(m.status)
	}
	footer := footerStyle.Render(fmt.Sprintf("↑/↓ move  s show  h hide  c children  q quit  frame %d  pending %d", m.frames, m.tree.Pending()))
	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n" + status + "\n" + footer
}
