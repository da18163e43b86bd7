package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/uitree"
)

func newSimulateCmd(opts *options) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "simulate <layout.yaml> <script.json>",
		Short: "Replay a transition script against a layout headlessly",
		Long: `Simulate builds the layout, then runs the JSON script one step per
frame at the configured fps, advancing every clip between frames. It prints
every transition event followed by the final state of each node, and exits
non-zero if an expectation fails or the script runs past max_frames.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			runner, err := uitree.LoadScript(data)
			if err != nil {
				return err
			}
			tree, err := opts.loadTree(cmd, args[0], cfg)
			if err != nil {
				return err
			}

			log := &uitree.EventLog{}
			tree.SetEventSink(log)
			frames, runErr := uitree.RunScript(tree, runner, cfg.DT(), cfg.MaxFrames)

			out := cmd.OutOrStdout()
			if !quiet {
				fmt.Fprintln(out, titleStyle.Render("events"))
				for _, e := range log.Events {
					fmt.Fprintf(out, "  %-14s %s %s\n", e.Type, e.Path, dimStyle.Render("-> "+e.State.String()))
				}
			}
			fmt.Fprintln(out, titleStyle.Render("final states"))
			for _, n := range tree.Nodes() {
				fmt.Fprintf(out, "  %-30s %s\n", n.Path(), renderState(n.State()))
			}

			if runErr != nil {
				fmt.Fprintln(out, errStyle.Render(fmt.Sprintf("failed after %d frames", frames)))
				return runErr
			}
			fmt.Fprintf(out, "ok: %d frames (%.2fs)\n", frames, float32(frames)*cfg.DT())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print final states")
	return cmd
}
