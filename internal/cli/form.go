package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainorder/chain"
	"github.com/katalvlaran/chainorder/internal/form"
	"github.com/katalvlaran/chainorder/internal/logging"
	"github.com/katalvlaran/chainorder/internal/tui"
)

func newFormCmd(root *rootOptions) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Open the interactive terminal form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := root.load(cmd)
			if err != nil {
				return err
			}
			m := rt.cfg.SolveMethod()
			if method != "" {
				if m, err = chain.ParseMethod(method); err != nil {
					return fmt.Errorf("--method %q: %w", method, err)
				}
			}

			// Log lines would tear the alternate screen; the form shows results itself.
			h := form.NewHandler(logging.Discard(), rt.cfg.WarnBacktracking)
			rt.log.Debug("starting form", "method", m.String())
			return tui.Run(
				tui.New(h, m, rt.cfg.ShowOrder),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "preselected method (default from config)")
	return cmd
}
