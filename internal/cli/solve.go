package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainorder/chain"
	"github.com/katalvlaran/chainorder/internal/form"
)

type solveOptions struct {
	method string
	order  bool
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:     "solve <dims>",
		Short:   "Compute the minimum multiplication cost of one chain",
		Example: "  chainorder solve 40,20,30,10,30 -m divide-and-conquer --order",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := root.load(cmd)
			if err != nil {
				return err
			}
			return runSolve(cmd, rt, opts, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.method, "method", "m", "", "tabulation|backtracking|divide-and-conquer (default from config)")
	fs.BoolVar(&opts.order, "order", false, "also print an optimal parenthesization")
	return cmd
}

func runSolve(cmd *cobra.Command, rt *session, opts solveOptions, args []string) error {
	method := rt.cfg.SolveMethod()
	if opts.method != "" {
		m, err := chain.ParseMethod(opts.method)
		if err != nil {
			return fmt.Errorf("--method %q: %w", opts.method, err)
		}
		method = m
	}
	showOrder := rt.cfg.ShowOrder
	if cmd.Flags().Changed("order") {
		showOrder = opts.order
	}

	resp := rt.handler.Compute(form.Request{
		Dimensions: joinDimensionArgs(args),
		Method:     method,
		ShowOrder:  showOrder,
	})
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), resp.Text); err != nil {
		return err
	}
	return resp.Err
}
