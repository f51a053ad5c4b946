package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainorder/chain"
	"github.com/katalvlaran/chainorder/internal/form"
)

var errMethodsDisagree = errors.New("methods disagree")

var (
	compareHeader = lipgloss.NewStyle().Bold(true)
	compareName   = lipgloss.NewStyle().Width(18)
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <dims>",
		Short: "Run every method on one chain and check they agree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := root.load(cmd)
			if err != nil {
				return err
			}
			return runCompare(cmd, rt, joinDimensionArgs(args))
		},
	}
}

func runCompare(cmd *cobra.Command, rt *session, dims string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, compareHeader.Render("Dimensions: "+dims))

	var (
		first    *chain.Result
		firstErr error
		mismatch bool
	)
	for i, m := range chain.Methods {
		resp := rt.handler.Compute(form.Request{Dimensions: dims, Method: m})
		fmt.Fprintln(out, compareName.Render(m.String())+resp.Text)

		if i == 0 {
			first, firstErr = &resp.Result, resp.Err
			continue
		}
		if (resp.Err == nil) != (firstErr == nil) || resp.Result.Cost != first.Cost {
			mismatch = true
		}
	}

	if mismatch {
		rt.log.Error("methods disagree", "dims", dims)
		return errMethodsDisagree
	}
	return firstErr
}
