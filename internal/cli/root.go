// Package cli wires the chainorder command tree.
package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainorder/internal/config"
	"github.com/katalvlaran/chainorder/internal/form"
	"github.com/katalvlaran/chainorder/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// session is what every subcommand needs after config is resolved.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	handler *form.Handler
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "chainorder",
		Short:         "Minimum scalar-multiplication cost of a matrix chain",
		Long:          "chainorder computes the cheapest parenthesization cost of a matrix chain\nwith bottom-up DP, naive backtracking or memoized divide & conquer.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "config yaml path (optional)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level override: debug|info|warn|error")

	cmd.AddCommand(newSolveCmd(opts))
	cmd.AddCommand(newCompareCmd(opts))
	cmd.AddCommand(newFormCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadIfExists(o.configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if strings.TrimSpace(o.logLevel) != "" {
		level = o.logLevel
	}
	log := logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, NoColor: cfg.Log.NoColor})
	log.Debug("config loaded", "path", o.configPath, "method", cfg.SolveMethod().String())

	return &session{
		cfg:     cfg,
		log:     log,
		handler: form.NewHandler(log, cfg.WarnBacktracking),
	}, nil
}

// joinDimensionArgs rebuilds the text the shell split apart, so
// `solve 40, 20, 30` reads as "40, 20, 30". Separators are kept verbatim and
// ParseDimensions alone decides whether the list is well formed.
func joinDimensionArgs(args []string) string {
	return strings.Join(args, " ")
}
