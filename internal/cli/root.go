// Package cli defines the leetpick command line surface.
package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leetpick/internal/adapter/logging"
	"leetpick/internal/config"
	"leetpick/internal/di"
	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
)

// Deps are the process level collaborators of the root command.
type Deps struct {
	LoadConfig func() (*config.Config, error)
	Out        io.Writer
}

// DefaultDeps reads configuration from the environment and prints to stdout.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		Out:        os.Stdout,
	}
}

type options struct {
	companies    []string
	difficulties []string
	seed         int64
	schedule     string
}

// NewRootCmd creates the leetpick root command.
func NewRootCmd(deps Deps) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "leetpick",
		Short: "Pick a random LeetCode problem for a company and announce it",
		Long: `leetpick queries the LeetCode company tag of one of the given companies,
keeps the problems matching the given difficulties and picks one at random.
The problem URL is posted to the configured Discord/Slack webhooks, or printed
when no webhook is configured.

Set RUN_MODE=AWS_LAMBDA to serve the same pipeline as a Lambda function.`,
		Example: `  leetpick --companies google --companies amazon --difficulties Easy,Medium`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), deps, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.companies, "companies", "c", nil, "company tags to choose from (repeatable)")
	flags.StringSliceVarP(&opts.difficulties, "difficulties", "d", nil, "accepted difficulties, e.g. Easy, Medium, Hard (repeatable)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for reproducible picks (0 uses the clock)")
	flags.StringVar(&opts.schedule, "schedule", "", "cron spec; keep running and pick on this schedule (overrides SCHEDULE_CRON)")

	return cmd
}

func run(ctx context.Context, deps Deps, opts *options) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return apperr.Configuration("configure logging", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	var src rand.Source
	if opts.seed != 0 {
		src = rand.NewSource(opts.seed)
	}

	application, err := di.InitializeApp(cfg, logger, deps.Out, src)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	if cfg.LambdaMode() {
		logger.Info("serving lambda requests")
		application.ServeLambda()
		return nil
	}

	req := model.PickRequest{Companies: opts.companies, Difficulties: opts.difficulties}
	if len(req.Companies) == 0 {
		return apperr.Configuration("at least one --companies value is required", nil)
	}
	if len(req.Difficulties) == 0 {
		return apperr.Configuration("at least one --difficulties value is required", nil)
	}

	schedule := opts.schedule
	if schedule == "" {
		schedule = cfg.ScheduleCron
	}
	if schedule != "" {
		return application.RunScheduled(ctx, req, schedule)
	}

	_, err = application.RunOnce(ctx, req)
	return err
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := NewRootCmd(DefaultDeps()).ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	code := apperr.ExitCode(err)
	logger, lerr := logging.New("info", false)
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "leetpick: %v\n", err)
		return code
	}
	logger.Error("run failed",
		zap.Error(err),
		zap.String("kind", string(apperr.KindOf(err))),
		zap.Int("exit_code", code))
	_ = logger.Sync()
	return code
}
