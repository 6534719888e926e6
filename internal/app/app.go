package app

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/robfig/cron/v3"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
	"leetpick/internal/usecase"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	stopTimeout         = 5 * time.Second
)

// App exposes the entry points that drive the pick use case.
type App struct {
	usecase *usecase.PickProblem
	logger  ports.Logger
}

// New constructs an App instance.
func New(pick *usecase.PickProblem, logger ports.Logger) *App {
	return &App{
		usecase: pick,
		logger:  logger,
	}
}

// RunOnce executes a single pick.
func (a *App) RunOnce(ctx context.Context, req model.PickRequest) (model.Pick, error) {
	return a.usecase.Run(ctx, req)
}

// HandleLambda is the cloud function handler. The event carries the companies and difficulties.
func (a *App) HandleLambda(ctx context.Context, req model.PickRequest) error {
	a.logger.Info(ctx, "handling lambda request")
	_, err := a.usecase.Run(ctx, req)
	if err != nil {
		a.logger.Error(ctx, "lambda run failed", "error", err, "kind", string(apperr.KindOf(err)))
	}
	return err
}

// ServeLambda hands control to the Lambda runtime. It does not return while the runtime is healthy.
func (a *App) ServeLambda() {
	lambda.Start(a.HandleLambda)
}

// RunScheduled executes a pick immediately and then according to the cron schedule until ctx is done.
// Failures of individual runs are logged and do not stop the scheduler.
func (a *App) RunScheduled(ctx context.Context, req model.PickRequest, schedule string) error {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, func() {
		runCtx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		if _, err := a.usecase.Run(runCtx, req); err != nil {
			a.logger.Error(runCtx, "scheduled run failed", "error", err, "kind", string(apperr.KindOf(err)))
		}
	}); err != nil {
		return apperr.Configuration("invalid cron schedule "+schedule, err)
	}

	a.logger.Info(ctx, "running first pick immediately")
	if _, err := a.usecase.Run(ctx, req); err != nil {
		a.logger.Error(ctx, "initial run failed", "error", err, "kind", string(apperr.KindOf(err)))
	}

	a.logger.Info(ctx, "starting scheduler", "cron", schedule)
	scheduler.Start()

	<-ctx.Done()
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}
