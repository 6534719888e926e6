package usecase

import (
	"context"
	"fmt"
	"time"

	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
)

// PickProblem selects a random problem for a company and announces it.
type PickProblem struct {
	problems ports.ProblemProvider
	notifier ports.Notifier
	selector *Selector
	logger   ports.Logger
}

// NewPickProblem constructs a PickProblem use case.
func NewPickProblem(
	problems ports.ProblemProvider,
	notifier ports.Notifier,
	selector *Selector,
	logger ports.Logger,
) *PickProblem {
	return &PickProblem{
		problems: problems,
		notifier: notifier,
		selector: selector,
		logger:   logger,
	}
}

// Run executes one pick. Any failure aborts the run before later stages execute.
func (p *PickProblem) Run(ctx context.Context, req model.PickRequest) (model.Pick, error) {
	start := time.Now()

	company, err := p.selector.PickCompany(req.Companies)
	if err != nil {
		return model.Pick{}, err
	}
	p.logger.Info(ctx, "picking problem", "company", company, "difficulties", req.Difficulties)

	problems, err := p.problems.GetCompanyProblems(ctx, company)
	if err != nil {
		return model.Pick{}, fmt.Errorf("fetch problems for %q: %w", company, err)
	}

	problem, err := p.selector.Pick(problems, req.Difficulties)
	if err != nil {
		return model.Pick{}, fmt.Errorf("select problem for %q: %w", company, err)
	}

	pick := model.Pick{
		Company: company,
		Problem: problem,
		URL:     problem.URL(),
	}

	if err := p.notifier.Send(ctx, model.Notification{Content: pick.URL}); err != nil {
		return model.Pick{}, fmt.Errorf("notify: %w", err)
	}

	p.logger.Info(ctx, "problem picked",
		"company", company,
		"slug", problem.Slug,
		"difficulty", problem.Difficulty,
		"duration", time.Since(start))
	return pick, nil
}
