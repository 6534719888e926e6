package ports

import (
	"context"

	"leetpick/internal/domain/model"
)

// ProblemProvider lists the problems grouped under a company tag.
type ProblemProvider interface {
	GetCompanyProblems(ctx context.Context, tag string) ([]model.Problem, error)
}
