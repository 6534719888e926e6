package usecase

import (
	"math/rand"
	"sync"
	"time"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
)

// Selector makes the random choices of a run. It is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector builds a Selector drawing from src. A nil src is seeded from the clock.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{rnd: rand.New(src)}
}

// PickCompany chooses one company tag uniformly.
func (s *Selector) PickCompany(companies []string) (string, error) {
	if len(companies) == 0 {
		return "", apperr.Configuration("at least one company is required", nil)
	}
	return companies[s.intn(len(companies))], nil
}

// Filter keeps the problems whose difficulty is one of difficulties, preserving order.
// Matching is exact and case-sensitive.
func Filter(problems []model.Problem, difficulties []string) []model.Problem {
	accepted := make(map[string]struct{}, len(difficulties))
	for _, d := range difficulties {
		accepted[d] = struct{}{}
	}

	kept := make([]model.Problem, 0, len(problems))
	for _, p := range problems {
		if _, ok := accepted[p.Difficulty]; ok {
			kept = append(kept, p)
		}
	}
	return kept
}

// Pick filters problems by difficulty and chooses one uniformly.
func (s *Selector) Pick(problems []model.Problem, difficulties []string) (model.Problem, error) {
	candidates := Filter(problems, difficulties)
	if len(candidates) == 0 {
		return model.Problem{}, apperr.Selection("no candidates match requested difficulties", nil)
	}
	return candidates[s.intn(len(candidates))], nil
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
