//go:build wireinject

package di

import (
	"io"
	"math/rand"

	"github.com/google/wire"
	"go.uber.org/zap"

	"leetpick/internal/adapter/logging"
	"leetpick/internal/app"
	"leetpick/internal/config"
	"leetpick/internal/domain/ports"
	"leetpick/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config, logger *zap.Logger, out io.Writer, src rand.Source) (*app.App, error) {
	wire.Build(
		logging.NewZap,
		wire.Bind(new(ports.Logger), new(*logging.ZapLogger)),
		provideProblemProvider,
		provideNotifier,
		usecase.NewSelector,
		usecase.NewPickProblem,
		app.New,
	)
	return nil, nil
}
