// Package ledgerapp assembles the ledger and exposes its command line commands.
package ledgerapp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/analytics"
	"github.com/go-petr/pet-ledger/internal/codec"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// App holds the ledger service, configuration and standard streams.
type App struct {
	Service *ledgerservice.Service
	Config  configpkg.Config
	Logger  zerolog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates App with an empty in-memory ledger.
func New(logger zerolog.Logger, config configpkg.Config) *App {
	repo := ledgerrepo.NewRepoMem()
	timed := analytics.NewTimed(analytics.New(repo), logger)

	return &App{
		Service: ledgerservice.New(repo, timed, config.DefaultCurrency),
		Config:  config,
		Logger:  logger,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Commands returns the subcommands operating on a.
func (a *App) Commands() []subcommands.Command {
	return []subcommands.Command{
		&shellCmd{app: a},
		&convertCmd{app: a},
		&reportCmd{app: a},
		&checkCmd{app: a},
	}
}

// Context returns ctx carrying the app logger tagged with a fresh session id.
func (a *App) Context(ctx context.Context) context.Context {
	logger := a.Logger.With().Str("session_id", uuid.NewString()).Logger()
	return logger.WithContext(ctx)
}

// Load imports the file at path in the given mode.
//
// An empty format is taken from the file extension, falling back to the configured default.
func (a *App) Load(ctx context.Context, path, format string, mode ledgerservice.ImportMode) (domain.Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, err
	}

	if format == "" {
		format = codec.FormatFromPath(path, a.Config.DefaultFormat)
	}

	return a.Service.Import(ctx, format, content, mode)
}

// Save exports the ledger to path.
func (a *App) Save(ctx context.Context, path, format string) error {
	if format == "" {
		format = codec.FormatFromPath(path, a.Config.DefaultFormat)
	}

	content, err := a.Service.Export(ctx, format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, content, 0o600)
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintf(a.Stderr, format, args...)
}
