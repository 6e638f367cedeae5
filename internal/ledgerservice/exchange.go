package ledgerservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/codec"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshot"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// ImportMode tells Import what to do with the decoded content.
type ImportMode int

// Import modes.
const (
	// ModePreview only decodes and validates.
	ModePreview ImportMode = iota
	// ModeReplace discards the ledger and loads the content.
	ModeReplace
	// ModeMerge reconciles the content with the ledger by name and content.
	ModeMerge
)

// ErrInvalidImportMode indicates an unknown import mode.
var ErrInvalidImportMode = fmt.Errorf("%w: invalid import mode", errorspkg.ErrValidation)

func (m ImportMode) String() string {
	switch m {
	case ModePreview:
		return "preview"
	case ModeReplace:
		return "replace"
	case ModeMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseImportMode parses preview, replace or merge, ignoring case.
func ParseImportMode(s string) (ImportMode, error) {
	for _, m := range []ImportMode{ModePreview, ModeReplace, ModeMerge} {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrInvalidImportMode)
}

// Import decodes content in format and, depending on mode, applies it.
//
// It returns the snapshot that was, or in preview mode would be, applied. The
// ledger is only touched after the content is fully decoded and validated.
func (s *Service) Import(ctx context.Context, format string, content []byte, mode ImportMode) (domain.Snapshot, error) {
	l := zerolog.Ctx(ctx).With().
		Str("import_id", uuid.NewString()).
		Str("format", format).
		Stringer("mode", mode).
		Logger()
	ctx = l.WithContext(ctx)

	if mode < ModePreview || mode > ModeMerge {
		logError(ctx, ErrInvalidImportMode)
		return domain.Snapshot{}, ErrInvalidImportMode
	}

	c, err := codec.ForFormat(format, s.defaultCurrency)
	if err != nil {
		logError(ctx, err)
		return domain.Snapshot{}, err
	}

	raw, err := c.Decode(content)
	if err != nil {
		logError(ctx, err)
		return domain.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var built domain.Snapshot
	if mode == ModeMerge {
		built, err = snapshot.BuildMerge(raw, s.repo.Snapshot())
	} else {
		built, err = snapshot.Build(raw)
	}

	if err != nil {
		logError(ctx, err)
		return domain.Snapshot{}, err
	}

	switch mode {
	case ModeReplace:
		err = s.repo.ReplaceAll(built)
	case ModeMerge:
		err = s.repo.Merge(built)
	}

	if err != nil {
		logError(ctx, err)
		return domain.Snapshot{}, err
	}

	l.Info().
		Int("accounts", len(built.Accounts)).
		Int("categories", len(built.Categories)).
		Int("operations", len(built.Operations)).
		Msg("import done")

	return built, nil
}

// Export renders the whole ledger in format.
func (s *Service) Export(ctx context.Context, format string) ([]byte, error) {
	c, err := codec.ForFormat(format, s.defaultCurrency)
	if err != nil {
		logError(ctx, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := codec.Encode(c, s.repo)
	if err != nil {
		logError(ctx, err)
		return nil, err
	}

	return content, nil
}

// Seed creates the given categories when the ledger has none.
//
// Every seed is checked before any category is created.
func (s *Service) Seed(ctx context.Context, seeds []configpkg.SeedCategory) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.repo.ListCategories()) > 0 {
		return nil, nil
	}

	types := make([]domain.CategoryType, 0, len(seeds))
	seen := make(map[string]bool, len(seeds))

	for _, seed := range seeds {
		typ, err := domain.ParseCategoryType(seed.Type)
		if err != nil {
			err = fmt.Errorf("seed category %q: %w", seed.Name, err)
			logError(ctx, err)
			return nil, err
		}

		key := domain.NormalizeName(seed.Name)
		if key == "" {
			logError(ctx, domain.ErrEmptyCategoryName)
			return nil, domain.ErrEmptyCategoryName
		}

		if seen[key] {
			err = fmt.Errorf("seed category %q: %w", seed.Name, domain.ErrCategoryNameTaken)
			logError(ctx, err)
			return nil, err
		}

		seen[key] = true
		types = append(types, typ)
	}

	created := make([]domain.Category, 0, len(seeds))
	for i, seed := range seeds {
		c, err := s.repo.CreateCategory(seed.Name, types[i])
		if err != nil {
			logError(ctx, err)
			return created, err
		}

		created = append(created, c)
	}

	zerolog.Ctx(ctx).Debug().Int("categories", len(created)).Msg("ledger seeded")

	return created, nil
}
