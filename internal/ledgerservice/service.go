// Package ledgerservice manages business logic layer of the ledger.
//
// Service is the single entry point used by front ends. It serializes every
// call with one mutex, so the underlying store never sees concurrent access.
package ledgerservice

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/analytics"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	CreateAccount(name, currency string) (domain.Account, error)
	RenameAccount(id int64, name string) (domain.Account, error)
	DeleteAccount(id int64) error
	GetAccount(id int64) (domain.Account, error)
	ListAccounts() []domain.Account

	CreateCategory(name string, typ domain.CategoryType) (domain.Category, error)
	UpdateCategory(id int64, name string, typ domain.CategoryType) (domain.Category, error)
	DeleteCategory(id int64) error
	ListCategories() []domain.Category

	AddOperation(arg domain.OperationParams) (domain.Operation, error)
	RemoveOperation(id int64) error
	ListOperations() []domain.Operation
	ListOperationsForAccount(accountID int64) []domain.Operation
	ResetAccount(accountID int64) (domain.Account, error)

	Snapshot() domain.Snapshot
	Walk(v domain.Visitor)
	ReplaceAll(s domain.Snapshot) error
	Merge(s domain.Snapshot) error
}

// Service facilitates ledger service layer logic.
type Service struct {
	mu              sync.Mutex
	repo            Repo
	analytics       analytics.Analytics
	defaultCurrency string
}

// New returns ledger service struct to manage ledger business logic.
//
// defaultCurrency is given to imported accounts without a currency.
func New(repo Repo, a analytics.Analytics, defaultCurrency string) *Service {
	if defaultCurrency = currencypkg.Normalize(defaultCurrency); defaultCurrency == "" {
		defaultCurrency = currencypkg.Default
	}

	return &Service{
		repo:            repo,
		analytics:       a,
		defaultCurrency: defaultCurrency,
	}
}

// logError logs user errors at info level and everything else at error level.
func logError(ctx context.Context, err error) {
	l := zerolog.Ctx(ctx)

	if errorspkg.Kind(err) == "internal" {
		l.Error().Err(err).Send()
		return
	}

	l.Info().Err(err).Send()
}

// CreateAccount creates and returns an account with zero balance.
func (s *Service) CreateAccount(ctx context.Context, name, currency string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.CreateAccount(name, currency)
	if err != nil {
		logError(ctx, err)
		return domain.Account{}, err
	}

	return account, nil
}

// RenameAccount renames the account and returns it.
func (s *Service) RenameAccount(ctx context.Context, id int64, name string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.RenameAccount(id, name)
	if err != nil {
		logError(ctx, err)
		return domain.Account{}, err
	}

	return account, nil
}

// DeleteAccount deletes the account with its operations.
func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteAccount(id); err != nil {
		logError(ctx, err)
		return err
	}

	return nil
}

// GetAccount returns the account for the given id.
func (s *Service) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.GetAccount(id)
	if err != nil {
		logError(ctx, err)
		return domain.Account{}, err
	}

	return account, nil
}

// ListAccounts returns every account ordered by name.
func (s *Service) ListAccounts(ctx context.Context) []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.ListAccounts()
}

// CreateCategory creates and returns a category.
func (s *Service) CreateCategory(ctx context.Context, name string, typ domain.CategoryType) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, err := s.repo.CreateCategory(name, typ)
	if err != nil {
		logError(ctx, err)
		return domain.Category{}, err
	}

	return category, nil
}

// UpdateCategory renames and retypes the category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, name string, typ domain.CategoryType) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, err := s.repo.UpdateCategory(id, name, typ)
	if err != nil {
		logError(ctx, err)
		return domain.Category{}, err
	}

	return category, nil
}

// DeleteCategory deletes the category with its operations.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteCategory(id); err != nil {
		logError(ctx, err)
		return err
	}

	return nil
}

// ListCategories returns every category ordered by name.
func (s *Service) ListCategories(ctx context.Context) []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.ListCategories()
}

// AddOperation records the operation and applies it to its account.
func (s *Service) AddOperation(ctx context.Context, arg domain.OperationParams) (domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, err := s.repo.AddOperation(arg)
	if err != nil {
		logError(ctx, err)
		return domain.Operation{}, err
	}

	return op, nil
}

// RemoveOperation deletes the operation and reverses it on its account.
func (s *Service) RemoveOperation(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.RemoveOperation(id); err != nil {
		logError(ctx, err)
		return err
	}

	return nil
}

// ListOperations returns every operation ordered by date and description.
func (s *Service) ListOperations(ctx context.Context) []domain.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.ListOperations()
}

// ListOperationsForAccount returns the operations of the account ordered by date.
func (s *Service) ListOperationsForAccount(ctx context.Context, accountID int64) []domain.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.ListOperationsForAccount(accountID)
}

// Snapshot returns a copy of every entity.
func (s *Service) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Snapshot()
}

// RecalculateBalance rebuilds the account balance from its operations.
func (s *Service) RecalculateBalance(ctx context.Context, accountID int64) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := NewRecalculateBalance(s.repo, accountID)
	if err := cmd.Execute(); err != nil {
		logError(ctx, err)
		return domain.Account{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Int64("account_id", accountID).
		Str("balance", cmd.Result().Balance().StringFixed(domain.AmountPlaces)).
		Msg("balance recalculated")

	return cmd.Result(), nil
}

// AccountBalance returns the balance summary of the account.
func (s *Service) AccountBalance(ctx context.Context, accountID int64) (analytics.BalanceSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.analytics.AccountBalance(accountID)
	if err != nil {
		logError(ctx, err)
		return analytics.BalanceSummary{}, err
	}

	return res, nil
}

// IncomeExpense returns the income and expense of the account within period.
func (s *Service) IncomeExpense(ctx context.Context, accountID int64, period analytics.Period) (analytics.IncomeExpenseSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.analytics.IncomeExpense(accountID, period)
	if err != nil {
		logError(ctx, err)
		return analytics.IncomeExpenseSummary{}, err
	}

	return res, nil
}

// CategoryTotals returns per-category totals of the account within period.
func (s *Service) CategoryTotals(ctx context.Context, accountID int64, period analytics.Period) ([]analytics.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.analytics.TotalsByCategory(accountID, period)
	if err != nil {
		logError(ctx, err)
		return nil, err
	}

	return res, nil
}
