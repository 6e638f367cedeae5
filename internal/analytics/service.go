// Package analytics computes read-only summaries over the ledger.
package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Reader provides the read access needed by the analytics service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package analytics
type Reader interface {
	GetAccount(id int64) (domain.Account, error)
	ListOperationsForAccount(accountID int64) []domain.Operation
	ListCategories() []domain.Category
}

// Analytics is implemented by Service and by its decorators.
type Analytics interface {
	AccountBalance(accountID int64) (BalanceSummary, error)
	IncomeExpense(accountID int64, period Period) (IncomeExpenseSummary, error)
	TotalsByCategory(accountID int64, period Period) ([]CategoryTotal, error)
}

// Period is an inclusive date range. A zero bound is open.
type Period struct {
	From datepkg.Date
	To   datepkg.Date
}

// Contains reports whether d falls within the period.
func (p Period) Contains(d datepkg.Date) bool {
	return datepkg.Contains(p.From, p.To, d)
}

// BalanceSummary is the current balance of one account.
type BalanceSummary struct {
	AccountID   int64
	AccountName string
	Currency    string
	Balance     decimal.Decimal
}

// IncomeExpenseSummary sums the income and expense operations of an account.
type IncomeExpenseSummary struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Difference decimal.Decimal
}

// CategoryTotal sums the operations of an account in one category.
type CategoryTotal struct {
	CategoryID   int64
	CategoryName string
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Net          decimal.Decimal
}

// Service facilitates analytics logic.
type Service struct {
	reader Reader
}

// New returns analytics service reading from r.
func New(r Reader) *Service {
	return &Service{reader: r}
}

// AccountBalance returns the balance of the account.
func (s *Service) AccountBalance(accountID int64) (BalanceSummary, error) {
	a, err := s.reader.GetAccount(accountID)
	if err != nil {
		return BalanceSummary{}, err
	}

	return BalanceSummary{
		AccountID:   a.ID(),
		AccountName: a.Name(),
		Currency:    a.Currency(),
		Balance:     a.Balance(),
	}, nil
}

// IncomeExpense sums the account's operations dated within period by type.
func (s *Service) IncomeExpense(accountID int64, period Period) (IncomeExpenseSummary, error) {
	ops, err := s.operations(accountID, period)
	if err != nil {
		return IncomeExpenseSummary{}, err
	}

	sum := IncomeExpenseSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, op := range ops {
		if op.Type() == domain.OperationIncome {
			sum.Income = sum.Income.Add(op.Amount())
		} else {
			sum.Expense = sum.Expense.Add(op.Amount())
		}
	}

	sum.Difference = sum.Income.Sub(sum.Expense)

	return sum, nil
}

// TotalsByCategory groups the account's operations dated within period by category.
//
// Totals are ordered by net descending, then by category name and id.
func (s *Service) TotalsByCategory(accountID int64, period Period) ([]CategoryTotal, error) {
	ops, err := s.operations(accountID, period)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	for _, c := range s.reader.ListCategories() {
		names[c.ID()] = c.Name()
	}

	byCategory := make(map[int64]*CategoryTotal)
	for _, op := range ops {
		total, ok := byCategory[op.CategoryID()]
		if !ok {
			name, known := names[op.CategoryID()]
			if !known {
				return nil, fmt.Errorf("%w: operation %d references unknown category %d",
					errorspkg.ErrInternal, op.ID(), op.CategoryID())
			}

			total = &CategoryTotal{
				CategoryID:   op.CategoryID(),
				CategoryName: name,
				Income:       decimal.Zero,
				Expense:      decimal.Zero,
			}
			byCategory[op.CategoryID()] = total
		}

		if op.Type() == domain.OperationIncome {
			total.Income = total.Income.Add(op.Amount())
		} else {
			total.Expense = total.Expense.Add(op.Amount())
		}
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, total := range byCategory {
		total.Net = total.Income.Sub(total.Expense)
		totals = append(totals, *total)
	}

	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Net.Cmp(totals[j].Net); c != 0 {
			return c > 0
		}
		if totals[i].CategoryName != totals[j].CategoryName {
			return totals[i].CategoryName < totals[j].CategoryName
		}
		return totals[i].CategoryID < totals[j].CategoryID
	})

	return totals, nil
}

// operations fails for an unknown account instead of reporting empty totals.
func (s *Service) operations(accountID int64, period Period) ([]domain.Operation, error) {
	if _, err := s.reader.GetAccount(accountID); err != nil {
		return nil, err
	}

	var ops []domain.Operation
	for _, op := range s.reader.ListOperationsForAccount(accountID) {
		if period.Contains(op.Date()) {
			ops = append(ops, op)
		}
	}

	return ops, nil
}
