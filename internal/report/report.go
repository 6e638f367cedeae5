// Package report builds a per-account Markdown summary of the ledger.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/analytics"
	"github.com/go-petr/pet-ledger/internal/domain"
)

// Source provides the analytics a report is built from.
type Source interface {
	ListAccounts(ctx context.Context) []domain.Account
	AccountBalance(ctx context.Context, accountID int64) (analytics.BalanceSummary, error)
	IncomeExpense(ctx context.Context, accountID int64, period analytics.Period) (analytics.IncomeExpenseSummary, error)
	CategoryTotals(ctx context.Context, accountID int64, period analytics.Period) ([]analytics.CategoryTotal, error)
}

// Account holds the figures reported for one account.
type Account struct {
	Balance analytics.BalanceSummary
	Summary analytics.IncomeExpenseSummary
	Totals  []analytics.CategoryTotal
}

// Report is the summary of every account over one period.
type Report struct {
	Period   analytics.Period
	Accounts []Account
}

// Build collects the figures of every account in s.
func Build(ctx context.Context, s Source, period analytics.Period) (Report, error) {
	r := Report{Period: period}

	for _, a := range s.ListAccounts(ctx) {
		balance, err := s.AccountBalance(ctx, a.ID())
		if err != nil {
			return Report{}, fmt.Errorf("account %q: %w", a.Name(), err)
		}

		summary, err := s.IncomeExpense(ctx, a.ID(), period)
		if err != nil {
			return Report{}, fmt.Errorf("account %q: %w", a.Name(), err)
		}

		totals, err := s.CategoryTotals(ctx, a.ID(), period)
		if err != nil {
			return Report{}, fmt.Errorf("account %q: %w", a.Name(), err)
		}

		r.Accounts = append(r.Accounts, Account{Balance: balance, Summary: summary, Totals: totals})
	}

	return r, nil
}

// Markdown formats r as a Markdown document.
func (r Report) Markdown() string {
	var b strings.Builder

	b.WriteString("# Ledger report\n\n")
	fmt.Fprintf(&b, "Period: %s\n", periodString(r.Period))

	if len(r.Accounts) == 0 {
		b.WriteString("\nNo accounts.\n")
	}

	for _, a := range r.Accounts {
		fmt.Fprintf(&b, "\n## %s (%s)\n\n", cell(a.Balance.AccountName), a.Balance.Currency)

		b.WriteString("| Figure | Amount |\n|---|---:|\n")
		fmt.Fprintf(&b, "| Balance | %s |\n", money(a.Balance.Balance))
		fmt.Fprintf(&b, "| Income | %s |\n", money(a.Summary.Income))
		fmt.Fprintf(&b, "| Expense | %s |\n", money(a.Summary.Expense))
		fmt.Fprintf(&b, "| Difference | %s |\n", money(a.Summary.Difference))

		if len(a.Totals) == 0 {
			continue
		}

		b.WriteString("\n| Category | Income | Expense | Net |\n|---|---:|---:|---:|\n")

		for _, t := range a.Totals {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(t.CategoryName), money(t.Income), money(t.Expense), money(t.Net))
		}
	}

	return b.String()
}

// Render formats markdown for a terminal of the given width.
func Render(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	return r.Render(markdown)
}

func periodString(p analytics.Period) string {
	switch {
	case p.From.IsZero() && p.To.IsZero():
		return "all time"
	case p.From.IsZero():
		return "until " + p.To.String()
	case p.To.IsZero():
		return "since " + p.From.String()
	default:
		return p.From.String() + " to " + p.To.String()
	}
}

// cell escapes the table separator in user supplied names.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountPlaces)
}
