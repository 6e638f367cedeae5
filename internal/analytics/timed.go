package analytics

import (
	"time"

	"github.com/rs/zerolog"
)

// Timed logs the duration of every call to the wrapped Analytics at debug level.
type Timed struct {
	inner  Analytics
	logger zerolog.Logger
}

var _ Analytics = (*Timed)(nil)

// NewTimed wraps inner.
func NewTimed(inner Analytics, logger zerolog.Logger) *Timed {
	return &Timed{inner: inner, logger: logger}
}

func (t *Timed) measure(method string, start time.Time, err error) {
	t.logger.Debug().
		Str("method", method).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("analytics call")
}

// AccountBalance implements Analytics.
func (t *Timed) AccountBalance(accountID int64) (BalanceSummary, error) {
	start := time.Now()
	res, err := t.inner.AccountBalance(accountID)
	t.measure("AccountBalance", start, err)

	return res, err
}

// IncomeExpense implements Analytics.
func (t *Timed) IncomeExpense(accountID int64, period Period) (IncomeExpenseSummary, error) {
	start := time.Now()
	res, err := t.inner.IncomeExpense(accountID, period)
	t.measure("IncomeExpense", start, err)

	return res, err
}

// TotalsByCategory implements Analytics.
func (t *Timed) TotalsByCategory(accountID int64, period Period) ([]CategoryTotal, error) {
	start := time.Now()
	res, err := t.inner.TotalsByCategory(accountID, period)
	t.measure("TotalsByCategory", start, err)

	return res, err
}
