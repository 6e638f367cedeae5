// Package snapshot converts name-keyed import data into identifier-keyed ledger snapshots.
//
// Input formats reference accounts and categories by name while the store's
// integrity rules are identifier-based. RawData is validated as a whole first,
// and only then are identifiers minted and operations linked.
package snapshot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/validpkg"
)

// RawData is parsed import content before identifiers are assigned.
type RawData struct {
	Accounts   []RawAccount   `validate:"dive"`
	Categories []RawCategory  `validate:"dive"`
	Operations []RawOperation `validate:"dive"`
}

// RawAccount is an account row.
type RawAccount struct {
	Name     string `validate:"required"`
	Currency string `validate:"required"`
}

// RawCategory is a category row.
type RawCategory struct {
	Name string              `validate:"required"`
	Type domain.CategoryType `validate:"oneof=1 2 3"`
}

// RawOperation is an operation row referencing its account and category by name.
type RawOperation struct {
	Account     string               `validate:"required"`
	Category    string               `validate:"required"`
	Type        domain.OperationType `validate:"oneof=1 2"`
	Amount      decimal.Decimal      `validate:"-"`
	Date        datepkg.Date         `validate:"-"`
	Description string
}

// ValidationError reports a rejected import together with the offending names.
type ValidationError struct {
	Reason string
	Names  []string
}

func (e *ValidationError) Error() string {
	if len(e.Names) == 0 {
		return fmt.Sprintf("%v: %s", errorspkg.ErrValidation, e.Reason)
	}

	return fmt.Sprintf("%v: %s: %s", errorspkg.ErrValidation, e.Reason, strings.Join(e.Names, ", "))
}

// Unwrap makes every ValidationError match errorspkg.ErrValidation.
func (e *ValidationError) Unwrap() error { return errorspkg.ErrValidation }

var validate = validator.New()

// Validate checks the fields of every row, then rejects duplicate account
// names, duplicate category names and operations referencing unknown names.
//
// Names are compared after trimming and case folding.
func Validate(raw RawData) error {
	if err := checkFields(raw); err != nil {
		return err
	}

	accounts := make([]string, 0, len(raw.Accounts))
	for _, a := range raw.Accounts {
		accounts = append(accounts, a.Name)
	}

	if dups := duplicates(accounts); len(dups) > 0 {
		return &ValidationError{Reason: "duplicate account names", Names: dups}
	}

	categories := make([]string, 0, len(raw.Categories))
	for _, c := range raw.Categories {
		categories = append(categories, c.Name)
	}

	if dups := duplicates(categories); len(dups) > 0 {
		return &ValidationError{Reason: "duplicate category names", Names: dups}
	}

	knownAccounts := nameSet(accounts)
	knownCategories := nameSet(categories)

	var dangling []string
	for i, op := range raw.Operations {
		if !knownAccounts[domain.NormalizeName(op.Account)] {
			dangling = append(dangling, fmt.Sprintf("operation %d: account %q", i+1, op.Account))
		}

		if !knownCategories[domain.NormalizeName(op.Category)] {
			dangling = append(dangling, fmt.Sprintf("operation %d: category %q", i+1, op.Category))
		}
	}

	if len(dangling) > 0 {
		return &ValidationError{Reason: "operations reference unknown accounts or categories", Names: dangling}
	}

	return nil
}

func checkFields(raw RawData) error {
	if err := validate.Struct(raw); err != nil {
		return &ValidationError{Reason: "invalid fields", Names: validpkg.Messages(err)}
	}

	var bad []string

	for i, a := range raw.Accounts {
		if strings.TrimSpace(a.Name) == "" {
			bad = append(bad, fmt.Sprintf("account %d: blank name", i+1))
		}
	}

	for i, c := range raw.Categories {
		if strings.TrimSpace(c.Name) == "" {
			bad = append(bad, fmt.Sprintf("category %d: blank name", i+1))
		}
	}

	for i, op := range raw.Operations {
		if !domain.RoundAmount(op.Amount).IsPositive() {
			bad = append(bad, fmt.Sprintf("operation %d: amount %s is not positive", i+1, op.Amount))
		}

		if op.Date.IsZero() {
			bad = append(bad, fmt.Sprintf("operation %d: missing date", i+1))
		}
	}

	if len(bad) > 0 {
		return &ValidationError{Reason: "invalid fields", Names: bad}
	}

	return nil
}

// duplicates returns the sorted normalized names occurring more than once.
func duplicates(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[domain.NormalizeName(n)]++
	}

	var dups []string
	for n, c := range counts {
		if c > 1 {
			dups = append(dups, n)
		}
	}

	sort.Strings(dups)

	return dups
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[domain.NormalizeName(n)] = true
	}

	return set
}
