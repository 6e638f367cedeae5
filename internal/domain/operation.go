package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/pkg/datepkg"
)

// OperationType tells whether an operation adds to or subtracts from the balance.
type OperationType int

// Operation types. The zero value is invalid.
const (
	OperationIncome OperationType = iota + 1
	OperationExpense
)

func (t OperationType) String() string {
	switch t {
	case OperationIncome:
		return "Income"
	case OperationExpense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the declared operation types.
func (t OperationType) Valid() bool {
	return t == OperationIncome || t == OperationExpense
}

// ParseOperationType parses an operation type name, ignoring case and surrounding spaces.
func ParseOperationType(s string) (OperationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return OperationIncome, nil
	case "expense":
		return OperationExpense, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidOperationType)
	}
}

// AmountPlaces is the number of fractional digits kept on operation amounts.
const AmountPlaces = 2

// RoundAmount rounds half away from zero to AmountPlaces digits.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// OperationParams holds the data needed to create an operation.
type OperationParams struct {
	AccountID   int64
	CategoryID  int64
	Type        OperationType
	Amount      decimal.Decimal
	Date        datepkg.Date
	Description string
}

// Operation is a single dated, typed, amount-bearing transaction.
//
// Operations are immutable: they are only ever created or removed.
type Operation struct {
	id          int64
	accountID   int64
	categoryID  int64
	typ         OperationType
	amount      decimal.Decimal
	date        datepkg.Date
	description string
}

// NewOperation returns a validated operation with its amount rounded to two decimals.
func NewOperation(id int64, arg OperationParams) (Operation, error) {
	if !arg.Type.Valid() {
		return Operation{}, ErrInvalidOperationType
	}

	amount := RoundAmount(arg.Amount)
	if !amount.IsPositive() {
		return Operation{}, fmt.Errorf("%s: %w", arg.Amount, ErrNonPositiveAmount)
	}

	if arg.Date.IsZero() {
		return Operation{}, ErrMissingDate
	}

	return Operation{
		id:          id,
		accountID:   arg.AccountID,
		categoryID:  arg.CategoryID,
		typ:         arg.Type,
		amount:      amount,
		date:        arg.Date,
		description: strings.TrimSpace(arg.Description),
	}, nil
}

// ID returns the operation identifier.
func (o Operation) ID() int64 { return o.id }

// AccountID returns the owning account identifier.
func (o Operation) AccountID() int64 { return o.accountID }

// CategoryID returns the category identifier.
func (o Operation) CategoryID() int64 { return o.categoryID }

// Type returns the operation type.
func (o Operation) Type() OperationType { return o.typ }

// Amount returns the positive amount.
func (o Operation) Amount() decimal.Decimal { return o.amount }

// Date returns the operation date.
func (o Operation) Date() datepkg.Date { return o.date }

// Description returns the trimmed description, possibly empty.
func (o Operation) Description() string { return o.description }

// Signed returns the amount with the sign it contributes to the balance.
func (o Operation) Signed() decimal.Decimal {
	if o.typ == OperationExpense {
		return o.amount.Neg()
	}
	return o.amount
}

// Params returns the data the operation was created from.
func (o Operation) Params() OperationParams {
	return OperationParams{
		AccountID:   o.accountID,
		CategoryID:  o.categoryID,
		Type:        o.typ,
		Amount:      o.amount,
		Date:        o.date,
		Description: o.description,
	}
}

// Accept implements Exportable.
func (o Operation) Accept(v Visitor) {
	v.VisitOperation(o)
}
