// Package domain provides definitions of all ledger entities.
//
// Entities validate their own arguments, so an invalid Account, Category or
// Operation cannot be constructed even when the store is bypassed.
package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeName returns the key used for name uniqueness: trimmed and case-folded.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Account is a named money container with a currency and a derived balance.
//
// The balance always equals the signed sum of the registered operations.
type Account struct {
	id           int64
	name         string
	currency     string
	balance      decimal.Decimal
	operationIDs []int64
}

// NewAccount returns an account with zero balance and no operations.
func NewAccount(id int64, name, currency string) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyAccountName
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, ErrEmptyCurrency
	}

	return &Account{
		id:       id,
		name:     name,
		currency: currency,
		balance:  decimal.Zero,
	}, nil
}

// ID returns the account identifier.
func (a Account) ID() int64 { return a.id }

// Name returns the account name.
func (a Account) Name() string { return a.name }

// Currency returns the upper-cased currency code.
func (a Account) Currency() string { return a.currency }

// Balance returns the current balance.
func (a Account) Balance() decimal.Decimal { return a.balance }

// OperationIDs returns a copy of the identifiers of the registered operations.
func (a Account) OperationIDs() []int64 {
	return append([]int64(nil), a.operationIDs...)
}

// Rename changes the account name.
func (a *Account) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyAccountName
	}

	a.name = name

	return nil
}

// RegisterOperation appends the operation and applies it to the balance.
func (a *Account) RegisterOperation(op Operation) error {
	if op.AccountID() != a.id {
		return fmt.Errorf("operation %d on account %d: %w", op.ID(), a.id, ErrForeignOperation)
	}

	a.operationIDs = append(a.operationIDs, op.ID())
	a.balance = a.balance.Add(op.Signed())

	return nil
}

// RemoveOperation detaches the operation and reverses its balance contribution.
func (a *Account) RemoveOperation(op Operation) error {
	for i, id := range a.operationIDs {
		if id == op.ID() {
			a.operationIDs = append(a.operationIDs[:i:i], a.operationIDs[i+1:]...)
			a.balance = a.balance.Sub(op.Signed())

			return nil
		}
	}

	return fmt.Errorf("operation %d on account %d: %w", op.ID(), a.id, ErrOperationNotFound)
}

// ResetOperations clears the operation list and sets the balance to zero.
func (a *Account) ResetOperations() {
	a.operationIDs = nil
	a.balance = decimal.Zero
}

// Clone returns an independent copy of the account.
func (a Account) Clone() Account {
	a.operationIDs = a.OperationIDs()
	return a
}

// Accept implements Exportable.
func (a Account) Accept(v Visitor) {
	v.VisitAccount(a.Clone())
}
