package domain

import (
	"fmt"

	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = fmt.Errorf("account %w", errorspkg.ErrNotFound)
	// ErrCategoryNotFound indicates that the category is not found.
	ErrCategoryNotFound = fmt.Errorf("category %w", errorspkg.ErrNotFound)
	// ErrOperationNotFound indicates that the operation is not found.
	ErrOperationNotFound = fmt.Errorf("operation %w", errorspkg.ErrNotFound)
)

var (
	// ErrEmptyAccountName indicates a blank account name.
	ErrEmptyAccountName = fmt.Errorf("%w: account name cannot be empty", errorspkg.ErrValidation)
	// ErrEmptyCurrency indicates a blank currency code.
	ErrEmptyCurrency = fmt.Errorf("%w: currency cannot be empty", errorspkg.ErrValidation)
	// ErrEmptyCategoryName indicates a blank category name.
	ErrEmptyCategoryName = fmt.Errorf("%w: category name cannot be empty", errorspkg.ErrValidation)
	// ErrInvalidCategoryType indicates an unknown category type.
	ErrInvalidCategoryType = fmt.Errorf("%w: invalid category type", errorspkg.ErrValidation)
	// ErrInvalidOperationType indicates an unknown operation type.
	ErrInvalidOperationType = fmt.Errorf("%w: invalid operation type", errorspkg.ErrValidation)
	// ErrNonPositiveAmount indicates an operation amount that is zero or negative after rounding.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", errorspkg.ErrValidation)
	// ErrMissingDate indicates an operation without a date.
	ErrMissingDate = fmt.Errorf("%w: operation date is required", errorspkg.ErrValidation)
	// ErrInvalidID indicates a non-positive identifier in a snapshot.
	ErrInvalidID = fmt.Errorf("%w: identifiers must be positive", errorspkg.ErrValidation)
	// ErrForeignOperation indicates an operation registered on an account it does not belong to.
	ErrForeignOperation = fmt.Errorf("%w: operation does not belong to this account", errorspkg.ErrValidation)
)

var (
	// ErrAccountNameTaken indicates that an account with the same name already exists.
	ErrAccountNameTaken = fmt.Errorf("%w: account name already exists", errorspkg.ErrConflict)
	// ErrCategoryNameTaken indicates that a category with the same name already exists.
	ErrCategoryNameTaken = fmt.Errorf("%w: category name already exists", errorspkg.ErrConflict)
	// ErrCategoryTypeMismatch indicates that the category cannot hold operations of the given type.
	ErrCategoryTypeMismatch = fmt.Errorf("%w: category/type mismatch", errorspkg.ErrConflict)
	// ErrDuplicateID indicates that an identifier is used twice within one snapshot.
	ErrDuplicateID = fmt.Errorf("%w: duplicate identifier", errorspkg.ErrConflict)
)
