package domain

import (
	"fmt"
	"strings"
)

// CategoryType restricts which operation types a category accepts.
type CategoryType int

// Category types. The zero value is invalid.
const (
	CategoryIncome CategoryType = iota + 1
	CategoryExpense
	// CategoryUniversal accepts both income and expense operations.
	CategoryUniversal
)

func (t CategoryType) String() string {
	switch t {
	case CategoryIncome:
		return "Income"
	case CategoryExpense:
		return "Expense"
	case CategoryUniversal:
		return "Universal"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the declared category types.
func (t CategoryType) Valid() bool {
	return t >= CategoryIncome && t <= CategoryUniversal
}

// ParseCategoryType parses a category type name, ignoring case and surrounding spaces.
func ParseCategoryType(s string) (CategoryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return CategoryIncome, nil
	case "expense":
		return CategoryExpense, nil
	case "universal":
		return CategoryUniversal, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidCategoryType)
	}
}

// Category is a named classification for operations.
type Category struct {
	id   int64
	name string
	typ  CategoryType
}

// NewCategory returns a validated category.
func NewCategory(id int64, name string, typ CategoryType) (*Category, error) {
	c := &Category{id: id}

	if err := c.Rename(name); err != nil {
		return nil, err
	}

	if err := c.ChangeType(typ); err != nil {
		return nil, err
	}

	return c, nil
}

// ID returns the category identifier.
func (c Category) ID() int64 { return c.id }

// Name returns the category name.
func (c Category) Name() string { return c.name }

// Type returns the category type.
func (c Category) Type() CategoryType { return c.typ }

// Rename changes the category name.
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}

	c.name = name

	return nil
}

// ChangeType changes the category type.
func (c *Category) ChangeType(typ CategoryType) error {
	if !typ.Valid() {
		return ErrInvalidCategoryType
	}

	c.typ = typ

	return nil
}

// Allows reports whether operations of type t may reference this category.
func (c Category) Allows(t OperationType) bool {
	switch c.typ {
	case CategoryUniversal:
		return true
	case CategoryIncome:
		return t == OperationIncome
	case CategoryExpense:
		return t == OperationExpense
	default:
		return false
	}
}

// Clone returns an independent copy of the category.
func (c Category) Clone() Category { return c }

// Accept implements Exportable.
func (c Category) Accept(v Visitor) {
	v.VisitCategory(c)
}
