package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshot"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// document is the tree shared by the JSON and YAML formats.
type document struct {
	Accounts   []accountRecord   `json:"accounts" yaml:"accounts"`
	Categories []categoryRecord  `json:"categories" yaml:"categories"`
	Operations []operationRecord `json:"operations" yaml:"operations"`
}

type accountRecord struct {
	Name     string `json:"name" yaml:"name"`
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Balance  scalar `json:"balance,omitempty" yaml:"balance,omitempty"`
}

type categoryRecord struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type operationRecord struct {
	Account     string `json:"account" yaml:"account"`
	Category    string `json:"category" yaml:"category"`
	Type        string `json:"type" yaml:"type"`
	Amount      scalar `json:"amount" yaml:"amount"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// scalar is a string that also decodes from a bare JSON number.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		*s = scalar(str)

		return nil
	}

	*s = scalar(data)

	return nil
}

func newDocument(s domain.Snapshot) (document, error) {
	names := newNameIndex(s)

	doc := document{
		Accounts:   make([]accountRecord, 0, len(s.Accounts)),
		Categories: make([]categoryRecord, 0, len(s.Categories)),
		Operations: make([]operationRecord, 0, len(s.Operations)),
	}

	for _, a := range s.Accounts {
		doc.Accounts = append(doc.Accounts, accountRecord{
			Name:     a.Name(),
			Currency: a.Currency(),
			Balance:  scalar(formatAmount(a.Balance())),
		})
	}

	for _, c := range s.Categories {
		doc.Categories = append(doc.Categories, categoryRecord{Name: c.Name(), Type: c.Type().String()})
	}

	for _, op := range s.Operations {
		account, category, err := names.of(op)
		if err != nil {
			return document{}, err
		}

		doc.Operations = append(doc.Operations, operationRecord{
			Account:     account,
			Category:    category,
			Type:        op.Type().String(),
			Amount:      scalar(formatAmount(op.Amount())),
			Date:        op.Date().String(),
			Description: op.Description(),
		})
	}

	return doc, nil
}

func (doc document) raw(format, defaultCurrency string) (snapshot.RawData, error) {
	raw := snapshot.RawData{
		Accounts:   make([]snapshot.RawAccount, 0, len(doc.Accounts)),
		Categories: make([]snapshot.RawCategory, 0, len(doc.Categories)),
		Operations: make([]snapshot.RawOperation, 0, len(doc.Operations)),
	}

	for _, a := range doc.Accounts {
		raw.Accounts = append(raw.Accounts, newRawAccount(a.Name, a.Currency, defaultCurrency))
	}

	for i, c := range doc.Categories {
		rc, err := newRawCategory(c.Name, c.Type)
		if err != nil {
			return snapshot.RawData{}, decodeError(format, fmt.Sprintf("category %d", i+1), err)
		}

		raw.Categories = append(raw.Categories, rc)
	}

	for i, op := range doc.Operations {
		ro, err := newRawOperation(op.Account, op.Category, op.Type, string(op.Amount), op.Date, op.Description)
		if err != nil {
			return snapshot.RawData{}, decodeError(format, fmt.Sprintf("operation %d", i+1), err)
		}

		raw.Operations = append(raw.Operations, ro)
	}

	return raw, nil
}

func newRawAccount(name, currency, defaultCurrency string) snapshot.RawAccount {
	if currency = strings.TrimSpace(currency); currency == "" {
		currency = defaultCurrency
	}

	return snapshot.RawAccount{Name: strings.TrimSpace(name), Currency: currency}
}

func newRawCategory(name, typ string) (snapshot.RawCategory, error) {
	t, err := domain.ParseCategoryType(typ)
	if err != nil {
		return snapshot.RawCategory{}, err
	}

	return snapshot.RawCategory{Name: strings.TrimSpace(name), Type: t}, nil
}

func newRawOperation(account, category, typ, amount, date, description string) (snapshot.RawOperation, error) {
	t, err := domain.ParseOperationType(typ)
	if err != nil {
		return snapshot.RawOperation{}, err
	}

	a, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return snapshot.RawOperation{}, fmt.Errorf("invalid amount %q", amount)
	}

	d, err := datepkg.Parse(strings.TrimSpace(date))
	if err != nil {
		return snapshot.RawOperation{}, err
	}

	return snapshot.RawOperation{
		Account:     strings.TrimSpace(account),
		Category:    strings.TrimSpace(category),
		Type:        t,
		Amount:      a,
		Date:        d,
		Description: strings.TrimSpace(description),
	}, nil
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountPlaces)
}

// nameIndex resolves operation references to the names used on output.
type nameIndex struct {
	accounts   map[int64]string
	categories map[int64]string
}

func newNameIndex(s domain.Snapshot) nameIndex {
	idx := nameIndex{
		accounts:   make(map[int64]string, len(s.Accounts)),
		categories: make(map[int64]string, len(s.Categories)),
	}

	for _, a := range s.Accounts {
		idx.accounts[a.ID()] = a.Name()
	}

	for _, c := range s.Categories {
		idx.categories[c.ID()] = c.Name()
	}

	return idx
}

func (idx nameIndex) of(op domain.Operation) (account, category string, err error) {
	account, ok := idx.accounts[op.AccountID()]
	if !ok {
		return "", "", fmt.Errorf("%w: operation %d references unknown account %d", errorspkg.ErrInternal, op.ID(), op.AccountID())
	}

	category, ok = idx.categories[op.CategoryID()]
	if !ok {
		return "", "", fmt.Errorf("%w: operation %d references unknown category %d", errorspkg.ErrInternal, op.ID(), op.CategoryID())
	}

	return account, category, nil
}
