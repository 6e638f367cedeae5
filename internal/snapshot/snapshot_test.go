package snapshot

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

func rawOperation(account, category string, typ domain.OperationType, amount, date, description string) RawOperation {
	return RawOperation{
		Account:     account,
		Category:    category,
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Date:        datepkg.MustParse(date),
		Description: description,
	}
}

func sampleRaw() RawData {
	return RawData{
		Accounts: []RawAccount{
			{Name: "Cash", Currency: "rub"},
			{Name: "Card", Currency: "USD"},
		},
		Categories: []RawCategory{
			{Name: "Salary", Type: domain.CategoryIncome},
			{Name: "Groceries", Type: domain.CategoryExpense},
		},
		Operations: []RawOperation{
			rawOperation("cash", "SALARY", domain.OperationIncome, "120000", "10-01-2024", "January"),
			rawOperation(" Cash ", "groceries", domain.OperationExpense, "4500", "15-01-2024", ""),
			rawOperation("Card", "Salary", domain.OperationIncome, "10.005", "01-01-2024", ""),
		},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(raw *RawData)
		checkResponse func(t *testing.T, err error)
	}{
		{
			name:   "OK",
			mutate: func(raw *RawData) {},
			checkResponse: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "DuplicateAccounts",
			mutate: func(raw *RawData) {
				raw.Accounts = append(raw.Accounts, RawAccount{Name: " CASH", Currency: "EUR"}, RawAccount{Name: "card", Currency: "EUR"})
			},
			checkResponse: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, "duplicate account names", ve.Reason)
				require.Equal(t, []string{"CARD", "CASH"}, ve.Names)
				require.ErrorIs(t, err, errorspkg.ErrValidation)
			},
		},
		{
			name: "DuplicateCategories",
			mutate: func(raw *RawData) {
				raw.Categories = append(raw.Categories, RawCategory{Name: "salary ", Type: domain.CategoryExpense})
			},
			checkResponse: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, "duplicate category names", ve.Reason)
				require.Equal(t, []string{"SALARY"}, ve.Names)
			},
		},
		{
			name: "DanglingReferences",
			mutate: func(raw *RawData) {
				raw.Operations = append(raw.Operations, rawOperation("Bank", "Taxes", domain.OperationExpense, "1", "01-01-2024", ""))
			},
			checkResponse: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, []string{`operation 4: account "Bank"`, `operation 4: category "Taxes"`}, ve.Names)
			},
		},
		{
			name: "FreeFormCurrency",
			mutate: func(raw *RawData) {
				raw.Accounts[1].Currency = "dollars"
			},
			checkResponse: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "MissingCurrency",
			mutate: func(raw *RawData) {
				raw.Accounts[1].Currency = ""
			},
			checkResponse: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, []string{"RawData.Accounts[1].Currency is required"}, ve.Names)
			},
		},
		{
			name: "BlankName",
			mutate: func(raw *RawData) {
				raw.Categories[0].Name = "   "
			},
			checkResponse: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, []string{"category 1: blank name"}, ve.Names)
			},
		},
		{
			name: "AmountRoundsToZero",
			mutate: func(raw *RawData) {
				raw.Operations[0].Amount = decimal.RequireFromString("0.004")
			},
			checkResponse: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, []string{"operation 1: amount 0.004 is not positive"}, ve.Names)
			},
		},
		{
			name: "MissingDateAndType",
			mutate: func(raw *RawData) {
				raw.Operations[2].Date = datepkg.Date{}
				raw.Operations[2].Type = 0
			},
			checkResponse: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errorspkg.ErrValidation)
				require.Contains(t, err.Error(), "RawData.Operations[2].Type must be one of 1 2")
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			raw := sampleRaw()
			tc.mutate(&raw)
			tc.checkResponse(t, Validate(raw))
		})
	}
}

func TestBuild(t *testing.T) {
	got, err := Build(sampleRaw())
	require.NoError(t, err)

	require.Len(t, got.Accounts, 2)
	cash, card := got.Accounts[0], got.Accounts[1]
	require.Equal(t, int64(1), cash.ID())
	require.Equal(t, "RUB", cash.Currency())
	require.Equal(t, "115500.00", cash.Balance().StringFixed(2))
	require.Equal(t, []int64{1, 2}, cash.OperationIDs())
	require.Equal(t, int64(2), card.ID())
	require.Equal(t, "10.01", card.Balance().StringFixed(2))

	require.Equal(t, int64(1), got.Categories[0].ID())
	require.Equal(t, int64(2), got.Categories[1].ID())

	first := got.Operations[0]
	require.Equal(t, int64(1), first.ID())
	require.Equal(t, cash.ID(), first.AccountID())
	require.Equal(t, int64(1), first.CategoryID())
	require.Equal(t, "January", first.Description())

	repo := ledgerrepo.NewRepoMem()
	require.NoError(t, repo.ReplaceAll(got))

	stored, err := repo.GetAccount(cash.ID())
	require.NoError(t, err)
	require.True(t, stored.Balance().Equal(cash.Balance()))
}

func TestBuildRejectsInvalid(t *testing.T) {
	raw := sampleRaw()
	raw.Operations[0].Account = "Nowhere"

	got, err := Build(raw)
	require.ErrorIs(t, err, errorspkg.ErrValidation)
	require.Empty(t, got.Accounts)
}

func TestBuildMerge(t *testing.T) {
	repo := ledgerrepo.NewRepoMem()

	initial, err := Build(sampleRaw())
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(initial))

	// Same content again resolves to existing identifiers only.
	again, err := BuildMerge(sampleRaw(), repo.Snapshot())
	require.NoError(t, err)
	require.Equal(t, initial.Operations[0].ID(), again.Operations[0].ID())

	before := repo.Snapshot()
	require.NoError(t, repo.Merge(again))
	require.Equal(t, before, repo.Snapshot())

	incoming := sampleRaw()
	incoming.Accounts[0].Currency = "EUR"
	incoming.Accounts = append(incoming.Accounts, RawAccount{Name: "Deposit", Currency: "RUB"})
	incoming.Categories = append(incoming.Categories, RawCategory{Name: "Gifts", Type: domain.CategoryUniversal})
	incoming.Operations = append(incoming.Operations,
		rawOperation("Deposit", "Gifts", domain.OperationIncome, "300", "02-02-2024", ""),
		// Duplicate of the first row: a second, distinct operation.
		rawOperation("Cash", "Salary", domain.OperationIncome, "120000", "10-01-2024", "January"),
	)

	merged, err := BuildMerge(incoming, repo.Snapshot())
	require.NoError(t, err)

	require.Equal(t, "RUB", merged.Accounts[0].Currency())
	require.Equal(t, int64(3), merged.Accounts[2].ID())
	require.Equal(t, int64(3), merged.Categories[2].ID())
	require.Equal(t, int64(4), merged.Operations[3].ID())
	require.Equal(t, int64(5), merged.Operations[4].ID())

	require.NoError(t, repo.Merge(merged))

	cash, err := repo.GetAccount(1)
	require.NoError(t, err)
	require.Equal(t, "235500.00", cash.Balance().StringFixed(2))

	deposit, err := repo.GetAccount(3)
	require.NoError(t, err)
	require.Equal(t, "300.00", deposit.Balance().StringFixed(2))

	// Merging the same file again is a no-op.
	before = repo.Snapshot()
	repeat, err := BuildMerge(incoming, repo.Snapshot())
	require.NoError(t, err)
	require.NoError(t, repo.Merge(repeat))
	require.Equal(t, before, repo.Snapshot())
}

func TestCollect(t *testing.T) {
	built, err := Build(sampleRaw())
	require.NoError(t, err)

	repo := ledgerrepo.NewRepoMem()
	require.NoError(t, repo.ReplaceAll(built))

	got := Collect(repo)
	require.Len(t, got.Accounts, 2)
	require.Len(t, got.Categories, 2)
	require.Len(t, got.Operations, 3)
	require.Equal(t, repo.Snapshot(), got)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Reason: "duplicate account names", Names: []string{"A", "B"}}
	require.Equal(t, "validation failed: duplicate account names: A, B", err.Error())
	require.True(t, errors.Is(err, errorspkg.ErrValidation))

	bare := &ValidationError{Reason: "empty"}
	require.Equal(t, "validation failed: empty", bare.Error())
}
