package ledgerrepo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

func newAccount(t *testing.T, id int64, name, currency string) domain.Account {
	t.Helper()

	a, err := domain.NewAccount(id, name, currency)
	require.NoError(t, err)

	return *a
}

func newCategory(t *testing.T, id int64, name string, typ domain.CategoryType) domain.Category {
	t.Helper()

	c, err := domain.NewCategory(id, name, typ)
	require.NoError(t, err)

	return *c
}

func newOperation(t *testing.T, id, accountID, categoryID int64, typ domain.OperationType, amount, date string) domain.Operation {
	t.Helper()

	op, err := domain.NewOperation(id, domain.OperationParams{
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       typ,
		Amount:     decimal.RequireFromString(amount),
		Date:       datepkg.MustParse(date),
	})
	require.NoError(t, err)

	return op
}

func sampleSnapshot(t *testing.T) domain.Snapshot {
	t.Helper()

	return domain.Snapshot{
		Accounts: []domain.Account{
			newAccount(t, 3, "Cash", "RUB"),
			newAccount(t, 7, "Card", "USD"),
		},
		Categories: []domain.Category{
			newCategory(t, 1, "Salary", domain.CategoryIncome),
			newCategory(t, 4, "Groceries", domain.CategoryExpense),
		},
		Operations: []domain.Operation{
			newOperation(t, 10, 3, 4, domain.OperationExpense, "4500", "15-01-2024"),
			newOperation(t, 5, 3, 1, domain.OperationIncome, "120000", "10-01-2024"),
			newOperation(t, 6, 7, 1, domain.OperationIncome, "10.5", "10-01-2024"),
		},
	}
}

func TestReplaceAll(t *testing.T) {
	repo := NewRepoMem()
	_, err := repo.CreateAccount("Old", "RUB")
	require.NoError(t, err)

	snapshot := sampleSnapshot(t)
	// Balances and operation lists carried by the snapshot are ignored.
	require.NoError(t, snapshot.Accounts[0].RegisterOperation(newOperation(t, 99, 3, 1, domain.OperationIncome, "1", "01-01-2024")))

	require.NoError(t, repo.ReplaceAll(snapshot))

	_, err = repo.GetAccount(1)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	cash, err := repo.GetAccount(3)
	require.NoError(t, err)
	requireAmount(t, "115500.00", cash.Balance())
	require.Equal(t, []int64{5, 10}, cash.OperationIDs())

	card, err := repo.GetAccount(7)
	require.NoError(t, err)
	requireAmount(t, "10.50", card.Balance())

	requireBalanceInvariant(t, repo)

	// Counters continue above the largest imported identifiers.
	account, err := repo.CreateAccount("Deposit", "EUR")
	require.NoError(t, err)
	require.Equal(t, int64(8), account.ID())

	category, err := repo.CreateCategory("Gifts", domain.CategoryUniversal)
	require.NoError(t, err)
	require.Equal(t, int64(5), category.ID())

	op, err := repo.AddOperation(domain.OperationParams{
		AccountID:  account.ID(),
		CategoryID: category.ID(),
		Type:       domain.OperationIncome,
		Amount:     decimal.NewFromInt(1),
		Date:       datepkg.MustParse("01-02-2024"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), op.ID())
}

func TestReplaceAllEmpty(t *testing.T) {
	f := newFixture(t)
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1", "01-01-2024", "")

	require.NoError(t, f.repo.ReplaceAll(domain.Snapshot{}))

	require.Empty(t, f.repo.ListAccounts())
	require.Empty(t, f.repo.ListCategories())
	require.Empty(t, f.repo.ListOperations())

	account, err := f.repo.CreateAccount("Cash", "RUB")
	require.NoError(t, err)
	require.Equal(t, int64(1), account.ID())
}

func TestReplaceAllErrors(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(s *domain.Snapshot)
		wantErr  error
		wantKind error
	}{
		{
			name: "DanglingAccount",
			mutate: func(s *domain.Snapshot) {
				s.Accounts = s.Accounts[:1]
			},
			wantErr:  domain.ErrAccountNotFound,
			wantKind: errorspkg.ErrNotFound,
		},
		{
			name: "DanglingCategory",
			mutate: func(s *domain.Snapshot) {
				s.Categories = s.Categories[1:]
			},
			wantErr:  domain.ErrCategoryNotFound,
			wantKind: errorspkg.ErrNotFound,
		},
		{
			name: "DuplicateAccountID",
			mutate: func(s *domain.Snapshot) {
				s.Accounts = append(s.Accounts, s.Accounts[0])
			},
			wantErr:  domain.ErrDuplicateID,
			wantKind: errorspkg.ErrConflict,
		},
		{
			name: "DuplicateOperationID",
			mutate: func(s *domain.Snapshot) {
				s.Operations = append(s.Operations, s.Operations[0])
			},
			wantErr:  domain.ErrDuplicateID,
			wantKind: errorspkg.ErrConflict,
		},
		{
			name: "ZeroID",
			mutate: func(s *domain.Snapshot) {
				s.Categories = append(s.Categories, domain.Category{})
			},
			wantErr:  domain.ErrInvalidID,
			wantKind: errorspkg.ErrValidation,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "100", "01-01-2024", "")
			before := f.repo.Snapshot()

			snapshot := sampleSnapshot(t)
			tc.mutate(&snapshot)

			err := f.repo.ReplaceAll(snapshot)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, tc.wantKind)
			require.Equal(t, before, f.repo.Snapshot())
		})
	}
}

func TestMerge(t *testing.T) {
	repo := NewRepoMem()
	require.NoError(t, repo.ReplaceAll(sampleSnapshot(t)))

	incoming := domain.Snapshot{
		Accounts: []domain.Account{
			newAccount(t, 3, "Wallet", "EUR"),
			newAccount(t, 8, "Deposit", "RUB"),
		},
		Categories: []domain.Category{
			newCategory(t, 4, "Food", domain.CategoryUniversal),
		},
		Operations: []domain.Operation{
			// Already present: skipped even though the content differs.
			newOperation(t, 5, 3, 1, domain.OperationIncome, "1", "10-01-2024"),
			newOperation(t, 12, 8, 4, domain.OperationIncome, "50", "20-01-2024"),
			newOperation(t, 11, 3, 4, domain.OperationIncome, "500", "16-01-2024"),
		},
	}

	require.NoError(t, repo.Merge(incoming))

	wallet, err := repo.GetAccount(3)
	require.NoError(t, err)
	require.Equal(t, "Wallet", wallet.Name())
	require.Equal(t, "RUB", wallet.Currency())
	requireAmount(t, "116000.00", wallet.Balance())

	deposit, err := repo.GetAccount(8)
	require.NoError(t, err)
	requireAmount(t, "50.00", deposit.Balance())

	food, err := repo.GetCategory(4)
	require.NoError(t, err)
	require.Equal(t, "Food", food.Name())
	require.Equal(t, domain.CategoryUniversal, food.Type())

	requireBalanceInvariant(t, repo)
	require.Len(t, repo.ListOperations(), 5)

	before := repo.Snapshot()
	require.NoError(t, repo.Merge(incoming))
	require.Equal(t, before, repo.Snapshot())

	op, err := repo.AddOperation(domain.OperationParams{
		AccountID:  8,
		CategoryID: 4,
		Type:       domain.OperationExpense,
		Amount:     decimal.NewFromInt(1),
		Date:       datepkg.MustParse("21-01-2024"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(13), op.ID())
}

func TestMergeErrors(t *testing.T) {
	testCases := []struct {
		name     string
		incoming func(t *testing.T) domain.Snapshot
		wantErr  error
	}{
		{
			name: "AccountNameTaken",
			incoming: func(t *testing.T) domain.Snapshot {
				return domain.Snapshot{Accounts: []domain.Account{newAccount(t, 20, " card ", "USD")}}
			},
			wantErr: domain.ErrAccountNameTaken,
		},
		{
			name: "SwappedAccountNames",
			incoming: func(t *testing.T) domain.Snapshot {
				return domain.Snapshot{Accounts: []domain.Account{
					newAccount(t, 3, "Card", "RUB"),
					newAccount(t, 7, "Cash", "USD"),
				}}
			},
			wantErr: domain.ErrAccountNameTaken,
		},
		{
			name: "CategoryTypeMismatch",
			incoming: func(t *testing.T) domain.Snapshot {
				return domain.Snapshot{
					Accounts:   []domain.Account{newAccount(t, 20, "Deposit", "RUB")},
					Operations: []domain.Operation{newOperation(t, 30, 20, 1, domain.OperationExpense, "5", "01-02-2024")},
				}
			},
			wantErr: domain.ErrCategoryTypeMismatch,
		},
		{
			name: "DanglingCategory",
			incoming: func(t *testing.T) domain.Snapshot {
				return domain.Snapshot{
					Operations: []domain.Operation{newOperation(t, 30, 3, 77, domain.OperationIncome, "5", "01-02-2024")},
				}
			},
			wantErr: domain.ErrCategoryNotFound,
		},
		{
			name: "NegativeID",
			incoming: func(t *testing.T) domain.Snapshot {
				return domain.Snapshot{Accounts: []domain.Account{newAccount(t, -1, "Deposit", "RUB")}}
			},
			wantErr: domain.ErrInvalidID,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			repo := NewRepoMem()
			require.NoError(t, repo.ReplaceAll(sampleSnapshot(t)))
			before := repo.Snapshot()

			err := repo.Merge(tc.incoming(t))
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, before, repo.Snapshot())
		})
	}
}

func TestWalkVisitsCopies(t *testing.T) {
	repo := NewRepoMem()
	require.NoError(t, repo.ReplaceAll(sampleSnapshot(t)))

	v := &countingVisitor{}
	repo.Walk(v)

	require.Equal(t, 2, v.accounts)
	require.Equal(t, 2, v.categories)
	require.Equal(t, 3, v.operations)
}

type countingVisitor struct {
	accounts, categories, operations int
}

func (v *countingVisitor) VisitAccount(a domain.Account) {
	v.accounts++
	_ = a.Rename("changed")
}

func (v *countingVisitor) VisitCategory(domain.Category) { v.categories++ }

func (v *countingVisitor) VisitOperation(domain.Operation) { v.operations++ }
