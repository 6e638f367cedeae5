package ledgerrepo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

func requireAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Equal(t, want, got.StringFixed(2))
}

type fixture struct {
	repo      *RepoMem
	cash      domain.Account
	salary    domain.Category
	groceries domain.Category
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	repo := NewRepoMem()

	cash, err := repo.CreateAccount("Cash", "rub")
	require.NoError(t, err)

	salary, err := repo.CreateCategory("Salary", domain.CategoryIncome)
	require.NoError(t, err)

	groceries, err := repo.CreateCategory("Groceries", domain.CategoryExpense)
	require.NoError(t, err)

	return fixture{repo: repo, cash: cash, salary: salary, groceries: groceries}
}

func (f fixture) add(t *testing.T, accountID, categoryID int64, typ domain.OperationType, amount, date, description string) domain.Operation {
	t.Helper()

	op, err := f.repo.AddOperation(domain.OperationParams{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Date:        datepkg.MustParse(date),
		Description: description,
	})
	require.NoError(t, err)

	return op
}

// requireBalanceInvariant checks every account against the signed sum of its operations.
func requireBalanceInvariant(t *testing.T, repo *RepoMem) {
	t.Helper()

	for _, a := range repo.ListAccounts() {
		sum := decimal.Zero
		ids := map[int64]bool{}
		for _, op := range repo.ListOperationsForAccount(a.ID()) {
			sum = sum.Add(op.Signed())
			ids[op.ID()] = true
		}

		require.True(t, sum.Equal(a.Balance()), "account %q balance %s, operations sum %s", a.Name(), a.Balance(), sum)
		require.Len(t, a.OperationIDs(), len(ids))
		for _, id := range a.OperationIDs() {
			require.True(t, ids[id], "account %q lists unknown operation %d", a.Name(), id)
		}
	}
}

func TestCreateAccount(t *testing.T) {
	repo := NewRepoMem()

	first, err := repo.CreateAccount(" Cash ", "rub")
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID())
	require.Equal(t, "Cash", first.Name())
	require.Equal(t, "RUB", first.Currency())
	require.True(t, first.Balance().IsZero())
	require.Empty(t, first.OperationIDs())

	testCases := []struct {
		name     string
		accName  string
		currency string
		wantKind error
		wantErr  error
	}{
		{name: "EmptyName", accName: "  ", currency: "RUB", wantKind: errorspkg.ErrValidation, wantErr: domain.ErrEmptyAccountName},
		{name: "EmptyCurrency", accName: "Card", currency: "", wantKind: errorspkg.ErrValidation, wantErr: domain.ErrEmptyCurrency},
		{name: "SameName", accName: "Cash", currency: "RUB", wantKind: errorspkg.ErrConflict, wantErr: domain.ErrAccountNameTaken},
		{name: "CaseAndSpaces", accName: "  cASH\t", currency: "USD", wantKind: errorspkg.ErrConflict, wantErr: domain.ErrAccountNameTaken},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			account, err := repo.CreateAccount(tc.accName, tc.currency)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, tc.wantKind)
			require.Empty(t, account)
		})
	}

	require.Len(t, repo.ListAccounts(), 1)

	second, err := repo.CreateAccount("Card", "USD")
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID())
}

func TestRenameAccount(t *testing.T) {
	f := newFixture(t)
	card, err := f.repo.CreateAccount("Card", "RUB")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		id            int64
		newName       string
		checkResponse func(t *testing.T, got domain.Account, err error)
	}{
		{
			name:    "OK",
			id:      f.cash.ID(),
			newName: " Wallet ",
			checkResponse: func(t *testing.T, got domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, "Wallet", got.Name())
			},
		},
		{
			name:    "OwnNameDifferentCase",
			id:      card.ID(),
			newName: "CARD",
			checkResponse: func(t *testing.T, got domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, "CARD", got.Name())
			},
		},
		{
			name:    "NotFound",
			id:      42,
			newName: "Other",
			checkResponse: func(t *testing.T, got domain.Account, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
				require.ErrorIs(t, err, errorspkg.ErrNotFound)
			},
		},
		{
			name:    "Empty",
			id:      card.ID(),
			newName: " ",
			checkResponse: func(t *testing.T, got domain.Account, err error) {
				require.ErrorIs(t, err, errorspkg.ErrValidation)
			},
		},
		{
			name:    "Taken",
			id:      card.ID(),
			newName: "wallet",
			checkResponse: func(t *testing.T, got domain.Account, err error) {
				require.ErrorIs(t, err, errorspkg.ErrConflict)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := f.repo.RenameAccount(tc.id, tc.newName)
			tc.checkResponse(t, got, err)
		})
	}

	stored, err := f.repo.GetAccount(card.ID())
	require.NoError(t, err)
	require.Equal(t, "CARD", stored.Name())
}

func TestDeleteAccountCascades(t *testing.T) {
	f := newFixture(t)
	card, err := f.repo.CreateAccount("Card", "RUB")
	require.NoError(t, err)

	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "100", "10-01-2024", "")
	f.add(t, f.cash.ID(), f.groceries.ID(), domain.OperationExpense, "30", "11-01-2024", "")
	kept := f.add(t, card.ID(), f.salary.ID(), domain.OperationIncome, "5", "11-01-2024", "")

	require.NoError(t, f.repo.DeleteAccount(f.cash.ID()))

	require.Empty(t, f.repo.ListOperationsForAccount(f.cash.ID()))
	require.Equal(t, []domain.Operation{kept}, f.repo.ListOperations())

	_, err = f.repo.GetAccount(f.cash.ID())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = f.repo.DeleteAccount(f.cash.ID())
	require.ErrorIs(t, err, errorspkg.ErrNotFound)

	requireBalanceInvariant(t, f.repo)
}

func TestCategories(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.CreateCategory(" groceries ", domain.CategoryUniversal)
	require.ErrorIs(t, err, domain.ErrCategoryNameTaken)
	require.ErrorIs(t, err, errorspkg.ErrConflict)

	_, err = f.repo.CreateCategory("", domain.CategoryIncome)
	require.ErrorIs(t, err, errorspkg.ErrValidation)

	_, err = f.repo.CreateCategory("Gifts", domain.CategoryType(9))
	require.ErrorIs(t, err, domain.ErrInvalidCategoryType)

	updated, err := f.repo.UpdateCategory(f.groceries.ID(), "Food", domain.CategoryUniversal)
	require.NoError(t, err)
	require.Equal(t, "Food", updated.Name())
	require.Equal(t, domain.CategoryUniversal, updated.Type())

	_, err = f.repo.UpdateCategory(f.groceries.ID(), "SALARY", domain.CategoryExpense)
	require.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	_, err = f.repo.UpdateCategory(99, "Other", domain.CategoryExpense)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	stored, err := f.repo.GetCategory(f.groceries.ID())
	require.NoError(t, err)
	require.Equal(t, updated, stored)

	names := []string{}
	for _, c := range f.repo.ListCategories() {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{"Food", "Salary"}, names)
}

func TestDeleteCategoryCascades(t *testing.T) {
	f := newFixture(t)

	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1000", "10-01-2024", "")
	f.add(t, f.cash.ID(), f.groceries.ID(), domain.OperationExpense, "300", "11-01-2024", "")
	f.add(t, f.cash.ID(), f.groceries.ID(), domain.OperationExpense, "200", "12-01-2024", "")

	require.NoError(t, f.repo.DeleteCategory(f.groceries.ID()))

	for _, op := range f.repo.ListOperations() {
		require.NotEqual(t, f.groceries.ID(), op.CategoryID())
	}

	cash, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	requireAmount(t, "1000.00", cash.Balance())
	require.Len(t, cash.OperationIDs(), 1)

	require.ErrorIs(t, f.repo.DeleteCategory(f.groceries.ID()), domain.ErrCategoryNotFound)
	requireBalanceInvariant(t, f.repo)
}

func TestAddOperationScenario(t *testing.T) {
	f := newFixture(t)

	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "120000.00", "10-01-2024", "")
	f.add(t, f.cash.ID(), f.groceries.ID(), domain.OperationExpense, "4500.00", "15-01-2024", "")

	cash, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	requireAmount(t, "115500.00", cash.Balance())
	require.Equal(t, []int64{1, 2}, cash.OperationIDs())
}

func TestAddOperationErrors(t *testing.T) {
	f := newFixture(t)
	date := datepkg.MustParse("10-01-2024")

	testCases := []struct {
		name     string
		arg      domain.OperationParams
		wantErr  error
		wantKind error
	}{
		{
			name: "AccountNotFound",
			arg: domain.OperationParams{AccountID: 99, CategoryID: f.salary.ID(), Type: domain.OperationIncome,
				Amount: decimal.NewFromInt(1), Date: date},
			wantErr:  domain.ErrAccountNotFound,
			wantKind: errorspkg.ErrNotFound,
		},
		{
			name: "CategoryNotFound",
			arg: domain.OperationParams{AccountID: f.cash.ID(), CategoryID: 99, Type: domain.OperationIncome,
				Amount: decimal.NewFromInt(1), Date: date},
			wantErr:  domain.ErrCategoryNotFound,
			wantKind: errorspkg.ErrNotFound,
		},
		{
			name: "ExpenseOnIncomeCategory",
			arg: domain.OperationParams{AccountID: f.cash.ID(), CategoryID: f.salary.ID(), Type: domain.OperationExpense,
				Amount: decimal.NewFromInt(1), Date: date},
			wantErr:  domain.ErrCategoryTypeMismatch,
			wantKind: errorspkg.ErrConflict,
		},
		{
			name: "IncomeOnExpenseCategory",
			arg: domain.OperationParams{AccountID: f.cash.ID(), CategoryID: f.groceries.ID(), Type: domain.OperationIncome,
				Amount: decimal.NewFromInt(1), Date: date},
			wantErr:  domain.ErrCategoryTypeMismatch,
			wantKind: errorspkg.ErrConflict,
		},
		{
			name: "ZeroAmount",
			arg: domain.OperationParams{AccountID: f.cash.ID(), CategoryID: f.salary.ID(), Type: domain.OperationIncome,
				Amount: decimal.Zero, Date: date},
			wantErr:  domain.ErrNonPositiveAmount,
			wantKind: errorspkg.ErrValidation,
		},
		{
			name: "NegativeAmount",
			arg: domain.OperationParams{AccountID: f.cash.ID(), CategoryID: f.salary.ID(), Type: domain.OperationIncome,
				Amount: decimal.NewFromInt(-10), Date: date},
			wantErr:  domain.ErrNonPositiveAmount,
			wantKind: errorspkg.ErrValidation,
		},
		{
			name: "InvalidType",
			arg: domain.OperationParams{AccountID: f.cash.ID(), CategoryID: f.salary.ID(),
				Amount: decimal.NewFromInt(10), Date: date},
			wantErr:  domain.ErrInvalidOperationType,
			wantKind: errorspkg.ErrValidation,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			op, err := f.repo.AddOperation(tc.arg)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, tc.wantKind)
			require.Empty(t, op)
		})
	}

	cash, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	require.True(t, cash.Balance().IsZero())
	require.Empty(t, cash.OperationIDs())
	require.Empty(t, f.repo.ListOperations())

	// Failed attempts do not consume identifiers.
	op := f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1", "10-01-2024", "")
	require.Equal(t, int64(1), op.ID())
}

func TestUniversalCategory(t *testing.T) {
	f := newFixture(t)
	misc, err := f.repo.CreateCategory("Misc", domain.CategoryUniversal)
	require.NoError(t, err)

	f.add(t, f.cash.ID(), misc.ID(), domain.OperationIncome, "10", "10-01-2024", "")
	f.add(t, f.cash.ID(), misc.ID(), domain.OperationExpense, "4", "11-01-2024", "")

	cash, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	requireAmount(t, "6.00", cash.Balance())
}

func TestRemoveOperation(t *testing.T) {
	f := newFixture(t)

	income := f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "100", "10-01-2024", "")
	expense := f.add(t, f.cash.ID(), f.groceries.ID(), domain.OperationExpense, "40", "11-01-2024", "")

	require.NoError(t, f.repo.RemoveOperation(expense.ID()))

	cash, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	requireAmount(t, "100.00", cash.Balance())
	require.Equal(t, []int64{income.ID()}, cash.OperationIDs())

	err = f.repo.RemoveOperation(expense.ID())
	require.ErrorIs(t, err, domain.ErrOperationNotFound)

	_, err = f.repo.GetOperation(expense.ID())
	require.ErrorIs(t, err, errorspkg.ErrNotFound)
}

func TestResetAccountIsIdempotent(t *testing.T) {
	f := newFixture(t)

	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "100.10", "20-01-2024", "")
	f.add(t, f.cash.ID(), f.groceries.ID(), domain.OperationExpense, "0.25", "05-01-2024", "")
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "3", "10-01-2024", "")

	first, err := f.repo.ResetAccount(f.cash.ID())
	require.NoError(t, err)
	requireAmount(t, "102.85", first.Balance())
	require.Equal(t, []int64{2, 3, 1}, first.OperationIDs())

	second, err := f.repo.ResetAccount(f.cash.ID())
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = f.repo.ResetAccount(42)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestBalanceInvariantRandomSequence(t *testing.T) {
	f := newFixture(t)
	card, err := f.repo.CreateAccount("Card", "USD")
	require.NoError(t, err)

	accounts := []int64{f.cash.ID(), card.ID()}
	var live []int64

	for i := 0; i < 200; i++ {
		switch randompkg.Intn(4) {
		case 0, 1:
			typ, category := domain.OperationIncome, f.salary.ID()
			if randompkg.Intn(2) == 0 {
				typ, category = domain.OperationExpense, f.groceries.ID()
			}

			op, err := f.repo.AddOperation(domain.OperationParams{
				AccountID:  accounts[randompkg.Intn(len(accounts))],
				CategoryID: category,
				Type:       typ,
				Amount:     randompkg.MoneyAmountBetween(1, 1000),
				Date:       randompkg.Date(2024),
			})
			require.NoError(t, err)
			live = append(live, op.ID())
		case 2:
			if len(live) == 0 {
				continue
			}
			k := randompkg.Intn(len(live))
			require.NoError(t, f.repo.RemoveOperation(live[k]))
			live = append(live[:k], live[k+1:]...)
		case 3:
			_, err := f.repo.ResetAccount(accounts[randompkg.Intn(len(accounts))])
			require.NoError(t, err)
		}

		requireBalanceInvariant(t, f.repo)
	}
}

func TestListOrdering(t *testing.T) {
	repo := NewRepoMem()

	for _, name := range []string{"b", "C", "a"} {
		_, err := repo.CreateAccount(name, "RUB")
		require.NoError(t, err)
	}

	names := []string{}
	for _, a := range repo.ListAccounts() {
		names = append(names, a.Name())
	}
	// Ordinal ordering puts upper case first.
	require.Equal(t, []string{"C", "a", "b"}, names)

	f := newFixture(t)
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1", "12-01-2024", "z")
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1", "10-01-2024", "b")
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1", "12-01-2024", "a")
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "1", "10-01-2024", "a")

	var all, forAccount []int64
	for _, op := range f.repo.ListOperations() {
		all = append(all, op.ID())
	}
	for _, op := range f.repo.ListOperationsForAccount(f.cash.ID()) {
		forAccount = append(forAccount, op.ID())
	}

	require.Equal(t, []int64{4, 2, 3, 1}, all)
	require.Equal(t, []int64{2, 4, 1, 3}, forAccount)
	require.Empty(t, f.repo.ListOperationsForAccount(99))
}

func TestReadsReturnCopies(t *testing.T) {
	f := newFixture(t)
	f.add(t, f.cash.ID(), f.salary.ID(), domain.OperationIncome, "10", "10-01-2024", "")

	got, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	require.NoError(t, got.Rename("Hacked"))
	require.NoError(t, got.RegisterOperation(f.repo.ListOperations()[0]))

	listed := f.repo.ListAccounts()
	require.NoError(t, listed[0].Rename("Hacked too"))

	cat, err := f.repo.GetCategory(f.salary.ID())
	require.NoError(t, err)
	require.NoError(t, cat.ChangeType(domain.CategoryExpense))

	stored, err := f.repo.GetAccount(f.cash.ID())
	require.NoError(t, err)
	require.Equal(t, "Cash", stored.Name())
	requireAmount(t, "10.00", stored.Balance())
	require.Len(t, stored.OperationIDs(), 1)

	storedCat, err := f.repo.GetCategory(f.salary.ID())
	require.NoError(t, err)
	require.Equal(t, domain.CategoryIncome, storedCat.Type())
}
