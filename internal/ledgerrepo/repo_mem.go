// Package ledgerrepo manages the in-memory repository layer of the ledger.
//
// RepoMem owns the canonical copy of every account, category and operation and
// keeps names unique, references valid and balances equal to the signed sum of
// each account's operations. Every read returns an independent copy.
//
// RepoMem is not safe for concurrent use; callers serialize access.
package ledgerrepo

import (
	"sort"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// RepoMem facilitates ledger repository layer logic.
type RepoMem struct {
	st *state
}

// NewRepoMem returns an empty ledger repository.
func NewRepoMem() *RepoMem {
	return &RepoMem{st: newState()}
}

// CreateAccount creates the account with zero balance and then returns it.
func (r *RepoMem) CreateAccount(name, currency string) (domain.Account, error) {
	a, err := r.st.insertAccount(r.st.nextAccountID, name, currency)
	if err != nil {
		return domain.Account{}, err
	}

	return a.Clone(), nil
}

// RenameAccount renames the account with the given id.
func (r *RepoMem) RenameAccount(id int64, name string) (domain.Account, error) {
	a, err := r.st.renameAccount(id, name)
	if err != nil {
		return domain.Account{}, err
	}

	return a.Clone(), nil
}

// DeleteAccount deletes the account and every operation it owns.
func (r *RepoMem) DeleteAccount(id int64) error {
	return r.st.deleteAccount(id)
}

// GetAccount returns the account with the given id.
func (r *RepoMem) GetAccount(id int64) (domain.Account, error) {
	a, err := r.st.account(id)
	if err != nil {
		return domain.Account{}, err
	}

	return a.Clone(), nil
}

// ListAccounts returns every account ordered by name.
func (r *RepoMem) ListAccounts() []domain.Account {
	items := make([]domain.Account, 0, len(r.st.accounts))
	for _, a := range r.st.accounts {
		items = append(items, a.Clone())
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name() != items[j].Name() {
			return items[i].Name() < items[j].Name()
		}
		return items[i].ID() < items[j].ID()
	})

	return items
}

// CreateCategory creates the category and then returns it.
func (r *RepoMem) CreateCategory(name string, typ domain.CategoryType) (domain.Category, error) {
	c, err := r.st.insertCategory(r.st.nextCategoryID, name, typ)
	if err != nil {
		return domain.Category{}, err
	}

	return c.Clone(), nil
}

// UpdateCategory renames and retypes the category in place.
//
// Existing operations are not re-checked against the new type.
func (r *RepoMem) UpdateCategory(id int64, name string, typ domain.CategoryType) (domain.Category, error) {
	c, err := r.st.updateCategory(id, name, typ)
	if err != nil {
		return domain.Category{}, err
	}

	return c.Clone(), nil
}

// DeleteCategory deletes the category and removes every operation referencing it.
func (r *RepoMem) DeleteCategory(id int64) error {
	return r.st.deleteCategory(id)
}

// GetCategory returns the category with the given id.
func (r *RepoMem) GetCategory(id int64) (domain.Category, error) {
	c, err := r.st.category(id)
	if err != nil {
		return domain.Category{}, err
	}

	return c.Clone(), nil
}

// ListCategories returns every category ordered by name.
func (r *RepoMem) ListCategories() []domain.Category {
	items := make([]domain.Category, 0, len(r.st.categories))
	for _, c := range r.st.categories {
		items = append(items, c.Clone())
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name() != items[j].Name() {
			return items[i].Name() < items[j].Name()
		}
		return items[i].ID() < items[j].ID()
	})

	return items
}

// AddOperation creates the operation, registers it on its account and then returns it.
func (r *RepoMem) AddOperation(arg domain.OperationParams) (domain.Operation, error) {
	return r.st.insertOperation(r.st.nextOperationID, arg)
}

// RemoveOperation removes the operation and reverses its balance contribution.
func (r *RepoMem) RemoveOperation(id int64) error {
	return r.st.removeOperation(id)
}

// GetOperation returns the operation with the given id.
func (r *RepoMem) GetOperation(id int64) (domain.Operation, error) {
	return r.st.operation(id)
}

// ListOperations returns every operation ordered by date, then description.
func (r *RepoMem) ListOperations() []domain.Operation {
	items := make([]domain.Operation, 0, len(r.st.operations))
	for _, op := range r.st.operations {
		items = append(items, op)
	}

	sortByDateDescription(items)

	return items
}

// ListOperationsForAccount returns the operations of the account ordered by date.
//
// An unknown account has no operations.
func (r *RepoMem) ListOperationsForAccount(accountID int64) []domain.Operation {
	return r.st.operationsForAccount(accountID)
}

// ResetAccount clears the account and re-registers its operations in date order,
// recomputing the balance from scratch.
func (r *RepoMem) ResetAccount(accountID int64) (domain.Account, error) {
	a, err := r.st.resetAccount(accountID)
	if err != nil {
		return domain.Account{}, err
	}

	return a.Clone(), nil
}
