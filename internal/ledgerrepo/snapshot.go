package ledgerrepo

import (
	"fmt"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Snapshot returns an independent copy of every entity in listing order.
func (r *RepoMem) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Accounts:   r.ListAccounts(),
		Categories: r.ListCategories(),
		Operations: r.ListOperations(),
	}
}

// Walk lets v visit a copy of every entity.
func (r *RepoMem) Walk(v domain.Visitor) {
	r.Snapshot().Walk(v)
}

// ReplaceAll discards every entity and reloads the ledger from snapshot.
//
// The snapshot is trusted to satisfy name uniqueness and category compatibility.
// Account balances and operation lists are rebuilt by replaying operations in
// (date, id) order. On error the repository is left untouched.
func (r *RepoMem) ReplaceAll(snapshot domain.Snapshot) error {
	next := newState()

	if err := checkIDs(snapshot); err != nil {
		return err
	}

	for _, in := range snapshot.Accounts {
		if _, ok := next.accounts[in.ID()]; ok {
			return fmt.Errorf("account %d: %w", in.ID(), domain.ErrDuplicateID)
		}

		a, err := domain.NewAccount(in.ID(), in.Name(), in.Currency())
		if err != nil {
			return fmt.Errorf("account %d: %w", in.ID(), err)
		}

		next.accounts[a.ID()] = a
		if a.ID() >= next.nextAccountID {
			next.nextAccountID = a.ID() + 1
		}
	}

	for _, in := range snapshot.Categories {
		if _, ok := next.categories[in.ID()]; ok {
			return fmt.Errorf("category %d: %w", in.ID(), domain.ErrDuplicateID)
		}

		c, err := domain.NewCategory(in.ID(), in.Name(), in.Type())
		if err != nil {
			return fmt.Errorf("category %d: %w", in.ID(), err)
		}

		next.categories[c.ID()] = c
		if c.ID() >= next.nextCategoryID {
			next.nextCategoryID = c.ID() + 1
		}
	}

	ops := append([]domain.Operation(nil), snapshot.Operations...)
	sortByDate(ops)

	for _, in := range ops {
		if _, ok := next.operations[in.ID()]; ok {
			return fmt.Errorf("operation %d: %w", in.ID(), domain.ErrDuplicateID)
		}

		a, err := next.account(in.AccountID())
		if err != nil {
			return fmt.Errorf("operation %d: %w", in.ID(), err)
		}

		if _, err := next.category(in.CategoryID()); err != nil {
			return fmt.Errorf("operation %d: %w", in.ID(), err)
		}

		op, err := domain.NewOperation(in.ID(), in.Params())
		if err != nil {
			return fmt.Errorf("operation %d: %w", in.ID(), err)
		}

		if err := a.RegisterOperation(op); err != nil {
			return err
		}

		next.operations[op.ID()] = op
		if op.ID() >= next.nextOperationID {
			next.nextOperationID = op.ID() + 1
		}
	}

	r.st = next

	return nil
}

// Merge reconciles snapshot into the current state by identifier.
//
// Known accounts are renamed and known categories renamed and retyped; unknown
// ones are inserted under their own identifiers. Operations whose identifier is
// already present are skipped, so merging the same snapshot twice is a no-op.
// New operations are registered in (date, id) order with the same checks as
// AddOperation. On error the repository is left untouched.
//
// Accounts and categories are applied one at a time, so a snapshot that swaps
// the names of two existing entries fails with a name conflict.
func (r *RepoMem) Merge(snapshot domain.Snapshot) error {
	if err := checkIDs(snapshot); err != nil {
		return err
	}

	next := r.st.clone()

	for _, in := range snapshot.Accounts {
		var err error
		if _, ok := next.accounts[in.ID()]; ok {
			_, err = next.renameAccount(in.ID(), in.Name())
		} else {
			_, err = next.insertAccount(in.ID(), in.Name(), in.Currency())
		}

		if err != nil {
			return fmt.Errorf("merge account %d: %w", in.ID(), err)
		}
	}

	for _, in := range snapshot.Categories {
		var err error
		if _, ok := next.categories[in.ID()]; ok {
			_, err = next.updateCategory(in.ID(), in.Name(), in.Type())
		} else {
			_, err = next.insertCategory(in.ID(), in.Name(), in.Type())
		}

		if err != nil {
			return fmt.Errorf("merge category %d: %w", in.ID(), err)
		}
	}

	ops := append([]domain.Operation(nil), snapshot.Operations...)
	sortByDate(ops)

	for _, in := range ops {
		if _, ok := next.operations[in.ID()]; ok {
			continue
		}

		if _, err := next.insertOperation(in.ID(), in.Params()); err != nil {
			return fmt.Errorf("merge operation %d: %w", in.ID(), err)
		}
	}

	r.st = next

	return nil
}

func checkIDs(snapshot domain.Snapshot) error {
	for _, a := range snapshot.Accounts {
		if a.ID() <= 0 {
			return fmt.Errorf("account %q: %w", a.Name(), domain.ErrInvalidID)
		}
	}

	for _, c := range snapshot.Categories {
		if c.ID() <= 0 {
			return fmt.Errorf("category %q: %w", c.Name(), domain.ErrInvalidID)
		}
	}

	for _, op := range snapshot.Operations {
		if op.ID() <= 0 {
			return fmt.Errorf("operation on %s: %w", op.Date(), domain.ErrInvalidID)
		}
	}

	return nil
}
