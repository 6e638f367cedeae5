package ledgerrepo

import (
	"fmt"
	"sort"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// state holds every entity plus the identifier counters.
//
// Bulk operations work on a copy of the state and swap it in once complete.
type state struct {
	accounts   map[int64]*domain.Account
	categories map[int64]*domain.Category
	operations map[int64]domain.Operation

	nextAccountID   int64
	nextCategoryID  int64
	nextOperationID int64
}

func newState() *state {
	return &state{
		accounts:        make(map[int64]*domain.Account),
		categories:      make(map[int64]*domain.Category),
		operations:      make(map[int64]domain.Operation),
		nextAccountID:   1,
		nextCategoryID:  1,
		nextOperationID: 1,
	}
}

func (s *state) clone() *state {
	c := &state{
		accounts:        make(map[int64]*domain.Account, len(s.accounts)),
		categories:      make(map[int64]*domain.Category, len(s.categories)),
		operations:      make(map[int64]domain.Operation, len(s.operations)),
		nextAccountID:   s.nextAccountID,
		nextCategoryID:  s.nextCategoryID,
		nextOperationID: s.nextOperationID,
	}

	for id, a := range s.accounts {
		a := a.Clone()
		c.accounts[id] = &a
	}

	for id, cat := range s.categories {
		cat := cat.Clone()
		c.categories[id] = &cat
	}

	for id, op := range s.operations {
		c.operations[id] = op
	}

	return c
}

func (s *state) account(id int64) (*domain.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
	}
	return a, nil
}

func (s *state) category(id int64) (*domain.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrCategoryNotFound)
	}
	return c, nil
}

func (s *state) operation(id int64) (domain.Operation, error) {
	op, ok := s.operations[id]
	if !ok {
		return op, fmt.Errorf("operation %d: %w", id, domain.ErrOperationNotFound)
	}
	return op, nil
}

// ensureUniqueAccountName fails if another account, other than except, has the same normalized name.
func (s *state) ensureUniqueAccountName(name string, except int64) error {
	normalized := domain.NormalizeName(name)
	for id, a := range s.accounts {
		if id != except && domain.NormalizeName(a.Name()) == normalized {
			return fmt.Errorf("%q: %w", name, domain.ErrAccountNameTaken)
		}
	}
	return nil
}

func (s *state) ensureUniqueCategoryName(name string, except int64) error {
	normalized := domain.NormalizeName(name)
	for id, c := range s.categories {
		if id != except && domain.NormalizeName(c.Name()) == normalized {
			return fmt.Errorf("%q: %w", name, domain.ErrCategoryNameTaken)
		}
	}
	return nil
}

// insertAccount validates and stores a new account under id.
func (s *state) insertAccount(id int64, name, currency string) (*domain.Account, error) {
	a, err := domain.NewAccount(id, name, currency)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueAccountName(a.Name(), 0); err != nil {
		return nil, err
	}

	s.accounts[id] = a
	if id >= s.nextAccountID {
		s.nextAccountID = id + 1
	}

	return a, nil
}

func (s *state) renameAccount(id int64, name string) (*domain.Account, error) {
	a, err := s.account(id)
	if err != nil {
		return nil, err
	}

	renamed := a.Clone()
	if err := renamed.Rename(name); err != nil {
		return nil, err
	}

	if err := s.ensureUniqueAccountName(renamed.Name(), id); err != nil {
		return nil, err
	}

	// Rename cannot fail: the name was validated above.
	_ = a.Rename(name)

	return a, nil
}

func (s *state) insertCategory(id int64, name string, typ domain.CategoryType) (*domain.Category, error) {
	c, err := domain.NewCategory(id, name, typ)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueCategoryName(c.Name(), 0); err != nil {
		return nil, err
	}

	s.categories[id] = c
	if id >= s.nextCategoryID {
		s.nextCategoryID = id + 1
	}

	return c, nil
}

func (s *state) updateCategory(id int64, name string, typ domain.CategoryType) (*domain.Category, error) {
	c, err := s.category(id)
	if err != nil {
		return nil, err
	}

	updated, err := domain.NewCategory(id, name, typ)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueCategoryName(updated.Name(), id); err != nil {
		return nil, err
	}

	*c = *updated

	return c, nil
}

// insertOperation runs every check before touching the state.
func (s *state) insertOperation(id int64, arg domain.OperationParams) (domain.Operation, error) {
	a, err := s.account(arg.AccountID)
	if err != nil {
		return domain.Operation{}, err
	}

	c, err := s.category(arg.CategoryID)
	if err != nil {
		return domain.Operation{}, err
	}

	if !arg.Type.Valid() {
		return domain.Operation{}, domain.ErrInvalidOperationType
	}

	if !c.Allows(arg.Type) {
		return domain.Operation{}, fmt.Errorf("category %q cannot be used for %s operations: %w",
			c.Name(), arg.Type, domain.ErrCategoryTypeMismatch)
	}

	op, err := domain.NewOperation(id, arg)
	if err != nil {
		return domain.Operation{}, err
	}

	if err := a.RegisterOperation(op); err != nil {
		return domain.Operation{}, err
	}

	s.operations[id] = op
	if id >= s.nextOperationID {
		s.nextOperationID = id + 1
	}

	return op, nil
}

func (s *state) removeOperation(id int64) error {
	op, err := s.operation(id)
	if err != nil {
		return err
	}

	if a, ok := s.accounts[op.AccountID()]; ok {
		if err := a.RemoveOperation(op); err != nil {
			return fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
		}
	}

	delete(s.operations, id)

	return nil
}

func (s *state) deleteAccount(id int64) error {
	if _, err := s.account(id); err != nil {
		return err
	}

	delete(s.accounts, id)

	for opID, op := range s.operations {
		if op.AccountID() == id {
			delete(s.operations, opID)
		}
	}

	return nil
}

func (s *state) deleteCategory(id int64) error {
	if _, err := s.category(id); err != nil {
		return err
	}

	var dependent []int64
	for opID, op := range s.operations {
		if op.CategoryID() == id {
			dependent = append(dependent, opID)
		}
	}
	sort.Slice(dependent, func(i, j int) bool { return dependent[i] < dependent[j] })

	for _, opID := range dependent {
		if err := s.removeOperation(opID); err != nil {
			return err
		}
	}

	delete(s.categories, id)

	return nil
}

// resetAccount replays the account's operations in ascending (date, id) order.
func (s *state) resetAccount(id int64) (*domain.Account, error) {
	a, err := s.account(id)
	if err != nil {
		return nil, err
	}

	a.ResetOperations()

	for _, op := range s.operationsForAccount(id) {
		if err := a.RegisterOperation(op); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (s *state) operationsForAccount(accountID int64) []domain.Operation {
	ops := make([]domain.Operation, 0)
	for _, op := range s.operations {
		if op.AccountID() == accountID {
			ops = append(ops, op)
		}
	}

	sortByDate(ops)

	return ops
}

func sortByDate(ops []domain.Operation) {
	sort.Slice(ops, func(i, j int) bool {
		if c := ops[i].Date().Compare(ops[j].Date()); c != 0 {
			return c < 0
		}
		return ops[i].ID() < ops[j].ID()
	})
}

func sortByDateDescription(ops []domain.Operation) {
	sort.Slice(ops, func(i, j int) bool {
		if c := ops[i].Date().Compare(ops[j].Date()); c != 0 {
			return c < 0
		}
		if ops[i].Description() != ops[j].Description() {
			return ops[i].Description() < ops[j].Description()
		}
		return ops[i].ID() < ops[j].ID()
	})
}
