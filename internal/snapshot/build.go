package snapshot

import (
	"fmt"
	"sort"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

// Build validates raw and mints sequential identifiers starting at 1 for every kind.
//
// Accounts carry their operation lists and balances replayed in (date, id) order.
func Build(raw RawData) (domain.Snapshot, error) {
	return build(raw, domain.Snapshot{})
}

// BuildMerge validates raw and resolves it against current for a merge.
//
// Accounts and categories whose normalized names exist in current keep their
// identifiers; existing accounts keep their currency. An operation identical to
// one in current (same account, category, type, amount, date and description)
// reuses that operation's identifier, each existing operation matched at most
// once. Everything else gets identifiers above the current maxima, so merging
// the same content twice changes nothing.
func BuildMerge(raw RawData, current domain.Snapshot) (domain.Snapshot, error) {
	return build(raw, current)
}

func build(raw RawData, current domain.Snapshot) (domain.Snapshot, error) {
	if err := Validate(raw); err != nil {
		return domain.Snapshot{}, err
	}

	ids := newResolver(current)

	out := domain.Snapshot{
		Accounts:   make([]domain.Account, 0, len(raw.Accounts)),
		Categories: make([]domain.Category, 0, len(raw.Categories)),
		Operations: make([]domain.Operation, 0, len(raw.Operations)),
	}

	accountIDs := make(map[string]int64, len(raw.Accounts))
	for _, in := range raw.Accounts {
		id, currency := ids.account(in.Name, currencypkg.Normalize(in.Currency))

		a, err := domain.NewAccount(id, in.Name, currency)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("account %q: %w", in.Name, err)
		}

		accountIDs[domain.NormalizeName(in.Name)] = id
		out.Accounts = append(out.Accounts, *a)
	}

	categoryIDs := make(map[string]int64, len(raw.Categories))
	for _, in := range raw.Categories {
		c, err := domain.NewCategory(ids.category(in.Name), in.Name, in.Type)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("category %q: %w", in.Name, err)
		}

		categoryIDs[domain.NormalizeName(in.Name)] = c.ID()
		out.Categories = append(out.Categories, *c)
	}

	for i, in := range raw.Operations {
		arg := domain.OperationParams{
			AccountID:   accountIDs[domain.NormalizeName(in.Account)],
			CategoryID:  categoryIDs[domain.NormalizeName(in.Category)],
			Type:        in.Type,
			Amount:      in.Amount,
			Date:        in.Date,
			Description: in.Description,
		}

		// Normalizes the content before it is fingerprinted.
		normalized, err := domain.NewOperation(0, arg)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("operation %d: %w", i+1, err)
		}

		op, err := domain.NewOperation(ids.operation(normalized), normalized.Params())
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("operation %d: %w", i+1, err)
		}

		out.Operations = append(out.Operations, op)
	}

	if err := replay(out); err != nil {
		return domain.Snapshot{}, err
	}

	return out, nil
}

// replay registers every operation on its account in (date, id) order.
func replay(s domain.Snapshot) error {
	index := make(map[int64]int, len(s.Accounts))
	for i, a := range s.Accounts {
		index[a.ID()] = i
	}

	ops := append([]domain.Operation(nil), s.Operations...)
	sort.Slice(ops, func(i, j int) bool {
		if c := ops[i].Date().Compare(ops[j].Date()); c != 0 {
			return c < 0
		}
		return ops[i].ID() < ops[j].ID()
	})

	for _, op := range ops {
		if err := s.Accounts[index[op.AccountID()]].RegisterOperation(op); err != nil {
			return err
		}
	}

	return nil
}

// fingerprint identifies an operation by content.
type fingerprint struct {
	account     int64
	category    int64
	typ         domain.OperationType
	amount      string
	date        string
	description string
}

func fingerprintOf(op domain.Operation) fingerprint {
	return fingerprint{
		account:     op.AccountID(),
		category:    op.CategoryID(),
		typ:         op.Type(),
		amount:      op.Amount().StringFixed(domain.AmountPlaces),
		date:        op.Date().ISO(),
		description: op.Description(),
	}
}

// resolver hands out identifiers, reusing those of matching entities in the current state.
type resolver struct {
	accounts   map[string]domain.Account
	categories map[string]int64
	operations map[fingerprint][]int64

	lastAccount   int64
	lastCategory  int64
	lastOperation int64
}

func newResolver(current domain.Snapshot) *resolver {
	r := &resolver{
		accounts:   make(map[string]domain.Account, len(current.Accounts)),
		categories: make(map[string]int64, len(current.Categories)),
		operations: make(map[fingerprint][]int64, len(current.Operations)),
	}

	for _, a := range current.Accounts {
		r.accounts[domain.NormalizeName(a.Name())] = a
		r.lastAccount = max(r.lastAccount, a.ID())
	}

	for _, c := range current.Categories {
		r.categories[domain.NormalizeName(c.Name())] = c.ID()
		r.lastCategory = max(r.lastCategory, c.ID())
	}

	ops := append([]domain.Operation(nil), current.Operations...)
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID() < ops[j].ID() })

	for _, op := range ops {
		key := fingerprintOf(op)
		r.operations[key] = append(r.operations[key], op.ID())
		r.lastOperation = max(r.lastOperation, op.ID())
	}

	return r
}

func (r *resolver) account(name, currency string) (int64, string) {
	if a, ok := r.accounts[domain.NormalizeName(name)]; ok {
		return a.ID(), a.Currency()
	}

	r.lastAccount++

	return r.lastAccount, currency
}

func (r *resolver) category(name string) int64 {
	if id, ok := r.categories[domain.NormalizeName(name)]; ok {
		return id
	}

	r.lastCategory++

	return r.lastCategory
}

func (r *resolver) operation(op domain.Operation) int64 {
	key := fingerprintOf(op)
	if pool := r.operations[key]; len(pool) > 0 {
		r.operations[key] = pool[1:]
		return pool[0]
	}

	r.lastOperation++

	return r.lastOperation
}
