package snapshot

import "github.com/go-petr/pet-ledger/internal/domain"

// Walker lets a visitor see every entity it holds.
type Walker interface {
	Walk(v domain.Visitor)
}

// Collector is a domain.Visitor that gathers the visited entities.
type Collector struct {
	snapshot domain.Snapshot
}

// VisitAccount implements domain.Visitor.
func (c *Collector) VisitAccount(a domain.Account) {
	c.snapshot.Accounts = append(c.snapshot.Accounts, a.Clone())
}

// VisitCategory implements domain.Visitor.
func (c *Collector) VisitCategory(cat domain.Category) {
	c.snapshot.Categories = append(c.snapshot.Categories, cat)
}

// VisitOperation implements domain.Visitor.
func (c *Collector) VisitOperation(op domain.Operation) {
	c.snapshot.Operations = append(c.snapshot.Operations, op)
}

// Snapshot returns a copy of everything collected so far.
func (c *Collector) Snapshot() domain.Snapshot {
	return c.snapshot.Clone()
}

// Collect walks w and returns the collected snapshot.
func Collect(w Walker) domain.Snapshot {
	var c Collector
	w.Walk(&c)

	return c.Snapshot()
}
