package domain

// Visitor collects entities without the entities knowing about export formats.
type Visitor interface {
	VisitAccount(Account)
	VisitCategory(Category)
	VisitOperation(Operation)
}

// Exportable is implemented by every entity.
type Exportable interface {
	Accept(Visitor)
}

var (
	_ Exportable = Account{}
	_ Exportable = Category{}
	_ Exportable = Operation{}
)

// Snapshot is a neutral, serialization-ready bundle of entities.
type Snapshot struct {
	Accounts   []Account
	Categories []Category
	Operations []Operation
}

// Walk visits every account, then every category, then every operation.
func (s Snapshot) Walk(v Visitor) {
	for _, a := range s.Accounts {
		a.Accept(v)
	}

	for _, c := range s.Categories {
		c.Accept(v)
	}

	for _, o := range s.Operations {
		o.Accept(v)
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Accounts:   make([]Account, 0, len(s.Accounts)),
		Categories: append([]Category(nil), s.Categories...),
		Operations: append([]Operation(nil), s.Operations...),
	}

	for _, a := range s.Accounts {
		c.Accounts = append(c.Accounts, a.Clone())
	}

	return c
}
