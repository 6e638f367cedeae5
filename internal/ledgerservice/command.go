package ledgerservice

import "github.com/go-petr/pet-ledger/internal/domain"

// Command is a unit of maintenance work run against the repository.
type Command interface {
	Execute() error
}

// RecalculateBalance clears an account and replays its operations.
type RecalculateBalance struct {
	repo      Repo
	accountID int64
	result    domain.Account
}

var _ Command = (*RecalculateBalance)(nil)

// NewRecalculateBalance returns the command for the account.
func NewRecalculateBalance(repo Repo, accountID int64) *RecalculateBalance {
	return &RecalculateBalance{repo: repo, accountID: accountID}
}

// Execute implements Command.
func (c *RecalculateBalance) Execute() error {
	account, err := c.repo.ResetAccount(c.accountID)
	if err != nil {
		return err
	}

	c.result = account

	return nil
}

// Result returns the account as of the last successful Execute.
func (c *RecalculateBalance) Result() domain.Account {
	return c.result
}
