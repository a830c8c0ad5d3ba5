package usecases

import (
	"sort"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

// AccountLedger maps client ids to account state. Accounts are created
// lazily on first reference and never destroyed during a run.
type AccountLedger struct {
	accounts map[models.ClientID]*models.Account
}

// NewAccountLedger creates an empty ledger.
func NewAccountLedger() *AccountLedger {
	return &AccountLedger{
		accounts: make(map[models.ClientID]*models.Account),
	}
}

// GetOrCreate returns the account for the client, creating a zeroed one if
// absent. It never fails.
func (l *AccountLedger) GetOrCreate(client models.ClientID) *models.Account {
	account, ok := l.accounts[client]
	if !ok {
		account = models.NewAccount(client)
		l.accounts[client] = account
	}

	return account
}

// Get returns the account for the client if it exists.
func (l *AccountLedger) Get(client models.ClientID) (*models.Account, bool) {
	account, ok := l.accounts[client]
	return account, ok
}

// Len returns the number of accounts in the ledger.
func (l *AccountLedger) Len() int {
	return len(l.accounts)
}

// Summaries returns the final state of every account, ordered by client id
// so that replaying the same input yields identical output.
func (l *AccountLedger) Summaries() []models.AccountSummary {
	summaries := make([]models.AccountSummary, 0, len(l.accounts))
	for _, account := range l.accounts {
		summaries = append(summaries, account.Summarize())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Client < summaries[j].Client
	})

	return summaries
}
