package models

// Account represents a client's balance state. Total is derived and never
// stored: total = available + held at all times.
type Account struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Locked    bool
}

// NewAccount creates a zeroed, unlocked account for the client.
func NewAccount(client ClientID) *Account {
	return &Account{
		Client:    client,
		Available: Zero,
		Held:      Zero,
	}
}

// Total returns the derived total balance.
func (a *Account) Total() Amount {
	return a.Available.Add(a.Held)
}

// Credit adds funds to the available balance.
func (a *Account) Credit(amount Amount) {
	a.Available = a.Available.Add(amount)
}

// Debit removes funds from the available balance. It fails with
// ErrInsufficientFunds if the debit would drive the balance negative.
func (a *Account) Debit(amount Amount) error {
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Available = a.Available.Sub(amount)
	return nil
}

// Hold moves funds from available to held while a dispute is open.
func (a *Account) Hold(amount Amount) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// Release moves funds held for a dispute back to available.
func (a *Account) Release(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// ChargeBack removes held funds and locks the account. A locked account
// accepts no further deposits or withdrawals for the rest of the run.
func (a *Account) ChargeBack(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}

// AccountSummary is the final reported state of one account.
type AccountSummary struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

// Summarize captures the account's current state for reporting.
func (a *Account) Summarize() AccountSummary {
	return AccountSummary{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}
