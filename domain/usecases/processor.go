package usecases

import (
	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

// Processor applies one transaction record at a time against a history
// store and an account ledger. Every record either applies fully or leaves
// both untouched; failures are reported as typed errors and never logged
// here.
type Processor struct {
	history *HistoryStore
	ledger  *AccountLedger
}

// NewProcessor creates a processor over the given stores. The stores are
// owned by the caller for the duration of the run, which keeps the
// processor trivial to test with injected fixtures.
func NewProcessor(history *HistoryStore, ledger *AccountLedger) *Processor {
	return &Processor{
		history: history,
		ledger:  ledger,
	}
}

// Apply validates and applies a single record.
func (p *Processor) Apply(rec models.TransactionRecord) error {
	switch rec.Kind {
	case models.RecordDeposit:
		return p.deposit(rec)
	case models.RecordWithdrawal:
		return p.withdraw(rec)
	case models.RecordDispute:
		return p.dispute(rec)
	case models.RecordResolve:
		return p.resolve(rec)
	case models.RecordChargeback:
		return p.chargeback(rec)
	default:
		return models.ErrMalformedRecord
	}
}

func (p *Processor) deposit(rec models.TransactionRecord) error {
	if rec.Amount == nil {
		return models.ErrMalformedRecord
	}

	account := p.ledger.GetOrCreate(rec.Client)
	if account.Locked {
		return models.ErrAccountLocked
	}

	// Record before crediting: the duplicate check is the last precondition
	// that can fail, so the credit below cannot leave a half-applied record.
	if err := p.history.Record(rec.Tx, rec.Client, rec.Kind, *rec.Amount); err != nil {
		return err
	}

	account.Credit(*rec.Amount)
	return nil
}

func (p *Processor) withdraw(rec models.TransactionRecord) error {
	if rec.Amount == nil {
		return models.ErrMalformedRecord
	}

	account := p.ledger.GetOrCreate(rec.Client)
	if account.Locked {
		return models.ErrAccountLocked
	}

	if p.history.Has(rec.Tx) {
		return models.ErrDuplicateTx
	}

	if err := account.Debit(*rec.Amount); err != nil {
		return err
	}

	// Cannot fail: the duplicate check above already cleared the id.
	return p.history.Record(rec.Tx, rec.Client, rec.Kind, *rec.Amount)
}

// dispute places the referenced transaction's amount on hold. The amount
// always comes from the stored entry, never from the incoming record, so a
// malformed record cannot dispute an arbitrary amount.
func (p *Processor) dispute(rec models.TransactionRecord) error {
	entry, ok := p.history.Get(rec.Tx)
	if !ok {
		return models.ErrUnknownTx
	}

	if entry.Client != rec.Client {
		return models.ErrClientMismatch
	}

	if entry.State != models.DisputeStateNormal {
		return models.ErrAlreadyDisputed
	}

	if err := entry.MarkDisputed(); err != nil {
		return err
	}

	p.ledger.GetOrCreate(rec.Client).Hold(entry.Amount)
	return nil
}

func (p *Processor) resolve(rec models.TransactionRecord) error {
	entry, ok := p.history.Get(rec.Tx)
	if !ok {
		return models.ErrUnknownTx
	}

	if entry.Client != rec.Client {
		return models.ErrClientMismatch
	}

	if entry.State != models.DisputeStateDisputed {
		return models.ErrNotDisputed
	}

	if err := entry.ClearDisputed(); err != nil {
		return err
	}

	p.ledger.GetOrCreate(rec.Client).Release(entry.Amount)
	return nil
}

func (p *Processor) chargeback(rec models.TransactionRecord) error {
	entry, ok := p.history.Get(rec.Tx)
	if !ok {
		return models.ErrUnknownTx
	}

	if entry.Client != rec.Client {
		return models.ErrClientMismatch
	}

	if entry.State != models.DisputeStateDisputed {
		return models.ErrNotDisputed
	}

	if err := entry.Finalize(); err != nil {
		return err
	}

	p.ledger.GetOrCreate(rec.Client).ChargeBack(entry.Amount)
	return nil
}
