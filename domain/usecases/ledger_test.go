package usecases

import (
	"testing"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

func TestAccountLedger_GetOrCreate(t *testing.T) {
	ledger := NewAccountLedger()

	account := ledger.GetOrCreate(5)
	if account == nil {
		t.Fatal("Expected an account")
	}
	if account.Client != 5 {
		t.Errorf("Expected client 5, got %d", account.Client)
	}
	if !account.Available.Equal(models.Zero) || !account.Held.Equal(models.Zero) || account.Locked {
		t.Error("Expected a zeroed, unlocked account")
	}

	// second lookup returns the same account
	account.Credit(amt("3"))
	again := ledger.GetOrCreate(5)
	if !again.Available.Equal(amt("3")) {
		t.Errorf("Expected the same account on repeat lookup, got available %s", again.Available)
	}

	if ledger.Len() != 1 {
		t.Errorf("Expected 1 account, got %d", ledger.Len())
	}
}

func TestAccountLedger_SummariesOrderedByClient(t *testing.T) {
	ledger := NewAccountLedger()

	ledger.GetOrCreate(30).Credit(amt("3"))
	ledger.GetOrCreate(10).Credit(amt("1"))
	ledger.GetOrCreate(20).Credit(amt("2"))

	summaries := ledger.Summaries()

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summaries))
	}

	want := []models.ClientID{10, 20, 30}
	for i, s := range summaries {
		if s.Client != want[i] {
			t.Errorf("Expected client %d at position %d, got %d", want[i], i, s.Client)
		}
	}
}
