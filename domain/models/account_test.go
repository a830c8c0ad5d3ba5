package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) Amount {
	return decimal.RequireFromString(s)
}

func TestNewAccount(t *testing.T) {
	account := NewAccount(7)

	if account.Client != 7 {
		t.Errorf("Expected client 7, got %d", account.Client)
	}
	if !account.Available.Equal(Zero) {
		t.Errorf("Expected zero available balance, got %s", account.Available)
	}
	if !account.Held.Equal(Zero) {
		t.Errorf("Expected zero held balance, got %s", account.Held)
	}
	if account.Locked {
		t.Error("Expected new account to be unlocked")
	}
}

func TestAccount_CreditDebit(t *testing.T) {
	account := NewAccount(1)

	account.Credit(amt("10.5"))
	if !account.Available.Equal(amt("10.5")) {
		t.Errorf("Expected available 10.5, got %s", account.Available)
	}

	if err := account.Debit(amt("4.5")); err != nil {
		t.Fatalf("Unexpected error on debit: %v", err)
	}
	if !account.Available.Equal(amt("6")) {
		t.Errorf("Expected available 6, got %s", account.Available)
	}

	err := account.Debit(amt("100"))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if !account.Available.Equal(amt("6")) {
		t.Errorf("Rejected debit must not change the balance, got %s", account.Available)
	}
}

func TestAccount_HoldRelease(t *testing.T) {
	account := NewAccount(1)
	account.Credit(amt("10"))

	account.Hold(amt("4"))
	if !account.Available.Equal(amt("6")) {
		t.Errorf("Expected available 6 after hold, got %s", account.Available)
	}
	if !account.Held.Equal(amt("4")) {
		t.Errorf("Expected held 4 after hold, got %s", account.Held)
	}
	if !account.Total().Equal(amt("10")) {
		t.Errorf("Hold must not change total, got %s", account.Total())
	}

	account.Release(amt("4"))
	if !account.Available.Equal(amt("10")) {
		t.Errorf("Expected available 10 after release, got %s", account.Available)
	}
	if !account.Held.Equal(Zero) {
		t.Errorf("Expected held 0 after release, got %s", account.Held)
	}
}

func TestAccount_ChargeBack(t *testing.T) {
	account := NewAccount(1)
	account.Credit(amt("10"))
	account.Hold(amt("4"))

	account.ChargeBack(amt("4"))

	if !account.Held.Equal(Zero) {
		t.Errorf("Expected held 0 after chargeback, got %s", account.Held)
	}
	if !account.Available.Equal(amt("6")) {
		t.Errorf("Expected available 6 after chargeback, got %s", account.Available)
	}
	if !account.Total().Equal(amt("6")) {
		t.Errorf("Expected total 6 after chargeback, got %s", account.Total())
	}
	if !account.Locked {
		t.Error("Expected account to be locked after chargeback")
	}
}

func TestAccount_Summarize(t *testing.T) {
	account := NewAccount(3)
	account.Credit(amt("5"))
	account.Hold(amt("2"))

	summary := account.Summarize()

	if summary.Client != 3 {
		t.Errorf("Expected client 3, got %d", summary.Client)
	}
	if !summary.Available.Equal(amt("3")) {
		t.Errorf("Expected available 3, got %s", summary.Available)
	}
	if !summary.Held.Equal(amt("2")) {
		t.Errorf("Expected held 2, got %s", summary.Held)
	}
	if !summary.Total.Equal(summary.Available.Add(summary.Held)) {
		t.Errorf("Summary total must equal available + held, got %s", summary.Total)
	}
}
