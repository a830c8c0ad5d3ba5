package csvio

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

func readAll(t *testing.T, r *Reader) ([]*models.TransactionRecord, []error) {
	t.Helper()

	var recs []*models.TransactionRecord
	var errs []error

	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return recs, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, rec)
	}
}

func TestReader_ParsesRecords(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,1.0",
		"withdrawal, 2, 2, 0.5",
		"dispute,1,1,",
		"resolve,1,1",
		"chargeback,1,1,",
	}, "\n")

	recs, errs := readAll(t, NewReader(strings.NewReader(input)))

	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(recs) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(recs))
	}

	if recs[0].Kind != models.RecordDeposit || recs[0].Client != 1 || recs[0].Tx != 1 {
		t.Errorf("Unexpected first record: %+v", recs[0])
	}
	if recs[0].Amount == nil || !recs[0].Amount.Equal(decimal.RequireFromString("1.0")) {
		t.Errorf("Expected amount 1.0, got %v", recs[0].Amount)
	}

	// whitespace around fields is tolerated
	if recs[1].Kind != models.RecordWithdrawal || recs[1].Client != 2 {
		t.Errorf("Unexpected second record: %+v", recs[1])
	}
	if recs[1].Amount == nil || !recs[1].Amount.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("Expected amount 0.5, got %v", recs[1].Amount)
	}

	// dispute lifecycle records carry no amount, with or without the column
	for _, rec := range recs[2:] {
		if rec.Amount != nil {
			t.Errorf("Expected no amount on %s record, got %v", rec.Kind, rec.Amount)
		}
	}
}

func TestReader_MalformedRowsDoNotStopIteration(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,1.0",
		"transfer,1,2,1.0",    // unknown kind
		"deposit,abc,3,1.0",   // bad client id
		"deposit,1,4,",        // missing amount
		"deposit,1,5,1.00001", // over-precision amount
		"deposit,1,6,2.0",
	}, "\n")

	recs, errs := readAll(t, NewReader(strings.NewReader(input)))

	if len(recs) != 2 {
		t.Fatalf("Expected 2 good records, got %d", len(recs))
	}
	if len(errs) != 4 {
		t.Fatalf("Expected 4 errors, got %d: %v", len(errs), errs)
	}

	if recs[1].Tx != 6 {
		t.Errorf("Expected iteration to reach tx 6, got %d", recs[1].Tx)
	}

	for _, err := range errs[:3] {
		if !errors.Is(err, models.ErrMalformedRecord) {
			t.Errorf("Expected ErrMalformedRecord, got %v", err)
		}
	}
	if !errors.Is(errs[3], models.ErrParseAmount) {
		t.Errorf("Expected ErrParseAmount, got %v", errs[3])
	}
}

func TestReader_NoHeader(t *testing.T) {
	// input without a header row is accepted as-is
	recs, errs := readAll(t, NewReader(strings.NewReader("deposit,1,1,1.0\n")))

	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(recs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(recs))
	}
}

func TestReader_EmptyInput(t *testing.T) {
	recs, errs := readAll(t, NewReader(strings.NewReader("")))

	if len(recs) != 0 || len(errs) != 0 {
		t.Errorf("Expected nothing from empty input, got %d records and %v", len(recs), errs)
	}
}

func TestWriter_RendersFixedPrecision(t *testing.T) {
	var sb strings.Builder

	summaries := []models.AccountSummary{
		{
			Client:    1,
			Available: decimal.RequireFromString("1.5"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("1.5"),
			Locked:    false,
		},
		{
			Client:    5,
			Available: decimal.RequireFromString("1110"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("1110"),
			Locked:    true,
		},
	}

	if err := NewWriter(&sb, 4).WriteSummaries(summaries); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"client,available,held,total,locked",
		"1,1.5000,0.0000,1.5000,false",
		"5,1110.0000,0.0000,1110.0000,true",
		"",
	}, "\n")

	if sb.String() != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", sb.String(), want)
	}
}
