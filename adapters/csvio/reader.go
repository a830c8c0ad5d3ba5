// Package csvio adapts the engine's record source and summary writer ports
// to the CSV wire format used at the process boundary.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

// Reader decodes transaction records from CSV input with columns
// type,client,tx,amount. Whitespace around fields is tolerated, and the
// amount column may be absent entirely for dispute lifecycle records.
type Reader struct {
	csv       *csv.Reader
	line      int
	skipFirst bool
}

// NewReader creates a reader over the raw input stream. A leading header
// row is detected and skipped.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{
		csv:       cr,
		skipFirst: true,
	}
}

// Next returns the next record in the input. It returns io.EOF once the
// input is exhausted. Any other error describes a single malformed row;
// subsequent calls continue with the following row.
func (r *Reader) Next() (*models.TransactionRecord, error) {
	for {
		row, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}

		r.line++

		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.line, err)
		}

		if r.skipFirst {
			r.skipFirst = false
			if isHeader(row) {
				continue
			}
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.line, err)
		}

		return rec, nil
	}
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type")
}

func parseRow(row []string) (*models.TransactionRecord, error) {
	if len(row) < 3 {
		return nil, models.ErrMalformedRecord
	}

	kind := models.RecordKind(strings.ToLower(strings.TrimSpace(row[0])))
	if !kind.Valid() {
		return nil, models.ErrMalformedRecord
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, models.ErrMalformedRecord
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, models.ErrMalformedRecord
	}

	rec := &models.TransactionRecord{
		Kind:   kind,
		Client: models.ClientID(client),
		Tx:     models.TxID(tx),
	}

	if kind.CarriesAmount() {
		if len(row) < 4 || strings.TrimSpace(row[3]) == "" {
			return nil, models.ErrMalformedRecord
		}

		amount, err := models.ParseAmount(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, err
		}

		rec.Amount = &amount
	}

	return rec, nil
}
