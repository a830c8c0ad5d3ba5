package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

// Writer encodes the final account table as CSV with columns
// client,available,held,total,locked. Decimal fields are rendered at the
// fixed precision the engine uses internally.
type Writer struct {
	csv    *csv.Writer
	places int32
}

// NewWriter creates a writer targeting the given output stream.
func NewWriter(w io.Writer, places int32) *Writer {
	return &Writer{
		csv:    csv.NewWriter(w),
		places: places,
	}
}

// WriteSummaries writes the header row followed by one row per account.
func (w *Writer) WriteSummaries(summaries []models.AccountSummary) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, s := range summaries {
		row := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			models.FormatAmount(s.Available, w.places),
			models.FormatAmount(s.Held, w.places),
			models.FormatAmount(s.Total, w.places),
			strconv.FormatBool(s.Locked),
		}

		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}
