package rcheckbook

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
)

// decodeTSV reads tab-separated rows in the shared column layout. Rows that
// fail to parse are skipped with a warning; only a structural read failure
// aborts the file. A trailing balance column, if present, is derived data and
// ignored.
func decodeTSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1 // rows may or may not carry the balance column
	reader.LazyQuotes = true

	var records []Record
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row == 1 && isHeaderRow(fields) {
			continue
		}
		rec, err := recordFromRow(fields)
		if err != nil {
			slog.Warn("skipping unparseable row", "format", "tsv", "row", row, "reason", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// encodeTSV writes the sorted records as tab-separated rows, one per record,
// with the derived running balance as the last column.
func encodeTSV(w io.Writer, records []Record, balances []decimal.Decimal) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	for i, rec := range records {
		if err := writer.Write(rowFromRecord(rec, balances[i])); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
