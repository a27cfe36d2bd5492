package rcheckbook

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// decodeXLSX reads the first sheet of an Office Open XML workbook in the
// shared column layout. Rows that fail to parse are skipped with a warning.
func decodeXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	var records []Record
	for i, fields := range rows {
		if i == 0 && isHeaderRow(fields) {
			continue
		}
		if len(fields) == 0 {
			continue
		}
		// GetRows trims trailing empty cells; restore the fixed width.
		for len(fields) < rowWidth {
			fields = append(fields, "")
		}
		rec, err := recordFromRow(fields)
		if err != nil {
			slog.Warn("skipping unparseable row", "format", "xlsx", "row", i+1, "reason", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// encodeXLSX writes the sorted records to a single-sheet workbook, header row
// first, with the derived running balance as the last column.
func encodeXLSX(w io.Writer, records []Record, balances []decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(rowHeader))
	for i, h := range rowHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range records {
		fields := rowFromRecord(rec, balances[i])
		row := make([]interface{}, len(fields))
		for j, v := range fields {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
