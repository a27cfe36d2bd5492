package rcheckbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeRecords decodes the native format: a JSON array of records. It is a
// single-document format, so any structural failure is fatal for the whole
// file.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot parse record list: %w", err)
	}
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d has no id", i)
		}
		if err := rec.Transaction.Validate(); err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
	}
	return records, nil
}

// EncodeRecords writes records in the native format. The output is indented
// so the file stays human readable and easy to diff.
func EncodeRecords(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
