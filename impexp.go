package rcheckbook

import (
	"fmt"
	"io"
	"os"
)

// this file contains the normalization and export pipeline between external
// files and the canonical record shape. It never touches the store: callers
// pipe the result of Normalize into Store.Upsert and feed Export from the
// store's sorted view.

// NormalizeReader converts an external byte stream in the given format into
// canonical records. Row-oriented formats skip unparseable rows with a logged
// warning; structural failures surface as MalformedFileError from Normalize.
func NormalizeReader(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatBCheck:
		return DecodeRecords(r)
	case FormatQIF:
		return decodeQIF(r)
	case FormatODS:
		return decodeODS(r)
	case FormatXLSX:
		return decodeXLSX(r)
	default:
		return decodeTSV(r)
	}
}

// Normalize reads the file at path, selecting the codec by filename suffix.
func Normalize(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open import file: %w", err)
	}
	defer f.Close()

	records, err := NormalizeReader(f, FormatForPath(path))
	if err != nil {
		return nil, &MalformedFileError{Path: path, Err: err}
	}
	return records, nil
}

// ExportWriter renders the ledger's sorted view in the given format. Formats
// with a balance column get it computed at render time; it is never stored.
// The native and tab-separated formats round-trip the canonical model
// losslessly, the others are view-only exports.
func ExportWriter(w io.Writer, ledger *Ledger, format Format) error {
	records := ledger.Records()
	balances := ledger.RunningBalances()
	switch format {
	case FormatBCheck:
		return EncodeRecords(w, records)
	case FormatQIF:
		return encodeQIF(w, records)
	case FormatODS:
		return encodeODS(w, records, balances)
	case FormatXLSX:
		return encodeXLSX(w, records, balances)
	default:
		return encodeTSV(w, records, balances)
	}
}

// Export writes the ledger to the file at path, selecting the codec by
// filename suffix.
func Export(path string, ledger *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create export file: %w", err)
	}
	defer f.Close()

	if err := ExportWriter(f, ledger, FormatForPath(path)); err != nil {
		return fmt.Errorf("cannot export to %q: %w", path, err)
	}
	return f.Close()
}
