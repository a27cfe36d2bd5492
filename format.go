package rcheckbook

import (
	"path/filepath"
	"strings"
)

// Format identifies one external file encoding. Codec selection happens once,
// through the pure extension mapping below; there is no runtime probing of
// file contents.
type Format int

const (
	// FormatTSV is tab-separated rows in the register column layout. It is
	// the fallback for unrecognized extensions.
	FormatTSV Format = iota
	// FormatBCheck is the native structured format: a JSON array of records.
	FormatBCheck
	// FormatQIF is the Quicken interchange format.
	FormatQIF
	// FormatODS is an OpenDocument spreadsheet.
	FormatODS
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatBCheck:
		return "bcheck"
	case FormatQIF:
		return "qif"
	case FormatODS:
		return "ods"
	case FormatXLSX:
		return "xlsx"
	default:
		return "tsv"
	}
}

// FormatForPath maps a filename to its Format by suffix.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bcheck":
		return FormatBCheck
	case ".qif":
		return FormatQIF
	case ".ods":
		return FormatODS
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatTSV
	}
}
