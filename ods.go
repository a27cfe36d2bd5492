package rcheckbook

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// OpenDocument support is hand-rolled over archive/zip and encoding/xml: an
// .ods file is a zip whose content.xml carries the sheet as nested
// table/table-row/table-cell elements. Only string cells in the shared column
// layout are read or written.

type odsDocument struct {
	Tables []odsTable `xml:"body>spreadsheet>table"`
}

type odsTable struct {
	Rows []odsRow `xml:"table-row"`
}

type odsRow struct {
	Cells []odsCell `xml:"table-cell"`
}

type odsCell struct {
	Repeated int      `xml:"number-columns-repeated,attr"`
	Text     []string `xml:"p"`
}

// decodeODS reads the first table of an OpenDocument spreadsheet. Rows that
// fail to parse are skipped with a warning.
func decodeODS(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var content io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "content.xml" {
			if content, err = f.Open(); err != nil {
				return nil, err
			}
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content.xml in document")
	}
	defer content.Close()

	var doc odsDocument
	if err := xml.NewDecoder(content).Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("document has no tables")
	}

	var records []Record
	for i, row := range doc.Tables[0].Rows {
		fields := make([]string, 0, rowWidth)
		for _, cell := range row.Cells {
			repeat := cell.Repeated
			if repeat < 1 {
				repeat = 1
			}
			// Repeated trailing blanks can be huge; the layout is fixed width.
			if repeat > rowWidth {
				repeat = rowWidth
			}
			value := strings.Join(cell.Text, "\n")
			for ; repeat > 0 && len(fields) <= rowWidth; repeat-- {
				fields = append(fields, value)
			}
		}
		if len(fields) == 0 || strings.Join(fields, "") == "" {
			continue
		}
		if i == 0 && isHeaderRow(fields) {
			continue
		}
		for len(fields) < rowWidth {
			fields = append(fields, "")
		}
		rec, err := recordFromRow(fields)
		if err != nil {
			slog.Warn("skipping unparseable row", "format", "ods", "row", i+1, "reason", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

const odsMimetype = "application/vnd.oasis.opendocument.spreadsheet"

const odsManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="` + odsMimetype + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

// encodeODS writes the sorted records as a minimal OpenDocument spreadsheet,
// header row first, with the derived running balance as the last column.
func encodeODS(w io.Writer, records []Record, balances []decimal.Decimal) error {
	archive := zip.NewWriter(w)

	// The mimetype entry must come first and be stored uncompressed.
	mime, err := archive.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(mime, odsMimetype); err != nil {
		return err
	}

	manifest, err := archive.Create("META-INF/manifest.xml")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(manifest, odsManifest); err != nil {
		return err
	}

	content, err := archive.Create("content.xml")
	if err != nil {
		return err
	}
	var body strings.Builder
	body.WriteString(xml.Header)
	body.WriteString(`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">`)
	body.WriteString(`<office:body><office:spreadsheet><table:table table:name="Register">`)
	writeODSRow(&body, rowHeader)
	for i, rec := range records {
		writeODSRow(&body, rowFromRecord(rec, balances[i]))
	}
	body.WriteString(`</table:table></office:spreadsheet></office:body></office:document-content>`)
	if _, err := io.WriteString(content, body.String()); err != nil {
		return err
	}
	return archive.Close()
}

func writeODSRow(b *strings.Builder, fields []string) {
	b.WriteString(`<table:table-row>`)
	for _, v := range fields {
		b.WriteString(`<table:table-cell office:value-type="string"><text:p>`)
		xml.EscapeText(b, []byte(v))
		b.WriteString(`</text:p></table:table-cell>`)
	}
	b.WriteString(`</table:table-row>`)
}
