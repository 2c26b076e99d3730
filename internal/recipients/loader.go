package recipients

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/coder-mourya/Mail-sender/internal/mailer"
)

// Load parses an uploaded recipient file. Format is picked by file
// extension: .csv is read as header-keyed CSV, .xlsx/.xls as the first
// sheet of a workbook with the first row as header. Rows are returned
// in file order; a missing or empty company column becomes the fixed
// default. No per-row validation is performed.
func Load(filename string, r io.Reader) ([]mailer.Recipient, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return loadCSV(r)
	case ".xlsx", ".xls":
		return loadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(filename))
	}
}

func loadCSV(r io.Reader) ([]mailer.Recipient, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []mailer.Recipient{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := []mailer.Recipient{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, fromRow(header, row))
	}
	return out, nil
}

func loadXLSX(r io.Reader) ([]mailer.Recipient, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []mailer.Recipient{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []mailer.Recipient{}, nil
	}

	header := rows[0]
	out := []mailer.Recipient{}
	for _, row := range rows[1:] {
		out = append(out, fromRow(header, row))
	}
	return out, nil
}

// fromRow maps a row onto a Recipient by header name, matched
// case-insensitively. Columns beyond name/email/company are ignored.
func fromRow(header, row []string) mailer.Recipient {
	col := func(name string) string {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	rec := mailer.Recipient{
		Name:    col("name"),
		Email:   col("email"),
		Company: col("company"),
	}
	if rec.Company == "" {
		rec.Company = mailer.DefaultCompany
	}
	return rec
}
