package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshot"
)

// CSV section names, matched case-insensitively on input.
const (
	sectionAccounts   = "Accounts"
	sectionCategories = "Categories"
	sectionOperations = "Operations"
)

// csvCodec reads and writes sectioned CSV:
//
//	[Accounts]
//	name,currency[,balance]
//	[Categories]
//	name,type
//	[Operations]
//	account,category,type,amount,date[,description]
//
// Blank lines and lines starting with # are skipped. Fields may be quoted and
// quoted fields may span lines.
type csvCodec struct {
	defaultCurrency string
}

func (csvCodec) Format() string { return FormatCSV }

func (c csvCodec) NewEncoder() Encoder {
	return &collectingEncoder{render: renderCSV}
}

func (c csvCodec) Decode(content []byte) (snapshot.RawData, error) {
	var (
		raw     snapshot.RawData
		section string
	)

	lines := strings.Split(string(content), "\n")

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			row := "document"

			var pe *csv.ParseError
			if errors.As(err, &pe) {
				row = fmt.Sprintf("line %d", pe.StartLine)
			}

			return snapshot.RawData{}, decodeError(FormatCSV, row, err)
		}

		line, col := r.FieldPos(0)
		row := fmt.Sprintf("line %d", line)

		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if len(fields) == 1 && fields[0] == "" {
			continue
		}

		if name, ok := sectionHeader(fields, lines[line-1], col); ok {
			if !knownSection(name) {
				return snapshot.RawData{}, decodeError(FormatCSV, row, fmt.Errorf("unknown section %q", name))
			}

			section = name

			continue
		}

		switch {
		case strings.EqualFold(section, sectionAccounts):
			var currency string
			if len(fields) > 1 {
				currency = fields[1]
			}

			raw.Accounts = append(raw.Accounts, newRawAccount(fields[0], currency, c.defaultCurrency))
		case strings.EqualFold(section, sectionCategories):
			if len(fields) < 2 {
				return snapshot.RawData{}, decodeError(FormatCSV, row, errors.New("want name,type"))
			}

			rc, err := newRawCategory(fields[0], fields[1])
			if err != nil {
				return snapshot.RawData{}, decodeError(FormatCSV, row, err)
			}

			raw.Categories = append(raw.Categories, rc)
		case strings.EqualFold(section, sectionOperations):
			if len(fields) < 5 {
				return snapshot.RawData{}, decodeError(FormatCSV, row,
					errors.New("want account,category,type,amount,date[,description]"))
			}

			var description string
			if len(fields) > 5 {
				description = fields[5]
			}

			ro, err := newRawOperation(fields[0], fields[1], fields[2], fields[3], fields[4], description)
			if err != nil {
				return snapshot.RawData{}, decodeError(FormatCSV, row, err)
			}

			raw.Operations = append(raw.Operations, ro)
		default:
			return snapshot.RawData{}, decodeError(FormatCSV, row, errors.New("row outside of a section"))
		}
	}

	return raw, nil
}

// sectionHeader reports whether a record is an unquoted [name] line.
//
// text is the line the record starts on and col the 1-based column of its first field.
func sectionHeader(fields []string, text string, col int) (string, bool) {
	if len(fields) != 1 || col < 1 || col > len(text) || text[col-1] != '[' {
		return "", false
	}

	f := fields[0]
	if !strings.HasSuffix(f, "]") {
		return "", false
	}

	return strings.TrimSpace(f[1 : len(f)-1]), true
}

func knownSection(name string) bool {
	for _, s := range []string{sectionAccounts, sectionCategories, sectionOperations} {
		if strings.EqualFold(name, s) {
			return true
		}
	}

	return false
}

func renderCSV(s domain.Snapshot) ([]byte, error) {
	doc, err := newDocument(s)
	if err != nil {
		return nil, err
	}

	accounts := make([][]string, 0, len(doc.Accounts))
	for _, a := range doc.Accounts {
		accounts = append(accounts, []string{a.Name, a.Currency, string(a.Balance)})
	}

	categories := make([][]string, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, []string{c.Name, c.Type})
	}

	operations := make([][]string, 0, len(doc.Operations))
	for _, op := range doc.Operations {
		operations = append(operations, []string{op.Account, op.Category, op.Type, string(op.Amount), op.Date, op.Description})
	}

	var buf bytes.Buffer

	for i, sec := range []struct {
		name string
		rows [][]string
	}{
		{sectionAccounts, accounts},
		{sectionCategories, categories},
		{sectionOperations, operations},
	} {
		if i > 0 {
			buf.WriteString("\n")
		}

		buf.WriteString("[" + sec.name + "]\n")

		writeCSVRows(&buf, sec.rows)
	}

	return buf.Bytes(), nil
}

// writeCSVRows writes rows the way csv.Writer does, and also quotes fields
// that would otherwise read back as a comment or a section header.
func writeCSVRows(buf *bytes.Buffer, rows [][]string) {
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				buf.WriteByte(',')
			}

			if !csvNeedsQuotes(field) {
				buf.WriteString(field)
				continue
			}

			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
			buf.WriteByte('"')
		}

		buf.WriteByte('\n')
	}
}

func csvNeedsQuotes(field string) bool {
	if field == "" {
		return false
	}

	if strings.ContainsAny(field, ",\"\r\n") {
		return true
	}

	switch field[0] {
	case ' ', '\t', '#', '[':
		return true
	}

	return false
}
