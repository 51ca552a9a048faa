// Package csvparser turns a bank CSV export into validated transaction candidates.
// Parsing is all-or-nothing: any malformed row rejects the whole document.
package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
)

// Column names, matched case-insensitively against the header row
const (
	ColumnDate        = "date"
	ColumnAmount      = "amount"
	ColumnDirection   = "direction"
	ColumnDescription = "description"
	ColumnReference   = "reference"
	ColumnMerchant    = "merchant"
)

var requiredColumns = []string{ColumnDate, ColumnAmount, ColumnDirection, ColumnDescription}

var columnAliases = map[string]string{
	"ref": ColumnReference,
}

// DateLayouts are tried in order for the date column
var DateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
}

// Parse reads a header row plus at least one data row
func Parse(text string) ([]entity.Candidate, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	if countNonEmptyLines(text) < 2 {
		return nil, fmt.Errorf("%w: a header row and at least one data row are required", errs.ErrInvalidDocument)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, mapReadError(err)
	}
	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var candidates []entity.Candidate
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mapReadError(err)
		}
		if isBlankRecord(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		candidate, err := parseRecord(record, columns, line)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no data rows", errs.ErrInvalidDocument)
	}
	return candidates, nil
}

// ParseDate tries each accepted layout in order
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.ErrInvalidDate
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := columnAliases[key]; ok {
			key = canonical
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, errs.NewParseError(1, required, "", errs.ErrMissingColumn)
		}
	}
	return columns, nil
}

func parseRecord(record []string, columns map[string]int, line int) (entity.Candidate, error) {
	field := func(name string) (string, bool) {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[idx]), true
	}

	required := make(map[string]string, len(requiredColumns))
	for _, name := range requiredColumns {
		value, ok := field(name)
		if !ok || value == "" {
			return entity.Candidate{}, errs.NewParseError(line, name, value, errs.ErrMissingField)
		}
		required[name] = value
	}

	date, err := ParseDate(required[ColumnDate])
	if err != nil {
		return entity.Candidate{}, errs.NewParseError(line, ColumnDate, required[ColumnDate], err)
	}

	amount, err := entity.ParseAmount(required[ColumnAmount])
	if err != nil {
		return entity.Candidate{}, errs.NewParseError(line, ColumnAmount, required[ColumnAmount], errs.ErrInvalidAmount)
	}

	direction, err := entity.ParseDirection(required[ColumnDirection])
	if err != nil {
		return entity.Candidate{}, errs.NewParseError(line, ColumnDirection, required[ColumnDirection], errs.ErrInvalidDirection)
	}

	reference, _ := field(ColumnReference)
	merchant, _ := field(ColumnMerchant)

	return entity.Candidate{
		Date:          date,
		AmountInCents: amount,
		Direction:     direction,
		Description:   required[ColumnDescription],
		Reference:     reference,
		Merchant:      merchant,
		Line:          line,
	}, nil
}

func mapReadError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		if errors.Is(csvErr.Err, csv.ErrQuote) || errors.Is(csvErr.Err, csv.ErrBareQuote) {
			return errs.NewParseError(csvErr.StartLine, "", "", errs.ErrUnterminatedQuote)
		}
		return errs.NewParseError(csvErr.StartLine, "", "", fmt.Errorf("%w: %v", errs.ErrInvalidDocument, csvErr.Err))
	}
	return fmt.Errorf("%w: %v", errs.ErrInvalidDocument, err)
}

func countNonEmptyLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
