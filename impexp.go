package expense

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single stream and be easy to merge into a ledger.

// jexpense is the readable version of one line of the import/export format.
type jexpense struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExportExpenses exports the ledger to 'w' in the import/export format.
//
// The format is a JSONL stream, where each line is a JSON object representing
// an expense, with properties 'id', 'date', 'description' and 'amount', in
// that order. Records appear in collection order.
func ExportExpenses(w io.Writer, ledger *Ledger) error {
	for e := range ledger.Expenses() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot marshal expense %d: %w", e.ID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("cannot write export format: %w", err)
		}
	}
	return nil
}

// ImportExpenses imports expenses from 'r' in the import/export format into
// the ledger, and returns the number of records imported.
//
// Imported records keep their date and description but receive fresh
// identifiers, so that importing into a non-empty ledger can never collide
// with existing records.
func ImportExpenses(r io.Reader, ledger *Ledger) (int, error) {
	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var je jexpense
		if err := json.Unmarshal(line, &je); err != nil {
			return count, fmt.Errorf("cannot parse line for expense import format: %q: %w", string(line), err)
		}
		ledger.Insert(je.Date, strings.TrimSpace(je.Description), je.Amount)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("error reading import format: %w", err)
	}
	return count, nil
}

// JSONMapping locates expense fields inside an arbitrary JSON document, as
// found in bank exports. Records selects the collection of records in the
// document, the other paths apply to each record.
type JSONMapping struct {
	Records     string
	Date        string
	Description string
	Amount      string
}

// ImportJSON decodes a JSON document from 'r' and imports one expense per
// record located by the mapping, returning the number of records imported.
func ImportJSON(r io.Reader, mapping JSONMapping, ledger *Ledger) (int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("cannot parse JSON document: %w", err)
	}

	jrecords, err := jsonpath.Get(mapping.Records, jobj)
	if err != nil {
		return 0, fmt.Errorf("error applying records path %q: %w", mapping.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// A path selecting a single object still imports one record.
		records = []any{jrecords}
	}

	count := 0
	for i, record := range records {
		day, err := jsonString(record, mapping.Date)
		if err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		description, err := jsonString(record, mapping.Description)
		if err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		amount, err := jsonAmount(record, mapping.Amount)
		if err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		ledger.Insert(day, strings.TrimSpace(description), amount)
		count++
	}
	return count, nil
}

// jsonString applies 'path' to a decoded JSON fragment and expects a string.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error applying path %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: expecting a string, got %T", path, jval)
	}
	return s, nil
}

// jsonAmount applies 'path' to a decoded JSON fragment and expects an
// amount. Bank exports carry amounts either as numbers or as strings,
// sometimes with a comma as decimal separator.
func jsonAmount(jobj any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error applying path %q: %w", path, err)
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("path %q: invalid amount %q: %w", path, v, err)
		}
		return amount, nil
	default:
		return decimal.Zero, fmt.Errorf("path %q: expecting a number or a string, got %T", path, jval)
	}
}
