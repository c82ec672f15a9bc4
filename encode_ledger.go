package expense

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are numbers in the export format, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the codec for the ledger file format, one line per
// expense:
//
//	<id> <date> <description>|<amount>
//
// The description is free text and may itself contain '|', so the amount is
// whatever follows the last '|' of the line. Unparsable lines are skipped on
// read, and therefore dropped the next time the ledger is written out.

// DecodeLedger reads a ledger from r, one expense per line.
//
// Decoding is lenient: a line that does not hold a well-formed record is
// skipped, it is never an error. Only a failure to read from r is.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		e, ok := decodeExpense(scanner.Text())
		if !ok {
			continue
		}
		ledger.Append(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return ledger, nil
}

// decodeExpense parses a single ledger line, reporting false for a line that
// does not hold a record.
func decodeExpense(line string) (Expense, bool) {
	line = strings.TrimSpace(line)

	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		return Expense{}, false
	}

	// The amount lies after the last '|' so that descriptions containing
	// '|' survive.
	rest := parts[2]
	sep := strings.LastIndexByte(rest, '|')
	if sep < 0 {
		return Expense{}, false
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Expense{}, false
	}
	amount, err := decimal.NewFromString(rest[sep+1:])
	if err != nil {
		return Expense{}, false
	}

	return Expense{
		ID:          id,
		Date:        parts[1],
		Description: strings.TrimSpace(rest[:sep]),
		Amount:      amount,
	}, true
}

// EncodeExpense writes a single expense to w in the ledger line format.
func EncodeExpense(w io.Writer, e Expense) error {
	if _, err := fmt.Fprintf(w, "%d %s %s|%s\n", e.ID, e.Date, e.Description, e.Amount); err != nil {
		return fmt.Errorf("cannot write expense %d: %w", e.ID, err)
	}
	return nil
}

// EncodeLedger writes every record of the ledger to w, in collection order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for e := range ledger.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	return nil
}
