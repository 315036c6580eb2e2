// Package render writes query results as a terminal table, CSV, JSON or
// MessagePack.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/litescript/skyq/internal/query"
	"github.com/litescript/skyq/internal/skyerr"
)

// Format selects an output encoding.
type Format string

const (
	Term    Format = "term"
	CSV     Format = "csv"
	JSON    Format = "json"
	Msgpack Format = "msgpack"
)

// Formats lists the accepted format names.
func Formats() []Format { return []Format{Term, CSV, JSON, Msgpack} }

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Term, CSV, JSON, Msgpack:
		return f, nil
	case "space", "":
		return Term, nil
	}
	names := make([]string, 0, 4)
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", skyerr.Configuration("format", s, "expected one of "+strings.Join(names, ", "))
}

// Options tune the terminal format.
type Options struct {
	// Color enables bold headers.
	Color bool
}

// NotAvailable fills cells of rows that failed to evaluate.
const NotAvailable = "n/a"

// Write renders res to w in format f.
func Write(w io.Writer, res query.Result, f Format, opts Options) error {
	var err error
	switch f {
	case Term, "":
		err = writeTerm(w, res, opts)
	case CSV:
		err = writeCSV(w, res)
	case JSON:
		err = writeJSON(w, res)
	case Msgpack:
		err = writeMsgpack(w, res)
	default:
		return skyerr.Configuration("format", string(f), "unknown output format")
	}
	if err != nil {
		return fmt.Errorf("write %s output: %w", f, err)
	}
	return nil
}

// cells returns the text of each column in row, or n/a for failed rows.
func cells(res query.Result, row query.Row) []string {
	out := make([]string, len(res.Columns))
	for i := range res.Columns {
		if row.Err != nil || i >= len(row.Values) || row.Values[i] == nil {
			out[i] = NotAvailable
			continue
		}
		out[i] = row.Values[i].Text()
	}
	return out
}

// keys returns the record keys, date first, with repeats numbered _2, _3.
func keys(res query.Result) []string {
	seen := map[string]int{"date": 1}
	out := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		seen[c.Key]++
		if n := seen[c.Key]; n > 1 {
			out[i] = c.Key + "_" + strconv.Itoa(n)
		} else {
			out[i] = c.Key
		}
	}
	return out
}
