// Package query executes a property list against an object at one instant or
// across an ephemeris range.
package query

import (
	"context"
	"fmt"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/catalog"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/logging"
	"github.com/litescript/skyq/internal/property"
	"github.com/litescript/skyq/internal/series"
	"github.com/litescript/skyq/internal/value"
)

// Query is a resolved request: what to observe, what to compute, and from
// where.
type Query struct {
	Object   catalog.Object
	Props    []property.Spec
	Location *angle.GeoCoord
}

// Column describes one property column of a result.
type Column struct {
	Title string
	Key   string
}

// Row holds the values of every column at one instant. A row whose
// evaluation failed under SkipRow carries Err and no values.
type Row struct {
	At     instant.Instant
	Values []value.Value
	Err    error
}

// Result is a finished query.
type Result struct {
	Title   string
	Columns []Column
	Rows    []Row
	// Series is set for sweeps, which always render as tables.
	Series bool
}

// Single reports whether the result is exactly one value at one instant.
func (r Result) Single() bool {
	return !r.Series && len(r.Rows) == 1 && len(r.Columns) == 1 && r.Rows[0].Err == nil
}

// Policy decides what a sweep does when a row fails to evaluate.
type Policy int

const (
	// AbortAll stops the sweep and returns the first error.
	AbortAll Policy = iota
	// SkipRow marks the failing row and continues.
	SkipRow
)

func (p Policy) String() string {
	if p == SkipRow {
		return "skip-row"
	}
	return "abort-all"
}

// Executor evaluates queries.
type Executor struct {
	Evaluator property.Evaluator
	Policy    Policy
	// Limit caps sweep length; zero means series.DefaultLimit.
	Limit int
	Log   *logging.Logger
}

// Validate checks every property against the object and location before
// anything is evaluated.
func (e *Executor) Validate(q Query) error {
	for _, s := range q.Props {
		if err := property.Check(s, q.Object, q.Location != nil); err != nil {
			return err
		}
	}
	return nil
}

// At evaluates q at a single instant. Any failure aborts.
func (e *Executor) At(q Query, t instant.Instant) (Result, error) {
	if err := e.Validate(q); err != nil {
		return Result{}, err
	}
	res := e.result(q)
	row, err := e.row(q, t)
	if err != nil {
		return Result{}, err
	}
	res.Rows = []Row{row}
	return res, nil
}

// Sweep evaluates q at every instant of spec, honoring the executor's
// Policy. Cancellation of ctx stops the sweep between rows.
func (e *Executor) Sweep(ctx context.Context, q Query, spec series.Spec) (Result, error) {
	if err := e.Validate(q); err != nil {
		return Result{}, err
	}
	if err := spec.Validate(e.limit()); err != nil {
		return Result{}, err
	}
	log := e.logger()
	log.Debugw("sweep", "object", q.Object.Name, "range", spec.String(), "policy", e.Policy.String())

	res := e.result(q)
	res.Series = true
	for at := range spec.All() {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("sweep interrupted: %w", err)
		}
		row, err := e.row(q, at)
		if err != nil {
			if e.Policy != SkipRow {
				return Result{}, err
			}
			log.Warnw("row skipped", "date", at.String(), "error", err.Error())
			row = Row{At: at, Err: err}
		}
		res.Rows = append(res.Rows, row)
	}
	log.Debug("sweep produced %d rows", len(res.Rows))
	return res, nil
}

func (e *Executor) result(q Query) Result {
	cols := make([]Column, len(q.Props))
	for i, s := range q.Props {
		cols[i] = Column{Title: s.Title(), Key: s.Key()}
	}
	return Result{Title: q.Object.Name, Columns: cols}
}

func (e *Executor) row(q Query, at instant.Instant) (Row, error) {
	ctx := property.Context{Object: q.Object, At: at, Location: q.Location}
	values := make([]value.Value, len(q.Props))
	for i, s := range q.Props {
		v, err := e.Evaluator.Evaluate(s, ctx)
		if err != nil {
			return Row{}, fmt.Errorf("at %s: %w", at, err)
		}
		values[i] = v
	}
	return Row{At: at, Values: values}, nil
}

func (e *Executor) limit() int {
	if e.Limit == 0 {
		return series.DefaultLimit
	}
	return e.Limit
}

func (e *Executor) logger() *logging.Logger {
	if e.Log == nil {
		return logging.Discard()
	}
	return e.Log
}
