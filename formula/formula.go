// Package formula builds filter expressions in the Airtable formula dialect.
// Expressions are constructed from tagged variants and serialized once; the
// dialect is never parsed. Query strings are embedded as escaped literals so
// quote or delimiter characters cannot break out of the literal context.
package formula

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the plain calendar-date format used throughout the gateway.
const DateLayout = "2006-01-02"

type Expr interface {
	Formula() string
}

type containsExpr struct {
	Field string
	Query string
}

// Contains matches records whose field value contains the query string,
// case-insensitively. The query is lower-cased here so LOWER() is only
// applied to the field side.
func Contains(field string, query string) Expr {
	return containsExpr{Field: field, Query: strings.ToLower(query)}
}

func (contains containsExpr) Formula() string {
	return fmt.Sprintf("SEARCH('%s', LOWER({%s}))", escapeLiteral(contains.Query), contains.Field)
}

type sameDayExpr struct {
	Field string
	Day   time.Time
}

// SameDay matches records whose field falls on the given calendar day.
func SameDay(field string, day time.Time) Expr {
	return sameDayExpr{Field: field, Day: day}
}

func (sameDay sameDayExpr) Formula() string {
	return fmt.Sprintf("IS_SAME({%s}, '%s', 'day')", sameDay.Field, sameDay.Day.Format(DateLayout))
}

type overlapsExpr struct {
	CheckinField  string
	CheckoutField string
	Start         time.Time
	End           time.Time
}

// Overlaps matches bookings whose [checkin, checkout] span intersects the
// inclusive [start, end] range. One day is added past end and subtracted
// before start so both boundary dates are included by the strict
// IS_BEFORE/IS_AFTER comparisons.
func Overlaps(checkinField string, checkoutField string, start time.Time, end time.Time) Expr {
	return overlapsExpr{
		CheckinField:  checkinField,
		CheckoutField: checkoutField,
		Start:         start,
		End:           end,
	}
}

func (overlaps overlapsExpr) Formula() string {
	dayAfterEnd := overlaps.End.AddDate(0, 0, 1).Format(DateLayout)
	dayBeforeStart := overlaps.Start.AddDate(0, 0, -1).Format(DateLayout)
	return fmt.Sprintf("AND(IS_BEFORE({%s}, '%s'), IS_AFTER({%s}, '%s'))",
		overlaps.CheckinField, dayAfterEnd, overlaps.CheckoutField, dayBeforeStart)
}

type naryExpr struct {
	Operator string
	Operands []Expr
}

// And composes operands with logical AND. A single operand renders without
// the wrapper; zero operands render as the empty (unfiltered) formula.
func And(operands ...Expr) Expr {
	return naryExpr{Operator: "AND", Operands: operands}
}

// Or composes operands with logical OR, with the same degenerate-case
// handling as And.
func Or(operands ...Expr) Expr {
	return naryExpr{Operator: "OR", Operands: operands}
}

func (nary naryExpr) Formula() string {
	switch len(nary.Operands) {
	case 0:
		return ""
	case 1:
		return nary.Operands[0].Formula()
	}
	parts := make([]string, 0, len(nary.Operands))
	for _, operand := range nary.Operands {
		parts = append(parts, operand.Formula())
	}
	return nary.Operator + "(" + strings.Join(parts, ", ") + ")"
}

var literalReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\r", "",
	"\n", "",
)

// escapeLiteral makes a string safe to embed in a single-quoted formula
// literal. Backslash and quote are escaped; line breaks are dropped outright
// since no searchable field value contains them.
func escapeLiteral(value string) string {
	return literalReplacer.Replace(value)
}
