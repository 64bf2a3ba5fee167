package sqlgen

import "strings"

// SelectItem is one projected output of a SELECT statement.
//
// OutputName reports the name the item contributes to the output row: the
// column name for plain and distinct columns, the alias for aliased,
// aggregate and subquery items, and "" for raw fragments which have no single
// addressable name. The validator uses OutputName for duplicate detection and
// projection checks.
type SelectItem interface {
	SQL() string
	OutputName() string
}

// Column is a plain projected column.
type Column string

// SQL renders the bare column.
func (c Column) SQL() string { return string(c) }

// OutputName implements SelectItem.
func (c Column) OutputName() string { return string(c) }

// AliasedColumn projects an expression under an alias.
type AliasedColumn struct {
	Column string
	Alias  string
}

// SQL renders `column AS alias`.
func (a AliasedColumn) SQL() string { return a.Column + " AS " + a.Alias }

// OutputName implements SelectItem.
func (a AliasedColumn) OutputName() string { return a.Alias }

// Aggregate is the closed set of aggregate functions.
type Aggregate int

const (
	AggCount Aggregate = iota
	AggMin
	AggMax
	AggSum
	AggAvg
)

func (a Aggregate) keyword() string {
	switch a {
	case AggCount:
		return "COUNT"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	case AggSum:
		return "SUM"
	case AggAvg:
		return "AVG"
	}
	return "COUNT"
}

// AggregateColumn projects an aggregate-function application under an alias.
type AggregateColumn struct {
	Fn     Aggregate
	Column string
	Alias  string
}

// SQL renders `FUNCTION(column) AS alias`.
func (a AggregateColumn) SQL() string {
	return a.Fn.keyword() + "(" + a.Column + ") AS " + a.Alias
}

// OutputName implements SelectItem.
func (a AggregateColumn) OutputName() string { return a.Alias }

// DistinctColumn projects a column with a DISTINCT marker.
type DistinctColumn string

// SQL renders `DISTINCT column`.
func (d DistinctColumn) SQL() string { return "DISTINCT " + string(d) }

// OutputName implements SelectItem.
func (d DistinctColumn) OutputName() string { return string(d) }

// RawFragment is a raw select expression with positional `?` placeholders
// substituted from Values. The validator enforces that the placeholder count
// matches len(Values) before compilation; if it does not and validation was
// bypassed, unmatched placeholders render as-is.
type RawFragment struct {
	Fragment string
	Values   []Value
}

// SQL renders the fragment with placeholders substituted positionally.
func (r RawFragment) SQL() string {
	var b strings.Builder
	next := 0
	for _, ch := range r.Fragment {
		if ch == '?' && next < len(r.Values) {
			b.WriteString(r.Values[next].SQL())
			next++
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// OutputName implements SelectItem. Raw fragments have no single output name.
func (r RawFragment) OutputName() string { return "" }

// SubquerySelect projects an embedded sub-statement under an alias.
type SubquerySelect struct {
	Stmt  *Statement
	Alias string
}

// SQL renders `(SELECT ...) AS alias` with the inner statement fully compiled.
func (s SubquerySelect) SQL() string {
	return "(" + Build(s.Stmt) + ") AS " + s.Alias
}

// OutputName implements SelectItem.
func (s SubquerySelect) OutputName() string { return s.Alias }
