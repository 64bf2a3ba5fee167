// Package quill is a fluent SQL query builder. A QueryBuilder accumulates
// clauses through chained calls and compiles them to a single SQL string,
// validating first that the accumulated clauses form a coherent statement.
//
// Basic usage:
//
//	sql, err := quill.Query().
//		Table("flights").
//		Select("origin", "destination").
//		Where("departure_airport", "AMS").
//		SQL()
//
// Statement kind is derived from the clauses bound: Select takes precedence,
// then Insert, Update and Delete; a builder with no projection or mutation
// entries compiles as SELECT *. Validation runs on SQL and PrettySQL and
// rejects incoherent combinations (a HAVING without an aggregate, a JOIN on a
// DELETE, duplicated output column names). SkipValidation bypasses every
// check; the compiled output is then well-formed text but not necessarily
// meaningful SQL.
//
// A builder created with Subquery can be embedded anywhere a value is
// accepted: as a predicate right-hand side, as an element of an IN list, or
// as a projected column via SelectSub.
package quill

import (
	"fmt"

	"github.com/quill-sql/quill/internal/sqlgen"
)

// QueryBuilder accumulates the clauses of one SQL statement. The zero value
// is usable but callers normally start from Query or Subquery. Builders are
// not safe for concurrent use; each one is owned by the call chain that
// builds it.
type QueryBuilder struct {
	stmt       sqlgen.Statement
	skipChecks bool
}

// Query returns an empty builder for a top-level statement.
func Query() *QueryBuilder {
	return &QueryBuilder{}
}

// Subquery returns an empty builder intended for embedding into another
// statement. It behaves identically to Query; the distinct constructor keeps
// call sites readable.
func Subquery() *QueryBuilder {
	return &QueryBuilder{}
}

// Table sets the target table. Calling it again replaces the previous value.
func (qb *QueryBuilder) Table(name string) *QueryBuilder {
	qb.stmt.Table = name
	return qb
}

// SkipValidation disables all semantic checks for this builder. Compilation
// then always succeeds and may emit SQL the target database will reject.
func (qb *QueryBuilder) SkipValidation() *QueryBuilder {
	qb.skipChecks = true
	return qb
}

// toValue converts a Go value to its bound representation. Strings quote,
// integers and booleans render literally, nil renders as the unary IS NULL
// form, slices become parenthesized lists and a *QueryBuilder embeds as a
// parenthesized sub-statement. Anything else is stringified and quoted.
func toValue(v any) sqlgen.Value {
	switch val := v.(type) {
	case nil:
		return sqlgen.Null{}
	case string:
		return sqlgen.Text(val)
	case bool:
		return sqlgen.Bool(val)
	case int:
		return sqlgen.Int(val)
	case int8:
		return sqlgen.Int(val)
	case int16:
		return sqlgen.Int(val)
	case int32:
		return sqlgen.Int(val)
	case int64:
		return sqlgen.Int(val)
	case uint:
		return sqlgen.Int(val)
	case uint8:
		return sqlgen.Int(val)
	case uint16:
		return sqlgen.Int(val)
	case uint32:
		return sqlgen.Int(val)
	case uint64:
		return sqlgen.Int(val)
	case *QueryBuilder:
		return sqlgen.Subquery{Stmt: &val.stmt}
	case sqlgen.Value:
		return val
	case []string, []int, []int64, []any:
		return toList([]any{val})
	default:
		return sqlgen.Text(fmt.Sprintf("%v", val))
	}
}

// toList converts a variadic argument list to a bound list, flattening any
// slice arguments so WhereIn("id", 1, 2) and WhereIn("id", ids) bind the
// same way.
func toList(values []any) sqlgen.List {
	var list sqlgen.List
	for _, v := range values {
		switch val := v.(type) {
		case []string:
			for _, s := range val {
				list = append(list, sqlgen.Text(s))
			}
		case []int:
			for _, n := range val {
				list = append(list, sqlgen.Int(n))
			}
		case []int64:
			for _, n := range val {
				list = append(list, sqlgen.Int(n))
			}
		case []any:
			list = append(list, toList(val)...)
		default:
			list = append(list, toValue(v))
		}
	}
	return list
}
