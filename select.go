package quill

import "github.com/quill-sql/quill/internal/sqlgen"

// Select projects one or more plain columns.
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	for _, column := range columns {
		qb.stmt.Selects = append(qb.stmt.Selects, sqlgen.Column(column))
	}
	return qb
}

// SelectAs projects an expression under an alias, rendered `column AS alias`.
// The expression may be a textual aggregate such as "AVG(duration)"; the
// validator recognizes the aggregate prefix when checking HAVING clauses.
func (qb *QueryBuilder) SelectAs(column, alias string) *QueryBuilder {
	qb.stmt.Selects = append(qb.stmt.Selects, sqlgen.AliasedColumn{Column: column, Alias: alias})
	return qb
}

// SelectRaw projects a raw expression with positional `?` placeholders
// substituted from values. The placeholder count must match len(values).
func (qb *QueryBuilder) SelectRaw(fragment string, values ...any) *QueryBuilder {
	bound := make([]sqlgen.Value, len(values))
	for i, v := range values {
		bound[i] = toValue(v)
	}
	qb.stmt.Selects = append(qb.stmt.Selects, sqlgen.RawFragment{Fragment: fragment, Values: bound})
	return qb
}

// SelectCount projects `COUNT(column) AS alias`.
func (qb *QueryBuilder) SelectCount(column, alias string) *QueryBuilder {
	return qb.selectAggregate(sqlgen.AggCount, column, alias)
}

// SelectMin projects `MIN(column) AS alias`.
func (qb *QueryBuilder) SelectMin(column, alias string) *QueryBuilder {
	return qb.selectAggregate(sqlgen.AggMin, column, alias)
}

// SelectMax projects `MAX(column) AS alias`.
func (qb *QueryBuilder) SelectMax(column, alias string) *QueryBuilder {
	return qb.selectAggregate(sqlgen.AggMax, column, alias)
}

// SelectSum projects `SUM(column) AS alias`.
func (qb *QueryBuilder) SelectSum(column, alias string) *QueryBuilder {
	return qb.selectAggregate(sqlgen.AggSum, column, alias)
}

// SelectAvg projects `AVG(column) AS alias`.
func (qb *QueryBuilder) SelectAvg(column, alias string) *QueryBuilder {
	return qb.selectAggregate(sqlgen.AggAvg, column, alias)
}

func (qb *QueryBuilder) selectAggregate(fn sqlgen.Aggregate, column, alias string) *QueryBuilder {
	qb.stmt.Selects = append(qb.stmt.Selects, sqlgen.AggregateColumn{Fn: fn, Column: column, Alias: alias})
	return qb
}

// SelectDistinct projects `DISTINCT column`.
func (qb *QueryBuilder) SelectDistinct(column string) *QueryBuilder {
	qb.stmt.Selects = append(qb.stmt.Selects, sqlgen.DistinctColumn(column))
	return qb
}

// SelectSub projects a compiled sub-statement under an alias, rendered
// `(SELECT ...) AS alias`.
func (qb *QueryBuilder) SelectSub(sub *QueryBuilder, alias string) *QueryBuilder {
	qb.stmt.Selects = append(qb.stmt.Selects, sqlgen.SubquerySelect{Stmt: &sub.stmt, Alias: alias})
	return qb
}
