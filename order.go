package quill

import "github.com/quill-sql/quill/internal/sqlgen"

// GroupBy adds one or more GROUP BY columns. Each column must be projected
// by a select item or be an aggregate alias.
func (qb *QueryBuilder) GroupBy(columns ...string) *QueryBuilder {
	qb.stmt.GroupBy = append(qb.stmt.GroupBy, columns...)
	return qb
}

// Having adds a `column = value` HAVING predicate. The column must be an
// aggregate alias or an explicitly grouped column.
func (qb *QueryBuilder) Having(column string, value any) *QueryBuilder {
	return qb.addHaving(column, sqlgen.OpEqual, value)
}

// HavingNot adds a `column != value` HAVING predicate.
func (qb *QueryBuilder) HavingNot(column string, value any) *QueryBuilder {
	return qb.addHaving(column, sqlgen.OpNotEqual, value)
}

// HavingGt adds a `column > value` HAVING predicate.
func (qb *QueryBuilder) HavingGt(column string, value any) *QueryBuilder {
	return qb.addHaving(column, sqlgen.OpGreaterThan, value)
}

// HavingGte adds a `column >= value` HAVING predicate.
func (qb *QueryBuilder) HavingGte(column string, value any) *QueryBuilder {
	return qb.addHaving(column, sqlgen.OpGreaterThanOrEqual, value)
}

// HavingLt adds a `column < value` HAVING predicate.
func (qb *QueryBuilder) HavingLt(column string, value any) *QueryBuilder {
	return qb.addHaving(column, sqlgen.OpLessThan, value)
}

// HavingLte adds a `column <= value` HAVING predicate.
func (qb *QueryBuilder) HavingLte(column string, value any) *QueryBuilder {
	return qb.addHaving(column, sqlgen.OpLessThanOrEqual, value)
}

func (qb *QueryBuilder) addHaving(column string, op sqlgen.Operator, value any) *QueryBuilder {
	qb.stmt.Havings = append(qb.stmt.Havings, sqlgen.Condition{
		Column:    column,
		Operator:  op,
		Value:     toValue(value),
		Connector: sqlgen.ConnectorAnd,
	})
	return qb
}

// OrderByAsc adds an ascending ORDER BY column.
func (qb *QueryBuilder) OrderByAsc(column string) *QueryBuilder {
	qb.stmt.Orders = append(qb.stmt.Orders, sqlgen.Order{Column: column, Direction: sqlgen.Asc})
	return qb
}

// OrderByDesc adds a descending ORDER BY column.
func (qb *QueryBuilder) OrderByDesc(column string) *QueryBuilder {
	qb.stmt.Orders = append(qb.stmt.Orders, sqlgen.Order{Column: column, Direction: sqlgen.Desc})
	return qb
}

// Limit sets the LIMIT clause. Negative values are ignored.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	if n < 0 {
		return qb
	}
	qb.stmt.Limit = &n
	return qb
}

// Offset sets the OFFSET clause. Negative values are ignored.
func (qb *QueryBuilder) Offset(n int) *QueryBuilder {
	if n < 0 {
		return qb
	}
	qb.stmt.Offset = &n
	return qb
}
