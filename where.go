package quill

import "github.com/quill-sql/quill/internal/sqlgen"

func (qb *QueryBuilder) addCondition(column string, op sqlgen.Operator, value sqlgen.Value, connector sqlgen.Connector) *QueryBuilder {
	qb.stmt.Conditions = append(qb.stmt.Conditions, sqlgen.Condition{
		Column:    column,
		Operator:  op,
		Value:     value,
		Connector: connector,
	})
	return qb
}

// Where adds an equality predicate, AND-connected to the previous one.
// A nil value renders as `column IS NULL`.
func (qb *QueryBuilder) Where(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpEqual, toValue(value), sqlgen.ConnectorAnd)
}

// OrWhere adds an equality predicate, OR-connected to the previous one.
func (qb *QueryBuilder) OrWhere(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpEqual, toValue(value), sqlgen.ConnectorOr)
}

// WhereNot adds a `column != value` predicate. A nil value renders as
// `column IS NOT NULL`.
func (qb *QueryBuilder) WhereNot(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpNotEqual, toValue(value), sqlgen.ConnectorAnd)
}

// OrWhereNot adds an OR-connected `column != value` predicate.
func (qb *QueryBuilder) OrWhereNot(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpNotEqual, toValue(value), sqlgen.ConnectorOr)
}

// WhereGt adds a `column > value` predicate.
func (qb *QueryBuilder) WhereGt(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpGreaterThan, toValue(value), sqlgen.ConnectorAnd)
}

// OrWhereGt adds an OR-connected `column > value` predicate.
func (qb *QueryBuilder) OrWhereGt(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpGreaterThan, toValue(value), sqlgen.ConnectorOr)
}

// WhereGte adds a `column >= value` predicate.
func (qb *QueryBuilder) WhereGte(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpGreaterThanOrEqual, toValue(value), sqlgen.ConnectorAnd)
}

// OrWhereGte adds an OR-connected `column >= value` predicate.
func (qb *QueryBuilder) OrWhereGte(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpGreaterThanOrEqual, toValue(value), sqlgen.ConnectorOr)
}

// WhereLt adds a `column < value` predicate.
func (qb *QueryBuilder) WhereLt(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpLessThan, toValue(value), sqlgen.ConnectorAnd)
}

// OrWhereLt adds an OR-connected `column < value` predicate.
func (qb *QueryBuilder) OrWhereLt(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpLessThan, toValue(value), sqlgen.ConnectorOr)
}

// WhereLte adds a `column <= value` predicate.
func (qb *QueryBuilder) WhereLte(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpLessThanOrEqual, toValue(value), sqlgen.ConnectorAnd)
}

// OrWhereLte adds an OR-connected `column <= value` predicate.
func (qb *QueryBuilder) OrWhereLte(column string, value any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpLessThanOrEqual, toValue(value), sqlgen.ConnectorOr)
}

// WhereLike adds a `column LIKE pattern` predicate.
func (qb *QueryBuilder) WhereLike(column, pattern string) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpLike, sqlgen.Text(pattern), sqlgen.ConnectorAnd)
}

// OrWhereLike adds an OR-connected `column LIKE pattern` predicate.
func (qb *QueryBuilder) OrWhereLike(column, pattern string) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpLike, sqlgen.Text(pattern), sqlgen.ConnectorOr)
}

// WhereNotLike adds a `column NOT LIKE pattern` predicate.
func (qb *QueryBuilder) WhereNotLike(column, pattern string) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpNotLike, sqlgen.Text(pattern), sqlgen.ConnectorAnd)
}

// OrWhereNotLike adds an OR-connected `column NOT LIKE pattern` predicate.
func (qb *QueryBuilder) OrWhereNotLike(column, pattern string) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpNotLike, sqlgen.Text(pattern), sqlgen.ConnectorOr)
}

// WhereIn adds a `column IN (...)` predicate. Slice arguments are flattened,
// so WhereIn("id", 1, 2) and WhereIn("id", ids) are equivalent. A *QueryBuilder
// element embeds as a sub-statement: WhereIn("id", sub) renders
// `id IN (SELECT ...)`.
func (qb *QueryBuilder) WhereIn(column string, values ...any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpIn, toList(values), sqlgen.ConnectorAnd)
}

// OrWhereIn adds an OR-connected `column IN (...)` predicate.
func (qb *QueryBuilder) OrWhereIn(column string, values ...any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpIn, toList(values), sqlgen.ConnectorOr)
}

// WhereNotIn adds a `column NOT IN (...)` predicate.
func (qb *QueryBuilder) WhereNotIn(column string, values ...any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpNotIn, toList(values), sqlgen.ConnectorAnd)
}

// OrWhereNotIn adds an OR-connected `column NOT IN (...)` predicate.
func (qb *QueryBuilder) OrWhereNotIn(column string, values ...any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpNotIn, toList(values), sqlgen.ConnectorOr)
}

// WhereBetween adds a `column BETWEEN low AND high` predicate.
func (qb *QueryBuilder) WhereBetween(column string, low, high any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpBetween, sqlgen.List{toValue(low), toValue(high)}, sqlgen.ConnectorAnd)
}

// OrWhereBetween adds an OR-connected `column BETWEEN low AND high` predicate.
func (qb *QueryBuilder) OrWhereBetween(column string, low, high any) *QueryBuilder {
	return qb.addCondition(column, sqlgen.OpBetween, sqlgen.List{toValue(low), toValue(high)}, sqlgen.ConnectorOr)
}

// WhereNull adds a `column IS NULL` predicate per column.
func (qb *QueryBuilder) WhereNull(columns ...string) *QueryBuilder {
	for _, column := range columns {
		qb.addCondition(column, sqlgen.OpIsNull, sqlgen.Null{}, sqlgen.ConnectorAnd)
	}
	return qb
}

// OrWhereNull adds an OR-connected `column IS NULL` predicate per column.
func (qb *QueryBuilder) OrWhereNull(columns ...string) *QueryBuilder {
	for _, column := range columns {
		qb.addCondition(column, sqlgen.OpIsNull, sqlgen.Null{}, sqlgen.ConnectorOr)
	}
	return qb
}

// WhereNotNull adds a `column IS NOT NULL` predicate per column.
func (qb *QueryBuilder) WhereNotNull(columns ...string) *QueryBuilder {
	for _, column := range columns {
		qb.addCondition(column, sqlgen.OpIsNotNull, sqlgen.Null{}, sqlgen.ConnectorAnd)
	}
	return qb
}

// OrWhereNotNull adds an OR-connected `column IS NOT NULL` predicate per column.
func (qb *QueryBuilder) OrWhereNotNull(columns ...string) *QueryBuilder {
	for _, column := range columns {
		qb.addCondition(column, sqlgen.OpIsNotNull, sqlgen.Null{}, sqlgen.ConnectorOr)
	}
	return qb
}

// WhereGroup appends a parenthesized predicate group, AND-connected to the
// preceding predicates. The closure receives a fresh builder; its WHERE
// predicates and nested groups become the group's contents, and groups may
// nest arbitrarily:
//
//	q.WhereNotNull("departure_time").
//		WhereGroup(func(g *quill.QueryBuilder) *quill.QueryBuilder {
//			return g.Where("origin", "AMS").OrWhere("origin", "FRA")
//		})
func (qb *QueryBuilder) WhereGroup(fn func(*QueryBuilder) *QueryBuilder) *QueryBuilder {
	return qb.addGroup(fn, sqlgen.ConnectorAnd)
}

// OrWhereGroup appends an OR-connected parenthesized predicate group.
func (qb *QueryBuilder) OrWhereGroup(fn func(*QueryBuilder) *QueryBuilder) *QueryBuilder {
	return qb.addGroup(fn, sqlgen.ConnectorOr)
}

func (qb *QueryBuilder) addGroup(fn func(*QueryBuilder) *QueryBuilder, connector sqlgen.Connector) *QueryBuilder {
	child := fn(&QueryBuilder{})
	qb.stmt.Groups = append(qb.stmt.Groups, sqlgen.Group{
		Connector:  connector,
		Conditions: child.stmt.Conditions,
		Groups:     child.stmt.Groups,
	})
	return qb
}
