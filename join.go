package quill

import "github.com/quill-sql/quill/internal/sqlgen"

// Join adds an inner join: `JOIN table ON left = right`.
func (qb *QueryBuilder) Join(table, left, right string) *QueryBuilder {
	return qb.addJoin(table, left, right, sqlgen.JoinInner)
}

// LeftJoin adds a `LEFT JOIN table ON left = right` clause.
func (qb *QueryBuilder) LeftJoin(table, left, right string) *QueryBuilder {
	return qb.addJoin(table, left, right, sqlgen.JoinLeft)
}

// RightJoin adds a `RIGHT JOIN table ON left = right` clause.
func (qb *QueryBuilder) RightJoin(table, left, right string) *QueryBuilder {
	return qb.addJoin(table, left, right, sqlgen.JoinRight)
}

// FullJoin adds a `FULL JOIN table ON left = right` clause.
func (qb *QueryBuilder) FullJoin(table, left, right string) *QueryBuilder {
	return qb.addJoin(table, left, right, sqlgen.JoinFull)
}

func (qb *QueryBuilder) addJoin(table, left, right string, kind sqlgen.JoinKind) *QueryBuilder {
	qb.stmt.Joins = append(qb.stmt.Joins, sqlgen.Join{
		Table: table,
		Left:  left,
		Right: right,
		Kind:  kind,
	})
	return qb
}
