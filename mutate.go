package quill

import "github.com/quill-sql/quill/internal/sqlgen"

// Insert binds one column/value pair for an INSERT statement. Entries emit
// in the order they were bound.
func (qb *QueryBuilder) Insert(column string, value any) *QueryBuilder {
	qb.stmt.Inserts = append(qb.stmt.Inserts, sqlgen.Assignment{Column: column, Value: toValue(value)})
	return qb
}

// Update binds one column/value pair for an UPDATE statement. Entries emit
// in the order they were bound.
func (qb *QueryBuilder) Update(column string, value any) *QueryBuilder {
	qb.stmt.Updates = append(qb.stmt.Updates, sqlgen.Assignment{Column: column, Value: toValue(value)})
	return qb
}

// Delete marks the statement as a DELETE.
func (qb *QueryBuilder) Delete() *QueryBuilder {
	qb.stmt.Delete = true
	return qb
}
