package quill

import (
	"github.com/quill-sql/quill/internal/sqlfmt"
	"github.com/quill-sql/quill/internal/sqlgen"
)

// SQL validates the accumulated clauses and compiles them to a single SQL
// string. Compiling the same builder twice yields byte-identical output.
// With SkipValidation set, validation is bypassed and compilation always
// succeeds.
func (qb *QueryBuilder) SQL() (string, error) {
	if !qb.skipChecks {
		if err := validate(&qb.stmt); err != nil {
			return "", err
		}
	}
	return sqlgen.Build(&qb.stmt), nil
}

// PrettySQL compiles like SQL and re-indents the result, one clause per line
// with uppercase keywords. Formatting only moves whitespace and recases
// keywords; the statement's meaning is unchanged.
func (qb *QueryBuilder) PrettySQL() (string, error) {
	raw, err := qb.SQL()
	if err != nil {
		return "", err
	}
	return sqlfmt.Format(raw, sqlfmt.DefaultOptions()), nil
}
