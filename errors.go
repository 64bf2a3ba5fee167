package quill

import "errors"

// Sentinel errors returned by validation. The validator runs a fixed sequence
// of checks and stops at the first violation; each check surfaces exactly one
// of these, with the offending identifier (column name, raw fragment, clause
// keyword) wrapped into the message where one exists.
//
// Use the Is*Err helper functions to check for specific errors.
var (
	// ErrMissingTable is returned when a statement has no target table.
	ErrMissingTable = errors.New("quill: no table specified")

	// ErrDuplicateColumnName is returned when two select items would render
	// the same output column name.
	ErrDuplicateColumnName = errors.New("quill: duplicated column name")

	// ErrMissingPlaceholders is returned when a raw select fragment's `?`
	// placeholder count does not match the number of supplied values.
	ErrMissingPlaceholders = errors.New("quill: placeholder count does not match value count")

	// ErrHavingWithoutAggregate is returned when a HAVING column is neither
	// an aggregate alias nor explicitly grouped.
	ErrHavingWithoutAggregate = errors.New("quill: HAVING column is not an aggregate or grouped column")

	// ErrGroupByNotProjected is returned when a GROUP BY column is not
	// selected and is not an aggregate alias.
	ErrGroupByNotProjected = errors.New("quill: GROUP BY column is not selected")

	// ErrOrderByNotProjected is returned when an ORDER BY column is not
	// selected and is not an aggregate alias.
	ErrOrderByNotProjected = errors.New("quill: ORDER BY column is not selected")

	// ErrClauseOnInsert is returned when a clause that only applies to
	// SELECT statements is bound to an INSERT.
	ErrClauseOnInsert = errors.New("quill: clause cannot be applied to INSERT")

	// ErrClauseOnUpdate is returned when a clause is bound to an UPDATE
	// that does not support it.
	ErrClauseOnUpdate = errors.New("quill: clause cannot be applied to UPDATE")

	// ErrClauseOnDelete is returned when a clause is bound to a DELETE
	// that does not support it.
	ErrClauseOnDelete = errors.New("quill: clause cannot be applied to DELETE")
)

// IsMissingTableErr returns true if err is or wraps ErrMissingTable.
func IsMissingTableErr(err error) bool {
	return errors.Is(err, ErrMissingTable)
}

// IsDuplicateColumnNameErr returns true if err is or wraps ErrDuplicateColumnName.
func IsDuplicateColumnNameErr(err error) bool {
	return errors.Is(err, ErrDuplicateColumnName)
}

// IsMissingPlaceholdersErr returns true if err is or wraps ErrMissingPlaceholders.
func IsMissingPlaceholdersErr(err error) bool {
	return errors.Is(err, ErrMissingPlaceholders)
}

// IsHavingWithoutAggregateErr returns true if err is or wraps ErrHavingWithoutAggregate.
func IsHavingWithoutAggregateErr(err error) bool {
	return errors.Is(err, ErrHavingWithoutAggregate)
}

// IsGroupByNotProjectedErr returns true if err is or wraps ErrGroupByNotProjected.
func IsGroupByNotProjectedErr(err error) bool {
	return errors.Is(err, ErrGroupByNotProjected)
}

// IsOrderByNotProjectedErr returns true if err is or wraps ErrOrderByNotProjected.
func IsOrderByNotProjectedErr(err error) bool {
	return errors.Is(err, ErrOrderByNotProjected)
}

// IsClauseOnInsertErr returns true if err is or wraps ErrClauseOnInsert.
func IsClauseOnInsertErr(err error) bool {
	return errors.Is(err, ErrClauseOnInsert)
}

// IsClauseOnUpdateErr returns true if err is or wraps ErrClauseOnUpdate.
func IsClauseOnUpdateErr(err error) bool {
	return errors.Is(err, ErrClauseOnUpdate)
}

// IsClauseOnDeleteErr returns true if err is or wraps ErrClauseOnDelete.
func IsClauseOnDeleteErr(err error) bool {
	return errors.Is(err, ErrClauseOnDelete)
}
