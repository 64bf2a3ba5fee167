// Package sqlgen holds the binding model and the SQL compiler for quill.
// The public fluent API in the root package appends model entries to a
// Statement; Build renders a validated Statement to its SQL text.
package sqlgen

import (
	"fmt"
	"strings"
)

// Value is a bound value rendered into a statement.
type Value interface {
	SQL() string
}

// Text represents a string value (auto-quoted with single quotes).
type Text string

// SQL renders the value with single quotes, doubling embedded quotes.
func (t Text) SQL() string {
	escaped := strings.ReplaceAll(string(t), "'", "''")
	return "'" + escaped + "'"
}

// Int represents an integer value.
type Int int64

// SQL renders the integer.
func (i Int) SQL() string {
	return fmt.Sprintf("%d", i)
}

// Bool represents a boolean value.
type Bool bool

// SQL renders the boolean.
func (b Bool) SQL() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Null represents SQL NULL. Conditions carrying a Null value render in the
// unary IS NULL / IS NOT NULL form with no right-hand operand.
type Null struct{}

// SQL renders NULL.
func (Null) SQL() string {
	return "NULL"
}

// List represents an array value, rendered as a parenthesized comma list.
// Subquery elements render bare inside the list's paren pair, so a list
// holding a single subquery keeps exactly one level of parentheses:
// IN (SELECT ...), never IN ((SELECT ...)).
type List []Value

// SQL renders the list.
func (l List) SQL() string {
	parts := make([]string, len(l))
	for i, v := range l {
		if sub, ok := v.(Subquery); ok {
			parts[i] = Build(sub.Stmt)
		} else {
			parts[i] = v.SQL()
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Subquery embeds a complete statement as a value. The embedded statement is
// owned by the value; compilation recurses into it with no shared state.
type Subquery struct {
	Stmt *Statement
}

// SQL renders the compiled sub-statement wrapped in parentheses.
func (s Subquery) SQL() string {
	return "(" + Build(s.Stmt) + ")"
}
