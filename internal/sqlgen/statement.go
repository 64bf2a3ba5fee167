package sqlgen

// Action is the statement kind a Statement represents. It is derived from
// which clause lists are non-empty, never set directly.
type Action int

const (
	ActionSelect Action = iota
	ActionInsert
	ActionUpdate
	ActionDelete
)

// Statement is the accumulated binding set for one statement. It is pure
// storage: the fluent API appends entries, the validator inspects them, and
// Build renders them. Table is single-valued and last-write-wins; every other
// field grows monotonically.
type Statement struct {
	Table      string
	Selects    []SelectItem
	Inserts    []Assignment
	Updates    []Assignment
	Delete     bool
	Conditions []Condition
	Groups     []Group
	Joins      []Join
	GroupBy    []string
	Havings    []Condition
	Orders     []Order
	Limit      *int
	Offset     *int
}

// Action derives the statement kind. Select clauses take precedence over
// mutation clauses; an empty statement is a Select.
func (s *Statement) Action() Action {
	switch {
	case len(s.Selects) > 0:
		return ActionSelect
	case len(s.Inserts) > 0:
		return ActionInsert
	case len(s.Updates) > 0:
		return ActionUpdate
	case s.Delete:
		return ActionDelete
	}
	return ActionSelect
}

// HasWhere reports whether any flattened condition or nested group is bound.
func (s *Statement) HasWhere() bool {
	return len(s.Conditions) > 0 || len(s.Groups) > 0
}
