package sqlgen

// Operator is the closed set of comparison operators a condition can carry.
// Rendering is an exhaustive switch so adding an operator is a compile-time
// visible change everywhere it is rendered.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLessThan
	OpLessThanOrEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLike
	OpNotLike
	OpIn
	OpNotIn
	OpBetween
	OpIsNull
	OpIsNotNull
)

func (op Operator) keyword() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanOrEqual:
		return ">="
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpIn:
		return "IN"
	case OpNotIn:
		return "NOT IN"
	case OpBetween:
		return "BETWEEN"
	case OpIsNull:
		return "IS NULL"
	case OpIsNotNull:
		return "IS NOT NULL"
	}
	return "="
}

// Connector joins a predicate to the predicate before it.
type Connector int

const (
	ConnectorAnd Connector = iota
	ConnectorOr
)

// SQL renders the connector keyword.
func (c Connector) SQL() string {
	if c == ConnectorOr {
		return "OR"
	}
	return "AND"
}

// Condition is a single comparison forming part of a WHERE or HAVING clause.
type Condition struct {
	Column    string
	Operator  Operator
	Value     Value
	Connector Connector
}

// SQL renders the condition as `column operator value`, except for the unary
// null forms and BETWEEN which renders `column BETWEEN low AND high`.
func (c Condition) SQL() string {
	switch c.Operator {
	case OpIsNull:
		return c.Column + " IS NULL"
	case OpIsNotNull:
		return c.Column + " IS NOT NULL"
	case OpBetween:
		if bounds, ok := c.Value.(List); ok && len(bounds) == 2 {
			return c.Column + " BETWEEN " + bounds[0].SQL() + " AND " + bounds[1].SQL()
		}
	}

	// A Null value flips any binary operator into the unary form.
	if _, ok := c.Value.(Null); ok {
		if c.Operator == OpNotEqual {
			return c.Column + " IS NOT NULL"
		}
		return c.Column + " IS NULL"
	}

	return c.Column + " " + c.Operator.keyword() + " " + c.Value.SQL()
}

// Group is a parenthesized cluster of predicates, attached to the enclosing
// predicate list via its own connector. Groups nest arbitrarily.
type Group struct {
	Connector  Connector
	Conditions []Condition
	Groups     []Group
}

// SQL renders the group as a single parenthesized unit.
func (g Group) SQL() string {
	return "(" + renderPredicates(g.Conditions, g.Groups) + ")"
}

// JoinKind is the closed set of supported join types.
type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
)

func (k JoinKind) keyword() string {
	switch k {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	}
	return "JOIN"
}

// Join is one join specification: target table and the two qualified columns
// compared in the ON clause.
type Join struct {
	Table string
	Left  string
	Right string
	Kind  JoinKind
}

// SQL renders the join clause.
func (j Join) SQL() string {
	return j.Kind.keyword() + " " + j.Table + " ON " + j.Left + " = " + j.Right
}

// Direction is an ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) keyword() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Order is one ordering specification.
type Order struct {
	Column    string
	Direction Direction
}

// SQL renders the order specification.
func (o Order) SQL() string {
	return o.Column + " " + o.Direction.keyword()
}

// Assignment is one column/value pair of an INSERT or UPDATE mutation.
// Declaration order is preserved and is the emission order.
type Assignment struct {
	Column string
	Value  Value
}
