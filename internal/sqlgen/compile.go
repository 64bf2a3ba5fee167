package sqlgen

import (
	"fmt"
	"strings"
)

// Build renders a statement to its SQL text. Rendering is deterministic and
// side-effect-free: the same statement always yields byte-identical output.
// Build assumes its input passed validation (or that the caller opted out);
// it performs no checking of its own.
func Build(s *Statement) string {
	switch s.Action() {
	case ActionInsert:
		return buildInsert(s)
	case ActionUpdate:
		return buildUpdate(s)
	case ActionDelete:
		return buildDelete(s)
	}
	return buildSelect(s)
}

func buildSelect(s *Statement) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(selectList(s.Selects))
	b.WriteString(" FROM ")
	b.WriteString(s.Table)
	for _, j := range s.Joins {
		b.WriteString(" ")
		b.WriteString(j.SQL())
	}
	writeWhere(&b, s)
	if len(s.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(s.GroupBy, ", "))
	}
	if len(s.Havings) > 0 {
		b.WriteString(" HAVING ")
		b.WriteString(renderPredicates(s.Havings, nil))
	}
	if len(s.Orders) > 0 {
		parts := make([]string, len(s.Orders))
		for i, o := range s.Orders {
			parts[i] = o.SQL()
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.Limit != nil {
		fmt.Fprintf(&b, " LIMIT %d", *s.Limit)
	}
	if s.Offset != nil {
		fmt.Fprintf(&b, " OFFSET %d", *s.Offset)
	}
	return b.String()
}

func buildInsert(s *Statement) string {
	columns := make([]string, len(s.Inserts))
	values := make([]string, len(s.Inserts))
	for i, a := range s.Inserts {
		columns[i] = a.Column
		values[i] = a.Value.SQL()
	}
	return "INSERT INTO " + s.Table +
		" (" + strings.Join(columns, ", ") + ")" +
		" VALUES (" + strings.Join(values, ", ") + ")"
}

func buildUpdate(s *Statement) string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(s.Table)
	b.WriteString(" SET ")
	for i, a := range s.Updates {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Column)
		b.WriteString(" = ")
		b.WriteString(a.Value.SQL())
	}
	writeWhere(&b, s)
	return b.String()
}

func buildDelete(s *Statement) string {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(s.Table)
	writeWhere(&b, s)
	return b.String()
}

func selectList(items []SelectItem) string {
	if len(items) == 0 {
		return "*"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.SQL()
	}
	return strings.Join(parts, ", ")
}

func writeWhere(b *strings.Builder, s *Statement) {
	if !s.HasWhere() {
		return
	}
	b.WriteString(" WHERE ")
	b.WriteString(renderPredicates(s.Conditions, s.Groups))
}

// renderPredicates renders the flattened condition list followed by nested
// groups, connectors between consecutive units in declaration order. The
// leading unit's connector is never rendered.
func renderPredicates(conds []Condition, groups []Group) string {
	var b strings.Builder
	first := true
	for _, c := range conds {
		if !first {
			b.WriteString(" " + c.Connector.SQL() + " ")
		}
		b.WriteString(c.SQL())
		first = false
	}
	for _, g := range groups {
		if !first {
			b.WriteString(" " + g.Connector.SQL() + " ")
		}
		b.WriteString(g.SQL())
		first = false
	}
	return b.String()
}
