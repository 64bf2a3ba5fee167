package quill

import (
	"fmt"
	"strings"

	"github.com/quill-sql/quill/internal/sqlgen"
)

// validate runs the semantic checks over an accumulated statement in a fixed
// order and stops at the first violation. Embedded sub-statements are
// validated recursively after the host statement passes.
func validate(s *sqlgen.Statement) error {
	if s.Table == "" {
		return ErrMissingTable
	}
	if err := checkDuplicateNames(s); err != nil {
		return err
	}
	if err := checkPlaceholderArity(s); err != nil {
		return err
	}
	if err := checkHavingAggregates(s); err != nil {
		return err
	}
	if err := checkGroupByProjected(s); err != nil {
		return err
	}
	if err := checkOrderByProjected(s); err != nil {
		return err
	}
	if err := checkClauseCompatibility(s); err != nil {
		return err
	}
	for _, sub := range subStatements(s) {
		if err := validate(sub); err != nil {
			return err
		}
	}
	return nil
}

// checkDuplicateNames rejects two select items rendering the same output
// column name. Raw fragments have no output name and are exempt.
func checkDuplicateNames(s *sqlgen.Statement) error {
	seen := make(map[string]bool, len(s.Selects))
	for _, item := range s.Selects {
		name := item.OutputName()
		if name == "" {
			continue
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumnName, name)
		}
		seen[name] = true
	}
	return nil
}

// checkPlaceholderArity requires every raw fragment's `?` count to equal the
// number of values bound to it.
func checkPlaceholderArity(s *sqlgen.Statement) error {
	for _, item := range s.Selects {
		raw, ok := item.(sqlgen.RawFragment)
		if !ok {
			continue
		}
		if strings.Count(raw.Fragment, "?") != len(raw.Values) {
			return fmt.Errorf("%w: %q", ErrMissingPlaceholders, raw.Fragment)
		}
	}
	return nil
}

// checkHavingAggregates requires every HAVING column to be an aggregate
// alias or an explicitly grouped column.
func checkHavingAggregates(s *sqlgen.Statement) error {
	for _, h := range s.Havings {
		if isAggregateContext(s, h.Column) {
			continue
		}
		return fmt.Errorf("%w: %q", ErrHavingWithoutAggregate, h.Column)
	}
	return nil
}

// checkGroupByProjected requires every GROUP BY column to be projected.
// Unlike the ORDER BY check this applies even when nothing is selected:
// grouping on an unprojected column against SELECT * is rejected.
func checkGroupByProjected(s *sqlgen.Statement) error {
	for _, column := range s.GroupBy {
		if !isProjected(s, column) {
			return fmt.Errorf("%w: %q", ErrGroupByNotProjected, column)
		}
	}
	return nil
}

// checkOrderByProjected requires every ORDER BY column to be projected.
// With an empty select list the statement compiles as SELECT *, so every
// column is projected and the check is vacuous.
func checkOrderByProjected(s *sqlgen.Statement) error {
	if len(s.Selects) == 0 {
		return nil
	}
	for _, o := range s.Orders {
		if !isProjected(s, o.Column) {
			return fmt.Errorf("%w: %q", ErrOrderByNotProjected, o.Column)
		}
	}
	return nil
}

// checkClauseCompatibility rejects clauses bound to a statement kind that
// cannot carry them. WHERE is legal on Select, Update and Delete; every
// other clause is Select-only.
func checkClauseCompatibility(s *sqlgen.Statement) error {
	switch s.Action() {
	case sqlgen.ActionInsert:
		return firstIllegalClause(s, ErrClauseOnInsert, true)
	case sqlgen.ActionUpdate:
		return firstIllegalClause(s, ErrClauseOnUpdate, false)
	case sqlgen.ActionDelete:
		return firstIllegalClause(s, ErrClauseOnDelete, false)
	}
	return nil
}

func firstIllegalClause(s *sqlgen.Statement, sentinel error, whereIllegal bool) error {
	if whereIllegal && s.HasWhere() {
		return fmt.Errorf("%w: %q", sentinel, "WHERE")
	}
	switch {
	case len(s.Joins) > 0:
		return fmt.Errorf("%w: %q", sentinel, "JOIN")
	case len(s.GroupBy) > 0:
		return fmt.Errorf("%w: %q", sentinel, "GROUP BY")
	case len(s.Havings) > 0:
		return fmt.Errorf("%w: %q", sentinel, "HAVING")
	case len(s.Orders) > 0:
		return fmt.Errorf("%w: %q", sentinel, "ORDER BY")
	case s.Limit != nil:
		return fmt.Errorf("%w: %q", sentinel, "LIMIT")
	case s.Offset != nil:
		return fmt.Errorf("%w: %q", sentinel, "OFFSET")
	}
	return nil
}

// isProjected reports whether a column name appears among the select items,
// either as a plain column or as an alias.
func isProjected(s *sqlgen.Statement, column string) bool {
	for _, item := range s.Selects {
		switch sel := item.(type) {
		case sqlgen.Column:
			if string(sel) == column {
				return true
			}
		case sqlgen.AliasedColumn:
			if sel.Column == column || sel.Alias == column {
				return true
			}
		case sqlgen.AggregateColumn:
			if sel.Alias == column {
				return true
			}
		case sqlgen.DistinctColumn:
			if string(sel) == column {
				return true
			}
		case sqlgen.SubquerySelect:
			if sel.Alias == column {
				return true
			}
		}
	}
	return false
}

// isAggregateContext reports whether a column names an aggregate projection
// (an AggregateColumn alias or a textual aggregate bound through SelectAs)
// or an explicitly grouped column.
func isAggregateContext(s *sqlgen.Statement, column string) bool {
	for _, item := range s.Selects {
		switch sel := item.(type) {
		case sqlgen.AggregateColumn:
			if sel.Alias == column {
				return true
			}
		case sqlgen.AliasedColumn:
			if sel.Alias == column && hasAggregatePrefix(sel.Column) {
				return true
			}
		}
	}
	for _, g := range s.GroupBy {
		if g == column {
			return true
		}
	}
	return false
}

var aggregatePrefixes = []string{"COUNT(", "MIN(", "MAX(", "SUM(", "AVG("}

func hasAggregatePrefix(expr string) bool {
	upper := strings.ToUpper(expr)
	for _, prefix := range aggregatePrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// subStatements collects every statement embedded in s as a value, one level
// deep. validate recurses, so arbitrarily nested sub-statements are covered.
func subStatements(s *sqlgen.Statement) []*sqlgen.Statement {
	var subs []*sqlgen.Statement
	for _, item := range s.Selects {
		if sel, ok := item.(sqlgen.SubquerySelect); ok {
			subs = append(subs, sel.Stmt)
		}
	}
	collect := func(conds []sqlgen.Condition) {
		for _, c := range conds {
			subs = append(subs, valueStatements(c.Value)...)
		}
	}
	collect(s.Conditions)
	collect(s.Havings)
	var walkGroups func(groups []sqlgen.Group)
	walkGroups = func(groups []sqlgen.Group) {
		for _, g := range groups {
			collect(g.Conditions)
			walkGroups(g.Groups)
		}
	}
	walkGroups(s.Groups)
	for _, a := range s.Inserts {
		subs = append(subs, valueStatements(a.Value)...)
	}
	for _, a := range s.Updates {
		subs = append(subs, valueStatements(a.Value)...)
	}
	return subs
}

func valueStatements(v sqlgen.Value) []*sqlgen.Statement {
	switch val := v.(type) {
	case sqlgen.Subquery:
		return []*sqlgen.Statement{val.Stmt}
	case sqlgen.List:
		var subs []*sqlgen.Statement
		for _, elem := range val {
			subs = append(subs, valueStatements(elem)...)
		}
		return subs
	}
	return nil
}
