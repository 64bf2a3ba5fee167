package quill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-sql/quill"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		build func() *quill.QueryBuilder
		want  string
	}{
		{
			name:  "single column",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Select("origin") },
			want:  "SELECT origin FROM flights",
		},
		{
			name: "multiple columns",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Select("origin", "destination")
			},
			want: "SELECT origin, destination FROM flights",
		},
		{
			name: "aliased columns",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectAs("origin", "from").SelectAs("destination", "to")
			},
			want: "SELECT origin AS from, destination AS to FROM flights",
		},
		{
			name: "raw with placeholder",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectRaw("flight_duration * ? as delay_in_min", 5)
			},
			want: "SELECT flight_duration * 5 as delay_in_min FROM flights",
		},
		{
			name: "raw with multiple placeholders",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					SelectRaw("flight_duration * ? as delay_in_min, delay_in_min * ? as delay_in_hr", 5, 60)
			},
			want: "SELECT flight_duration * 5 as delay_in_min, delay_in_min * 60 as delay_in_hr FROM flights",
		},
		{
			name: "count",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectCount("id", "id_count")
			},
			want: "SELECT COUNT(id) AS id_count FROM flights",
		},
		{
			name: "min",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectMin("flight_duration", "flight_duration_min")
			},
			want: "SELECT MIN(flight_duration) AS flight_duration_min FROM flights",
		},
		{
			name: "max",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectMax("flight_duration", "flight_duration_max")
			},
			want: "SELECT MAX(flight_duration) AS flight_duration_max FROM flights",
		},
		{
			name: "avg",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectAvg("flight_duration", "flight_duration_avg")
			},
			want: "SELECT AVG(flight_duration) AS flight_duration_avg FROM flights",
		},
		{
			name: "sum",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").SelectSum("flight_duration", "flight_duration_sum")
			},
			want: "SELECT SUM(flight_duration) AS flight_duration_sum FROM flights",
		},
		{
			name:  "distinct",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").SelectDistinct("origin") },
			want:  "SELECT DISTINCT origin FROM flights",
		},
		{
			name:  "no select items compiles as star",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights") },
			want:  "SELECT * FROM flights",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMutations(t *testing.T) {
	tests := []struct {
		name  string
		build func() *quill.QueryBuilder
		want  string
	}{
		{
			name: "insert",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					Insert("origin_airport", "AMS").
					Insert("destination_airport", "FRA")
			},
			want: "INSERT INTO flights (origin_airport, destination_airport) VALUES ('AMS', 'FRA')",
		},
		{
			name: "update",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					Update("origin_airport", "AMS").
					Update("destination_airport", "FRA")
			},
			want: "UPDATE flights SET origin_airport = 'AMS', destination_airport = 'FRA'",
		},
		{
			name: "update with condition",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					Update("origin_airport", "AMS").
					Update("destination_airport", "FRA").
					Where("id", 1)
			},
			want: "UPDATE flights SET origin_airport = 'AMS', destination_airport = 'FRA' WHERE id = 1",
		},
		{
			name:  "delete",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Delete() },
			want:  "DELETE FROM flights",
		},
		{
			name: "delete with condition",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Where("origin", "AMS").Delete()
			},
			want: "DELETE FROM flights WHERE origin = 'AMS'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhere(t *testing.T) {
	tests := []struct {
		name  string
		build func() *quill.QueryBuilder
		want  string
	}{
		{
			name:  "equal",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Where("origin", "AMS") },
			want:  "SELECT * FROM flights WHERE origin = 'AMS'",
		},
		{
			name: "or equal",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Where("origin", "AMS").OrWhere("destination", "FRA")
			},
			want: "SELECT * FROM flights WHERE origin = 'AMS' OR destination = 'FRA'",
		},
		{
			name:  "not equal",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").WhereNot("origin", "AMS") },
			want:  "SELECT * FROM flights WHERE origin != 'AMS'",
		},
		{
			name: "or not equal",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereNot("origin", "AMS").OrWhereNot("destination", "AMS")
			},
			want: "SELECT * FROM flights WHERE origin != 'AMS' OR destination != 'AMS'",
		},
		{
			name: "greater than",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereGt("flight_duration", 120)
			},
			want: "SELECT * FROM flights WHERE flight_duration > 120",
		},
		{
			name: "or greater than",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereGt("flight_duration", 120).OrWhereGt("number_of_passengers", 200)
			},
			want: "SELECT * FROM flights WHERE flight_duration > 120 OR number_of_passengers > 200",
		},
		{
			name: "greater than or equal",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereGte("flight_duration", 120)
			},
			want: "SELECT * FROM flights WHERE flight_duration >= 120",
		},
		{
			name: "less than",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereLt("flight_duration", 120)
			},
			want: "SELECT * FROM flights WHERE flight_duration < 120",
		},
		{
			name: "less than or equal",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereLte("flight_duration", 120)
			},
			want: "SELECT * FROM flights WHERE flight_duration <= 120",
		},
		{
			name: "between",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereBetween("flight_duration", 120, 180)
			},
			want: "SELECT * FROM flights WHERE flight_duration BETWEEN 120 AND 180",
		},
		{
			name: "like",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereLike("airplane_type", "Airbus%")
			},
			want: "SELECT * FROM flights WHERE airplane_type LIKE 'Airbus%'",
		},
		{
			name: "or like",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					WhereLike("airplane_type", "Airbus%").
					OrWhereLike("airplane_type", "Boeing%")
			},
			want: "SELECT * FROM flights WHERE airplane_type LIKE 'Airbus%' OR airplane_type LIKE 'Boeing%'",
		},
		{
			name: "not like",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereNotLike("airplane_type", "Airbus%")
			},
			want: "SELECT * FROM flights WHERE airplane_type NOT LIKE 'Airbus%'",
		},
		{
			name: "in",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereIn("origin_airport", "AMS", "FRA")
			},
			want: "SELECT * FROM flights WHERE origin_airport IN ('AMS', 'FRA')",
		},
		{
			name: "in with slice argument",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereIn("origin_airport", []string{"AMS", "FRA"})
			},
			want: "SELECT * FROM flights WHERE origin_airport IN ('AMS', 'FRA')",
		},
		{
			name: "or in",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					WhereIn("origin_airport", "AMS", "FRA").
					OrWhereIn("destination_airport", "AMS", "FRA")
			},
			want: "SELECT * FROM flights WHERE origin_airport IN ('AMS', 'FRA') OR destination_airport IN ('AMS', 'FRA')",
		},
		{
			name: "not in",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereNotIn("id", 1, 2)
			},
			want: "SELECT * FROM flights WHERE id NOT IN (1, 2)",
		},
		{
			name: "or not in",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					WhereNotIn("origin_airport", "AMS", "FRA").
					OrWhereNotIn("destination_airport", "AMS", "FRA")
			},
			want: "SELECT * FROM flights WHERE origin_airport NOT IN ('AMS', 'FRA') OR destination_airport NOT IN ('AMS', 'FRA')",
		},
		{
			name: "null single and multiple",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					WhereNull("departure_time").
					WhereNull("arrival_time", "gate_number")
			},
			want: "SELECT * FROM flights WHERE departure_time IS NULL AND arrival_time IS NULL AND gate_number IS NULL",
		},
		{
			name: "or null",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereNull("departure_time").OrWhereNull("arrival_time")
			},
			want: "SELECT * FROM flights WHERE departure_time IS NULL OR arrival_time IS NULL",
		},
		{
			name: "not null single and multiple",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					WhereNotNull("departure_time").
					WhereNotNull("arrival_time", "gate_number")
			},
			want: "SELECT * FROM flights WHERE departure_time IS NOT NULL AND arrival_time IS NOT NULL AND gate_number IS NOT NULL",
		},
		{
			name: "or not null",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereNotNull("departure_time").OrWhereNotNull("arrival_time")
			},
			want: "SELECT * FROM flights WHERE departure_time IS NOT NULL OR arrival_time IS NOT NULL",
		},
		{
			name: "nil value renders as is null",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Where("gate_number", nil)
			},
			want: "SELECT * FROM flights WHERE gate_number IS NULL",
		},
		{
			name: "not nil value renders as is not null",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").WhereNot("gate_number", nil)
			},
			want: "SELECT * FROM flights WHERE gate_number IS NOT NULL",
		},
		{
			name: "boolean value",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Where("cancelled", true)
			},
			want: "SELECT * FROM flights WHERE cancelled = TRUE",
		},
		{
			name: "embedded quote is doubled",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Where("origin_city", "'s-Hertogenbosch")
			},
			want: "SELECT * FROM flights WHERE origin_city = '''s-Hertogenbosch'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhereGroup(t *testing.T) {
	t.Run("and connected group", func(t *testing.T) {
		got, err := quill.Query().
			Table("flights").
			WhereNotNull("departure_time").
			WhereGroup(func(g *quill.QueryBuilder) *quill.QueryBuilder {
				return g.Where("origin", "AMS").OrWhere("origin", "FRA")
			}).
			SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM flights WHERE departure_time IS NOT NULL AND (origin = 'AMS' OR origin = 'FRA')", got)
	})

	t.Run("or connected group", func(t *testing.T) {
		got, err := quill.Query().
			Table("flights").
			WhereNotNull("departure_time").
			OrWhereGroup(func(g *quill.QueryBuilder) *quill.QueryBuilder {
				return g.Where("origin", "AMS").Where("destination", "FRA")
			}).
			SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM flights WHERE departure_time IS NOT NULL OR (origin = 'AMS' AND destination = 'FRA')", got)
	})

	t.Run("nested groups", func(t *testing.T) {
		got, err := quill.Query().
			Table("flights").
			Select("origin").
			WhereGt("flight_duration", 120).
			OrWhereGroup(func(g *quill.QueryBuilder) *quill.QueryBuilder {
				return g.WhereLike("city", "%NY%")
			}).
			SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT origin FROM flights WHERE flight_duration > 120 OR (city LIKE '%NY%')", got)
	})
}

func TestJoins(t *testing.T) {
	tests := []struct {
		name  string
		build func() *quill.QueryBuilder
		want  string
	}{
		{
			name: "inner",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").Join("airports", "flights.origin_airport", "airports.code")
			},
			want: "SELECT * FROM flights JOIN airports ON flights.origin_airport = airports.code",
		},
		{
			name: "left",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").LeftJoin("airports", "flights.origin_airport", "airports.code")
			},
			want: "SELECT * FROM flights LEFT JOIN airports ON flights.origin_airport = airports.code",
		},
		{
			name: "right",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").RightJoin("airports", "flights.origin_airport", "airports.code")
			},
			want: "SELECT * FROM flights RIGHT JOIN airports ON flights.origin_airport = airports.code",
		},
		{
			name: "full",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").FullJoin("airports", "flights.origin_airport", "airports.code")
			},
			want: "SELECT * FROM flights FULL JOIN airports ON flights.origin_airport = airports.code",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupByHavingOrder(t *testing.T) {
	tests := []struct {
		name  string
		build func() *quill.QueryBuilder
		want  string
	}{
		{
			name: "group by",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					Select("origin").
					SelectAvg("flight_duration", "flight_duration_avg").
					GroupBy("origin")
			},
			want: "SELECT origin, AVG(flight_duration) AS flight_duration_avg FROM flights GROUP BY origin",
		},
		{
			name: "group by multiple",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").
					Select("origin", "destination").
					SelectAvg("flight_duration", "flight_duration_avg").
					GroupBy("origin", "destination")
			},
			want: "SELECT origin, destination, AVG(flight_duration) AS flight_duration_avg FROM flights GROUP BY origin, destination",
		},
		{
			name: "having equal",
			build: func() *quill.QueryBuilder {
				return havingQuery().Having("avg_duration", 300)
			},
			want: havingWant("avg_duration = 300"),
		},
		{
			name: "having not equal",
			build: func() *quill.QueryBuilder {
				return havingQuery().HavingNot("avg_duration", 300)
			},
			want: havingWant("avg_duration != 300"),
		},
		{
			name: "having greater than",
			build: func() *quill.QueryBuilder {
				return havingQuery().HavingGt("avg_duration", 300)
			},
			want: havingWant("avg_duration > 300"),
		},
		{
			name: "having greater than or equal",
			build: func() *quill.QueryBuilder {
				return havingQuery().HavingGte("avg_duration", 300)
			},
			want: havingWant("avg_duration >= 300"),
		},
		{
			name: "having less than",
			build: func() *quill.QueryBuilder {
				return havingQuery().HavingLt("avg_duration", 300)
			},
			want: havingWant("avg_duration < 300"),
		},
		{
			name: "having less than or equal",
			build: func() *quill.QueryBuilder {
				return havingQuery().HavingLte("avg_duration", 300)
			},
			want: havingWant("avg_duration <= 300"),
		},
		{
			name:  "order by asc",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").OrderByAsc("origin") },
			want:  "SELECT * FROM flights ORDER BY origin ASC",
		},
		{
			name:  "order by desc",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").OrderByDesc("origin") },
			want:  "SELECT * FROM flights ORDER BY origin DESC",
		},
		{
			name: "order by multiple",
			build: func() *quill.QueryBuilder {
				return quill.Query().Table("flights").OrderByAsc("origin").OrderByDesc("destination")
			},
			want: "SELECT * FROM flights ORDER BY origin ASC, destination DESC",
		},
		{
			name:  "limit",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Limit(10) },
			want:  "SELECT * FROM flights LIMIT 10",
		},
		{
			name:  "offset",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Offset(10) },
			want:  "SELECT * FROM flights OFFSET 10",
		},
		{
			name:  "negative limit is ignored",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Limit(-1) },
			want:  "SELECT * FROM flights",
		},
		{
			name:  "negative offset is ignored",
			build: func() *quill.QueryBuilder { return quill.Query().Table("flights").Offset(-1) },
			want:  "SELECT * FROM flights",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// havingQuery builds the shared SELECT used by the HAVING cases: a textual
// aggregate bound through SelectAs plus an explicit GROUP BY.
func havingQuery() *quill.QueryBuilder {
	return quill.Query().Table("flights").
		Select("flights.origin_airport").
		SelectAs("AVG(flights.flight_duration)", "avg_duration").
		Join("airports", "flights.origin_airport", "airports.code").
		GroupBy("flights.origin_airport")
}

func havingWant(predicate string) string {
	return "SELECT flights.origin_airport, AVG(flights.flight_duration) AS avg_duration " +
		"FROM flights JOIN airports ON flights.origin_airport = airports.code " +
		"GROUP BY flights.origin_airport HAVING " + predicate
}

func TestSubqueries(t *testing.T) {
	t.Run("projected with alias", func(t *testing.T) {
		sub := quill.Subquery().Table("flights").SelectAvg("duration_in_min", "avg_duration_in_min")
		got, err := quill.Query().Table("flights").SelectSub(sub, "avg_duration").SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT (SELECT AVG(duration_in_min) AS avg_duration_in_min FROM flights) AS avg_duration FROM flights", got)
	})

	t.Run("scalar predicate value", func(t *testing.T) {
		sub := quill.Subquery().Table("flights").SelectMax("duration_in_min", "max_duration_in_min")
		got, err := quill.Query().Table("flights").Where("id", sub).SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM flights WHERE id = (SELECT MAX(duration_in_min) AS max_duration_in_min FROM flights)", got)
	})

	t.Run("in list element", func(t *testing.T) {
		sub := quill.Subquery().Table("flights").Select("id").WhereGt("duration_in_min", 120)
		got, err := quill.Query().Table("flights").WhereIn("id", sub).SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM flights WHERE id IN (SELECT id FROM flights WHERE duration_in_min > 120)", got)
	})

	t.Run("not in list element", func(t *testing.T) {
		sub := quill.Subquery().Table("flights").Select("id").WhereGt("duration_in_min", 120)
		got, err := quill.Query().Table("flights").WhereNotIn("id", sub).SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM flights WHERE id NOT IN (SELECT id FROM flights WHERE duration_in_min > 120)", got)
	})

	t.Run("invalid sub-statement fails validation", func(t *testing.T) {
		sub := quill.Subquery().Select("id")
		_, err := quill.Query().Table("flights").WhereIn("id", sub).SQL()
		require.Error(t, err)
		assert.True(t, quill.IsMissingTableErr(err))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		_, err := quill.Query().SQL()
		require.Error(t, err)
		assert.True(t, quill.IsMissingTableErr(err))
	})

	t.Run("duplicated column names", func(t *testing.T) {
		_, err := quill.Query().Table("flights").Select("origin").Select("origin").SQL()
		require.Error(t, err)
		assert.True(t, quill.IsDuplicateColumnNameErr(err))
		assert.Contains(t, err.Error(), `"origin"`)
	})

	t.Run("having without aggregate", func(t *testing.T) {
		_, err := quill.Query().Table("flights").Having("origin", 300).SQL()
		require.Error(t, err)
		assert.True(t, quill.IsHavingWithoutAggregateErr(err))
		assert.Contains(t, err.Error(), `"origin"`)
	})

	t.Run("group by not selected", func(t *testing.T) {
		_, err := quill.Query().Table("flights").GroupBy("origin").SQL()
		require.Error(t, err)
		assert.True(t, quill.IsGroupByNotProjectedErr(err))
		assert.Contains(t, err.Error(), `"origin"`)
	})

	t.Run("order by not selected", func(t *testing.T) {
		_, err := quill.Query().Table("flights").Select("destination").OrderByAsc("origin").SQL()
		require.Error(t, err)
		assert.True(t, quill.IsOrderByNotProjectedErr(err))
		assert.Contains(t, err.Error(), `"origin"`)
	})

	t.Run("missing placeholders", func(t *testing.T) {
		_, err := quill.Query().
			Table("flights").
			SelectRaw("flight_duration * ? as delay_in_min, delay_in_min * ? as delay_in_hr", 5).
			SQL()
		require.Error(t, err)
		assert.True(t, quill.IsMissingPlaceholdersErr(err))
	})

	t.Run("too many placeholder values", func(t *testing.T) {
		_, err := quill.Query().
			Table("flights").
			SelectRaw("flight_duration * ? as delay_in_min", 5, 60).
			SQL()
		require.Error(t, err)
		assert.True(t, quill.IsMissingPlaceholdersErr(err))
	})

	t.Run("where on insert", func(t *testing.T) {
		_, err := quill.Query().
			Table("flights").
			Insert("origin_airport", "AMS").
			Where("origin_airport", "FRA").
			SQL()
		require.Error(t, err)
		assert.True(t, quill.IsClauseOnInsertErr(err))
		assert.Contains(t, err.Error(), `"WHERE"`)
	})

	t.Run("join on update", func(t *testing.T) {
		_, err := quill.Query().
			Table("flights").
			Join("airports", "flights.origin_airport", "airports.code").
			Update("origin_airport", "AMS").
			SQL()
		require.Error(t, err)
		assert.True(t, quill.IsClauseOnUpdateErr(err))
		assert.Contains(t, err.Error(), `"JOIN"`)
	})

	t.Run("join on delete", func(t *testing.T) {
		_, err := quill.Query().
			Table("flights").
			Join("airports", "flights.origin_airport", "airports.code").
			Delete().
			SQL()
		require.Error(t, err)
		assert.True(t, quill.IsClauseOnDeleteErr(err))
		assert.Contains(t, err.Error(), `"JOIN"`)
	})

	t.Run("limit on insert", func(t *testing.T) {
		_, err := quill.Query().
			Table("flights").
			Insert("origin_airport", "AMS").
			Limit(10).
			SQL()
		require.Error(t, err)
		assert.True(t, quill.IsClauseOnInsertErr(err))
		assert.Contains(t, err.Error(), `"LIMIT"`)
	})
}

func TestSkipValidation(t *testing.T) {
	t.Run("empty builder compiles", func(t *testing.T) {
		got, err := quill.Query().Table("flights").SkipValidation().SQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM flights", got)
	})

	t.Run("invalid combination compiles", func(t *testing.T) {
		got, err := quill.Query().
			Table("flights").
			Insert("origin_airport", "AMS").
			Where("origin_airport", "FRA").
			SkipValidation().
			SQL()
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO flights (origin_airport) VALUES ('AMS')", got)
	})
}

func TestSQLDeterministic(t *testing.T) {
	q := quill.Query().
		Table("flights").
		Select("origin").
		WhereGt("flight_duration", 120).
		OrderByAsc("origin").
		Limit(5)
	first, err := q.SQL()
	require.NoError(t, err)
	second, err := q.SQL()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPrettySQL(t *testing.T) {
	t.Run("select with where", func(t *testing.T) {
		got, err := quill.Query().
			Table("flights").
			Select("origin", "destination").
			Where("origin", "AMS").
			OrWhere("destination", "FRA").
			PrettySQL()
		require.NoError(t, err)
		want := "SELECT\n" +
			"    origin,\n" +
			"    destination\n" +
			"FROM\n" +
			"    flights\n" +
			"WHERE\n" +
			"    origin = 'AMS'\n" +
			"    OR destination = 'FRA'"
		assert.Equal(t, want, got)
	})

	t.Run("validation failures propagate", func(t *testing.T) {
		_, err := quill.Query().PrettySQL()
		require.Error(t, err)
		assert.True(t, quill.IsMissingTableErr(err))
	})
}
