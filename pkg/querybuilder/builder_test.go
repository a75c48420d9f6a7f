package querybuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Validation(t *testing.T) {
	t.Run("rejects empty metrics", func(t *testing.T) {
		_, err := Build(Request{
			Dimensions: []string{"channel"},
			BrandID:    1,
		})
		assert.ErrorIs(t, err, ErrNoMetrics)
	})

	t.Run("rejects empty dimensions", func(t *testing.T) {
		_, err := Build(Request{
			Metrics: []string{"revenue"},
			BrandID: 1,
		})
		assert.ErrorIs(t, err, ErrNoDimensions)
	})

	t.Run("rejects selections with only unknown names", func(t *testing.T) {
		_, err := Build(Request{
			Metrics:    []string{"profit; DROP TABLE sales"},
			Dimensions: []string{"channel"},
			BrandID:    1,
		})
		assert.ErrorIs(t, err, ErrNoMetrics)

		_, err = Build(Request{
			Metrics:    []string{"revenue"},
			Dimensions: []string{"weekday"},
			BrandID:    1,
		})
		assert.ErrorIs(t, err, ErrNoDimensions)
	})

	t.Run("ignores unknown names next to known ones", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"bogus", "sales"},
			Dimensions: []string{"nope", "store"},
			BrandID:    1,
		})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "COUNT(s.id) AS sales")
		assert.Contains(t, q.SQL, "st.name AS store")
		assert.NotContains(t, q.SQL, "bogus")
	})
}

func TestBuild_Statement(t *testing.T) {
	t.Run("assembles joins, grouping and completed-only filter", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"revenue", "sales"},
			Dimensions: []string{"channel", "date"},
			BrandID:    2,
		})
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "SUM(s.total_amount) AS revenue")
		assert.Contains(t, q.SQL, "c.name AS channel")
		assert.Contains(t, q.SQL, "DATE(s.created_at) AS date")
		assert.Contains(t, q.SQL, "LEFT JOIN channels c ON s.channel_id = c.id")
		assert.Contains(t, q.SQL, "LEFT JOIN stores st ON s.store_id = st.id")
		assert.Contains(t, q.SQL, "s.sale_status_desc = 'COMPLETED'")
		assert.Contains(t, q.SQL, "GROUP BY c.id, c.name, DATE(s.created_at)")
		assert.Contains(t, q.SQL, "LIMIT")

		require.NotEmpty(t, q.Args)
		assert.Equal(t, uint(2), q.Args[0])
	})

	t.Run("binds date filters after the brand", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"average_ticket"},
			Dimensions: []string{"store"},
			Filters: Filters{
				StartDate: "2026-08-01",
				EndDate:   "2026-08-31",
			},
			BrandID: 1,
		})
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "s.created_at >=")
		assert.Contains(t, q.SQL, "s.created_at <=")
		require.GreaterOrEqual(t, len(q.Args), 3)
		assert.Equal(t, uint(1), q.Args[0])
		assert.Equal(t, "2026-08-01", q.Args[1])
		assert.Equal(t, "2026-08-31", q.Args[2])
	})

	t.Run("orders by revenue when selected", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"sales", "revenue"},
			Dimensions: []string{"channel"},
			BrandID:    1,
		})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "ORDER BY revenue DESC")
	})

	t.Run("falls back to sales ordering", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"sales", "average_ticket"},
			Dimensions: []string{"channel"},
			BrandID:    1,
		})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "ORDER BY sales DESC")
	})

	t.Run("skips ordering without a rankable metric", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"average_ticket"},
			Dimensions: []string{"channel"},
			BrandID:    1,
		})
		require.NoError(t, err)
		assert.NotContains(t, q.SQL, "ORDER BY")
	})
}

func TestQuery_MaskedSQL(t *testing.T) {
	t.Run("replaces every positional placeholder", func(t *testing.T) {
		q, err := Build(Request{
			Metrics:    []string{"revenue"},
			Dimensions: []string{"channel"},
			Filters: Filters{
				StartDate: "2026-08-01",
			},
			BrandID: 7,
		})
		require.NoError(t, err)

		masked := q.MaskedSQL()
		assert.NotContains(t, masked, "$1")
		assert.NotContains(t, masked, "$2")
		assert.GreaterOrEqual(t, strings.Count(masked, "?"), len(q.Args))
	})
}
