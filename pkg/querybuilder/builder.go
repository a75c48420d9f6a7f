// Package querybuilder assembles the custom-analytics SELECT statement from a
// caller-chosen set of metrics, dimensions and filters. Placeholders come from
// the builder's argument list, never from hand-counted indices.
package querybuilder

import (
	"errors"
	"regexp"

	"github.com/huandu/go-sqlbuilder"
)

var (
	ErrNoMetrics    = errors.New("at least one valid metric is required")
	ErrNoDimensions = errors.New("at least one valid dimension is required")
)

type Filters struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Request struct {
	Metrics    []string `json:"metrics"`
	Dimensions []string `json:"dimensions"`
	Filters    Filters  `json:"filters"`
	BrandID    uint     `json:"brand_id"`
	Limit      int      `json:"limit"`
}

// Query is a ready-to-execute statement with its positional arguments.
type Query struct {
	SQL  string
	Args []interface{}
}

var metricExprs = map[string]string{
	"sales":          "COUNT(s.id) AS sales",
	"revenue":        "SUM(s.total_amount) AS revenue",
	"average_ticket": "AVG(s.total_amount) AS average_ticket",
}

// A dimension is always a SELECT expression plus its GROUP BY columns,
// appended as an atomic pair.
type dimensionExpr struct {
	selectExpr string
	groupCols  []string
}

var dimensionExprs = map[string]dimensionExpr{
	"channel": {"c.name AS channel", []string{"c.id", "c.name"}},
	"store":   {"st.name AS store", []string{"st.id", "st.name"}},
	"date":    {"DATE(s.created_at) AS date", []string{"DATE(s.created_at)"}},
}

const defaultLimit = 100

var placeholderPattern = regexp.MustCompile(`\$\d+`)

// Build validates the request and assembles the statement. Unknown metric or
// dimension names are ignored; a request left without any recognized metric
// or dimension fails as a missing selection.
func Build(req Request) (*Query, error) {
	metrics := known(req.Metrics, func(name string) bool { _, ok := metricExprs[name]; return ok })
	if len(metrics) == 0 {
		return nil, ErrNoMetrics
	}
	dimensions := known(req.Dimensions, func(name string) bool { _, ok := dimensionExprs[name]; return ok })
	if len(dimensions) == 0 {
		return nil, ErrNoDimensions
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()

	var selects []string
	for _, name := range metrics {
		selects = append(selects, metricExprs[name])
	}
	var groupCols []string
	for _, name := range dimensions {
		dim := dimensionExprs[name]
		selects = append(selects, dim.selectExpr)
		groupCols = append(groupCols, dim.groupCols...)
	}

	sb.Select(selects...)
	sb.From("sales s")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "channels c", "s.channel_id = c.id")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "stores st", "s.store_id = st.id")
	sb.Where("s.sale_status_desc = 'COMPLETED'")
	sb.Where(sb.Equal("st.brand_id", req.BrandID))

	if req.Filters.StartDate != "" {
		sb.Where(sb.GreaterEqualThan("s.created_at", req.Filters.StartDate))
	}
	if req.Filters.EndDate != "" {
		sb.Where(sb.LessEqualThan("s.created_at", req.Filters.EndDate))
	}

	sb.GroupBy(groupCols...)

	switch {
	case contains(metrics, "revenue"):
		sb.OrderBy("revenue DESC")
	case contains(metrics, "sales"):
		sb.OrderBy("sales DESC")
	}

	sb.Limit(limit)

	sql, args := sb.Build()
	return &Query{SQL: sql, Args: args}, nil
}

// MaskedSQL renders the statement for diagnostic display with every
// placeholder replaced by a generic marker, so bound values never leak.
func (q *Query) MaskedSQL() string {
	return placeholderPattern.ReplaceAllString(q.SQL, "?")
}

func known(names []string, ok func(string) bool) []string {
	var out []string
	for _, name := range names {
		if ok(name) {
			out = append(out, name)
		}
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
