package repository

import (
	"fmt"

	"nola_analytics/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository is the query catalog: each method maps a filter set to
// one parameterized aggregation query. Placeholders are always `?` with args
// appended in text order, so positional indices never need hand counting.
type AnalyticsRepository interface {
	RevenueByDay(brandID *uint, days int) ([]models.DailyRevenue, error)
	TopProducts(brandID *uint, limit int) ([]models.TopProduct, error)
	RevenueByChannel(brandID *uint, limit int) ([]models.ChannelRevenue, error)
	RevenueByStore(brandID *uint, limit int) ([]models.StoreRevenue, error)
	HourlyDistribution(brandID *uint) ([]models.HourlySales, error)
	StorePerformance(brandID uint, name string) ([]models.StorePerformance, error)
	Overview(brandID *uint) (*models.Overview, error)
	ChannelDistribution(brandID *uint) ([]models.ChannelShare, error)
	ProductStats(brandID *uint) (*models.ProductStats, error)
	CustomerStats(brandID *uint) (*models.CustomerStats, error)
	WeeklyDistribution(brandID *uint) ([]models.WeekdaySales, error)
	MonthlyGrowth(brandID *uint, months int) ([]models.MonthlyGrowth, error)
	ProductMargins(brandID *uint, limit int) ([]models.ProductMargin, error)
	DeliveryPerformance(brandID *uint, days int, groupBy string) ([]models.DeliveryPerformance, error)
	CustomerRetention(brandID *uint, daysInactive, minPurchases, limit int) ([]models.CustomerRetention, error)
	Anomalies(brandID *uint, days int) ([]models.Anomaly, error)
	TopProductsByWeekday(brandID *uint) ([]models.WeekdayProductRow, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// brandFilter returns the optional brand predicate for queries that join
// sales to stores as st, plus the arg to append. Empty when no brand is set.
func brandFilter(brandID *uint) (string, []interface{}) {
	if brandID == nil {
		return "", nil
	}
	return " AND st.brand_id = ?", []interface{}{*brandID}
}

func (r *analyticsRepository) RevenueByDay(brandID *uint, days int) ([]models.DailyRevenue, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			DATE(s.created_at) as date,
			SUM(s.total_amount) as revenue,
			COUNT(*) as sales_count
		FROM sales s
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'
			AND s.created_at >= NOW() - make_interval(days => ?)%s
		GROUP BY DATE(s.created_at)
		ORDER BY date ASC`, filter)

	var rows []models.DailyRevenue
	err := r.db.Raw(query, append([]interface{}{days}, args...)...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) TopProducts(brandID *uint, limit int) ([]models.TopProduct, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			p.name as product_name,
			SUM(ps.quantity) as total_quantity,
			SUM(ps.total_price) as total_revenue,
			COUNT(DISTINCT ps.sale_id) as sales_count
		FROM product_sales ps
		JOIN products p ON ps.product_id = p.id
		JOIN sales s ON ps.sale_id = s.id
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'%s
		GROUP BY p.id, p.name
		ORDER BY total_revenue DESC
		LIMIT ?`, filter)

	var rows []models.TopProduct
	err := r.db.Raw(query, append(args, limit)...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) RevenueByChannel(brandID *uint, limit int) ([]models.ChannelRevenue, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			ch.name as channel_name,
			SUM(s.total_amount) as revenue,
			COUNT(*) as sales_count,
			AVG(s.total_amount) as average_ticket
		FROM sales s
		JOIN channels ch ON s.channel_id = ch.id
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'%s
		GROUP BY ch.name
		ORDER BY revenue DESC
		LIMIT ?`, filter)

	var rows []models.ChannelRevenue
	err := r.db.Raw(query, append(args, limit)...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) RevenueByStore(brandID *uint, limit int) ([]models.StoreRevenue, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			st.name as store_name,
			st.city,
			st.state,
			SUM(s.total_amount) as revenue,
			COUNT(*) as sales_count,
			AVG(s.total_amount) as average_ticket
		FROM sales s
		JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'%s
		GROUP BY st.id, st.name, st.city, st.state
		ORDER BY revenue DESC
		LIMIT ?`, filter)

	var rows []models.StoreRevenue
	err := r.db.Raw(query, append(args, limit)...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) HourlyDistribution(brandID *uint) ([]models.HourlySales, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			EXTRACT(HOUR FROM s.created_at)::int as hour,
			COUNT(*) as sales_count,
			SUM(s.total_amount) as revenue
		FROM sales s
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'%s
		GROUP BY EXTRACT(HOUR FROM s.created_at)
		ORDER BY hour ASC`, filter)

	var rows []models.HourlySales
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// StorePerformance lists every store of a brand, including stores without
// completed sales, optionally narrowed by a name substring.
func (r *analyticsRepository) StorePerformance(brandID uint, name string) ([]models.StorePerformance, error) {
	query := `
		SELECT
			st.id as store_id,
			st.name as store_name,
			st.city,
			st.state,
			COUNT(s.id) as sales_count,
			COALESCE(SUM(s.total_amount), 0) as revenue,
			COALESCE(AVG(s.total_amount), 0) as average_ticket
		FROM stores st
		LEFT JOIN sales s ON st.id = s.store_id AND s.sale_status_desc = 'COMPLETED'
		WHERE st.brand_id = ?`
	args := []interface{}{brandID}

	if name != "" {
		query += ` AND st.name LIKE ?`
		args = append(args, "%"+name+"%")
	}

	query += `
		GROUP BY st.id, st.name, st.city, st.state
		ORDER BY revenue DESC`

	var rows []models.StorePerformance
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) Overview(brandID *uint) (*models.Overview, error) {
	var (
		storesFilter   string
		salesFilter    string
		productsFilter string
		itemsFilter    string
		args           []interface{}
	)
	if brandID != nil {
		storesFilter = ` WHERE st.brand_id = ?`
		salesFilter = ` LEFT JOIN stores st2 ON st2.id = s.store_id WHERE st2.brand_id = ?`
		productsFilter = ` JOIN stores st3 ON st3.id = s.store_id WHERE st3.brand_id = ?`
		itemsFilter = ` JOIN stores st4 ON st4.id = s.store_id WHERE st4.brand_id = ?`
		args = []interface{}{*brandID, *brandID, *brandID, *brandID}
	}

	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM stores st%s)::int AS lojas,
			(SELECT COUNT(*) FROM sales s%s)::bigint AS vendas,
			(SELECT COALESCE(SUM(ps.quantity), 0) FROM product_sales ps
				JOIN sales s ON s.id = ps.sale_id%s
			)::bigint AS produtos_vendidos,
			(SELECT COUNT(*) FROM item_product_sales ips
				JOIN product_sales ps ON ps.id = ips.product_sale_id
				JOIN sales s ON s.id = ps.sale_id%s
			)::bigint AS customizacoes,
			(SELECT COUNT(*) FROM customers)::int AS clientes`,
		storesFilter, salesFilter, productsFilter, itemsFilter)

	var row models.Overview
	err := r.db.Raw(query, args...).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *analyticsRepository) ChannelDistribution(brandID *uint) ([]models.ChannelShare, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		WITH base AS (
			SELECT ch.name AS canal, COUNT(*)::bigint AS vendas
			FROM sales s
			JOIN channels ch ON ch.id = s.channel_id
			LEFT JOIN stores st ON st.id = s.store_id
			WHERE s.sale_status_desc = 'COMPLETED'%s
			GROUP BY ch.name
		), total AS (
			SELECT SUM(vendas)::bigint AS total_vendas FROM base
		)
		SELECT canal,
			vendas,
			ROUND((vendas::numeric / NULLIF(t.total_vendas, 0)) * 100.0, 2) AS percentual
		FROM base b
		JOIN total t ON true
		ORDER BY vendas DESC
		LIMIT 5`, filter)

	var rows []models.ChannelShare
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) ProductStats(brandID *uint) (*models.ProductStats, error) {
	var (
		filter string
		args   []interface{}
	)
	if brandID != nil {
		filter = ` JOIN stores st ON st.id = s.store_id AND st.brand_id = ?`
		args = []interface{}{*brandID}
	}

	query := fmt.Sprintf(`
		WITH sales_base AS (
			SELECT s.id
			FROM sales s%s
			WHERE s.sale_status_desc = 'COMPLETED'
		),
		prod AS (
			SELECT SUM(ps.quantity)::numeric AS total_produtos
			FROM product_sales ps
			JOIN sales_base sb ON sb.id = ps.sale_id
		),
		cust AS (
			SELECT COUNT(DISTINCT ps.sale_id)::numeric AS vendas_com_customizacoes
			FROM product_sales ps
			JOIN item_product_sales ips ON ips.product_sale_id = ps.id
			JOIN sales_base sb ON sb.id = ps.sale_id
		),
		totals AS (
			SELECT COUNT(*)::numeric AS total_vendas FROM sales_base
		)
		SELECT
			ROUND((prod.total_produtos / NULLIF(totals.total_vendas, 0))::numeric, 2) AS media_produtos_por_venda,
			ROUND((cust.vendas_com_customizacoes / NULLIF(totals.total_vendas, 0)) * 100.0, 2) AS percentual_vendas_com_customizacoes
		FROM prod, cust, totals`, filter)

	var row models.ProductStats
	err := r.db.Raw(query, args...).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *analyticsRepository) CustomerStats(brandID *uint) (*models.CustomerStats, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		WITH base AS (
			SELECT s.id, s.customer_id
			FROM sales s
			LEFT JOIN stores st ON st.id = s.store_id
			WHERE s.sale_status_desc = 'COMPLETED'%s
		)
		SELECT
			COUNT(*)::bigint AS total_vendas,
			COUNT(*) FILTER (WHERE customer_id IS NOT NULL)::bigint AS vendas_identificadas,
			ROUND((COUNT(*) FILTER (WHERE customer_id IS NOT NULL)::numeric / NULLIF(COUNT(*), 0)) * 100.0, 2) AS percentual_identificadas,
			ROUND((COUNT(*) FILTER (WHERE customer_id IS NULL)::numeric / NULLIF(COUNT(*), 0)) * 100.0, 2) AS percentual_guest
		FROM base`, filter)

	var row models.CustomerStats
	err := r.db.Raw(query, args...).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *analyticsRepository) WeeklyDistribution(brandID *uint) ([]models.WeekdaySales, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			TO_CHAR(s.created_at, 'Dy') AS dia_semana,
			EXTRACT(DOW FROM s.created_at)::int AS dia_numero,
			COUNT(*)::bigint AS vendas,
			SUM(s.total_amount)::numeric AS receita
		FROM sales s
		LEFT JOIN stores st ON st.id = s.store_id
		WHERE s.sale_status_desc = 'COMPLETED'%s
		GROUP BY 1, 2
		ORDER BY dia_numero`, filter)

	var rows []models.WeekdaySales
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// MonthlyGrowth compares each month against the previous returned month
// (LAG over month order); the first month has null growth.
func (r *analyticsRepository) MonthlyGrowth(brandID *uint, months int) ([]models.MonthlyGrowth, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		WITH monthly AS (
			SELECT DATE_TRUNC('month', s.created_at) AS mes,
				SUM(s.total_amount)::numeric AS receita
			FROM sales s
			LEFT JOIN stores st ON st.id = s.store_id
			WHERE s.sale_status_desc = 'COMPLETED'
				AND s.created_at >= NOW() - make_interval(months => ?)%s
			GROUP BY 1
		), ordered AS (
			SELECT mes, receita,
				LAG(receita) OVER (ORDER BY mes) AS receita_anterior
			FROM monthly
		)
		SELECT to_char(mes, 'YYYY-MM') AS mes,
			receita,
			CASE WHEN receita_anterior IS NULL OR receita_anterior = 0 THEN NULL
				ELSE ROUND(((receita - receita_anterior) / receita_anterior) * 100.0, 2)
			END AS crescimento_mes_a_mes
		FROM ordered
		ORDER BY mes`, filter)

	var rows []models.MonthlyGrowth
	err := r.db.Raw(query, append([]interface{}{months}, args...)...).Scan(&rows).Error
	return rows, err
}

// ProductMargins estimates cost as 60% of the average line price.
func (r *analyticsRepository) ProductMargins(brandID *uint, limit int) ([]models.ProductMargin, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		WITH product_stats AS (
			SELECT
				p.id,
				p.name as produto,
				AVG(ps.total_price) as preco_medio,
				AVG(ps.total_price) * 0.6 as custo_estimado,
				SUM(ps.quantity) as total_vendido,
				COUNT(DISTINCT ps.sale_id) as vendas_com_produto,
				SUM(ps.total_price) as receita_total
			FROM products p
			JOIN product_sales ps ON ps.product_id = p.id
			JOIN sales s ON ps.sale_id = s.id
			LEFT JOIN stores st ON s.store_id = st.id
			WHERE s.sale_status_desc = 'COMPLETED'%s
			GROUP BY p.id, p.name
		)
		SELECT
			produto,
			ROUND(preco_medio::numeric, 2) as preco_medio,
			ROUND(custo_estimado::numeric, 2) as custo_estimado,
			ROUND((preco_medio - custo_estimado)::numeric, 2) as margem_unitaria,
			ROUND(((preco_medio - custo_estimado) / NULLIF(preco_medio, 0) * 100)::numeric, 2) as margem_percentual,
			total_vendido,
			vendas_com_produto,
			ROUND(receita_total::numeric, 2) as receita_total,
			ROUND((receita_total - (custo_estimado * total_vendido))::numeric, 2) as lucro_total
		FROM product_stats
		ORDER BY margem_percentual ASC
		LIMIT ?`, filter)

	var rows []models.ProductMargin
	err := r.db.Raw(query, append(args, limit)...).Scan(&rows).Error
	return rows, err
}

// Bucket expressions per grouping granularity; anything outside the
// whitelist falls back to day.
var deliveryBuckets = map[string]struct {
	selectClause string
	groupClause  string
}{
	"hour": {"EXTRACT(HOUR FROM s.created_at)::int as hora,", "EXTRACT(HOUR FROM s.created_at)"},
	"day":  {"DATE(s.created_at) as data,", "DATE(s.created_at)"},
	"week": {"DATE_TRUNC('week', s.created_at) as semana,", "DATE_TRUNC('week', s.created_at)"},
}

func (r *analyticsRepository) DeliveryPerformance(brandID *uint, days int, groupBy string) ([]models.DeliveryPerformance, error) {
	bucket, ok := deliveryBuckets[groupBy]
	if !ok {
		bucket = deliveryBuckets["day"]
	}

	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			%s
			COUNT(*) as total_entregas,
			ROUND(AVG(s.delivery_seconds / 60.0)::numeric, 2) as tempo_medio_minutos,
			ROUND(MIN(s.delivery_seconds / 60.0)::numeric, 2) as tempo_minimo_minutos,
			ROUND(MAX(s.delivery_seconds / 60.0)::numeric, 2) as tempo_maximo_minutos,
			ROUND(PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY s.delivery_seconds / 60.0)::numeric, 2) as mediana_minutos,
			ROUND(PERCENTILE_CONT(0.9) WITHIN GROUP (ORDER BY s.delivery_seconds / 60.0)::numeric, 2) as p90_minutos,
			COUNT(*) FILTER (WHERE s.delivery_seconds / 60.0 <= 30) as entregas_rapidas,
			ROUND((COUNT(*) FILTER (WHERE s.delivery_seconds / 60.0 <= 30)::numeric / NULLIF(COUNT(*), 0)) * 100, 2) as percentual_rapidas
		FROM sales s
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'
			AND s.delivery_seconds IS NOT NULL
			AND s.created_at >= NOW() - make_interval(days => ?)%s
		GROUP BY %s
		ORDER BY %s`, bucket.selectClause, filter, bucket.groupClause, bucket.groupClause)

	var rows []models.DeliveryPerformance
	err := r.db.Raw(query, append([]interface{}{days}, args...)...).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) CustomerRetention(brandID *uint, daysInactive, minPurchases, limit int) ([]models.CustomerRetention, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		WITH customer_stats AS (
			SELECT
				c.id,
				c.customer_name,
				c.email,
				COUNT(DISTINCT s.id) as total_compras,
				SUM(s.total_amount) as valor_total_gasto,
				AVG(s.total_amount) as ticket_medio,
				MIN(s.created_at) as primeira_compra,
				MAX(s.created_at) as ultima_compra,
				EXTRACT(DAY FROM (NOW() - MAX(s.created_at)))::int as dias_desde_ultima_compra
			FROM customers c
			JOIN sales s ON s.customer_id = c.id
			LEFT JOIN stores st ON s.store_id = st.id
			WHERE s.sale_status_desc = 'COMPLETED'%s
			GROUP BY c.id, c.customer_name, c.email
		)
		SELECT
			customer_name,
			email,
			total_compras,
			ROUND(valor_total_gasto::numeric, 2) as valor_total_gasto,
			ROUND(ticket_medio::numeric, 2) as ticket_medio,
			primeira_compra,
			ultima_compra,
			dias_desde_ultima_compra,
			CASE
				WHEN dias_desde_ultima_compra <= ? THEN 'Ativo'
				WHEN dias_desde_ultima_compra <= ? THEN 'Em risco'
				ELSE 'Inativo'
			END as status_retencao,
			CASE
				WHEN total_compras >= ? AND dias_desde_ultima_compra > ? THEN 'Alerta: Cliente valioso inativo'
				WHEN total_compras >= ? AND dias_desde_ultima_compra <= ? THEN 'Cliente valioso ativo'
				ELSE 'Cliente regular'
			END as categoria_cliente
		FROM customer_stats
		WHERE total_compras >= ?
		ORDER BY total_compras DESC, valor_total_gasto DESC
		LIMIT ?`, filter)

	args = append(args,
		daysInactive, daysInactive*2,
		minPurchases, daysInactive,
		minPurchases, daysInactive,
		minPurchases, limit)

	var rows []models.CustomerRetention
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// Anomalies flags days whose sales count or revenue deviates from the 7-row
// trailing rolling mean by more than two standard deviations. The first six
// days of the window use however many samples exist, by contract.
func (r *analyticsRepository) Anomalies(brandID *uint, days int) ([]models.Anomaly, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		WITH daily_stats AS (
			SELECT
				DATE(s.created_at) as data,
				COUNT(*) as vendas,
				SUM(s.total_amount) as receita,
				AVG(s.total_amount) as ticket_medio
			FROM sales s
			LEFT JOIN stores st ON s.store_id = st.id
			WHERE s.sale_status_desc = 'COMPLETED'
				AND s.created_at >= NOW() - make_interval(days => ?)%s
			GROUP BY DATE(s.created_at)
		),
		stats_with_avg AS (
			SELECT
				*,
				AVG(vendas) OVER (ORDER BY data ROWS BETWEEN 6 PRECEDING AND CURRENT ROW) as media_vendas_7d,
				AVG(receita) OVER (ORDER BY data ROWS BETWEEN 6 PRECEDING AND CURRENT ROW) as media_receita_7d,
				STDDEV(vendas) OVER (ORDER BY data ROWS BETWEEN 6 PRECEDING AND CURRENT ROW) as desvio_vendas_7d,
				STDDEV(receita) OVER (ORDER BY data ROWS BETWEEN 6 PRECEDING AND CURRENT ROW) as desvio_receita_7d
			FROM daily_stats
		)
		SELECT
			data,
			vendas,
			ROUND(receita::numeric, 2) as receita,
			ROUND(ticket_medio::numeric, 2) as ticket_medio,
			ROUND(media_vendas_7d::numeric, 2) as media_vendas_7d,
			ROUND(media_receita_7d::numeric, 2) as media_receita_7d,
			CASE
				WHEN vendas < (media_vendas_7d - 2 * desvio_vendas_7d) THEN 'Queda significativa em vendas'
				WHEN vendas > (media_vendas_7d + 2 * desvio_vendas_7d) THEN 'Pico significativo em vendas'
				WHEN receita < (media_receita_7d - 2 * desvio_receita_7d) THEN 'Queda significativa em receita'
				WHEN receita > (media_receita_7d + 2 * desvio_receita_7d) THEN 'Pico significativo em receita'
				ELSE 'Normal'
			END as anomalia,
			ROUND(((vendas - media_vendas_7d) / NULLIF(media_vendas_7d, 0) * 100)::numeric, 2) as variacao_vendas_pct,
			ROUND(((receita - media_receita_7d) / NULLIF(media_receita_7d, 0) * 100)::numeric, 2) as variacao_receita_pct
		FROM stats_with_avg
		WHERE (
			vendas < (media_vendas_7d - 2 * desvio_vendas_7d) OR
			vendas > (media_vendas_7d + 2 * desvio_vendas_7d) OR
			receita < (media_receita_7d - 2 * desvio_receita_7d) OR
			receita > (media_receita_7d + 2 * desvio_receita_7d)
		)
		ORDER BY data DESC`, filter)

	var rows []models.Anomaly
	err := r.db.Raw(query, append([]interface{}{days}, args...)...).Scan(&rows).Error
	return rows, err
}

// TopProductsByWeekday returns the flat weekday/product rows; the per-weekday
// truncation is a second pass in the service layer, on purpose.
func (r *analyticsRepository) TopProductsByWeekday(brandID *uint) ([]models.WeekdayProductRow, error) {
	filter, args := brandFilter(brandID)
	query := fmt.Sprintf(`
		SELECT
			TO_CHAR(s.created_at, 'Dy') AS dia_semana,
			EXTRACT(DOW FROM s.created_at)::int AS dia_numero,
			p.name as product_name,
			SUM(ps.quantity) as total_quantity,
			SUM(ps.total_price) as total_revenue,
			COUNT(DISTINCT ps.sale_id) as sales_count
		FROM product_sales ps
		JOIN products p ON ps.product_id = p.id
		JOIN sales s ON ps.sale_id = s.id
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'%s
		GROUP BY TO_CHAR(s.created_at, 'Dy'), EXTRACT(DOW FROM s.created_at), p.id, p.name
		ORDER BY dia_numero, total_revenue DESC`, filter)

	var rows []models.WeekdayProductRow
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}
