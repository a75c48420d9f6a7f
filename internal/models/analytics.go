package models

import "time"

// Analytics projections. Field names follow the dashboard's response contract,
// which mixes English and Portuguese keys depending on the report.

type DailyRevenue struct {
	Date       time.Time `json:"date"`
	Revenue    float64   `json:"revenue"`
	SalesCount int64     `json:"sales_count"`
}

type TopProduct struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	SalesCount    int64   `json:"sales_count"`
}

type ChannelRevenue struct {
	ChannelName   string  `json:"channel_name"`
	Revenue       float64 `json:"revenue"`
	SalesCount    int64   `json:"sales_count"`
	AverageTicket float64 `json:"average_ticket"`
}

type StoreRevenue struct {
	StoreName     string  `json:"store_name"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Revenue       float64 `json:"revenue"`
	SalesCount    int64   `json:"sales_count"`
	AverageTicket float64 `json:"average_ticket"`
}

type HourlySales struct {
	Hour       int     `json:"hour"`
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}

// StorePerformance keeps zero-sale stores, so revenue and ticket are COALESCEd.
type StorePerformance struct {
	StoreID       uint    `json:"store_id"`
	StoreName     string  `json:"store_name"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	SalesCount    int64   `json:"sales_count"`
	Revenue       float64 `json:"revenue"`
	AverageTicket float64 `json:"average_ticket"`
}

type Overview struct {
	Lojas            int64 `json:"lojas"`
	Vendas           int64 `json:"vendas"`
	ProdutosVendidos int64 `json:"produtos_vendidos"`
	Customizacoes    int64 `json:"customizacoes"`
	Clientes         int64 `json:"clientes"`
}

type ChannelShare struct {
	Canal      string   `json:"canal"`
	Vendas     int64    `json:"vendas"`
	Percentual *float64 `json:"percentual"`
}

type ProductStats struct {
	MediaProdutosPorVenda            *float64 `json:"media_produtos_por_venda"`
	PercentualVendasComCustomizacoes *float64 `json:"percentual_vendas_com_customizacoes"`
}

type CustomerStats struct {
	TotalVendas             int64    `json:"total_vendas"`
	VendasIdentificadas     int64    `json:"vendas_identificadas"`
	PercentualIdentificadas *float64 `json:"percentual_identificadas"`
	PercentualGuest         *float64 `json:"percentual_guest"`
}

type WeekdaySales struct {
	DiaSemana string  `json:"dia_semana"`
	DiaNumero int     `json:"dia_numero"`
	Vendas    int64   `json:"vendas"`
	Receita   float64 `json:"receita"`
}

type MonthlyGrowth struct {
	Mes                string   `json:"mes"`
	Receita            float64  `json:"receita"`
	CrescimentoMesAMes *float64 `json:"crescimento_mes_a_mes" gorm:"column:crescimento_mes_a_mes"`
}

type ProductMargin struct {
	Produto          string   `json:"produto"`
	PrecoMedio       float64  `json:"preco_medio"`
	CustoEstimado    float64  `json:"custo_estimado"`
	MargemUnitaria   float64  `json:"margem_unitaria"`
	MargemPercentual *float64 `json:"margem_percentual"`
	TotalVendido     int64    `json:"total_vendido"`
	VendasComProduto int64    `json:"vendas_com_produto"`
	ReceitaTotal     float64  `json:"receita_total"`
	LucroTotal       float64  `json:"lucro_total"`
}

// DeliveryPerformance carries one bucket column per grouping granularity;
// only the selected one is populated.
type DeliveryPerformance struct {
	Hora               *int       `json:"hora,omitempty"`
	Data               *time.Time `json:"data,omitempty"`
	Semana             *time.Time `json:"semana,omitempty"`
	TotalEntregas      int64      `json:"total_entregas"`
	TempoMedioMinutos  float64    `json:"tempo_medio_minutos"`
	TempoMinimoMinutos float64    `json:"tempo_minimo_minutos"`
	TempoMaximoMinutos float64    `json:"tempo_maximo_minutos"`
	MedianaMinutos     float64    `json:"mediana_minutos"`
	P90Minutos         float64    `json:"p90_minutos" gorm:"column:p90_minutos"`
	EntregasRapidas    int64      `json:"entregas_rapidas"`
	PercentualRapidas  *float64   `json:"percentual_rapidas"`
}

type CustomerRetention struct {
	CustomerName          string    `json:"customer_name"`
	Email                 string    `json:"email"`
	TotalCompras          int64     `json:"total_compras"`
	ValorTotalGasto       float64   `json:"valor_total_gasto"`
	TicketMedio           float64   `json:"ticket_medio"`
	PrimeiraCompra        time.Time `json:"primeira_compra"`
	UltimaCompra          time.Time `json:"ultima_compra"`
	DiasDesdeUltimaCompra int       `json:"dias_desde_ultima_compra"`
	StatusRetencao        string    `json:"status_retencao"`
	CategoriaCliente      string    `json:"categoria_cliente"`
}

type Anomaly struct {
	Data               time.Time `json:"data"`
	Vendas             int64     `json:"vendas"`
	Receita            float64   `json:"receita"`
	TicketMedio        float64   `json:"ticket_medio"`
	MediaVendas7d      float64   `json:"media_vendas_7d" gorm:"column:media_vendas_7d"`
	MediaReceita7d     float64   `json:"media_receita_7d" gorm:"column:media_receita_7d"`
	Anomalia           string    `json:"anomalia"`
	VariacaoVendasPct  *float64  `json:"variacao_vendas_pct"`
	VariacaoReceitaPct *float64  `json:"variacao_receita_pct"`
}

// WeekdayProductRow is the flat first-phase result; the service folds rows
// into per-weekday capped lists of WeekdayProduct.
type WeekdayProductRow struct {
	DiaSemana     string  `json:"dia_semana"`
	DiaNumero     int     `json:"dia_numero"`
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	SalesCount    int64   `json:"sales_count"`
}

type WeekdayProduct struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	SalesCount    int64   `json:"sales_count"`
}

// CustomQueryResult echoes the requested selection and a placeholder-masked
// rendering of the executed statement for diagnostic display.
type CustomQueryResult struct {
	Data       []map[string]interface{} `json:"data"`
	Dimensions []string                 `json:"dimensions"`
	Metrics    []string                 `json:"metrics"`
	Query      string                   `json:"query"`
}
