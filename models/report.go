package models

// SalesPoint is one bucket of the sales chart.
type SalesPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders,omitempty"`
}

// TopProduct is one row of the best-sellers report.
type TopProduct struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TotalSold int    `json:"total_sold"`
	Revenue   string `json:"revenue"`
}

// DashboardStats is the back-office overview payload.
type DashboardStats struct {
	TotalSales        string       `json:"total_sales"`
	TotalOrders       int          `json:"total_orders"`
	TotalProducts     int          `json:"total_products"`
	TotalCustomers    int          `json:"total_customers"`
	AverageOrderValue string       `json:"average_order_value,omitempty"`
	RecentOrders      []Order      `json:"recent_orders"`
	SalesChart        []SalesPoint `json:"sales_chart"`
	TopProducts       []TopProduct `json:"top_products,omitempty"`
}

// MonthlySales is one bucket of the reports sales series.
type MonthlySales struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders,omitempty"`
}

// ProductSales is one row of the reports per-product series.
type ProductSales struct {
	Name    string  `json:"name"`
	Sales   float64 `json:"sales"`
	Revenue string  `json:"revenue"`
}

// ReportData is the back-office reports payload.
type ReportData struct {
	SalesData   []MonthlySales `json:"sales_data"`
	ProductData []ProductSales `json:"product_data"`
}
