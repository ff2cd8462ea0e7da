package model

// CategoryWithCount is a category row annotated with its item count, as
// produced by the category list query.
type CategoryWithCount struct {
	ID          uint
	Name        string
	Description string
	ItemCount   int64
}

// CategoryStock is one bar of the per-category stock chart.
type CategoryStock struct {
	CategoryID uint
	Name       string
	TotalStock int64
}

// CategoryItemCount is one slice of the item-distribution chart.
type CategoryItemCount struct {
	CategoryID uint
	Name       string
	ItemCount  int64
}

// DashboardStats aggregates everything the dashboard page renders.
type DashboardStats struct {
	ItemCount           int64
	CategoryCount       int64
	StockSum            int64
	InventoryValueCents int64
	StockByCategory     []CategoryStock
	ItemDistribution    []CategoryItemCount
	LowStock            []Item
}
