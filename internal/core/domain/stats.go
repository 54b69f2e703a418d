package domain

// PropertyStats - агрегаты для дашборда админки.
type PropertyStats struct {
	Total         int
	Active        int // статус "For Sale"
	Sold          int
	UnderContract int
	TotalValue    float64
}

// PriceStatus - минимальная проекция строки, которой достаточно для подсчета статистики.
type PriceStatus struct {
	Status string
	Price  float64
}

// StatsResult - статистика вместе с источником данных.
type StatsResult struct {
	Stats  PropertyStats
	Source DataSource
}

// ComputeStats считает агрегаты полным проходом по набору. Кеша нет.
func ComputeStats(rows []PriceStatus) PropertyStats {
	var s PropertyStats
	for _, r := range rows {
		s.Total++
		switch r.Status {
		case StatusForSale:
			s.Active++
		case StatusSold:
			s.Sold++
		case StatusUnderContract:
			s.UnderContract++
		}
		s.TotalValue += r.Price
	}
	return s
}

// PriceStatusOf проецирует объекты в строки для ComputeStats.
func PriceStatusOf(properties []Property) []PriceStatus {
	rows := make([]PriceStatus, len(properties))
	for i, p := range properties {
		rows[i] = PriceStatus{Status: p.Status, Price: p.Price}
	}
	return rows
}
