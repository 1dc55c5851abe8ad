// Package fixtures holds the built-in demo and template datasets.
package fixtures

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// ErrUnknownFixture indicates a fixture name that is not registered.
var ErrUnknownFixture = errors.New("unknown fixture")

// Fixture describes a built-in dataset.
type Fixture struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	columns     func() []models.Column
}

var registry = map[string]Fixture{
	"sales-demo": {
		Name:        "sales-demo",
		Description: "Monthly sales performance",
		columns: func() []models.Column {
			return []models.Column{
				textColumn("Month", "January", "February", "March", "April", "May", "June"),
				intColumn("Revenue", 65000, 59000, 80000, 81000, 56000, 95000),
				intColumn("Units Sold", 850, 720, 1020, 1050, 680, 1180),
				floatColumn("Profit Margin", 18.5, 19.2, 21.1, 20.8, 17.9, 22.3),
			}
		},
	},
	"market-demo": {
		Name:        "market-demo",
		Description: "Market share by product",
		columns: func() []models.Column {
			return []models.Column{
				textColumn("Product", "Product A", "Product B", "Product C", "Product D"),
				intColumn("Market Share", 35, 25, 20, 20),
				intColumn("Revenue", 2800000, 2000000, 1600000, 1600000),
				floatColumn("Growth Rate", 12.5, 8.3, 15.2, 6.7),
			}
		},
	},
	"growth-demo": {
		Name:        "growth-demo",
		Description: "Yearly business growth",
		columns: func() []models.Column {
			return []models.Column{
				intColumn("Year", 2020, 2021, 2022, 2023, 2024),
				intColumn("Customers", 120, 190, 300, 500, 620),
				intColumn("Revenue Growth", 0, 58, 150, 317, 417),
				intColumn("Team Size", 8, 12, 18, 25, 32),
			}
		},
	},
	"sales-dashboard": {
		Name:        "sales-dashboard",
		Description: "Sales dashboard template",
		columns: func() []models.Column {
			return []models.Column{
				textColumn("Month", "January", "February", "March", "April", "May", "June"),
				intColumn("Revenue", 125000, 138000, 142000, 156000, 164000, 178000),
				intColumn("Units Sold", 1250, 1380, 1420, 1560, 1640, 1780),
				floatColumn("Conversion Rate", 3.2, 3.8, 4.1, 4.3, 4.6, 4.9),
				intColumn("Customer Acquisition", 215, 248, 267, 289, 312, 341),
			}
		},
	},
	"financial-report": {
		Name:        "financial-report",
		Description: "Budget versus actual by department",
		columns: func() []models.Column {
			return []models.Column{
				textColumn("Category", "Marketing", "Operations", "Technology", "Human Resources", "Administration"),
				intColumn("Budget", 50000, 80000, 35000, 65000, 25000),
				intColumn("Actual", 48500, 82300, 33200, 67800, 23900),
				intColumn("Variance", 1500, -2300, 1800, -2800, 1100),
				intColumn("Percentage", 97, 103, 95, 104, 96),
			}
		},
	},
	"marketing-analytics": {
		Name:        "marketing-analytics",
		Description: "Campaign reach and conversions by channel",
		columns: func() []models.Column {
			return []models.Column{
				textColumn("Channel", "Social Media", "Email Campaign", "Google Ads", "Content Marketing", "Influencer"),
				intColumn("Reach", 25000, 15000, 35000, 18000, 12000),
				intColumn("Engagement", 1250, 2250, 1750, 1980, 960),
				intColumn("Conversions", 156, 342, 289, 198, 87),
				intColumn("ROI", 285, 420, 315, 245, 180),
			}
		},
	},
	"inventory": {
		Name:        "inventory",
		Description: "Stock levels and reorder points",
		columns: func() []models.Column {
			return []models.Column{
				textColumn("Product", "Product Alpha", "Product Beta", "Product Gamma", "Product Delta", "Product Epsilon"),
				intColumn("Stock Level", 250, 89, 340, 156, 45),
				intColumn("Reorder Point", 100, 120, 80, 150, 75),
				intColumn("Monthly Sales", 85, 145, 65, 98, 112),
				textColumn("Status", "Good", "Low", "Overstock", "Good", "Critical"),
			}
		},
	},
}

// Names returns the registered fixture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every fixture, sorted by name.
func List() []Fixture {
	names := Names()
	out := make([]Fixture, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}
	return out
}

// Get returns a fresh copy of the named dataset.
func Get(name string) (*models.Dataset, error) {
	fx, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
	}
	return models.NewDataset(fx.Name, fx.columns())
}

func textColumn(name string, values ...string) models.Column {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return models.Column{Name: name, Cells: cells}
}

func intColumn(name string, values ...int64) models.Column {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return models.Column{Name: name, Cells: cells}
}

func floatColumn(name string, values ...float64) models.Column {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return models.Column{Name: name, Cells: cells}
}
