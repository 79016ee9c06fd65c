// A small CLI that posts a sample scenario to a running API instance
// and prints the exit-price sweep. Useful for eyeballing a deployment.
package main

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"

	apiscenario "resale_valuation/pkg/api/scenario"
)

func main() {
	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	payload := map[string]interface{}{
		"purchase_price_per_sqft": 10000,
		"payment_plan":            "20-80",
		"property": map[string]interface{}{
			"size_sqft":        1000,
			"possession_month": 24,
		},
		"exit_price_per_sqft": 12000,
		"compare_prices":      []float64{9000, 11000, 13000},
		"assumptions": map[string]interface{}{
			"home_loan_rate":            8.5,
			"home_loan_term_years":      20,
			"personal_loan1_rate":       11,
			"personal_loan1_term_years": 5,
			"holding_period":            36,
			"holding_period_unit":       "months",
		},
	}

	var result apiscenario.Response
	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Post(base + "/api/scenario/evaluate")
	if err != nil {
		fmt.Println("Request failed:", err)
		os.Exit(1)
	}
	if resp.IsError() {
		fmt.Printf("API error (%d): %s\n", resp.StatusCode(), resp.String())
		os.Exit(1)
	}

	b := result.Breakdown
	fmt.Printf("Report %s\n", result.ReportID)
	fmt.Printf("Total cost: %.0f  Home loan: %.0f  EMI: %.2f\n",
		b.TotalCost, b.HomeLoan.Amount, b.HomeLoan.EMI)
	fmt.Println()
	fmt.Println("Exit price      Sale value      Net profit        ROI")
	for _, entry := range b.Sweep {
		marker := " "
		if entry.Selected {
			marker = "*"
		}
		fmt.Printf("%s %9.0f  %14.0f  %14.0f  %8.2f%%\n",
			marker, entry.ExitPricePerSqft, entry.SaleValue, entry.NetProfit, entry.ROI)
	}
}
