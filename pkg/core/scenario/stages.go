package scenario

import (
	"fmt"

	"resale_valuation/pkg/core/money"
)

// buildStages groups the breakdown into the four display blocks the
// form renders, with currency values pre-formatted as rupee strings.
func buildStages(b Breakdown) []Stage {
	inr := money.FormatINR

	return []Stage{
		{
			Title: "Property Cost",
			Items: []StageItem{
				{Label: "Base Cost", Value: inr(b.BaseCost)},
				{Label: "Stamp Duty", Value: inr(b.StampDuty)},
				{Label: "GST", Value: inr(b.GST)},
				{Label: "Other Charges", Value: inr(b.OtherCharges)},
				{Label: "Total Cost", Value: inr(b.TotalCost)},
			},
		},
		{
			Title: "Funding Split",
			Items: []StageItem{
				{Label: "Home Loan", Value: inr(b.HomeLoan.Amount)},
				{Label: "Personal Loan 1", Value: inr(b.PersonalLoan1.Amount)},
				{Label: "Personal Loan 2", Value: inr(b.PersonalLoan2.Amount)},
				{Label: "Down Payment", Value: inr(b.DownPayment)},
			},
		},
		{
			Title: "Monthly Obligations",
			Items: []StageItem{
				{Label: "Home Loan EMI", Value: inr(b.HomeLoan.EMI)},
				{Label: "Personal Loan 1 EMI", Value: inr(b.PersonalLoan1.EMI)},
				{Label: "Personal Loan 2 EMI", Value: inr(b.PersonalLoan2.EMI)},
				{Label: "Peak Monthly Outflow", Value: inr(b.PeakOutflow)},
				{Label: "Pre-EMI Interest (IDC)", Value: inr(b.IDCPaid)},
			},
		},
		{
			Title: "Exit Summary",
			Items: []StageItem{
				{Label: "Sale Value", Value: inr(b.SaleValue)},
				{Label: "Outstanding Debt", Value: inr(b.TotalOutstanding)},
				{Label: "Total Payments Made", Value: inr(b.TotalPaid)},
				{Label: "Net Profit", Value: inr(b.NetProfit)},
				{Label: "Leftover Cash", Value: inr(b.LeftoverCash)},
				{Label: "ROI", Value: fmt.Sprintf("%.2f%%", b.ROI)},
			},
		},
	}
}
