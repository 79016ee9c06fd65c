package scenario

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestHandler() *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHandler(logger, nil)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/scenario/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleEvaluate(rec, req)
	return rec
}

func TestEvaluateRejectsMissingPurchasePrice(t *testing.T) {
	rec := post(newTestHandler(), `{"property": {"size_sqft": 1000}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestEvaluateRejectsMissingProperty(t *testing.T) {
	rec := post(newTestHandler(), `{"purchase_price_per_sqft": 10000}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestEvaluateHappyPath(t *testing.T) {
	body := `{
		"purchase_price_per_sqft": 10000,
		"payment_plan": "20-80",
		"property": {"size_sqft": 1000, "possession_month": 24},
		"exit_price_per_sqft": 12000,
		"compare_prices": [9000, 13000],
		"assumptions": {
			"home_loan_rate": 8.5,
			"home_loan_term_years": 20,
			"personal_loan1_rate": 11,
			"personal_loan1_term_years": 5,
			"holding_period": 36,
			"holding_period_unit": "months",
			"disbursement_interval_months": 3
		}
	}`
	rec := post(newTestHandler(), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if resp.ReportID == "" {
		t.Error("Response should carry a report ID")
	}
	if resp.Breakdown.TotalCost != 10000000 {
		t.Errorf("Total cost %f, want 10,000,000", resp.Breakdown.TotalCost)
	}
	if len(resp.Breakdown.Sweep) != 3 {
		t.Errorf("Sweep entries %d, want 3", len(resp.Breakdown.Sweep))
	}

	selected := 0
	for _, e := range resp.Breakdown.Sweep {
		if e.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("Selected entries %d, want 1", selected)
	}
}

func TestEvaluateCoercesStringNumerics(t *testing.T) {
	// The form is allowed to send numbers as strings or leave them null.
	body := `{
		"purchase_price_per_sqft": "10000",
		"payment_plan": "20-80",
		"property": {"size_sqft": "1000", "possession_month": null},
		"exit_price_per_sqft": "garbage",
		"assumptions": {"home_loan_rate": "8.5", "holding_period": ""}
	}`
	rec := post(newTestHandler(), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Coercible input must not be rejected, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if resp.Breakdown.TotalCost != 10000000 {
		t.Errorf("String price should still price the property, got %f", resp.Breakdown.TotalCost)
	}
	if resp.Breakdown.SaleValue != 0 {
		t.Errorf("Garbage exit price coerces to 0, got sale value %f", resp.Breakdown.SaleValue)
	}
}

func TestEvaluateCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/scenario/evaluate", nil)
	rec := httptest.NewRecorder()
	newTestHandler().HandleEvaluate(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Preflight should return 200, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Missing CORS header")
	}
}
