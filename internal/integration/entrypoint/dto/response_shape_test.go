package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/usecase/category"
	"github.com/expense-buddy/backend/internal/application/usecase/dashboard"
)

func TestCategoryListingIsBareArray(t *testing.T) {
	raw, err := json.Marshal(ToCategoryResponses([]category.CategoryOutput{}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("empty catalog marshals to %s, want []", raw)
	}

	raw, err = json.Marshal(ToCategoryResponses([]category.CategoryOutput{
		{Name: "Travel", Icon: "✈️", Color: "#85C1E9"},
	}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.HasPrefix(string(raw), "[") {
		t.Errorf("catalog marshals to %s, want a JSON array", raw)
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("catalog is not an array of objects: %v", err)
	}
	if items[0]["name"] != "Travel" {
		t.Errorf("items[0][name] = %v, want Travel", items[0]["name"])
	}
}

func TestDashboardResponseFieldNames(t *testing.T) {
	out := &dashboard.GetDashboardOutput{
		TotalExpenses:   decimal.NewFromInt(150),
		MonthlyExpenses: decimal.NewFromInt(100),
		Month:           "2024-06",
		CategoryBreakdown: []dashboard.CategoryBreakdownItem{
			{CategoryName: "Travel", Amount: decimal.NewFromInt(100)},
		},
	}

	raw, err := json.Marshal(ToDashboardResponse(out))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"total_expenses", "monthly_expenses", "month", "categories_breakdown", "recent_expenses", "budget_status"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("dashboard response is missing key %q: %s", key, raw)
		}
	}
	if _, ok := doc["category_breakdown"]; ok {
		t.Errorf("dashboard response carries stale key category_breakdown: %s", raw)
	}

	breakdown, ok := doc["categories_breakdown"].([]any)
	if !ok || len(breakdown) != 1 {
		t.Fatalf("categories_breakdown = %v, want one entry", doc["categories_breakdown"])
	}
	entry := breakdown[0].(map[string]any)
	if entry["name"] != "Travel" {
		t.Errorf("breakdown entry name = %v, want Travel", entry["name"])
	}
	if _, ok := entry["category_name"]; ok {
		t.Errorf("breakdown entry carries stale key category_name: %v", entry)
	}
}
