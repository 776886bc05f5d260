package pricing

import (
	"math"
	"testing"

	"rentpulse/internal/domain/entities"
)

func batchItems(n int) []BatchItem {
	items := make([]BatchItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, BatchItem{
			Input: entities.PricingInput{
				Category:       entities.CategoryPlumbing,
				Priority:       entities.PriorityMedium,
				EstimatedHours: 2,
			},
		})
	}
	return items
}

func TestBatchDiscountRate(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{0, 0}, {1, 0}, {2, 0.10}, {3, 0.15}, {4, 0.15},
		{5, 0.20}, {9, 0.20}, {10, 0.25}, {25, 0.25},
	}
	for _, tc := range cases {
		if got := batchDiscountRate(tc.n); got != tc.want {
			t.Fatalf("batchDiscountRate(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestCalculateBatch_ThreeItems(t *testing.T) {
	res := CalculateBatch(batchItems(3), defaultPricing(), neutralNow)

	if len(res.Individual) != 3 {
		t.Fatalf("expected 3 individual results, got %d", len(res.Individual))
	}

	sum := 0.0
	for _, r := range res.Individual {
		sum += r.Breakdown.Total
	}
	if math.Abs(res.Bulk.TotalBeforeDiscount-round2(sum)) > 1e-9 {
		t.Fatalf("total before discount %v != sum of individual totals %v", res.Bulk.TotalBeforeDiscount, sum)
	}
	if res.Bulk.DiscountRate != 0.15 {
		t.Fatalf("expected 15%% rate for 3 items, got %v", res.Bulk.DiscountRate)
	}
	if res.Bulk.Savings != round2(sum*0.15) {
		t.Fatalf("expected savings %v, got %v", round2(sum*0.15), res.Bulk.Savings)
	}
	if res.Bulk.FinalTotal != round2(sum-round2(sum*0.15)) {
		t.Fatalf("expected final total %v, got %v", round2(sum-round2(sum*0.15)), res.Bulk.FinalTotal)
	}
}

func TestCalculateBatch_SingleItemNoDiscount(t *testing.T) {
	res := CalculateBatch(batchItems(1), defaultPricing(), neutralNow)
	if res.Bulk.DiscountRate != 0 || res.Bulk.Savings != 0 {
		t.Fatalf("expected no discount for one item, got %+v", res.Bulk)
	}
	if res.Bulk.FinalTotal != res.Bulk.TotalBeforeDiscount {
		t.Fatalf("final total should equal total before discount, got %+v", res.Bulk)
	}
}

// The per-item bulk discount (open issues on the property) and the batch-level
// count discount stack. The combined effect looks unintentional but matches
// observed behavior, so it is pinned here.
func TestCalculateBatch_StacksOnPerItemBulkDiscount(t *testing.T) {
	items := batchItems(3)
	for i := range items {
		items[i].Stats = entities.PricingStats{OpenIssuesOnProperty: 5}
	}

	res := CalculateBatch(items, defaultPricing(), neutralNow)

	for i, r := range res.Individual {
		if r.Factors.BulkDiscount != 0.15 {
			t.Fatalf("item %d: expected per-item bulk discount 0.15, got %v", i, r.Factors.BulkDiscount)
		}
		if _, ok := r.Breakdown.Adjustments["bulk_discount"]; !ok {
			t.Fatalf("item %d: expected bulk_discount adjustment", i)
		}
	}
	if res.Bulk.DiscountRate != 0.15 {
		t.Fatalf("expected batch discount 0.15 on top, got %v", res.Bulk.DiscountRate)
	}

	// Both layers applied: the batch total is strictly below what either
	// discount alone would produce.
	noPerItem := CalculateBatch(batchItems(3), defaultPricing(), neutralNow)
	if res.Bulk.FinalTotal >= noPerItem.Bulk.FinalTotal {
		t.Fatalf("stacked discounts should undercut batch-only discount: %v vs %v",
			res.Bulk.FinalTotal, noPerItem.Bulk.FinalTotal)
	}
}
