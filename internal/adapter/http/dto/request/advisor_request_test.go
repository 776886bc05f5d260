package request

import (
	"testing"
	"time"
)

func TestAdvisorRequest_ToQuery(t *testing.T) {
	t.Run("date-only stay dates", func(t *testing.T) {
		r := AdvisorRequest{City: "porto", BasePrice: 90, CheckIn: "2026-09-10", CheckOut: "2026-09-12"}

		q, err := r.ToQuery()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
		if !q.CheckIn.Equal(want) {
			t.Fatalf("expected check-in %s, got %s", want, q.CheckIn)
		}
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		r := AdvisorRequest{City: "porto", BasePrice: 90, CheckIn: "2026-09-10T15:00:00Z"}

		q, err := r.ToQuery()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.CheckIn.Hour() != 15 {
			t.Fatalf("expected 15h check-in, got %s", q.CheckIn)
		}
	})

	t.Run("garbage date rejected", func(t *testing.T) {
		r := AdvisorRequest{City: "porto", BasePrice: 90, CheckIn: "next tuesday"}

		if _, err := r.ToQuery(); err == nil {
			t.Fatalf("expected error for unparseable date")
		}
	})

	t.Run("check-out not after check-in rejected", func(t *testing.T) {
		r := AdvisorRequest{City: "porto", BasePrice: 90, CheckIn: "2026-09-10", CheckOut: "2026-09-10"}

		if _, err := r.ToQuery(); err == nil {
			t.Fatalf("expected error for zero-night stay")
		}
	})

	t.Run("empty dates allowed", func(t *testing.T) {
		r := AdvisorRequest{City: "porto", BasePrice: 90}

		q, err := r.ToQuery()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.CheckIn.IsZero() || !q.CheckOut.IsZero() {
			t.Fatalf("expected zero stay dates, got %s / %s", q.CheckIn, q.CheckOut)
		}
	})
}
