package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Pricing.TaxRate != 0.27 {
		t.Fatalf("expected tax rate 0.27, got %v", cfg.Pricing.TaxRate)
	}
	if got := cfg.Pricing.BaseRates["hvac"]; got != 85 {
		t.Fatalf("expected hvac base rate 85, got %v", got)
	}
	if got := cfg.Forecast.SeasonalFactors["07"]; got != 1.25 {
		t.Fatalf("expected July factor 1.25, got %v", got)
	}
	if cfg.Advisor.RoundingStep != 5 {
		t.Fatalf("expected rounding step 5, got %v", cfg.Advisor.RoundingStep)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Pricing.TaxRate != 0.27 {
			t.Fatalf("expected defaults, got tax rate %v", cfg.Pricing.TaxRate)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("pricing: ["), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for invalid yaml")
		}
	})

	t.Run("overrides merge over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "override.yaml")
		body := "pricing:\n  tax_rate: 0.21\nadvisor:\n  rounding_step: 10\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Pricing.TaxRate != 0.21 {
			t.Fatalf("expected overridden tax rate 0.21, got %v", cfg.Pricing.TaxRate)
		}
		if cfg.Advisor.RoundingStep != 10 {
			t.Fatalf("expected overridden rounding step 10, got %v", cfg.Advisor.RoundingStep)
		}
		if got := cfg.Forecast.BaseOccupancy; got != 0.85 {
			t.Fatalf("expected default base occupancy 0.85, got %v", got)
		}
	})
}
