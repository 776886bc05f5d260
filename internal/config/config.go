package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Pricing holds every rate table used by the issue-pricing calculator.
//
// The tables ship with built-in defaults (Hungarian VAT, EUR hourly rates)
// and can be overridden per deployment from a YAML file, so jurisdiction
// changes never require a code change.
type Pricing struct {
	TaxRate float64 `yaml:"tax_rate"`

	// Per-category base hourly rates and base labor-hour estimates.
	BaseRates     map[string]float64 `yaml:"base_rates"`
	HourEstimates map[string]float64 `yaml:"hour_estimates"`

	// Priority name -> urgency multiplier. Emergency overrides them all.
	Urgency             map[string]float64 `yaml:"urgency"`
	EmergencyMultiplier float64            `yaml:"emergency_multiplier"`

	// Category -> month ("01".."12") -> multiplier. Missing entries mean 1.0.
	Seasonal map[string]map[string]float64 `yaml:"seasonal"`

	// Keyword lists for the complexity scan. Bilingual on purpose: issue
	// descriptions arrive in English or Spanish.
	ComplexKeywords []string `yaml:"complex_keywords"`
	SimpleKeywords  []string `yaml:"simple_keywords"`

	// Ordered task-type rules for the labor-hour heuristic; first match wins.
	TaskRules []TaskRule `yaml:"task_rules"`
}

type TaskRule struct {
	Keywords   []string `yaml:"keywords"`
	Multiplier float64  `yaml:"multiplier"`
}

// Forecast holds the revenue-forecast model parameters.
type Forecast struct {
	AnnualGrowthRate float64 `yaml:"annual_growth_rate"`
	BaseOccupancy    float64 `yaml:"base_occupancy"`

	// Revenue split percentages (fractions of base revenue).
	RentalShare      float64 `yaml:"rental_share"`
	UtilitiesShare   float64 `yaml:"utilities_share"`
	MaintenanceShare float64 `yaml:"maintenance_share"`
	OtherShare       float64 `yaml:"other_share"`

	// Expense rates. MaintenanceRate, ManagementRate, RepairsRate and
	// OtherRate apply to the revenue total; UtilitiesRate applies to the
	// utilities share of revenue.
	MaintenanceRate float64 `yaml:"maintenance_rate"`
	UtilitiesRate   float64 `yaml:"utilities_rate"`
	ManagementRate  float64 `yaml:"management_rate"`
	RepairsRate     float64 `yaml:"repairs_rate"`
	OtherRate       float64 `yaml:"other_rate"`

	// Month "01".."12" -> demand multiplier used when no market snapshot
	// supplies its own table.
	SeasonalFactors map[string]float64 `yaml:"seasonal_factors"`
}

// Advisor holds the nightly-price advisor bounds.
type Advisor struct {
	MinPriceRatio float64 `yaml:"min_price_ratio"`
	MaxPriceRatio float64 `yaml:"max_price_ratio"`
	RoundingStep  float64 `yaml:"rounding_step"`
}

// Config is the root of the rate-table configuration file.
type Config struct {
	Pricing  Pricing  `yaml:"pricing"`
	Forecast Forecast `yaml:"forecast"`
	Advisor  Advisor  `yaml:"advisor"`
}

// Default returns the built-in tables.
func Default() *Config {
	return &Config{
		Pricing: Pricing{
			TaxRate: 0.27,
			BaseRates: map[string]float64{
				"plumbing":   65,
				"electrical": 75,
				"hvac":       85,
				"structural": 95,
				"other":      55,
			},
			HourEstimates: map[string]float64{
				"plumbing":   2,
				"electrical": 2.5,
				"hvac":       3,
				"structural": 4,
				"other":      1.5,
			},
			Urgency: map[string]float64{
				"low":    0.9,
				"medium": 1.0,
				"high":   1.3,
				"urgent": 1.6,
			},
			EmergencyMultiplier: 2.0,
			Seasonal: map[string]map[string]float64{
				"hvac": {
					"12": 1.30, "01": 1.30, "02": 1.30,
					"06": 1.25, "07": 1.25, "08": 1.25,
				},
				"structural": {
					"03": 1.15, "04": 1.15, "05": 1.15,
					"09": 1.15, "10": 1.15, "11": 1.15,
				},
				"plumbing": {
					"12": 1.10, "01": 1.10, "02": 1.10,
				},
			},
			ComplexKeywords: []string{
				"complex", "structural", "replace", "rewiring", "leak",
				"complejo", "estructural", "reemplazar", "recableado", "fuga",
			},
			SimpleKeywords: []string{
				"simple", "minor", "small", "adjust",
				"sencillo", "menor", "ajustar",
			},
			TaskRules: []TaskRule{
				{Keywords: []string{"replacement", "replace", "reemplazo"}, Multiplier: 1.5},
				{Keywords: []string{"installation", "install", "instalacion", "instalación"}, Multiplier: 1.3},
				{Keywords: []string{"repair", "reparacion", "reparación"}, Multiplier: 1.0},
				{Keywords: []string{"maintenance", "mantenimiento"}, Multiplier: 0.8},
			},
		},
		Forecast: Forecast{
			AnnualGrowthRate: 0.05,
			BaseOccupancy:    0.85,
			RentalShare:      0.85,
			UtilitiesShare:   0.10,
			MaintenanceShare: 0.03,
			OtherShare:       0.02,
			MaintenanceRate:  0.15,
			UtilitiesRate:    0.80,
			ManagementRate:   0.08,
			RepairsRate:      0.05,
			OtherRate:        0.02,
			SeasonalFactors: map[string]float64{
				"01": 0.85, "02": 0.85, "03": 0.95, "04": 1.00,
				"05": 1.05, "06": 1.15, "07": 1.25, "08": 1.25,
				"09": 1.05, "10": 0.95, "11": 0.85, "12": 0.90,
			},
		},
		Advisor: Advisor{
			MinPriceRatio: 0.7,
			MaxPriceRatio: 2.5,
			RoundingStep:  5,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
