// Package config loads the YAML file of default assumptions the form
// falls back to when a field is left blank.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"resale_valuation/pkg/core/scenario"
)

// Defaults mirrors config/defaults.yaml.
type Defaults struct {
	Assumptions scenario.Assumptions `yaml:"assumptions"`
}

// Load reads and parses the defaults file.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ApplyTo fills zero-valued fields of a with the configured defaults.
// A field the user actually set (non-zero after coercion) always wins.
func (d *Defaults) ApplyTo(a *scenario.Assumptions) {
	if d == nil {
		return
	}
	def := d.Assumptions

	fill := func(dst *float64, fallback float64) {
		if *dst == 0 {
			*dst = fallback
		}
	}

	fill(&a.HomeLoanRate, def.HomeLoanRate)
	fill(&a.HomeLoanTermYears, def.HomeLoanTermYears)
	fill(&a.PersonalLoan1Rate, def.PersonalLoan1Rate)
	fill(&a.PersonalLoan1TermYears, def.PersonalLoan1TermYears)
	fill(&a.PersonalLoan1StartMonth, def.PersonalLoan1StartMonth)
	fill(&a.PersonalLoan2Rate, def.PersonalLoan2Rate)
	fill(&a.PersonalLoan2TermYears, def.PersonalLoan2TermYears)
	fill(&a.PersonalLoan2StartMonth, def.PersonalLoan2StartMonth)
	fill(&a.EMIStartOffsetMonths, def.EMIStartOffsetMonths)
	fill(&a.HoldingPeriod, def.HoldingPeriod)
	fill(&a.ConstructionMonths, def.ConstructionMonths)
	fill(&a.DisbursementStartMonth, def.DisbursementStartMonth)
	fill(&a.DisbursementIntervalMonths, def.DisbursementIntervalMonths)

	if a.HoldingPeriodUnit == "" {
		a.HoldingPeriodUnit = def.HoldingPeriodUnit
	}
}
