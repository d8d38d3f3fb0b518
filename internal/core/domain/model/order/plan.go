package order

import (
	"fmt"

	"sitebuilder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Plan is one of the fixed service tiers a customer can order.
// The plan determines the order price at creation time.
type Plan int

const (
	// PlanUnknown represents an invalid or undefined plan.
	PlanUnknown Plan = iota

	// PlanStarter is the entry tier.
	PlanStarter

	// PlanGrowth is the mid tier.
	PlanGrowth

	// PlanElite is the top tier; its price is the base price for custom work.
	PlanElite
)

func getPlanStrings() map[Plan]string {
	return map[Plan]string{
		PlanStarter: "starter",
		PlanGrowth:  "growth",
		PlanElite:   "elite",
	}
}

// getPriceTable maps each plan to its fixed price in USD.
func getPriceTable() map[Plan]decimal.Decimal {
	return map[Plan]decimal.Decimal{
		PlanStarter: decimal.NewFromInt(150),
		PlanGrowth:  decimal.NewFromInt(499),
		PlanElite:   decimal.NewFromInt(999),
	}
}

// PlanFromString parses a plan name as supplied at checkout.
// Unrecognized plans are a validation error.
func PlanFromString(s string) (Plan, error) {
	for plan, name := range getPlanStrings() {
		if name == s {
			return plan, nil
		}
	}
	return PlanUnknown, errs.NewValueIsInvalidErrorWithCause(
		"plan",
		fmt.Errorf("%q is not a valid plan", s),
	)
}

// String returns the lowercase name of the plan.
func (p Plan) String() string {
	if str, ok := getPlanStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the plan is one of the fixed tiers.
func (p Plan) Validate() error {
	if _, ok := getPlanStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("plan", fmt.Errorf("%d is not a valid plan", p))
	}
	return nil
}

// Price returns the fixed price for the plan.
// Returns zero for invalid plans; callers must Validate first.
func (p Plan) Price() decimal.Decimal {
	if price, ok := getPriceTable()[p]; ok {
		return price
	}
	return decimal.Zero
}
