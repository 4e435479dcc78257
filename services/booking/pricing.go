package booking

import (
	"fmt"

	"sihati/models"
)

// ResolvePrice computes the price to charge for a session under the given
// pricing configuration. It is a pure function of its inputs.
//
// Variable pricing advertises a range but the platform never charges from
// it; the advisory minimum is returned so the stored price is deterministic.
// For multi pricing an unknown session type resolves to 0 rather than
// failing, matching how the platform has always stored such bookings.
func ResolvePrice(cfg models.PricingConfig, chosenSessionType string) (float64, error) {
	switch p := cfg.(type) {
	case models.FixedPricing:
		return p.Price, nil
	case models.VariablePricing:
		return p.Min, nil
	case models.MultiPricing:
		if chosenSessionType == "" {
			return 0, ErrMissingSessionType
		}
		for _, st := range p.SessionTypes {
			if st.Label == chosenSessionType {
				return st.Price, nil
			}
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unhandled pricing config %T", cfg)
	}
}
