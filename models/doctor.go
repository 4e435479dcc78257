package models

import "fmt"

// Pricing model tags as persisted on the doctor record.
const (
	PricingFixed    = "fixed"
	PricingVariable = "variable"
	PricingMulti    = "multi"
)

// SessionType is one labelled entry of a multi-pricing doctor.
type SessionType struct {
	Label string  `bson:"label" json:"label"`
	Price float64 `bson:"price" json:"price"`
}

// Doctor holds the practice settings attached to a doctor profile.
// Its ID equals the owning profile's ID.
type Doctor struct {
	ID              string        `bson:"id" json:"id"`
	Specialization  string        `bson:"specialization" json:"specialization"`
	PricingType     string        `bson:"pricingType" json:"pricingType"`
	FixedPrice      float64       `bson:"fixedPrice,omitempty" json:"fixedPrice,omitempty"`
	PriceRangeMin   float64       `bson:"priceRangeMin,omitempty" json:"priceRangeMin,omitempty"`
	PriceRangeMax   float64       `bson:"priceRangeMax,omitempty" json:"priceRangeMax,omitempty"`
	SessionTypes    []SessionType `bson:"sessionTypes,omitempty" json:"sessionTypes,omitempty"`
	SessionDuration int           `bson:"sessionDuration" json:"sessionDuration"`
}

// PricingConfig is the sum type behind the stored pricing fields. Exactly one
// variant exists per doctor; resolution code type-switches exhaustively so an
// unhandled variant is a compile-visible gap rather than a silent zero price.
type PricingConfig interface {
	pricingConfig()
}

// FixedPricing charges the same price for every session.
type FixedPricing struct {
	Price float64
}

// VariablePricing advertises a range; no deterministic charged price exists
// for this variant, callers decide how to interpret it.
type VariablePricing struct {
	Min float64
	Max float64
}

// MultiPricing charges per chosen session type.
type MultiPricing struct {
	SessionTypes []SessionType
}

func (FixedPricing) pricingConfig()    {}
func (VariablePricing) pricingConfig() {}
func (MultiPricing) pricingConfig()    {}

// Pricing converts the stored tag-and-fields shape into the tagged variant.
func (d Doctor) Pricing() (PricingConfig, error) {
	switch d.PricingType {
	case PricingFixed:
		return FixedPricing{Price: d.FixedPrice}, nil
	case PricingVariable:
		return VariablePricing{Min: d.PriceRangeMin, Max: d.PriceRangeMax}, nil
	case PricingMulti:
		return MultiPricing{SessionTypes: d.SessionTypes}, nil
	default:
		return nil, fmt.Errorf("doctor %s has unknown pricing type %q", d.ID, d.PricingType)
	}
}
