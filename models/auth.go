package models

// RegisterInput is the signup payload. Phone is the login identifier and
// must be unique across all profiles.
type RegisterInput struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=patient doctor"`
	Wilaya   string `json:"wilaya" binding:"required"`
	Commune  string `json:"commune"`
}

// LoginInput is the phone-and-password credential pair.
type LoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthSession is what a successful register or login returns.
type AuthSession struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// DoctorSettingsInput updates a doctor's practice settings. The pricing
// fields mirror the Doctor record; only the fields relevant to the chosen
// pricing type need to be set.
type DoctorSettingsInput struct {
	Specialization  string        `json:"specialization"`
	PricingType     string        `json:"pricingType" binding:"required,oneof=fixed variable multi"`
	FixedPrice      float64       `json:"fixedPrice"`
	PriceRangeMin   float64       `json:"priceRangeMin"`
	PriceRangeMax   float64       `json:"priceRangeMax"`
	SessionTypes    []SessionType `json:"sessionTypes"`
	SessionDuration int           `json:"sessionDuration"`
}

// MedicalProfileInput updates a patient's blood type and last known
// position. Coordinates are optional; omitting them leaves the stored
// position untouched.
type MedicalProfileInput struct {
	BloodType string   `json:"bloodType"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
