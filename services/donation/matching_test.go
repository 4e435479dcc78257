package donation

import (
	"math"
	"testing"

	"sihati/models"
)

func coord(lat, lon float64) models.Coordinate {
	return models.NewCoordinate(lat, lon)
}

func TestHaversineIdentity(t *testing.T) {
	p := coord(35.4269, 7.1460)
	if d := Haversine(p, p); d != 0 {
		t.Errorf("Haversine(p, p) = %v, want 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := coord(35.4269, 7.1460)
	b := coord(36.3650, 6.6147)
	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Haversine not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude at the equator is about 111.2 km.
	d := Haversine(coord(0, 0), coord(1, 0))
	if math.Abs(d-111.2) > 1 {
		t.Errorf("Haversine over 1° latitude = %v km, want ≈111.2", d)
	}
}

func TestHaversineMissingCoordinate(t *testing.T) {
	full := coord(35.4269, 7.1460)
	lat := 35.0
	partials := []models.Coordinate{
		{},
		{Latitude: &lat},
		{Longitude: &lat},
	}
	for _, p := range partials {
		if d := Haversine(full, p); !math.IsInf(d, 1) {
			t.Errorf("Haversine with incomplete point = %v, want +Inf", d)
		}
	}
}

func TestMatchRecipientsFilters(t *testing.T) {
	request := models.DonationRequest{
		ID:        "req-1",
		PatientID: "pat-0",
		BloodType: "O-",
		Latitude:  36.37,
		Longitude: 6.61,
		Wilaya:    "Khenchela",
	}

	near := coord(36.38, 6.62) // ~1.4 km away
	far := coord(35.43, 7.15)  // ~113 km away
	missing := models.Coordinate{}

	// Each non-matching candidate violates exactly one rule; "pat-0" is the
	// requester themselves.
	candidates := []models.DonationCandidate{
		{ID: "match", BloodType: "O-", Wilaya: "Khenchela", Location: near},
		{ID: "pat-0", BloodType: "O-", Wilaya: "Khenchela", Location: near},
		{ID: "wrong-blood", BloodType: "A+", Wilaya: "Khenchela", Location: near},
		{ID: "wrong-wilaya", BloodType: "O-", Wilaya: "Batna", Location: near},
		{ID: "too-far", BloodType: "O-", Wilaya: "Khenchela", Location: far},
		{ID: "no-position", BloodType: "O-", Wilaya: "Khenchela", Location: missing},
	}

	matched := MatchRecipients(request, candidates)
	if len(matched) != 1 || matched[0] != "match" {
		t.Errorf("MatchRecipients = %v, want exactly [match]", matched)
	}
}

func TestMatchRecipientsWilayaIsCaseSensitive(t *testing.T) {
	request := models.DonationRequest{
		PatientID: "pat-0",
		BloodType: "O-",
		Latitude:  36.37,
		Longitude: 6.61,
		Wilaya:    "Khenchela",
	}
	candidates := []models.DonationCandidate{
		{ID: "lowercase", BloodType: "O-", Wilaya: "khenchela", Location: coord(36.37, 6.61)},
	}

	if matched := MatchRecipients(request, candidates); len(matched) != 0 {
		t.Errorf("wilaya comparison should be exact, got matches %v", matched)
	}
}

func TestMatchRecipientsRadiusBoundary(t *testing.T) {
	request := models.DonationRequest{
		PatientID: "pat-0",
		BloodType: "B+",
		Latitude:  0,
		Longitude: 0,
		Wilaya:    "Alger",
	}

	// ~1° latitude ≈ 111 km; 0.08° ≈ 8.9 km (inside), 0.1° ≈ 11.1 km (outside).
	candidates := []models.DonationCandidate{
		{ID: "inside", BloodType: "B+", Wilaya: "Alger", Location: coord(0.08, 0)},
		{ID: "outside", BloodType: "B+", Wilaya: "Alger", Location: coord(0.1, 0)},
	}

	matched := MatchRecipients(request, candidates)
	if len(matched) != 1 || matched[0] != "inside" {
		t.Errorf("MatchRecipients = %v, want exactly [inside]", matched)
	}
}
