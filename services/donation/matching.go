package donation

import (
	"math"

	"sihati/models"
)

// MatchRadiusKm is the broadcast radius. Fixed, not configurable.
const MatchRadiusKm = 10.0

const earthRadiusKm = 6371

// Haversine calculates the great-circle distance (in km) between two points.
// A point missing either coordinate yields +Inf so it can never satisfy a
// radius check.
func Haversine(a, b models.Coordinate) float64 {
	if !a.Complete() || !b.Complete() {
		return math.Inf(1)
	}

	lat1, lon1 := *a.Latitude, *a.Longitude
	lat2, lon2 := *b.Latitude, *b.Longitude

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// MatchRecipients filters the candidate snapshot down to the patients who
// should receive the broadcast: same blood type, same wilaya (exact,
// case-sensitive), within the radius, and never the requester. One pass,
// no ordering guarantee, no de-duplication across invocations.
func MatchRecipients(req models.DonationRequest, candidates []models.DonationCandidate) []string {
	origin := req.Origin()

	var matched []string
	for _, c := range candidates {
		if c.ID == req.PatientID {
			continue
		}
		if c.BloodType != req.BloodType {
			continue
		}
		if c.Wilaya != req.Wilaya {
			continue
		}
		if Haversine(origin, c.Location) > MatchRadiusKm {
			continue
		}
		matched = append(matched, c.ID)
	}
	return matched
}
