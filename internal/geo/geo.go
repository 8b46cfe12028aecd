package geo

import (
	"math"

	"teamdash-backend/internal/models"
)

const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance in meters between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// Classify reports whether the given point falls inside any office
// geofence. Offices are evaluated in the order given and the first
// office whose radius contains the point wins; overlapping geofences
// never fall through to a nearest-office comparison. A missing
// coordinate or an empty office list always classifies as outside.
func Classify(latitude, longitude *float64, offices []models.OfficeLocation) (bool, *models.OfficeLocation) {
	if latitude == nil || longitude == nil {
		return false, nil
	}
	for i := range offices {
		distance := Haversine(*latitude, *longitude, offices[i].Latitude, offices[i].Longitude)
		if distance <= float64(offices[i].RadiusMeters) {
			return true, &offices[i]
		}
	}
	return false, nil
}
