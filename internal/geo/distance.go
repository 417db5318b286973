// Package geo provides great-circle distance computation and distance-based
// filtering of fishing spots.
package geo

import (
	"math"
	"sort"

	"creel/internal/models"
)

// earthRadiusKm is the fixed mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers, rounded to two decimal places.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

// FindNearby computes the distance from the viewer position to each candidate
// spot, keeps those within radiusKm (inclusive), and returns them sorted
// ascending by distance. Ties keep the candidates' original order. The
// returned spots carry their computed distance.
func FindNearby(lat, lon, radiusKm float64, candidates []*models.FishingSpot) []*models.FishingSpot {
	nearby := make([]*models.FishingSpot, 0, len(candidates))
	for _, spot := range candidates {
		d := DistanceKm(lat, lon, spot.Latitude, spot.Longitude)
		if d <= radiusKm {
			spot.DistanceKm = d
			nearby = append(nearby, spot)
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}
