package utils

import "math"

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lng1Rad := lng1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lng2Rad := lng2 * math.Pi / 180.0

	dlat := lat2Rad - lat1Rad
	dlng := lng2Rad - lng1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineNullable is Haversine over optional coordinates. A missing
// coordinate yields +Inf so the pair can never match a radius check.
func HaversineNullable(lat1, lng1, lat2, lng2 *float64) float64 {
	if lat1 == nil || lng1 == nil || lat2 == nil || lng2 == nil {
		return math.Inf(1)
	}
	return Haversine(*lat1, *lng1, *lat2, *lng2)
}

// PointToSegmentKm returns the distance in kilometers from point p to the
// segment a-b. The perpendicular projection is clamped to the segment, so
// points beyond either endpoint measure against that endpoint. Over the few
// kilometers a radius check cares about, an equirectangular projection
// around the segment is accurate enough.
func PointToSegmentKm(pLat, pLng, aLat, aLng, bLat, bLng float64) float64 {
	if aLat == bLat && aLng == bLng {
		return Haversine(pLat, pLng, aLat, aLng)
	}

	// Flatten onto a local plane centered on a. Longitudes shrink by
	// cos(latitude); latitudes map 1:1.
	cosLat := math.Cos(aLat * math.Pi / 180.0)
	ax, ay := 0.0, 0.0
	bx := (bLng - aLng) * cosLat
	by := bLat - aLat
	px := (pLng - aLng) * cosLat
	py := pLat - aLat

	abx, aby := bx-ax, by-ay
	t := (px*abx + py*aby) / (abx*abx + aby*aby)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cx := ax + t*abx
	cy := ay + t*aby

	// Back to degrees, then a proper great-circle distance.
	closestLat := aLat + cy
	closestLng := aLng + cx/cosLat
	return Haversine(pLat, pLng, closestLat, closestLng)
}

// PointToSegmentNullable mirrors HaversineNullable for segment distance.
func PointToSegmentNullable(pLat, pLng, aLat, aLng, bLat, bLng *float64) float64 {
	if pLat == nil || pLng == nil || aLat == nil || aLng == nil || bLat == nil || bLng == nil {
		return math.Inf(1)
	}
	return PointToSegmentKm(*pLat, *pLng, *aLat, *aLng, *bLat, *bLng)
}

// ValidCoordinates checks the usual lat/lng bounds.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
