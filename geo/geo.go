package geo

import "math"

const earthRadiusMeters = 6371000.0

// LatLng is a WGS-84 position in decimal degrees.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

func NewLatLng(lat, lng float64) *LatLng {
	return &LatLng{Latitude: lat, Longitude: lng}
}

func (ll *LatLng) Valid() bool {
	return ll.Latitude >= -90 && ll.Latitude <= 90 &&
		ll.Longitude >= -180 && ll.Longitude <= 180
}

// DistanceTo returns the haversine great-circle distance in meters.
func (ll *LatLng) DistanceTo(other *LatLng) float64 {
	lat1 := ll.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - ll.Latitude) * math.Pi / 180
	dLng := (other.Longitude - ll.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func (ll *LatLng) Copy() *LatLng {
	if ll == nil {
		return nil
	}
	dup := *ll
	return &dup
}
