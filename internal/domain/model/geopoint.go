package model

// GeoPoint is a (longitude, latitude) pair in decimal degrees. It is stored
// as a two element array, longitude first.
type GeoPoint [2]float64

func NewGeoPoint(longitude, latitude float64) *GeoPoint {
	return &GeoPoint{longitude, latitude}
}

func (p GeoPoint) Longitude() float64 { return p[0] }

func (p GeoPoint) Latitude() float64 { return p[1] }

// Valid reports whether both components are inside the geographic ranges.
func (p GeoPoint) Valid() bool {
	return p[0] >= -180 && p[0] <= 180 && p[1] >= -90 && p[1] <= 90
}
