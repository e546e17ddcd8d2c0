// Package geolocation turns the GPS block of an image's metadata into a
// decimal (longitude, latitude) pair.
package geolocation

// GPS holds the raw GPS fields of an image. Latitude and Longitude are
// sexagesimal triples: degrees, minutes, seconds.
type GPS struct {
	Latitude     []float64
	LatitudeRef  string
	Longitude    []float64
	LongitudeRef string
}

// Backend reads GPS metadata out of encoded image bytes.
type Backend interface {
	ReadGPS(image []byte) (GPS, error)
}

// Extractor is decided once at startup: with a backend it reads coordinates,
// without one it reports that no image carries any.
type Extractor struct {
	backend Backend
}

func NewExtractor(backend Backend) *Extractor {
	return &Extractor{backend: backend}
}

func Unsupported() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Supported() bool {
	return e != nil && e.backend != nil
}

// Extract returns the image coordinates, longitude first. ok is false when
// metadata is unavailable, any one of the four GPS fields is missing or
// malformed, or the result falls outside the geographic ranges.
func (e *Extractor) Extract(image []byte) (longitude, latitude float64, ok bool) {
	if !e.Supported() || len(image) == 0 {
		return 0, 0, false
	}

	gps, err := e.backend.ReadGPS(image)
	if err != nil {
		return 0, 0, false
	}

	if len(gps.Latitude) != 3 || len(gps.Longitude) != 3 || gps.LatitudeRef == "" || gps.LongitudeRef == "" {
		return 0, 0, false
	}

	latitude, ok = signed(toDecimal(gps.Latitude), gps.LatitudeRef, "N", "S")
	if !ok || latitude < -90 || latitude > 90 {
		return 0, 0, false
	}

	longitude, ok = signed(toDecimal(gps.Longitude), gps.LongitudeRef, "E", "W")
	if !ok || longitude < -180 || longitude > 180 {
		return 0, 0, false
	}

	return longitude, latitude, true
}

func signed(value float64, ref, positive, negative string) (float64, bool) {
	switch ref {
	case positive:
		return value, true
	case negative:
		return -value, true
	default:
		return 0, false
	}
}

func toDecimal(dms []float64) float64 {
	return dms[0] + dms[1]/60 + dms[2]/3600
}
