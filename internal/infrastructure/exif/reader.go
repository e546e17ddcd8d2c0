package exif

import (
	"bytes"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"

	"msgboard/pkg/geolocation"
)

// Reader is the goexif backed geolocation.Backend.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ReadGPS decodes the EXIF block of a JPEG or TIFF image. Fields that are
// missing or malformed are left empty; the extractor decides what that means.
func (r *Reader) ReadGPS(image []byte) (geolocation.GPS, error) {
	x, err := goexif.Decode(bytes.NewReader(image))
	if err != nil {
		return geolocation.GPS{}, err
	}

	return geolocation.GPS{
		Latitude:     rationalTriple(x, goexif.GPSLatitude),
		LatitudeRef:  asciiValue(x, goexif.GPSLatitudeRef),
		Longitude:    rationalTriple(x, goexif.GPSLongitude),
		LongitudeRef: asciiValue(x, goexif.GPSLongitudeRef),
	}, nil
}

func rationalTriple(x *goexif.Exif, name goexif.FieldName) []float64 {
	tag, err := x.Get(name)
	if err != nil || tag.Count != 3 {
		return nil
	}

	values := make([]float64, 0, 3)
	for i := 0; i < 3; i++ {
		num, den, err := tag.Rat2(i)
		if err != nil || den == 0 {
			return nil
		}
		values = append(values, float64(num)/float64(den))
	}

	return values
}

func asciiValue(x *goexif.Exif, name goexif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}

	s, err := tag.StringVal()
	if err != nil {
		return ""
	}

	return strings.TrimRight(s, "\x00 ")
}
