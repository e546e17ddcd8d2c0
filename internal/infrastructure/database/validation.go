package database

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"msgboard/internal/domain/model"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("bson"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateMessage runs the checks the messages collection enforces, so a
// rejected message names every offending field instead of the server's
// generic "Document failed validation".
func validateMessage(v *validator.Validate, msg *model.Message) error {
	var fields, reasons []string

	if err := v.Struct(msg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}

		for _, fe := range verrs {
			fields = append(fields, fe.Field())
			reasons = append(reasons, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
	}

	if msg.SenderGeolocation != nil && !msg.SenderGeolocation.Valid() {
		fields = append(fields, "sender_geolocation")
		reasons = append(reasons, "sender_geolocation out of range")
	}

	if msg.ImageGeolocation != nil && !msg.ImageGeolocation.Valid() {
		fields = append(fields, "image_geolocation")
		reasons = append(reasons, "image_geolocation out of range")
	}

	if len(fields) > 0 {
		return &model.ValidationError{Fields: fields, Reason: strings.Join(reasons, "; ")}
	}

	return nil
}
