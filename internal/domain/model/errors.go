package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrThumbNotFound   = errors.New("thumb not found")
	ErrNoImage         = errors.New("message has no image")
	ErrNotAnImage      = errors.New("uploaded file is not an image")
)

// ValidationError is returned when a message is rejected because of its
// field values. Fields holds the bson names of the offending fields.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Reason
	}

	return fmt.Sprintf("validation failed on %s: %s", strings.Join(e.Fields, ", "), e.Reason)
}
