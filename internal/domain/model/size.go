package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a thumbnail bounding box in pixels.
type Size struct {
	Width  int
	Height int
}

// Key is the cache key of the size inside Message.Thumbs.
func (s Size) Key() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a "<width>x<height>" key.
func ParseSize(key string) (Size, error) {
	w, h, ok := strings.Cut(key, "x")
	if !ok {
		return Size{}, fmt.Errorf("invalid size %q: expected <width>x<height>", key)
	}

	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Size{}, fmt.Errorf("invalid size %q: bad width", key)
	}

	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Size{}, fmt.Errorf("invalid size %q: bad height", key)
	}

	return Size{Width: width, Height: height}, nil
}
