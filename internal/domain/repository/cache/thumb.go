package cache

import "context"

// ThumbCache holds rendered thumbnail bytes. A miss is reported with ok set
// to false and a nil error.
type ThumbCache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}
