package broker

import "context"

type Publisher interface {
	Publish(ctx context.Context, body string) error
}
