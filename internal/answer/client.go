package answer

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=../mocks/answer/mock_client.go -package=mock_answer

// Client fetches a single answer from the upstream API.
type Client interface {
	Fetch(ctx context.Context) (Record, error)
}

const (
	DefaultEndpoint  = "https://yesno.wtf/api"
	DefaultUserAgent = "yesno/1.0"
)
