package domain

import "context"

// CookieLookup resolves a cookie name to its values in the context of the
// current request. Resolvers take the first value.
type CookieLookup func(name string) []string

type ForwardService interface {
	Forward(ctx context.Context, event *ForwardRequest, cookies CookieLookup) (*ForwardResponse, error)
}
