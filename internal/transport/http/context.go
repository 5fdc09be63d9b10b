package http

// contextKey is a private type for payload keys stashed in a request
// context, so no other package can collide with them.
type contextKey string

const (
	// ContextKeyProduct holds the decoded and validated product payload.
	ContextKeyProduct contextKey = "product"
	// ContextKeyOrder holds the decoded and validated order payload.
	ContextKeyOrder contextKey = "order"
)
