// Package port declares the interfaces navstate use cases depend on.
package port

// Historian is the browser history seam. The navigation tracker pushes every
// new bookmark token through it.
type Historian interface {
	// NewItem records a token as the current history entry without firing
	// a navigation event.
	NewItem(token string)

	// Token returns the current history token.
	Token() string
}
