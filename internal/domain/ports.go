package domain

import "context"

// Clipboard receives prepared copy text. Write may fail (permission, backend
// down); callers treat that as a notice, not an error.
type Clipboard interface {
	Write(ctx context.Context, text string) (id string, err error)
	Read(ctx context.Context, id string) (string, error)
}
