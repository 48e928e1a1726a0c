// Package mock provides test doubles for the root package interfaces.
package mock

import (
	"context"

	"github.com/akarpov/jv"
)

// Viewer is a mock jv.Viewer whose behavior is set through ViewFn.
type Viewer struct {
	ViewFn func(ctx context.Context, doc *jv.Document) error
}

var _ jv.Viewer = (*Viewer)(nil)

func (v *Viewer) View(ctx context.Context, doc *jv.Document) error {
	return v.ViewFn(ctx, doc)
}
