package domain

import "context"

// Confirmer asks the user to approve destructive operations.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	IsInteractive() bool
}
