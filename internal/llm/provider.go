// Package llm defines the collaborator boundary: an external language-model
// service that should emit the same structured contract the deterministic
// engine does, and may additionally use the clarify and multi_action
// outcomes or custom reminder fields. Callers must treat any error from a
// Provider as "collaborator unavailable" and fall back.
package llm

import (
	"context"

	"rapport/internal/contract"
)

type Provider interface {
	ProcessInteraction(ctx context.Context, text string) (contract.IntentResult, error)
	ResolveReminderResponse(ctx context.Context, text string, rc contract.ReminderContext) (contract.ReminderResolution, error)
	Name() string
	Model() string
}
