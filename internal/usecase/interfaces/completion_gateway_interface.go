package interfaces

import "context"

// ICompletionGateway sends one system+user message pair to the external
// text-completion API and returns the assistant reply verbatim. A single
// attempt is made; the caller owns any fallback.
type ICompletionGateway interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
