// Package rag wraps the hosted answer-generation collaborator. The service
// consumes it as a single opaque call: question in, best-effort answer out.
package rag

import (
	"context"
	"fmt"
)

// Answerer produces a best-effort answer for a free-text query.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Outcome is the typed result of one answer attempt. Failed outcomes carry
// the reason; Message substitutes an apology so the turn can still be recorded.
type Outcome struct {
	Text string
	Err  error
}

// Ask invokes the answerer and converts any failure into a graceful outcome.
func Ask(ctx context.Context, a Answerer, query string) Outcome {
	text, err := a.Answer(ctx, query)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Text: text}
}

// Failed reports whether the answer attempt failed.
func (o Outcome) Failed() bool { return o.Err != nil }

// Message returns the answer text, or the user-facing apology on failure.
func (o Outcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("Sorry, I couldn't fetch the answer due to: %v", o.Err)
	}
	return o.Text
}
