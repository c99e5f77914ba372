package ports

import (
	"context"
)

// Message is one outbound report notification. AttachmentPath is empty when
// the run produced no export file.
type Message struct {
	To             []string
	From           string
	Subject        string
	Body           string
	AttachmentPath string
}

// MessageSender defines the outbound transport contract for report
// notifications. A send is a single best-effort attempt; implementations do
// not retry.
type MessageSender interface {
	Send(ctx context.Context, message Message) error
}
