package schedule

import (
	"fmt"
	"strings"

	"reporting/internal/pkg/errs"
)

const (
	// RecordCountPlaceholder is the token in a body template replaced with the
	// number of exported records when a report message is composed.
	RecordCountPlaceholder = "{record_count}"

	// DefaultSubject is applied when a schedule is created without a subject.
	DefaultSubject = "Scheduled Report"

	// DefaultBody is applied when a schedule is created without a body template.
	DefaultBody = "Please find the attachment. Number of Records: {record_count}"
)

// Delivery is a value object holding how a schedule's report is addressed
// and worded: recipients, sender identity, subject, and body template.
//
// Delivery invariants:
//   - at least one non-blank recipient address
//   - subject and body fall back to defaults when blank
type Delivery struct {
	recipients  []string
	fromName    string
	fromAddress string
	subject     string
	body        string

	isConstructed bool
}

// NewDelivery creates a Delivery. Blank recipient entries are discarded;
// an empty result is an error. Blank subject and body get the defaults.
func NewDelivery(recipients []string, fromName, fromAddress, subject, body string) (Delivery, error) {
	cleaned := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return Delivery{}, errs.NewValueIsRequiredError("recipients")
	}

	if strings.TrimSpace(subject) == "" {
		subject = DefaultSubject
	}
	if strings.TrimSpace(body) == "" {
		body = DefaultBody
	}

	return Delivery{
		recipients:    cleaned,
		fromName:      strings.TrimSpace(fromName),
		fromAddress:   strings.TrimSpace(fromAddress),
		subject:       subject,
		body:          body,
		isConstructed: true,
	}, nil
}

// Recipients returns a copy of the recipient address list.
func (d Delivery) Recipients() []string {
	out := make([]string, len(d.recipients))
	copy(out, d.recipients)
	return out
}

// FromName returns the sender display name (may be empty).
func (d Delivery) FromName() string {
	return d.fromName
}

// FromAddress returns the sender address (may be empty).
func (d Delivery) FromAddress() string {
	return d.fromAddress
}

// Subject returns the message subject.
func (d Delivery) Subject() string {
	return d.subject
}

// Body returns the body template, possibly containing RecordCountPlaceholder.
func (d Delivery) Body() string {
	return d.body
}

// FromHeader builds the From header: "Name <address>" when both the display
// name and address are set, otherwise just the address.
func (d Delivery) FromHeader() string {
	if d.fromName != "" && d.fromAddress != "" {
		return fmt.Sprintf("%s <%s>", d.fromName, d.fromAddress)
	}
	return d.fromAddress
}

// ComposeBody renders the body template for a run, replacing every occurrence
// of RecordCountPlaceholder with the exported record count.
func (d Delivery) ComposeBody(recordCount int) string {
	return strings.ReplaceAll(d.body, RecordCountPlaceholder, fmt.Sprintf("%d", recordCount))
}

// Validate ensures the Delivery was created through NewDelivery.
func (d Delivery) Validate() error {
	if !d.isConstructed {
		return errs.NewValueIsRequiredError("delivery must be created via NewDelivery")
	}
	return nil
}
