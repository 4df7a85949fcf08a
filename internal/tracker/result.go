package tracker

import "fmt"

// Outcome classifies a single tracking attempt.
type Outcome string

const (
	OutcomeRecorded    Outcome = "recorded"
	OutcomeDisabled    Outcome = "disabled"
	OutcomeTimeout     Outcome = "timeout"
	OutcomeHTTPStatus  Outcome = "http_status"
	OutcomeRejected    Outcome = "rejected"
	OutcomeBadResponse Outcome = "bad_response"
	OutcomeTransport   Outcome = "transport"
)

// Result is the tagged outcome of Record. Only OutcomeRecorded counts as
// success; callers that need a boolean use Recorded.
type Result struct {
	Outcome    Outcome
	StatusCode int
	// Message carries the webhook's own error text for OutcomeRejected.
	Message string
	Err     error
}

func (r Result) Recorded() bool {
	return r.Outcome == OutcomeRecorded
}

// Error describes a failed result for spans and logs. It is nil on success.
func (r Result) Error() error {
	switch r.Outcome {
	case OutcomeRecorded, OutcomeDisabled:
		return nil
	case OutcomeHTTPStatus:
		return fmt.Errorf("webhook returned HTTP %d", r.StatusCode)
	case OutcomeRejected:
		return fmt.Errorf("webhook rejected submission: %s", r.Message)
	default:
		if r.Err != nil {
			return fmt.Errorf("%s: %w", r.Outcome, r.Err)
		}
		return fmt.Errorf("%s", r.Outcome)
	}
}
