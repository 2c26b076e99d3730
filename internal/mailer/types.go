package mailer

// Recipient is one addressee row loaded from a spreadsheet. Company is
// optional in the input and defaulted at personalization time.
type Recipient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

type SendFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// SendResult partitions one send run: every input recipient lands in
// exactly one of the two lists.
type SendResult struct {
	Success []string      `json:"success"`
	Failed  []SendFailure `json:"failed"`
}

// NewSendResult returns a result with empty, non-nil lists so both keys
// encode as [] instead of null.
func NewSendResult() SendResult {
	return SendResult{Success: []string{}, Failed: []SendFailure{}}
}
