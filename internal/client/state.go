package client

import (
	"strings"

	"github.com/coder-mourya/Mail-sender/internal/mailer"
)

// State is the client-side application state: the loaded recipient
// list, the draft subject/content, the transient loading flag around
// one outstanding dispatch, and the recipient currently previewed.
// It is single-writer; nothing here is safe for concurrent mutation.
type State struct {
	Recipients []mailer.Recipient
	Subject    string
	Content    string
	Loading    bool
	Preview    *mailer.Recipient
}

func (s *State) SetRecipients(recs []mailer.Recipient) {
	s.Recipients = recs
	s.Preview = nil
}

func (s *State) SetSubject(subject string) { s.Subject = subject }
func (s *State) SetContent(content string) { s.Content = content }

// SetPreview selects the first recipient for previewing. The choice is
// fixed; reports false when there is nothing to preview.
func (s *State) SetPreview() bool {
	if len(s.Recipients) == 0 {
		return false
	}
	s.Preview = &s.Recipients[0]
	return true
}

// RenderPreview personalizes the current content for the previewed
// recipient. Newlines are kept as-is; the subject is shown unmodified.
func (s *State) RenderPreview() (string, bool) {
	if s.Preview == nil {
		return "", false
	}
	return mailer.Personalize(s.Content, *s.Preview), true
}

// CanSend mirrors the send-button gating: no outstanding dispatch, at
// least one recipient, and non-empty subject and content.
func (s *State) CanSend() bool {
	return !s.Loading &&
		len(s.Recipients) > 0 &&
		strings.TrimSpace(s.Subject) != "" &&
		strings.TrimSpace(s.Content) != ""
}
