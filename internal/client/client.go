package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/coder-mourya/Mail-sender/internal/mailer"
)

// DefaultBaseURL is the fixed local endpoint the client talks to.
const DefaultBaseURL = "http://localhost:3000"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTPClient: &http.Client{}}
}

// Dispatch serializes the state and issues the one send request. The
// loading flag is set for the duration of the call and cleared on every
// outcome. Any transport error or non-200 status collapses into a
// single generic error; no retry is attempted.
func (c *Client) Dispatch(ctx context.Context, st *State) (mailer.SendResult, error) {
	st.Loading = true
	defer func() { st.Loading = false }()

	payload, err := json.Marshal(st.Recipients)
	if err != nil {
		return mailer.SendResult{}, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("recipients", string(payload))
	_ = w.WriteField("subject", st.Subject)
	_ = w.WriteField("content", st.Content)
	if err := w.Close(); err != nil {
		return mailer.SendResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/send-emails", &buf)
	if err != nil {
		return mailer.SendResult{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return mailer.SendResult{}, fmt.Errorf("sending emails: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mailer.SendResult{}, fmt.Errorf("send request failed with status %d", resp.StatusCode)
	}

	var res mailer.SendResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return mailer.SendResult{}, err
	}
	return res, nil
}
