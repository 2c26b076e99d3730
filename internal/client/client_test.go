package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coder-mourya/Mail-sender/internal/mailer"
)

func newState() *State {
	st := &State{}
	st.SetRecipients([]mailer.Recipient{
		{Name: "Ann", Email: "ann@x.com", Company: "Acme"},
		{Name: "Bob", Email: "bob@x.com", Company: "Co"},
	})
	st.SetSubject("Hi")
	st.SetContent("Hello {name} from {company}")
	return st
}

func TestDispatch_OK(t *testing.T) {
	var gotRecipients, gotSubject, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/send-emails" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("body must be multipart: %v", err)
		}
		gotRecipients = r.FormValue("recipients")
		gotSubject = r.FormValue("subject")
		gotContent = r.FormValue("content")
		_ = json.NewEncoder(w).Encode(mailer.SendResult{
			Success: []string{"ann@x.com", "bob@x.com"},
			Failed:  []mailer.SendFailure{},
		})
	}))
	defer srv.Close()

	st := newState()
	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}

	res, err := c.Dispatch(context.Background(), st)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Success) != 2 || len(res.Failed) != 0 {
		t.Fatalf("got %+v", res)
	}
	if st.Loading {
		t.Fatal("loading must be cleared after dispatch")
	}

	if gotSubject != "Hi" || gotContent != "Hello {name} from {company}" {
		t.Fatalf("form fields: subject=%q content=%q", gotSubject, gotContent)
	}
	var recs []mailer.Recipient
	if err := json.Unmarshal([]byte(gotRecipients), &recs); err != nil {
		t.Fatalf("recipients field must be JSON: %v", err)
	}
	if len(recs) != 2 || recs[0].Email != "ann@x.com" {
		t.Fatalf("got %+v", recs)
	}
}

func TestDispatch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := newState()
	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}

	if _, err := c.Dispatch(context.Background(), st); err == nil {
		t.Fatal("expected an error on a 500 response")
	}
	if st.Loading {
		t.Fatal("loading must be cleared on errors too")
	}
}

func TestDispatch_NetworkError(t *testing.T) {
	st := newState()
	c := &Client{BaseURL: "http://127.0.0.1:1", HTTPClient: &http.Client{}}

	if _, err := c.Dispatch(context.Background(), st); err == nil {
		t.Fatal("expected an error when the server is unreachable")
	}
	if st.Loading {
		t.Fatal("loading must be cleared on errors too")
	}
}

func TestPreview_FirstRecipientFixed(t *testing.T) {
	st := newState()
	if !st.SetPreview() {
		t.Fatal("preview must be available")
	}
	if st.Preview.Name != "Ann" {
		t.Fatalf("preview must use the first recipient, got %q", st.Preview.Name)
	}

	got, ok := st.RenderPreview()
	if !ok || got != "Hello Ann from Acme" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestPreview_Idempotent(t *testing.T) {
	st := newState()
	st.SetPreview()

	first, _ := st.RenderPreview()
	second, _ := st.RenderPreview()
	if first != second {
		t.Fatalf("preview must be stable for unchanged state: %q vs %q", first, second)
	}
}

func TestPreview_EmptyList(t *testing.T) {
	st := &State{}
	if st.SetPreview() {
		t.Fatal("no preview without recipients")
	}
	if _, ok := st.RenderPreview(); ok {
		t.Fatal("render must report no preview")
	}
}

func TestCanSend(t *testing.T) {
	st := newState()
	if !st.CanSend() {
		t.Fatal("complete state must be sendable")
	}

	st.Loading = true
	if st.CanSend() {
		t.Fatal("no second dispatch while one is outstanding")
	}
	st.Loading = false

	st.SetSubject("")
	if st.CanSend() {
		t.Fatal("empty subject must gate the send")
	}
	st.SetSubject("Hi")

	st.SetRecipients(nil)
	if st.CanSend() {
		t.Fatal("no recipients, no send")
	}
}
