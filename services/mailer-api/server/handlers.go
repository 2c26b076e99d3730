package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coder-mourya/Mail-sender/internal/mailer"
	"github.com/coder-mourya/Mail-sender/internal/recipients"
	"github.com/coder-mourya/Mail-sender/pkg/logx"
	"github.com/coder-mourya/Mail-sender/pkg/metrics"
	"github.com/coder-mourya/Mail-sender/pkg/smtpx"
	"github.com/coder-mourya/Mail-sender/web"
)

type mailSender interface {
	Send(m smtpx.Message) error
}

type Handlers struct {
	Sender mailSender
	From   string
}

func NewHandlers(s *smtpx.Sender, from string) *Handlers {
	return &Handlers{Sender: s, From: from}
}

func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handlers) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// ParseRecipients turns an uploaded spreadsheet into a recipient array
// for the browser UI, which cannot parse xlsx on its own.
func (h *Handlers) ParseRecipients(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	recs, err := recipients.Load(fh.Filename, f)
	if err != nil {
		logx.L().Warnw("recipients_parse_error", "filename", fh.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.RecipientsParsedTotal.Add(float64(len(recs)))
	c.JSON(http.StatusOK, recs)
}

// SendEmails runs the send loop: recipients are processed strictly in
// array order, one transport call at a time. A transport error for one
// recipient is recorded and the loop moves on; only a malformed
// recipients field fails the whole request.
func (h *Handlers) SendEmails(c *gin.Context) {
	raw := c.PostForm("recipients")
	subject := c.PostForm("subject")
	content := c.PostForm("content")
	// An attached file part, if any, is accepted and ignored.

	var recs []mailer.Recipient
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		logx.L().Errorw("recipients_unmarshal_error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := mailer.NewSendResult()
	for _, r := range recs {
		start := time.Now()

		text := mailer.Personalize(content, r)
		err := h.Sender.Send(smtpx.Message{
			From:    h.From,
			To:      r.Email,
			Subject: subject,
			HTML:    mailer.WrapHTML(text),
			Text:    text,
		})
		metrics.SendDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			logx.L().Infow("send_failed", "to", r.Email, "error", err)
			metrics.EmailsFailedTotal.Inc()
			results.Failed = append(results.Failed, mailer.SendFailure{Email: r.Email, Error: err.Error()})
			continue
		}
		metrics.EmailsSentTotal.Inc()
		results.Success = append(results.Success, r.Email)
	}

	logx.L().Infow("send_loop_done",
		"recipients", len(recs),
		"success", len(results.Success),
		"failed", len(results.Failed),
	)
	c.JSON(http.StatusOK, results)
}
