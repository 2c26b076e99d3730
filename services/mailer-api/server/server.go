package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coder-mourya/Mail-sender/pkg/metrics"
)

func NewHTTPServer(addr string, h *Handlers) *http.Server {
	r := gin.New()
	r.Use(gin.Recovery(), Observability())

	r.GET("/", h.Index)
	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.POST("/api/parse-recipients", h.ParseRecipients)
	r.POST("/api/send-emails", h.SendEmails)

	return &http.Server{
		Addr:    addr,
		Handler: r,
	}
}
