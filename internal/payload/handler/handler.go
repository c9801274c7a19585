package handler

import (
	"errors"
	"net/http"

	"github.com/gameface/payloadstore/internal/payload/service"
	"github.com/gameface/payloadstore/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Error bodies are plain text, matching what existing clients already parse.
const (
	msgInvalidJSON   = "Invalid JSON"
	msgTooLarge      = "Payload too large"
	msgReadBodyError = "Error reading request body"
	msgWriteError    = "File write error"
	msgReadError     = "File read error"
)

// Options tune the payload routes.
type Options struct {
	// FileName is the name the stored document is served under (GET /<FileName>).
	FileName string
	// MaxBodyBytes caps the accepted request body; larger bodies get 413.
	MaxBodyBytes int64
}

// RegisterPayloadRoutes wires POST / (store) and GET|HEAD /<file name> (retrieve).
func RegisterPayloadRoutes(r gin.IRoutes, svc service.Service, opts Options) {
	r.POST("/", func(c *gin.Context) {
		if opts.MaxBodyBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, opts.MaxBodyBytes)
		}
		body, err := c.GetRawData()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.String(http.StatusRequestEntityTooLarge, msgTooLarge)
				return
			}
			logger.Warnf("store: reading body: %v", err)
			c.String(http.StatusBadRequest, msgReadBodyError)
			return
		}

		if err := svc.Store(c.Request.Context(), body); err != nil {
			if errors.Is(err, service.ErrInvalidDocument) {
				logger.Debugf("store: rejected body from %s: %v", c.ClientIP(), err)
				c.String(http.StatusBadRequest, msgInvalidJSON)
				return
			}
			logger.Errorf("store: %v", err)
			c.String(http.StatusInternalServerError, msgWriteError)
			return
		}
		c.Status(http.StatusOK)
	})

	retrieve := func(c *gin.Context) {
		data, err := svc.Retrieve(c.Request.Context())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				logger.Debugf("retrieve: nothing stored yet")
			} else {
				logger.Errorf("retrieve: %v", err)
			}
			c.String(http.StatusInternalServerError, msgReadError)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	}
	r.GET("/"+opts.FileName, retrieve)
	r.HEAD("/"+opts.FileName, retrieve)
}
