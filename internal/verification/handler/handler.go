package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loginverify/loginverify/backend/go-services/internal/callable"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/service"
	"github.com/loginverify/loginverify/backend/go-services/pkg/logger"
)

const (
	decisionOKBody      = "Thank you. You can close this page."
	decisionInvalidBody = "Invalid request"
	decisionErrorBody   = "Internal error"
)

// RegisterVerificationRoutes mounts the callable mailer, the decision link
// endpoint and the status lookup. mailer may be nil for deployments that only
// record decisions.
func RegisterVerificationRoutes(r gin.IRoutes, mailer *service.Mailer, recorder *service.Recorder) {
	if mailer != nil {
		r.Any("/sendVerificationEmail", callable.Handle(mailer.SendVerificationEmail))
	}

	// decision links are plain GETs from a mail client, but any method is accepted
	r.Any("/handleVerificationDecision", func(c *gin.Context) {
		id := c.Query("id")
		action := c.Query("action")
		if _, err := recorder.Record(c.Request.Context(), id, action); err != nil {
			if errors.Is(err, service.ErrInvalidRequest) {
				c.String(http.StatusBadRequest, decisionInvalidBody)
				return
			}
			logger.Errorf("handleVerificationDecision error (id=%s action=%s): %v", id, action, err)
			c.String(http.StatusInternalServerError, decisionErrorBody)
			return
		}
		c.String(http.StatusOK, decisionOKBody)
	})

	r.GET("/verifications/:id", lookupHandler(recorder))
}

func lookupHandler(recorder *service.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		rec, err := recorder.Lookup(c.Request.Context(), id)
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": decisionInvalidBody})
			return
		}
		if err != nil {
			logger.Errorf("verification lookup error (id=%s): %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": decisionErrorBody})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
