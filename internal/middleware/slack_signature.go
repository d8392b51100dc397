package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"leavebot/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// signatureMaxAge bounds replay: Slack signs the request timestamp and
// recommends rejecting anything older than five minutes.
const signatureMaxAge = 5 * time.Minute

// SlackSignature verifies the v0 signing scheme on every inbound Slack
// request. The body is re-attached to the request so handlers can still
// bind it.
func SlackSignature(signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		timestamp := c.GetHeader("X-Slack-Request-Timestamp")
		signature := c.GetHeader("X-Slack-Signature")
		if !verifySlackSignature(signingSecret, timestamp, signature, body, time.Now()) {
			zap.L().Named("middleware.slack").Warn("slack signature rejected",
				zap.String("path", c.FullPath()),
			)
			c.AbortWithStatusJSON(apperror.ErrUnauthorized.HTTPStatus, gin.H{
				"code":    apperror.ErrUnauthorized.Code,
				"message": apperror.ErrUnauthorized.Message,
			})
			return
		}

		c.Next()
	}
}

func verifySlackSignature(secret, timestamp, signature string, body []byte, now time.Time) bool {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > signatureMaxAge || age < -signatureMaxAge {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":"))
	mac.Write(body)
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
