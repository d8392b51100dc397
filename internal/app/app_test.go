package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterFallbackRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerFallbackRoutes(r)

	t.Run("healthz reports ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Ok   bool              `json:"ok"`
			Data map[string]string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, "ok", body.Data["status"])
	})

	t.Run("unknown routes get the error envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Ok)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}
