package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/suggestions", func(c *gin.Context) {
		c.Set("targetEmotion", "joy")
		Error(c, http.StatusBadRequest, "validation_error", "Text and target emotion are required", []map[string]string{
			{"field": "text", "issue": "required"},
		})
		c.String(http.StatusOK, "unreachable")
	})

	req := httptest.NewRequest(http.MethodPost, "/suggestions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "validation_error" || body.Error.Message == "" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Error.Details == nil {
		t.Fatalf("expected details")
	}
}

func TestOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	OK(c, gin.H{"ok": true})
	if resp.Code != http.StatusOK || resp.Body.String() != `{"ok":true}` {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}
