package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/dealer-api/pkg/logger"
)

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewValidationMiddleware(logger.NewNop())

	router := gin.New()
	router.Use(m.SanitizeInput(), m.BlockSuspiciousPatterns())
	router.GET("/cars", func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("status"))
	})
	router.POST("/cars",
		m.ValidateContentType("application/json", "multipart/form-data"),
		m.ValidateRequestSize(64),
		func(c *gin.Context) { c.Status(http.StatusCreated) })
	return router
}

func TestSanitizeInput_StripsControlCharacters(t *testing.T) {
	router := newValidationRouter()

	req := httptest.NewRequest(http.MethodGet, "/cars?status=sold%00%07", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sold", w.Body.String())
}

func TestBlockSuspiciousPatterns(t *testing.T) {
	router := newValidationRouter()

	tests := []struct {
		name   string
		target string
		header string
	}{
		{name: "union select", target: "/cars?status=" + "x%20UNION%20SELECT%20password"},
		{name: "comment", target: "/cars?status=sold--"},
		{name: "script tag", target: "/cars?status=%3Cscript%3Ealert(1)%3C/script%3E"},
		{name: "encoded traversal", target: "/cars?status=%252e%252e%252fetc"},
		{name: "header", target: "/cars", header: "javascript:alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Custom", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Invalid request"}`, w.Body.String())
		})
	}
}

func TestBlockSuspiciousPatterns_AllowsMultipartBoundary(t *testing.T) {
	router := newValidationRouter()

	body := "--xyz\r\n\r\n--xyz--"
	req := httptest.NewRequest(http.MethodPost, "/cars", strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----xyz")
	req.Header.Set("Authorization", "Bearer a--b")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestValidateContentType(t *testing.T) {
	router := newValidationRouter()

	tests := []struct {
		name        string
		contentType string
		want        int
	}{
		{name: "json with charset", contentType: "application/json; charset=utf-8", want: http.StatusCreated},
		{name: "missing", contentType: "", want: http.StatusBadRequest},
		{name: "unsupported", contentType: "text/xml", want: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cars", strings.NewReader(`{"title":"x"}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestValidateRequestSize(t *testing.T) {
	router := newValidationRouter()

	req := httptest.NewRequest(http.MethodPost, "/cars", strings.NewReader(strings.Repeat("a", 65)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "a\tb\nc", sanitizeString("a\x00\tb\nc\x1b"))
}
