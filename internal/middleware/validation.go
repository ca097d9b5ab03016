package middleware

import (
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/pkg/logger"
)

// headers whose values legitimately contain pattern fragments such as the "--" of a multipart boundary
var unscannedHeaders = []string{"authorization", "content-type", "cookie"}

type ValidationMiddleware struct {
	logger   *logger.Logger
	patterns []*regexp.Regexp
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger:   logger,
		patterns: compileSuspiciousPatterns(),
	}
}

// SanitizeInput strips null bytes and control characters from query parameters and headers
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Info("Sanitized query parameter", zap.String("key", key))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		for key, values := range c.Request.Header {
			if isUnscannedHeader(key) {
				continue
			}
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Info("Sanitized header", zap.String("key", key))
					c.Request.Header[key][i] = sanitized
				}
			}
		}

		c.Next()
	}
}

// ValidateContentType ensures only allowed content types on requests with a body
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}

		// drop charset and boundary parameters
		contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

		if !slices.Contains(allowedTypes, contentType) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error":         "Unsupported Content-Type",
				"allowed_types": allowedTypes,
			})
			return
		}

		c.Next()
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         "Request body too large",
				"max_size":      maxSize,
				"received_size": c.Request.ContentLength,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects requests whose path, query or headers look like injection attempts
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.containsSuspiciousPattern(c.Request.URL.Path) {
			m.block(c, zap.String("path", c.Request.URL.Path))
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if m.containsSuspiciousPattern(value) {
					m.block(c, zap.String("query", key))
					return
				}
			}
		}

		for key, values := range c.Request.Header {
			if isUnscannedHeader(key) {
				continue
			}
			for _, value := range values {
				if m.containsSuspiciousPattern(value) {
					m.block(c, zap.String("header", key))
					return
				}
			}
		}

		c.Next()
	}
}

func (m *ValidationMiddleware) block(c *gin.Context, field zap.Field) {
	m.logger.Warn("Blocked suspicious request", field, zap.String("ip", c.ClientIP()))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

func (m *ValidationMiddleware) containsSuspiciousPattern(input string) bool {
	for _, pattern := range m.patterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}

func compileSuspiciousPatterns() []*regexp.Regexp {
	sqlInjectionPatterns := []string{
		`(?i)(\bUNION\b.*\bSELECT\b)`,
		`(?i)(\bOR\b.*=.*\bOR\b)`,
		`(?i)(\bAND\b.*=.*\bAND\b)`,
		`(?i)(\bINSERT\b.*\bINTO\b)`,
		`(?i)(\bDELETE\b.*\bFROM\b)`,
		`(?i)(\bUPDATE\b.*\bSET\b)`,
		`(?i)(\bDROP\b.*\bTABLE\b)`,
		`(?i)(\bALTER\b.*\bTABLE\b)`,
		`--`,
		`/\*.*\*/`,
	}

	xssPatterns := []string{
		`(?i)<script.*?>`,
		`(?i)javascript:`,
		`(?i)onload=`,
		`(?i)onclick=`,
		`(?i)onerror=`,
		`(?i)<iframe.*?>`,
		`(?i)<object.*?>`,
		`(?i)<embed.*?>`,
	}

	pathTraversalPatterns := []string{
		`\.\.\/`,
		`\.\.\\`,
		`(?i)%2e%2e%2f`,
		`(?i)%2e%2e%5c`,
	}

	all := append(sqlInjectionPatterns, xssPatterns...)
	all = append(all, pathTraversalPatterns...)

	compiled := make([]*regexp.Regexp, len(all))
	for i, pattern := range all {
		compiled[i] = regexp.MustCompile(pattern)
	}
	return compiled
}

func isUnscannedHeader(key string) bool {
	return slices.Contains(unscannedHeaders, strings.ToLower(key))
}

// sanitizeString removes null bytes and control characters other than newline, carriage return and tab
func sanitizeString(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, input)
}
