package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	allowedMethods = "POST,OPTIONS"
	allowHeader    = "POST, OPTIONS"
	corsMaxAge     = "86400" // 24 hours
)

// CORSMiddleware answers OPTIONS requests and decorates every other response
// with a wildcard CORS policy for the contact endpoint.
//
// A request carrying Origin, Access-Control-Request-Method and
// Access-Control-Request-Headers is a browser preflight: it gets the CORS
// policy with the requested headers echoed back. Any other OPTIONS request is
// plain capability discovery and only gets an Allow header.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			handleOptions(c)
			return
		}

		setCORSHeaders(c)
		c.Next()
	}
}

func handleOptions(c *gin.Context) {
	h := c.Request.Header
	_, hasOrigin := h["Origin"]
	_, hasMethod := h["Access-Control-Request-Method"]
	requested, hasHeaders := h["Access-Control-Request-Headers"]

	if hasOrigin && hasMethod && hasHeaders {
		setCORSHeaders(c)
		c.Header("Access-Control-Allow-Headers", strings.Join(requested, ", "))
	} else {
		c.Header("Allow", allowHeader)
	}

	c.AbortWithStatus(http.StatusNoContent)
}

func setCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", allowedMethods)
	c.Header("Access-Control-Max-Age", corsMaxAge)
}
