package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the verification service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>loginverify - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the verification endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "loginverify", "version": "v0.1.0" },
  "paths": {
    "/sendVerificationEmail": {
      "post": {
        "summary": "Send the login confirmation email (callable)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"data":{"type":"object","required":["verificationId","email"],"properties":{"verificationId":{"type":"string"},"email":{"type":"string"}}}}}}}},
        "responses": { "200": { "description": "{\"result\":{\"status\":\"sent|skipped\"}}" }, "400": { "description": "INVALID_ARGUMENT" }, "500": { "description": "INTERNAL" } }
      }
    },
    "/handleVerificationDecision": {
      "get": {
        "summary": "Record an approve/deny decision from a decision link",
        "parameters": [
          { "name": "action", "in": "query", "required": true, "schema": {"type":"string","enum":["approve","deny"]} },
          { "name": "id", "in": "query", "required": true, "schema": {"type":"string"} }
        ],
        "responses": { "200": { "description": "Thank you. You can close this page." }, "400": { "description": "Invalid request" }, "500": { "description": "Internal error" } }
      }
    },
    "/verifications/{id}": {
      "get": { "summary": "Current decision (pending, approved or denied)", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "verification record" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
