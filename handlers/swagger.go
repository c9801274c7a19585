package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the payload store.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
// fileName is the route the stored document is served under.
func RegisterSwagger(rg gin.IRoutes, fileName string) {
	doc := []byte(strings.ReplaceAll(swaggerJSON, "{{file}}", fileName))

	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>payload-store API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
        deepLinking: true,
        supportedSubmitMethods: ['get', 'post'],
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "payload-store", "version": "v1.0.0" },
  "paths": {
    "/": {
      "post": {
        "summary": "Replace the stored document",
        "requestBody": { "required": true, "content": { "application/json": { "schema": {} } } },
        "responses": {
          "200": { "description": "stored, empty body" },
          "400": { "description": "body is not valid JSON", "content": { "text/plain": {} } },
          "413": { "description": "body exceeds the configured limit", "content": { "text/plain": {} } },
          "500": { "description": "File write error", "content": { "text/plain": {} } }
        }
      }
    },
    "/{{file}}": {
      "get": {
        "summary": "Return the stored document exactly as written",
        "responses": {
          "200": { "description": "stored document", "content": { "application/json": { "schema": {} } } },
          "500": { "description": "File read error", "content": { "text/plain": {} } }
        }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition format" } } } }
  }
}`
