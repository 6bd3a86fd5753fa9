package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>content-api — Swagger</title>
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

// Minimal OpenAPI document describing the CRUD endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "content-api", "version": "v0.1.0" },
  "paths": {
    "/api/users": {
      "get": { "summary": "List users (limit/page query params)", "responses": { "200": { "description": "page of users" } } }
    },
    "/api/users/new": {
      "post": {
        "summary": "Create a user (name must be unique)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","uid"],"properties":{"name":{"type":"string"},"uid":{"type":"string"}}}}}},
        "responses": { "201": { "description": "created user" }, "409": { "description": "duplicate name" } }
      }
    },
    "/api/users/{id}": {
      "get": { "summary": "Get a user by hex id", "responses": { "200": { "description": "user" }, "400": { "description": "malformed id" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Partially update a user", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"uid":{"type":"string"}}}}}}, "responses": { "200": { "description": "updated user" } } },
      "delete": { "summary": "Delete a user", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/blogs": {
      "get": { "summary": "List blog posts (limit/page query params)", "responses": { "200": { "description": "page of posts" } } }
    },
    "/api/blogs/new": {
      "post": {
        "summary": "Create a blog post (title must be unique)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","summary","content"],"properties":{"title":{"type":"string"},"summary":{"type":"string"},"content":{"type":"string"},"category":{"type":"string"},"published":{"type":"boolean"}}}}}},
        "responses": { "201": { "description": "created post" }, "409": { "description": "duplicate title" } }
      }
    },
    "/api/blogs/{id}": {
      "get": { "summary": "Get a blog post by hex id", "responses": { "200": { "description": "post" }, "400": { "description": "malformed id" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Partially update a blog post", "responses": { "200": { "description": "updated post" } } },
      "delete": { "summary": "Delete a blog post", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/healthcheck": { "get": { "summary": "API health", "responses": { "200": { "description": "up" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
