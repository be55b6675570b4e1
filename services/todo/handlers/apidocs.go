// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiSpec is the machine-readable description of the HTTP surface.
// Kept as a checked-in document rather than generated so the served spec
// is exactly what was reviewed.
//
//go:embed apispec.json
var apiSpec []byte

// swaggerUIPage loads Swagger UI from a CDN and points it at /apispec.json.
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Todo List REST API - Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({url: "/apispec.json", dom_id: "#swagger-ui"});
    };
  </script>
</body>
</html>`

// APISpec serves the OpenAPI document at /apispec.json.
func APISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", apiSpec)
}

// APIDocs serves an interactive Swagger UI page at /api-docs.
func APIDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIPage))
}
