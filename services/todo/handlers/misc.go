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
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "aleutian-todo"})
}

// APIInfo describes the API at the root path.
func APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Todo List REST API",
		"endpoints": gin.H{
			"GET /api/todos":         "Get all todos",
			"POST /api/todos":        "Create a new todo",
			"DELETE /api/todos/<id>": "Delete a todo",
		},
	})
}
