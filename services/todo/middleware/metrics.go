// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package middleware provides HTTP middleware for the todo service.
package middleware

import (
	"time"

	"github.com/AleutianAI/AleutianTodo/services/todo/observability"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency for every matched route.
//
// The endpoint label is the route template (e.g. /api/todos/:id), not the
// raw path, to keep label cardinality bounded. Unmatched requests are
// recorded under "unmatched".
func Metrics(m *observability.TodoMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordRequest(endpoint, c.Writer.Status())
		m.RecordDuration(endpoint, time.Since(start).Seconds())
	}
}
