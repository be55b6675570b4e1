// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"strings"

	"github.com/AleutianAI/AleutianTodo/services/todo/handlers"
	"github.com/AleutianAI/AleutianTodo/services/todo/middleware"
	"github.com/AleutianAI/AleutianTodo/services/todo/observability"
	"github.com/AleutianAI/AleutianTodo/services/todo/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, todoStore *store.TodoStore, metrics *observability.TodoMetrics) {
	router.Use(middleware.Metrics(metrics))

	// CORS for /api/* so a separately hosted browser client can call the
	// API: any origin, methods GET/POST/DELETE/OPTIONS, Content-Type
	// allowed. The middleware must sit on the engine, not the /api group:
	// no OPTIONS route is registered, so a browser preflight never matches
	// the group and group middleware would not run at all. The path check
	// keeps the headers off the non-API endpoints.
	corsAPI := cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	})
	router.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			corsAPI(c)
		}
	})

	router.GET("/", handlers.APIInfo)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API documentation (presentational, not part of the functional contract)
	router.GET("/apispec.json", handlers.APISpec)
	router.GET("/api-docs", handlers.APIDocs)

	api := router.Group("/api")
	{
		api.GET("/todos", handlers.ListTodos(todoStore))
		api.POST("/todos", handlers.CreateTodo(todoStore, metrics))
		api.DELETE("/todos/:id", handlers.DeleteTodo(todoStore, metrics))
	}
}
