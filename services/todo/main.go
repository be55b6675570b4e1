// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"log/slog"
	"os"

	"github.com/AleutianAI/AleutianTodo/services/todo/observability"
	"github.com/AleutianAI/AleutianTodo/services/todo/routes"
	"github.com/AleutianAI/AleutianTodo/services/todo/store"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	host := os.Getenv("TODO_HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	port := os.Getenv("TODO_PORT")
	if port == "" {
		port = "8000"
	}

	slog.Info("Starting Aleutian Todo service", "host", host, "port", port)

	todoStore := store.NewTodoStore()
	metrics := observability.InitMetrics()

	router := gin.Default()
	routes.SetupRoutes(router, todoStore, metrics)

	slog.Info("API endpoints registered",
		"list", "GET /api/todos",
		"create", "POST /api/todos",
		"delete", "DELETE /api/todos/:id",
		"docs", "GET /api-docs")

	if err := router.Run(host + ":" + port); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
