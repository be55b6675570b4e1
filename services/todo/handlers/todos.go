// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers contains the gin handlers for the todo service.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AleutianAI/AleutianTodo/pkg/validation"
	"github.com/AleutianAI/AleutianTodo/services/todo/datatypes"
	"github.com/AleutianAI/AleutianTodo/services/todo/observability"
	"github.com/AleutianAI/AleutianTodo/services/todo/store"
	"github.com/gin-gonic/gin"
)

// Client-facing error messages. These are part of the API contract, so
// keep them stable.
const (
	msgMissingText = "Missing text field"
	msgEmptyText   = "Text cannot be empty"
	msgNotFound    = "Todo not found"
)

// ListTodos returns the full collection in insertion order.
func ListTodos(s *store.TodoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.List())
	}
}

// CreateTodo validates the request body, stores a new todo and returns it
// with 201.
//
// A body that is absent, is not valid JSON, or lacks a "text" key gets
// "Missing text field"; a text that trims to nothing gets "Text cannot be
// empty". Nothing is stored on either failure.
func CreateTodo(s *store.TodoStore, m *observability.TodoMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.CreateTodoRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingText})
			return
		}

		text, err := validation.SanitizeText(*req.Text)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyText})
			return
		}

		item := s.Create(text)
		m.TodoCreated(s.Len())
		slog.Info("created todo", "id", item.ID)
		c.JSON(http.StatusCreated, item)
	}
}

// DeleteTodo removes the todo with the id given in the path.
//
// Responds 204 with an empty body on success and 404 if no item matches.
// A non-integer id segment cannot match anything, so it is also a 404.
func DeleteTodo(s *store.TodoStore, m *observability.TodoMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
			return
		}

		if err := s.Delete(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
			return
		}

		m.TodoDeleted(s.Len())
		slog.Info("deleted todo", "id", id)
		c.Status(http.StatusNoContent)
	}
}
