// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes defines the wire types for the todo service.
package datatypes

// TodoItem is a single todo record as stored and as returned to clients.
//
// The ID is assigned by the server and never reused, even after the item
// is deleted. Text is the trimmed, non-empty string supplied by the client.
// Both fields are immutable once the item exists.
type TodoItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// CreateTodoRequest is the request body for POST /api/todos.
//
// Text is a pointer so that a body with no "text" key can be told apart
// from a body with an empty string. The two cases produce different
// validation errors.
type CreateTodoRequest struct {
	Text *string `json:"text"`
}
