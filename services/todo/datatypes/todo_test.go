// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"encoding/json"
	"testing"
)

// TestCreateTodoRequest_MissingVsEmpty verifies the pointer field can tell
// a body without a "text" key apart from one with an empty string. The two
// cases map to different validation errors.
func TestCreateTodoRequest_MissingVsEmpty(t *testing.T) {
	t.Run("missing key leaves Text nil", func(t *testing.T) {
		var req CreateTodoRequest
		if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
			t.Fatalf("Failed to unmarshal: %v", err)
		}
		if req.Text != nil {
			t.Errorf("Text should be nil for a missing key, got %q", *req.Text)
		}
	})

	t.Run("empty string sets Text to non-nil", func(t *testing.T) {
		var req CreateTodoRequest
		if err := json.Unmarshal([]byte(`{"text": ""}`), &req); err != nil {
			t.Fatalf("Failed to unmarshal: %v", err)
		}
		if req.Text == nil {
			t.Fatal("Text should be non-nil for an explicit empty string")
		}
		if *req.Text != "" {
			t.Errorf("Text mismatch: got %q, want empty string", *req.Text)
		}
	})
}

// TestTodoItem_WireFormat pins the JSON field names the API promises.
func TestTodoItem_WireFormat(t *testing.T) {
	item := TodoItem{ID: 7, Text: "Buy milk"}

	jsonBytes, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	want := `{"id":7,"text":"Buy milk"}`
	if string(jsonBytes) != want {
		t.Errorf("Wire format mismatch: got %s, want %s", jsonBytes, want)
	}
}
