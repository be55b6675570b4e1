// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package store holds the in-memory todo collection.
//
// # Description
//
// TodoStore is the single owner of the process-wide todo list and its id
// counter. It is created once in main and injected into the handlers; no
// other code touches the collection. Everything lives in memory and is
// lost on restart.
//
// # Thread Safety
//
// All operations take a single mutex, so concurrent requests never observe
// a partially applied create or delete.
package store

import (
	"errors"
	"sync"

	"github.com/AleutianAI/AleutianTodo/services/todo/datatypes"
)

// ErrNotFound is returned by Delete when no item has the requested id.
var ErrNotFound = errors.New("todo not found")

// TodoStore owns the ordered todo collection and the id counter.
//
// Ids start at 1, increase by exactly 1 per successful create, and are
// never reused even after a delete. Insertion order is preserved.
type TodoStore struct {
	mu     sync.Mutex
	items  []datatypes.TodoItem
	nextID int
}

// NewTodoStore returns an empty store with the id counter at 1.
func NewTodoStore() *TodoStore {
	return &TodoStore{nextID: 1}
}

// List returns a copy of the collection in insertion order.
//
// The result is never nil, so an empty collection serializes as [] and
// callers may mutate the returned slice freely.
func (s *TodoStore) List() []datatypes.TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]datatypes.TodoItem, len(s.items))
	copy(out, s.items)
	return out
}

// Create appends a new item with the next id and returns it.
//
// The caller is responsible for validating and trimming text before
// calling; the store accepts whatever it is given.
func (s *TodoStore) Create(text string) datatypes.TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := datatypes.TodoItem{ID: s.nextID, Text: text}
	s.items = append(s.items, item)
	s.nextID++
	return item
}

// Delete removes the item with the given id.
//
// Returns ErrNotFound if no item matches. The id counter is not affected,
// so a deleted id is never handed out again.
func (s *TodoStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len returns the current number of items.
func (s *TodoStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
