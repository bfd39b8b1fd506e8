// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"sync"
)

// Memory is an in-process [Store].
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty [Memory] store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements [Store].
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements [Store].
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete implements [Store].
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
