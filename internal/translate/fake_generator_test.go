// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"context"
	"strings"
	"sync"
)

// scriptedGenerator answers through respond and records every prompt.
type scriptedGenerator struct {
	mu      sync.Mutex
	prompts []string
	systems []string
	respond func(system, prompt string) (Completion, error)
}

func (generator *scriptedGenerator) Complete(ctx context.Context, system, prompt string) (Completion, error) {
	generator.mu.Lock()
	generator.prompts = append(generator.prompts, prompt)
	generator.systems = append(generator.systems, system)
	respond := generator.respond
	generator.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Completion{}, err
	}
	return respond(system, prompt)
}

func (generator *scriptedGenerator) calls() int {
	generator.mu.Lock()
	defer generator.mu.Unlock()
	return len(generator.prompts)
}

// answer always returns text.
func answer(text string) func(string, string) (Completion, error) {
	return func(string, string) (Completion, error) {
		return Completion{Text: text}, nil
	}
}

// echoUpper "translates" by upper-casing the text after the prompt's blank line,
// leaving tags alone.
func echoUpper(_ string, prompt string) (Completion, error) {
	_, text, _ := strings.Cut(prompt, "\n\n")

	var builder strings.Builder
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			r = []rune(strings.ToUpper(string(r)))[0]
		}
		builder.WriteRune(r)
	}
	return Completion{Text: builder.String()}, nil
}

// memoryCache is an in-process [Cache].
type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (cache *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.err != nil {
		return "", false, cache.err
	}
	value, ok := cache.values[key]
	return value, ok, nil
}

func (cache *memoryCache) Set(_ context.Context, key, value string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.err != nil {
		return cache.err
	}
	cache.values[key] = value
	return nil
}
