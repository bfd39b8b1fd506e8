// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with small generic
helpers (Map, Filter, Distinct).
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements for which predicate is true, preserving order.
// The result is never nil so it encodes as an empty JSON array.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Distinct returns the first occurrence of every key produced by keyOf, in input order.
func Distinct[T any, K comparable](input []T, keyOf func(T) K) []K {
	seen := make(map[K]struct{}, len(input))
	result := make([]K, 0)

	for _, v := range input {
		key := keyOf(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}

	return result
}
