// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import "strings"

/*
Search is the in-chapter search state.

The current-match pointer is 0 ("no active match") or 1..Count. It is 1
whenever a non-blank query has matches after the query or the content
changes, and 0 otherwise. Next and Previous wrap around and do nothing while
there are no matches.

Search is not safe for concurrent use.
*/
type Search struct {
	content string
	query   string
	count   int
	current int
}

// NewSearch returns a search over content with an empty query.
func NewSearch(content string) *Search {
	return &Search{content: content}
}

// SetContent replaces the searched content (e.g. after translation) and
// recomputes the matches from scratch.
func (search *Search) SetContent(content string) {
	search.content = content
	search.recompute()
}

// SetQuery replaces the query and recomputes the matches.
func (search *Search) SetQuery(query string) {
	if query == search.query {
		return
	}
	search.query = query
	search.recompute()
}

// Next moves to the following match, wrapping from the last to the first.
func (search *Search) Next() {
	if search.count == 0 {
		return
	}
	search.current = search.current%search.count + 1
}

// Previous moves to the preceding match, wrapping from the first to the last.
func (search *Search) Previous() {
	if search.count == 0 {
		return
	}
	if search.current <= 1 {
		search.current = search.count
		return
	}
	search.current--
}

// Select makes match n current. It reports false and changes nothing when n
// is not a match number.
func (search *Search) Select(n int) bool {
	if n < 1 || n > search.count {
		return false
	}
	search.current = n
	return true
}

// Current returns the current-match pointer.
func (search *Search) Current() int { return search.current }

// Count returns the number of matches.
func (search *Search) Count() int { return search.count }

// Query returns the active query.
func (search *Search) Query() string { return search.query }

// Rendered returns the content with matches highlighted.
func (search *Search) Rendered() string {
	return Highlight(search.content, search.query, search.current).Content
}

// Anchor returns the id of the element to scroll into view, or "".
func (search *Search) Anchor() string {
	return Anchor(search.current)
}

func (search *Search) recompute() {
	search.count = Highlight(search.content, search.query, 0).Count

	search.current = 0
	if strings.TrimSpace(search.query) != "" && search.count > 0 {
		search.current = 1
	}
}
