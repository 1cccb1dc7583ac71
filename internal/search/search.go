// Package search narrows an already-fetched collection without touching the
// store. It is the in-memory counterpart of the list endpoints: the full
// result set is loaded once and re-filtered on every query change.
package search

import "strings"

// Query holds the active narrowing criteria. Zero value means no narrowing.
type Query struct {
	// Term is matched case-insensitively as a substring of the title, the
	// summary, or any label.
	Term string
	// Tag, when set, requires an exact element match in the labels.
	Tag string
	// Category, when set, requires an exact match of the category field.
	Category string
}

// IsZero reports whether the query applies no narrowing at all.
func (q Query) IsZero() bool {
	return q.Term == "" && q.Tag == "" && q.Category == ""
}

// Document is the projection of an entity the engine matches against.
type Document struct {
	Title    string
	Summary  string
	Category string
	Labels   []string
}

// Match reports whether doc satisfies q. The text criterion and the exact
// criteria are conjunctive: an active tag or category must match exactly,
// and an active term must appear as a case-insensitive substring of the
// title, the summary, or at least one label.
func Match(doc Document, q Query) bool {
	if q.Tag != "" && !containsExact(doc.Labels, q.Tag) {
		return false
	}
	if q.Category != "" && doc.Category != q.Category {
		return false
	}
	if q.Term == "" {
		return true
	}
	term := strings.ToLower(q.Term)
	if strings.Contains(strings.ToLower(doc.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Summary), term) {
		return true
	}
	for _, label := range doc.Labels {
		if strings.Contains(strings.ToLower(label), term) {
			return true
		}
	}
	return false
}

// Narrow returns the elements of items matching q, in their original order.
// An empty query returns items unchanged.
func Narrow[T any](items []T, q Query, doc func(T) Document) []T {
	if q.IsZero() {
		return items
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if Match(doc(item), q) {
			matched = append(matched, item)
		}
	}
	return matched
}

func containsExact(labels []string, want string) bool {
	for _, label := range labels {
		if label == want {
			return true
		}
	}
	return false
}
