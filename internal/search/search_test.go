package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name string
	doc  Document
}

func testEntries() []entry {
	return []entry{
		{"ecommerce", Document{
			Title:    "E-commerce Platform",
			Summary:  "A storefront with payments and inventory",
			Category: "Web Development",
			Labels:   []string{"React", "Node.js", "Stripe"},
		}},
		{"classifier", Document{
			Title:    "AI Image Classifier",
			Summary:  "Classifies images into categories",
			Category: "Machine Learning",
			Labels:   []string{"Python", "TensorFlow"},
		}},
		{"taskapp", Document{
			Title:    "Task Management App",
			Summary:  "Team task tracking",
			Category: "Web Development",
			Labels:   []string{"Next.js", "TypeScript", "PostgreSQL"},
		}},
	}
}

func narrowNames(t *testing.T, q Query) []string {
	t.Helper()
	out := Narrow(testEntries(), q, func(e entry) Document { return e.doc })
	names := make([]string, 0, len(out))
	for _, e := range out {
		names = append(names, e.name)
	}
	return names
}

func TestNarrow_EmptyQueryIsIdentity(t *testing.T) {
	items := testEntries()
	out := Narrow(items, Query{}, func(e entry) Document { return e.doc })
	require.Len(t, out, len(items))
	for i := range items {
		assert.Equal(t, items[i].name, out[i].name, "order must be preserved")
	}
}

func TestNarrow_TermMatchesAcrossFields(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"title substring", "platform", []string{"ecommerce"}},
		{"summary substring", "tracking", []string{"taskapp"}},
		{"label substring", "script", []string{"taskapp"}},
		{"case insensitive", "TENSORFLOW", []string{"classifier"}},
		{"shared substring keeps order", "a", []string{"ecommerce", "classifier", "taskapp"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, narrowNames(t, Query{Term: tt.term}))
		})
	}
}

func TestNarrow_ExactFilters(t *testing.T) {
	assert.Equal(t, []string{"ecommerce", "taskapp"},
		narrowNames(t, Query{Category: "Web Development"}))
	assert.Equal(t, []string{"classifier"},
		narrowNames(t, Query{Tag: "Python"}))

	// Exact filters never match on substrings.
	assert.Empty(t, narrowNames(t, Query{Tag: "Py"}))
	assert.Empty(t, narrowNames(t, Query{Category: "Web"}))
}

func TestNarrow_TermAndExactAreConjunctive(t *testing.T) {
	// "a" alone matches everything; the category restricts it.
	assert.Equal(t, []string{"ecommerce", "taskapp"},
		narrowNames(t, Query{Term: "a", Category: "Web Development"}))
	// Term matches one entry, tag another: conjunction is empty.
	assert.Empty(t, narrowNames(t, Query{Term: "platform", Tag: "Python"}))
}

func TestNarrow_Completeness(t *testing.T) {
	q := Query{Term: "e"}
	items := testEntries()
	out := Narrow(items, q, func(e entry) Document { return e.doc })

	matched := make(map[string]bool, len(out))
	for _, e := range out {
		assert.True(t, Match(e.doc, q), "every returned element must match")
		matched[e.name] = true
	}
	for _, e := range items {
		if !matched[e.name] {
			assert.False(t, Match(e.doc, q), "no excluded element may match")
		}
	}
}

func TestMatch_EmptyLabelsAndCategory(t *testing.T) {
	doc := Document{Title: "Bare", Summary: ""}
	assert.True(t, Match(doc, Query{Term: "bare"}))
	assert.False(t, Match(doc, Query{Tag: "x"}))
	assert.False(t, Match(doc, Query{Category: "x"}))
}
