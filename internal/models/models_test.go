package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_SearchDocument(t *testing.T) {
	p := Project{
		Title:        "E-commerce Platform",
		Description:  "A storefront",
		Technologies: []string{"React", "Node.js"},
		Category:     "Web Development",
	}
	doc := p.SearchDocument()
	assert.Equal(t, p.Title, doc.Title)
	assert.Equal(t, p.Description, doc.Summary)
	assert.Equal(t, p.Technologies, doc.Labels, "display order carries into matching order")
	assert.Equal(t, p.Category, doc.Category)
}

func TestBlogPost_SearchDocument(t *testing.T) {
	b := BlogPost{
		Title:   "My Post",
		Excerpt: "Short summary",
		Content: "<h2>ignored by search</h2>",
		Tags:    []string{"go", "mongodb"},
	}
	doc := b.SearchDocument()
	assert.Equal(t, b.Title, doc.Title)
	assert.Equal(t, b.Excerpt, doc.Summary)
	assert.Equal(t, b.Tags, doc.Labels)
	assert.Empty(t, doc.Category, "posts filter by tag, not category")
}
