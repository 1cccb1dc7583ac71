package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-service/internal/search"
)

// BlogPost is stored in the "blog" collection. Content may embed raw
// markup; it is treated as opaque text everywhere in this service. Slug is
// the primary external lookup key but uniqueness is not enforced here —
// with duplicates the first match in store order wins.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	Slug        string             `bson:"slug" json:"slug"`
	Tags        []string           `bson:"tags" json:"tags"`
	Author      string             `bson:"author" json:"author"`
	Featured    bool               `bson:"featured" json:"featured"`
	PublishedAt time.Time          `bson:"publishedAt" json:"publishedAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SearchDocument projects the fields the filter engine matches against.
func (b BlogPost) SearchDocument() search.Document {
	return search.Document{
		Title:   b.Title,
		Summary: b.Excerpt,
		Labels:  b.Tags,
	}
}
