package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-service/internal/search"
)

// Project is a portfolio entry stored in the "projects" collection.
// Technologies keep their insertion order, which is the display order.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	GithubURL    string             `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LiveURL      string             `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Featured     bool               `bson:"featured" json:"featured"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SearchDocument projects the fields the filter engine matches against.
func (p Project) SearchDocument() search.Document {
	return search.Document{
		Title:    p.Title,
		Summary:  p.Description,
		Category: p.Category,
		Labels:   p.Technologies,
	}
}
