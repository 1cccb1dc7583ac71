// Package resolve turns an external identifier, which may be a
// human-readable slug or a canonical store id, into an ordered list of
// concrete lookups to attempt. Callers try the candidates in order and stop
// at the first document hit; an identifier yielding no candidates or no
// hits is not found.
package resolve

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind discriminates the two lookup strategies.
type Kind int

const (
	BySlug Kind = iota
	ByID
)

// Key is one concrete lookup to attempt against a collection.
type Key struct {
	Kind Kind
	Slug string
	ID   primitive.ObjectID
}

// Filter returns the store filter selecting exactly the documents this key
// names. With duplicate slugs the store's iteration order decides which
// document a single-document operation touches.
func (k Key) Filter() bson.M {
	if k.Kind == ByID {
		return bson.M{"_id": k.ID}
	}
	return bson.M{"slug": k.Slug}
}

// SlugOrID returns the candidates for an identifier that may be either a
// slug or a canonical id, as blog-post identifiers are: the slug
// interpretation first, then the id when the identifier is a syntactically
// valid ObjectID.
func SlugOrID(identifier string) []Key {
	keys := []Key{{Kind: BySlug, Slug: identifier}}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		keys = append(keys, Key{Kind: ByID, ID: id})
	}
	return keys
}

// IDOnly returns the candidates for entities addressed by canonical id
// alone, as projects are. Anything that is not a valid ObjectID has no
// candidates.
func IDOnly(identifier string) []Key {
	id, err := primitive.ObjectIDFromHex(identifier)
	if err != nil {
		return nil
	}
	return []Key{{Kind: ByID, ID: id}}
}
