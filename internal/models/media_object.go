package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaObject is the metadata record of an uploaded image stored in the
// "media" collection; the bytes live in object storage under StorageKey.
type MediaObject struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OriginalFilename string             `bson:"originalFilename" json:"originalFilename"`
	ContentType      string             `bson:"contentType" json:"contentType"`
	Size             int64              `bson:"size" json:"size"`
	StorageKey       string             `bson:"storageKey" json:"storageKey"`
	// URL is derived from the assigned id and never persisted.
	URL        string    `bson:"-" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
