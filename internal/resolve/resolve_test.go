package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const validHex = "507f1f77bcf86cd799439011"

func TestSlugOrID_SlugBeforeID(t *testing.T) {
	keys := SlugOrID(validHex)
	require.Len(t, keys, 2, "a valid ObjectID is also tried as a slug")
	assert.Equal(t, BySlug, keys[0].Kind)
	assert.Equal(t, validHex, keys[0].Slug)
	assert.Equal(t, ByID, keys[1].Kind)

	id, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)
	assert.Equal(t, id, keys[1].ID)
}

func TestSlugOrID_PlainSlug(t *testing.T) {
	tests := []string{"my-post", "", "not-hex-24-chars-long-xx", "507f1f77"}
	for _, identifier := range tests {
		keys := SlugOrID(identifier)
		require.Len(t, keys, 1, "identifier %q", identifier)
		assert.Equal(t, BySlug, keys[0].Kind)
		assert.Equal(t, identifier, keys[0].Slug)
	}
}

func TestIDOnly(t *testing.T) {
	keys := IDOnly(validHex)
	require.Len(t, keys, 1)
	assert.Equal(t, ByID, keys[0].Kind)

	assert.Empty(t, IDOnly("some-slug"), "projects resolve by id only")
	assert.Empty(t, IDOnly(""))
}

func TestKey_Filter(t *testing.T) {
	id, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"slug": "my-post"}, Key{Kind: BySlug, Slug: "my-post"}.Filter())
	assert.Equal(t, bson.M{"_id": id}, Key{Kind: ByID, ID: id}.Filter())
}

func TestSlugOrID_Deterministic(t *testing.T) {
	assert.Equal(t, SlugOrID("my-post"), SlugOrID("my-post"))
	assert.Equal(t, SlugOrID(validHex), SlugOrID(validHex))
}
