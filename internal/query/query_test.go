package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilter_FeaturedLiteralTrueOnly(t *testing.T) {
	tests := []struct {
		name     string
		featured string
		want     bson.M
	}{
		{"absent", "", bson.M{}},
		{"true", "true", bson.M{"featured": true}},
		{"capitalized is not the literal", "True", bson.M{}},
		{"false", "false", bson.M{}},
		{"garbage", "yes", bson.M{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ListParams{Featured: tt.featured}.Filter())
		})
	}
}

func TestOptions_SortsNewestFirst(t *testing.T) {
	opts := ListParams{}.Options("createdAt")
	require.NotNil(t, opts.Sort)
	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Nil(t, opts.Limit, "no cap without a limit parameter")
}

func TestOptions_LimitParsing(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		want  *int64
	}{
		{"positive", "5", int64Ptr(5)},
		{"one", "1", int64Ptr(1)},
		{"absent", "", nil},
		{"unparsable is ignored", "abc", nil},
		{"float is ignored", "3.5", nil},
		{"zero is ignored", "0", nil},
		{"negative is ignored", "-2", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ListParams{Limit: tt.limit}.Options("publishedAt")
			if tt.want == nil {
				assert.Nil(t, opts.Limit)
			} else {
				require.NotNil(t, opts.Limit)
				assert.Equal(t, *tt.want, *opts.Limit)
			}
		})
	}
}

func int64Ptr(n int64) *int64 { return &n }
