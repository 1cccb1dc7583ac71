// Package query translates the optional list-endpoint parameters into a
// store filter plus a sort/limit pipeline. Projects and blog posts share
// the same rules and differ only in their sort field.
package query

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListParams carries the raw query-parameter values. Both are optional and
// arrive as strings straight from the request.
type ListParams struct {
	Featured string
	Limit    string
}

// Filter builds the store filter. Only the literal "true" restricts the
// result to featured documents; any other value, including the empty
// string, leaves the collection unfiltered.
func (p ListParams) Filter() bson.M {
	if p.Featured == "true" {
		return bson.M{"featured": true}
	}
	return bson.M{}
}

// Options builds the find options: newest first on sortField, capped when
// Limit parses as a positive integer. An absent or unparsable limit means
// no cap; malformed values are silently ignored rather than rejected, which
// existing callers depend on.
func (p ListParams) Options(sortField string) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: -1}})
	if n, err := strconv.Atoi(p.Limit); err == nil && n > 0 {
		opts.SetLimit(int64(n))
	}
	return opts
}
