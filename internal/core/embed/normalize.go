// Package embed canonicalizes related records attached by join-style fetches.
//
// Depending on how the join was declared, the store returns the related record
// as a single document, as a zero- or one-element array, or as null — the shape
// varies per call site while the logical cardinality is always zero-or-one.
// Every fetch that embeds a profile into a post or comment must run the field
// through Related instead of re-deriving the shape check locally.
package embed

import "go.mongodb.org/mongo-driver/bson"

// Related returns the embedded record under field in canonical form: the
// single related document, or nil when it is absent. Arrays yield their first
// element; empty arrays, nulls and unrecognized shapes all degrade to nil.
// It never panics and never reports an error — absent related data is a
// display concern, not a failure.
func Related(record map[string]any, field string) map[string]any {
	if record == nil {
		return nil
	}
	return asDocument(record[field])
}

func asDocument(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case bson.M:
		return map[string]any(t)
	case bson.D:
		return t.Map()
	case []any:
		return firstDocument(t)
	case bson.A:
		return firstDocument(t)
	case []map[string]any:
		if len(t) == 0 {
			return nil
		}
		return t[0]
	case []bson.M:
		if len(t) == 0 {
			return nil
		}
		return map[string]any(t[0])
	}
	return nil
}

func firstDocument(items []any) map[string]any {
	if len(items) == 0 {
		return nil
	}
	return asDocument(items[0])
}
