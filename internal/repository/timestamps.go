package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// serverTimestamp is the update fragment that asks the store to assign the
// current server time atomically at commit. The written value is not known
// until the document is re-read.
func serverTimestamp(fields ...string) bson.M {
	set := bson.M{}
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// toWireTimestamp converts a store-native timestamp value to the ISO-8601
// wire format. Strings pass through unchanged, as does nil; unknown types
// are returned as-is rather than failing the whole document.
func toWireTimestamp(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return t
	case bson.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

// wireTimestampString is toWireTimestamp narrowed to the string fields of
// the wire model.
func wireTimestampString(v interface{}) string {
	if s, ok := toWireTimestamp(v).(string); ok {
		return s
	}
	return ""
}
