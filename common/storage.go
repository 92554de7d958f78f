package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns integer stored by the key or 0 if the key is missing.
func GetInt(ctx storage.Context, key any) int {
	val := storage.Get(ctx, key)
	if val == nil {
		return 0
	}
	return val.(int)
}

// Increment adds one to the integer stored by the key and returns the new
// value.
func Increment(ctx storage.Context, key any) int {
	val := GetInt(ctx, key) + 1
	storage.Put(ctx, key, val)
	return val
}
