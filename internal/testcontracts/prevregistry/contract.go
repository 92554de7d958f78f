package prevregistry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const versionKey = "testVersion"

// _deploy stores the registry owner and counters the way the registry does,
// plus the version this contract reports on update.
//
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	storage.Put(ctx, "owner", args[0].(interop.Hash160))
	storage.Put(ctx, "totalAuditors", 0)
	storage.Put(ctx, "totalCertifications", 0)
	storage.Put(ctx, "totalCertifiedContracts", 0)
	storage.Put(ctx, versionKey, args[1].(int))
}

func Update(script []byte, manifest []byte, data any) {
	v := Version()

	var args []any
	if data == nil {
		args = []any{v}
	} else {
		args = append(data.([]any), v)
	}

	contract.Call(interop.Hash160(management.Hash), "update", contract.All, script, manifest, args)
}

func Version() int {
	return storage.Get(storage.GetReadOnlyContext(), versionKey).(int)
}
