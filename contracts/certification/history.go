package certification

import (
	"github.com/nspcc-dev/certification-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetHistoryEntry returns the history entry of the artifact by its index
// starting from 1. Nil is returned for indices out of [1, GetHistoryCount].
func GetHistoryEntry(artifact interop.Hash160, index int) any {
	if !common.IsValidAccount(artifact) {
		return nil
	}

	ctx := storage.GetReadOnlyContext()
	if index < 1 || index > common.GetInt(ctx, accountKey(historyCountPrefix, artifact)) {
		return nil
	}

	data := storage.Get(ctx, historyKey(artifact, index))
	if data == nil {
		return nil
	}
	return std.Deserialize(data.([]byte)).(HistoryEntry)
}

// GetHistoryCount returns the number of certifications ever issued for the
// artifact across all versions.
func GetHistoryCount(artifact interop.Hash160) int {
	if !common.IsValidAccount(artifact) {
		return 0
	}
	return common.GetInt(storage.GetReadOnlyContext(), accountKey(historyCountPrefix, artifact))
}

// appendHistory stores the entry under the next index of the artifact history
// and returns that index.
func appendHistory(ctx storage.Context, artifact interop.Hash160, entry HistoryEntry) int {
	index := common.Increment(ctx, accountKey(historyCountPrefix, artifact))
	common.SetSerialized(ctx, historyKey(artifact, index), entry)
	return index
}

func historyKey(artifact interop.Hash160, index int) []byte {
	return append(accountKey(historyPrefix, artifact), convert.ToBytes(index)...)
}
