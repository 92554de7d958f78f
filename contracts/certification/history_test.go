package certification_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	inv := newRegistryInvoker(t)

	inv.Invoke(t, 0, "getHistoryCount", testArtifact)
	inv.Invoke(t, 0, "getHistoryCount", []byte{1, 2})
	require.True(t, isNull(t, inv, "getHistoryEntry", testArtifact, int64(1)))

	alice := newAuditor(t, inv, "alice")
	bob := newAuditor(t, inv, "bob")
	aliceInv := inv.WithSigners(alice)
	bobInv := inv.WithSigners(bob)

	aliceInv.Invoke(t, stackitem.Null{}, "issueCertification",
		alice.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(0), "")
	aliceInv.Invoke(t, stackitem.Null{}, "revokeCertification",
		alice.ScriptHash(), testArtifact, "1.0.0")
	bobInv.Invoke(t, stackitem.Null{}, "issueCertification",
		bob.ScriptHash(), testArtifact, "1.0.0", int64(5), "", int64(0), "")
	aliceInv.Invoke(t, stackitem.Null{}, "issueCertification",
		alice.ScriptHash(), testArtifact, "2.0.0", int64(10), "", int64(0), "")

	inv.Invoke(t, 3, "getHistoryCount", testArtifact)

	expected := []struct {
		version string
		auditor []byte
		rating  int64
	}{
		{"1.0.0", alice.ScriptHash().BytesBE(), 8},
		{"1.0.0", bob.ScriptHash().BytesBE(), 5},
		{"2.0.0", alice.ScriptHash().BytesBE(), 10},
	}

	var prevTime int64
	for i, exp := range expected {
		e := structFields(t, inv, "getHistoryEntry", testArtifact, int64(i+1))
		require.Len(t, e, 4)
		require.Equal(t, exp.version, string(e[0].Value().([]byte)))
		require.Equal(t, exp.auditor, e[1].Value().([]byte))
		require.Equal(t, exp.rating, intField(t, e[2]))

		ts := intField(t, e[3])
		require.GreaterOrEqual(t, ts, prevTime)
		prevTime = ts
	}

	for _, index := range []int64{-1, 0, 4} {
		require.True(t, isNull(t, inv, "getHistoryEntry", testArtifact, index))
	}
}
