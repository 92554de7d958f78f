package certification_test

import (
	"strings"
	"testing"

	"github.com/nspcc-dev/certification-contract/contracts/certification/auditorstatus"
	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	inv := newRegistryInvoker(t)

	acc := inv.NewAccount(t)
	accInv := inv.WithSigners(acc)

	t.Run("missing witness", func(t *testing.T) {
		inv.InvokeFail(t, certconst.ErrNotAuthorized, "apply",
			acc.ScriptHash(), "Alice", "Audits Inc", "https://audits.example", "CISA")
	})
	t.Run("invalid parameters", func(t *testing.T) {
		accInv.InvokeFail(t, certconst.ErrInvalidParameters, "apply",
			[]byte{1, 2, 3}, "Alice", "", "", "")
		accInv.InvokeFail(t, certconst.ErrInvalidParameters, "apply",
			acc.ScriptHash(), "", "", "", "")
		accInv.InvokeFail(t, certconst.ErrInvalidParameters, "apply",
			acc.ScriptHash(), strings.Repeat("a", certconst.MaxNameLength+1), "", "", "")
		accInv.InvokeFail(t, certconst.ErrInvalidParameters, "apply",
			acc.ScriptHash(), "Alice", "", "", strings.Repeat("c", certconst.MaxCredentialsLength+1))
	})

	require.True(t, isNull(t, inv, "getApplication", acc.ScriptHash()))

	h := accInv.Invoke(t, stackitem.Null{}, "apply",
		acc.ScriptHash(), "Alice", "Audits Inc", "https://audits.example", "CISA")
	aer := inv.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "AuditorApplied", aer.Events[0].Name)

	app := structFields(t, inv, "getApplication", acc.ScriptHash())
	require.Len(t, app, 5)
	require.Equal(t, "Alice", string(app[0].Value().([]byte)))
	require.Equal(t, "CISA", string(app[3].Value().([]byte)))
	require.Positive(t, intField(t, app[4]))

	t.Run("pending application", func(t *testing.T) {
		accInv.InvokeFail(t, certconst.ErrAlreadyRegistered, "apply",
			acc.ScriptHash(), "Alice", "", "", "")
	})

	inv.Invoke(t, stackitem.Null{}, "approve", acc.ScriptHash())

	t.Run("approved auditor", func(t *testing.T) {
		accInv.InvokeFail(t, certconst.ErrAlreadyRegistered, "apply",
			acc.ScriptHash(), "Alice", "", "", "")
	})
}

func TestApprove(t *testing.T) {
	inv := newRegistryInvoker(t)

	acc := inv.NewAccount(t)
	accInv := inv.WithSigners(acc)

	inv.InvokeFail(t, certconst.ErrNotRegistered, "approve", acc.ScriptHash())

	accInv.Invoke(t, stackitem.Null{}, "apply",
		acc.ScriptHash(), "Alice", "Audits Inc", "https://audits.example", "CISA")

	accInv.InvokeFail(t, certconst.ErrNotAuthorized, "approve", acc.ScriptHash())
	accInv.InvokeFail(t, certconst.ErrNotAuthorized, "approve", []byte{1, 2, 3})
	inv.InvokeFail(t, certconst.ErrInvalidParameters, "approve", []byte{1, 2, 3})
	inv.Invoke(t, stackitem.NewBool(false), "isActiveAuditor", acc.ScriptHash())

	h := inv.Invoke(t, stackitem.Null{}, "approve", acc.ScriptHash())
	aer := inv.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "AuditorApproved", aer.Events[0].Name)

	inv.Invoke(t, stackitem.NewBool(true), "isActiveAuditor", acc.ScriptHash())
	require.True(t, isNull(t, inv, "getApplication", acc.ScriptHash()))

	a := structFields(t, inv, "getAuditor", acc.ScriptHash())
	require.Len(t, a, 7)
	require.Equal(t, "Alice", string(a[0].Value().([]byte)))
	require.Equal(t, "Audits Inc", string(a[1].Value().([]byte)))
	require.Equal(t, int64(certconst.InitialReputation), intField(t, a[3]))
	require.Equal(t, int64(0), intField(t, a[4]))
	require.Equal(t, int64(auditorstatus.Active), intField(t, a[5]))

	auditors, _, _ := statistics(t, inv)
	require.Equal(t, int64(1), auditors)

	inv.InvokeFail(t, certconst.ErrNotRegistered, "approve", acc.ScriptHash())

	s, err := inv.TestInvoke(t, "listAuditors")
	require.NoError(t, err)
	items := s.Pop().Array()
	require.Len(t, items, 1)
	require.Equal(t, acc.ScriptHash().BytesBE(), items[0].Value().([]byte))
}

func TestSetAuditorStatus(t *testing.T) {
	inv := newRegistryInvoker(t)

	stranger := inv.NewAccount(t)
	inv.InvokeFail(t, certconst.ErrNotRegistered, "setAuditorStatus",
		stranger.ScriptHash(), int64(auditorstatus.Suspended))

	acc := newAuditor(t, inv, "alice")

	inv.WithSigners(acc).InvokeFail(t, certconst.ErrNotAuthorized, "setAuditorStatus",
		acc.ScriptHash(), int64(auditorstatus.Inactive))
	inv.WithSigners(acc).InvokeFail(t, certconst.ErrNotAuthorized, "setAuditorStatus",
		[]byte{1, 2, 3}, int64(auditorstatus.Inactive))
	inv.InvokeFail(t, certconst.ErrInvalidParameters, "setAuditorStatus",
		[]byte{1, 2, 3}, int64(auditorstatus.Inactive))
	inv.InvokeFail(t, certconst.ErrInvalidStatus, "setAuditorStatus",
		acc.ScriptHash(), int64(0))
	inv.InvokeFail(t, certconst.ErrInvalidStatus, "setAuditorStatus",
		acc.ScriptHash(), int64(auditorstatus.Suspended+1))

	for _, st := range []auditorstatus.Type{auditorstatus.Inactive, auditorstatus.Probation, auditorstatus.Suspended} {
		h := inv.Invoke(t, stackitem.Null{}, "setAuditorStatus", acc.ScriptHash(), int64(st))
		aer := inv.CheckHalt(t, h)
		require.Equal(t, 1, len(aer.Events))
		require.Equal(t, "AuditorStatusChanged", aer.Events[0].Name)
		require.Equal(t, stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(acc.ScriptHash().BytesBE()),
			stackitem.Make(int64(st)),
		}), aer.Events[0].Item)

		inv.Invoke(t, stackitem.NewBool(false), "isActiveAuditor", acc.ScriptHash())
		a := structFields(t, inv, "getAuditor", acc.ScriptHash())
		require.Equal(t, int64(st), intField(t, a[5]))
	}

	inv.Invoke(t, stackitem.Null{}, "setAuditorStatus", acc.ScriptHash(), int64(auditorstatus.Active))
	inv.Invoke(t, stackitem.NewBool(true), "isActiveAuditor", acc.ScriptHash())
}

func TestSetReputation(t *testing.T) {
	inv := newRegistryInvoker(t)

	acc := newAuditor(t, inv, "alice")

	inv.WithSigners(acc).InvokeFail(t, certconst.ErrNotAuthorized, "setReputation",
		acc.ScriptHash(), int64(10))
	inv.WithSigners(acc).InvokeFail(t, certconst.ErrNotAuthorized, "setReputation",
		[]byte{1, 2, 3}, int64(10))
	inv.InvokeFail(t, certconst.ErrInvalidParameters, "setReputation", []byte{1, 2, 3}, int64(10))
	inv.InvokeFail(t, certconst.ErrInvalidParameters, "setReputation", acc.ScriptHash(), int64(-1))
	inv.InvokeFail(t, certconst.ErrInvalidParameters, "setReputation",
		acc.ScriptHash(), int64(certconst.MaxReputation+1))

	for _, score := range []int64{0, certconst.MaxReputation} {
		inv.Invoke(t, stackitem.Null{}, "setReputation", acc.ScriptHash(), score)
		a := structFields(t, inv, "getAuditor", acc.ScriptHash())
		require.Equal(t, score, intField(t, a[3]))
	}
}

func TestAuditorReads(t *testing.T) {
	inv := newRegistryInvoker(t)

	inv.Invoke(t, stackitem.NewBool(false), "isActiveAuditor", []byte{1, 2, 3})
	require.True(t, isNull(t, inv, "getAuditor", []byte{1, 2, 3}))
	require.True(t, isNull(t, inv, "getAuditor", inv.NewAccount(t).ScriptHash()))

	s, err := inv.TestInvoke(t, "listAuditors")
	require.NoError(t, err)
	require.Empty(t, s.Pop().Array())

	alice := newAuditor(t, inv, "alice")
	bob := newAuditor(t, inv, "bob")

	s, err = inv.TestInvoke(t, "listAuditors")
	require.NoError(t, err)
	items := s.Pop().Array()
	require.Len(t, items, 2)

	var got [][]byte
	for i := range items {
		got = append(got, items[i].Value().([]byte))
	}
	require.ElementsMatch(t, [][]byte{alice.ScriptHash().BytesBE(), bob.ScriptHash().BytesBE()}, got)

	s, err = inv.TestInvoke(t, "iterateAuditors")
	require.NoError(t, err)
	_, ok := s.Pop().Item().(*stackitem.Interop)
	require.True(t, ok)
}
