package certification_test

import (
	"strings"
	"testing"

	"github.com/nspcc-dev/certification-contract/contracts/certification/auditorstatus"
	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/certification-contract/contracts/certification/requeststatus"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

var testArtifact = util.Uint160{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

func TestRequestCertification(t *testing.T) {
	inv := newRegistryInvoker(t)

	acc := inv.NewAccount(t)
	accInv := inv.WithSigners(acc)

	inv.InvokeFail(t, certconst.ErrNotAuthorized, "requestCertification",
		acc.ScriptHash(), testArtifact, "1.0.0", "token contract", "https://git.example/token")
	accInv.InvokeFail(t, certconst.ErrInvalidParameters, "requestCertification",
		acc.ScriptHash(), testArtifact, "", "token contract", "")
	accInv.InvokeFail(t, certconst.ErrInvalidParameters, "requestCertification",
		acc.ScriptHash(), testArtifact, strings.Repeat("1", certconst.MaxVersionLength+1), "", "")
	accInv.InvokeFail(t, certconst.ErrInvalidParameters, "requestCertification",
		acc.ScriptHash(), []byte{1}, "1.0.0", "", "")
	accInv.InvokeFail(t, certconst.ErrInvalidParameters, "requestCertification",
		acc.ScriptHash(), testArtifact, "1.0.0", strings.Repeat("d", certconst.MaxDescriptionLength+1), "")

	h := accInv.Invoke(t, stackitem.Null{}, "requestCertification",
		acc.ScriptHash(), testArtifact, "1.0.0", "token contract", "https://git.example/token")
	aer := inv.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "CertificationRequested", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(testArtifact.BytesBE()),
		stackitem.NewByteArray([]byte("1.0.0")),
		stackitem.NewByteArray(acc.ScriptHash().BytesBE()),
	}), aer.Events[0].Item)

	req := structFields(t, inv, "getRequest", testArtifact, "1.0.0")
	require.Len(t, req, 5)
	require.Equal(t, acc.ScriptHash().BytesBE(), req[0].Value().([]byte))
	require.Equal(t, "token contract", string(req[1].Value().([]byte)))
	require.Equal(t, int64(requeststatus.Pending), intField(t, req[4]))

	accInv.InvokeFail(t, certconst.ErrAlreadyRegistered, "requestCertification",
		acc.ScriptHash(), testArtifact, "1.0.0", "again", "")

	// another version is another request
	accInv.Invoke(t, stackitem.Null{}, "requestCertification",
		acc.ScriptHash(), testArtifact, "1.0.1", "", "")

	require.True(t, isNull(t, inv, "getRequest", testArtifact, "2.0.0"))
}

func TestSetRequestStatus(t *testing.T) {
	inv := newRegistryInvoker(t)

	requester := inv.NewAccount(t)
	reqInv := inv.WithSigners(requester)
	reqInv.Invoke(t, stackitem.Null{}, "requestCertification",
		requester.ScriptHash(), testArtifact, "1.0.0", "", "")

	reqInv.InvokeFail(t, certconst.ErrNotAuthorized, "setRequestStatus",
		requester.ScriptHash(), testArtifact, "1.0.0", int64(requeststatus.InReview))
	inv.InvokeFail(t, certconst.ErrContractNotFound, "setRequestStatus",
		inv.CommitteeHash, testArtifact, "9.9.9", int64(requeststatus.InReview))
	inv.InvokeFail(t, certconst.ErrInvalidStatus, "setRequestStatus",
		inv.CommitteeHash, testArtifact, "1.0.0", int64(requeststatus.Rejected+1))

	auditor := newAuditor(t, inv, "alice")
	audInv := inv.WithSigners(auditor)

	h := audInv.Invoke(t, stackitem.Null{}, "setRequestStatus",
		auditor.ScriptHash(), testArtifact, "1.0.0", int64(requeststatus.InReview))
	aer := inv.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "RequestStatusChanged", aer.Events[0].Name)

	req := structFields(t, inv, "getRequest", testArtifact, "1.0.0")
	require.Equal(t, int64(requeststatus.InReview), intField(t, req[4]))

	inv.Invoke(t, stackitem.Null{}, "setRequestStatus",
		inv.CommitteeHash, testArtifact, "1.0.0", int64(requeststatus.Rejected))
	req = structFields(t, inv, "getRequest", testArtifact, "1.0.0")
	require.Equal(t, int64(requeststatus.Rejected), intField(t, req[4]))

	inv.Invoke(t, stackitem.Null{}, "setAuditorStatus", auditor.ScriptHash(), int64(auditorstatus.Suspended))
	audInv.InvokeFail(t, certconst.ErrNotAuthorized, "setRequestStatus",
		auditor.ScriptHash(), testArtifact, "1.0.0", int64(requeststatus.InReview))

	// rejected request does not block issuance
	inv.Invoke(t, stackitem.Null{}, "setAuditorStatus", auditor.ScriptHash(), int64(auditorstatus.Active))
	audInv.Invoke(t, stackitem.Null{}, "issueCertification",
		auditor.ScriptHash(), testArtifact, "1.0.0", int64(7), "", int64(0), "")

	req = structFields(t, inv, "getRequest", testArtifact, "1.0.0")
	require.Equal(t, int64(requeststatus.Certified), intField(t, req[4]))
}

func TestIssueCertification(t *testing.T) {
	inv := newRegistryInvoker(t)

	auditor := newAuditor(t, inv, "alice")
	audInv := inv.WithSigners(auditor)

	t.Run("not an auditor", func(t *testing.T) {
		acc := inv.NewAccount(t)
		inv.WithSigners(acc).InvokeFail(t, certconst.ErrNotAuthorized, "issueCertification",
			acc.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(0), "")
	})
	t.Run("missing witness", func(t *testing.T) {
		inv.InvokeFail(t, certconst.ErrNotAuthorized, "issueCertification",
			auditor.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(0), "")
	})
	t.Run("inactive auditor", func(t *testing.T) {
		for _, st := range []auditorstatus.Type{auditorstatus.Inactive, auditorstatus.Probation, auditorstatus.Suspended} {
			inv.Invoke(t, stackitem.Null{}, "setAuditorStatus", auditor.ScriptHash(), int64(st))
			audInv.InvokeFail(t, certconst.ErrNotAuthorized, "issueCertification",
				auditor.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(0), "")
		}
		inv.Invoke(t, stackitem.Null{}, "setAuditorStatus", auditor.ScriptHash(), int64(auditorstatus.Active))
	})
	t.Run("invalid rating", func(t *testing.T) {
		for _, r := range []int64{0, 11, -1} {
			audInv.InvokeFail(t, certconst.ErrInvalidRating, "issueCertification",
				auditor.ScriptHash(), testArtifact, "1.0.0", r, "", int64(0), "")
		}
	})
	t.Run("invalid expiration", func(t *testing.T) {
		audInv.InvokeFail(t, certconst.ErrInvalidParameters, "issueCertification",
			auditor.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(1), "")
		audInv.InvokeFail(t, certconst.ErrInvalidParameters, "issueCertification",
			auditor.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(-5), "")
	})
	t.Run("invalid notes", func(t *testing.T) {
		audInv.InvokeFail(t, certconst.ErrInvalidParameters, "issueCertification",
			auditor.ScriptHash(), testArtifact, "1.0.0", int64(8), "",
			int64(0), strings.Repeat("n", certconst.MaxNotesLength+1))
	})

	validUntil := int64(inv.TopBlock(t).Timestamp) + 3_600_000

	h := audInv.Invoke(t, stackitem.Null{}, "issueCertification",
		auditor.ScriptHash(), testArtifact, "1.0.0", int64(8), "ipfs://report", validUntil, "all good")
	aer := inv.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "CertificationIssued", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(testArtifact.BytesBE()),
		stackitem.NewByteArray([]byte("1.0.0")),
		stackitem.NewByteArray(auditor.ScriptHash().BytesBE()),
		stackitem.Make(8),
	}), aer.Events[0].Item)

	cert := structFields(t, inv, "getCertification", testArtifact, "1.0.0")
	require.Len(t, cert, 6)
	require.Equal(t, auditor.ScriptHash().BytesBE(), cert[0].Value().([]byte))
	require.Equal(t, int64(8), intField(t, cert[1]))
	require.Equal(t, "ipfs://report", string(cert[2].Value().([]byte)))
	require.Equal(t, validUntil, intField(t, cert[4]))
	require.Equal(t, "all good", string(cert[5].Value().([]byte)))

	inv.Invoke(t, stackitem.NewBool(true), "isCertified", testArtifact, "1.0.0")
	inv.Invoke(t, 1, "getHistoryCount", testArtifact)

	a := structFields(t, inv, "getAuditor", auditor.ScriptHash())
	require.Equal(t, int64(1), intField(t, a[4]))

	_, certs, contracts := statistics(t, inv)
	require.Equal(t, int64(1), certs)
	require.Equal(t, int64(1), contracts)

	audInv.InvokeFail(t, certconst.ErrAlreadyCertified, "issueCertification",
		auditor.ScriptHash(), testArtifact, "1.0.0", int64(9), "", int64(0), "")

	t.Run("rating bounds", func(t *testing.T) {
		audInv.Invoke(t, stackitem.Null{}, "issueCertification",
			auditor.ScriptHash(), testArtifact, "1.0.1", int64(certconst.MinRating), "", int64(0), "")
		audInv.Invoke(t, stackitem.Null{}, "issueCertification",
			auditor.ScriptHash(), testArtifact, "1.0.2", int64(certconst.MaxRating), "", int64(0), "")

		inv.Invoke(t, 3, "getHistoryCount", testArtifact)

		// new versions of the same artifact are not new certified contracts
		_, certs, contracts := statistics(t, inv)
		require.Equal(t, int64(3), certs)
		require.Equal(t, int64(1), contracts)
	})
}

func TestRevokeCertification(t *testing.T) {
	inv := newRegistryInvoker(t)

	alice := newAuditor(t, inv, "alice")
	bob := newAuditor(t, inv, "bob")
	aliceInv := inv.WithSigners(alice)
	bobInv := inv.WithSigners(bob)

	aliceInv.InvokeFail(t, certconst.ErrNotAuthorized, "revokeCertification",
		alice.ScriptHash(), testArtifact, "1.0.0")
	inv.InvokeFail(t, certconst.ErrNotCertified, "revokeCertification",
		inv.CommitteeHash, testArtifact, "1.0.0")

	aliceInv.Invoke(t, stackitem.Null{}, "issueCertification",
		alice.ScriptHash(), testArtifact, "1.0.0", int64(8), "", int64(0), "")

	bobInv.InvokeFail(t, certconst.ErrNotAuthorized, "revokeCertification",
		bob.ScriptHash(), testArtifact, "1.0.0")
	inv.InvokeFail(t, certconst.ErrNotAuthorized, "revokeCertification",
		alice.ScriptHash(), testArtifact, "1.0.0")

	h := aliceInv.Invoke(t, stackitem.Null{}, "revokeCertification",
		alice.ScriptHash(), testArtifact, "1.0.0")
	aer := inv.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "CertificationRevoked", aer.Events[0].Name)

	inv.Invoke(t, stackitem.NewBool(false), "isCertified", testArtifact, "1.0.0")
	require.True(t, isNull(t, inv, "getCertification", testArtifact, "1.0.0"))
	inv.Invoke(t, 1, "getHistoryCount", testArtifact)

	_, certs, contracts := statistics(t, inv)
	require.Equal(t, int64(1), certs)
	require.Equal(t, int64(1), contracts)

	// the issuer of a revoked certification is not known anymore
	aliceInv.InvokeFail(t, certconst.ErrNotAuthorized, "revokeCertification",
		alice.ScriptHash(), testArtifact, "1.0.0")
	inv.InvokeFail(t, certconst.ErrNotCertified, "revokeCertification",
		inv.CommitteeHash, testArtifact, "1.0.0")

	t.Run("reissue", func(t *testing.T) {
		bobInv.Invoke(t, stackitem.Null{}, "issueCertification",
			bob.ScriptHash(), testArtifact, "1.0.0", int64(6), "", int64(0), "")
		inv.Invoke(t, 2, "getHistoryCount", testArtifact)
		inv.Invoke(t, stackitem.NewBool(true), "isCertified", testArtifact, "1.0.0")

		_, certs, contracts := statistics(t, inv)
		require.Equal(t, int64(2), certs)
		require.Equal(t, int64(1), contracts)
	})

	t.Run("by owner", func(t *testing.T) {
		inv.Invoke(t, stackitem.Null{}, "revokeCertification",
			inv.CommitteeHash, testArtifact, "1.0.0")
		inv.Invoke(t, stackitem.NewBool(false), "isCertified", testArtifact, "1.0.0")
	})
}
