package certification

import (
	"github.com/nspcc-dev/certification-contract/common"
	"github.com/nspcc-dev/certification-contract/contracts/certification/auditorstatus"
	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/certification-contract/contracts/certification/requeststatus"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// RequestCertification creates a pending certification request for the
// artifact version. The transaction must be signed by the requester. Only one
// request per artifact version is allowed.
func RequestCertification(requester, artifact interop.Hash160, version, description, repository string) {
	common.CheckAccount(requester)
	common.CheckAccount(artifact)
	checkVersionString(version)
	common.CheckWitness(requester)

	if len(description) > certconst.MaxDescriptionLength || len(repository) > certconst.MaxReferenceLength {
		panic(certconst.ErrInvalidParameters)
	}

	ctx := storage.GetContext()

	key := pairKey(requestPrefix, artifact, version)
	if storage.Get(ctx, key) != nil {
		panic(certconst.ErrAlreadyRegistered)
	}

	common.SetSerialized(ctx, key, Request{
		Requester:   requester,
		Description: description,
		Repository:  repository,
		RequestedAt: runtime.GetTime(),
		Status:      requeststatus.Pending,
	})

	runtime.Notify("CertificationRequested", artifact, version, requester)
}

// SetRequestStatus changes the status of an existing request. The caller must
// be the owner or an active auditor. Request status is informational and is
// not consulted by IssueCertification.
func SetRequestStatus(caller, artifact interop.Hash160, version string, status requeststatus.Type) {
	common.CheckAccount(caller)
	common.CheckAccount(artifact)
	checkVersionString(version)
	common.CheckWitness(caller)

	ctx := storage.GetContext()

	if !isOwner(ctx, caller) && !isActiveAuditor(ctx, caller) {
		panic(certconst.ErrNotAuthorized)
	}

	key := pairKey(requestPrefix, artifact, version)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(certconst.ErrContractNotFound)
	}

	if status < requeststatus.Pending || status > requeststatus.Rejected {
		panic(certconst.ErrInvalidStatus)
	}

	req := std.Deserialize(data.([]byte)).(Request)
	req.Status = status
	common.SetSerialized(ctx, key, req)

	runtime.Notify("RequestStatusChanged", artifact, version, int(status))
}

// IssueCertification certifies the artifact version. The transaction must be
// signed by an active auditor. Rating must be in [1, 10]. ValidUntil is a
// timestamp in milliseconds, 0 means no expiration.
//
// Every issuance is appended to the artifact history. The total number of
// certified contracts grows only when the artifact is certified for the first
// time, whatever the version.
func IssueCertification(auditor, artifact interop.Hash160, version string,
	rating int, report string, validUntil int, notes string) {
	common.CheckAccount(auditor)
	common.CheckAccount(artifact)
	checkVersionString(version)
	common.CheckWitness(auditor)

	ctx := storage.GetContext()

	audKey := accountKey(auditorPrefix, auditor)
	data := storage.Get(ctx, audKey)
	if data == nil {
		panic(certconst.ErrNotAuthorized)
	}
	a := std.Deserialize(data.([]byte)).(Auditor)
	if a.Status != auditorstatus.Active {
		panic(certconst.ErrNotAuthorized)
	}

	if rating < certconst.MinRating || rating > certconst.MaxRating {
		panic(certconst.ErrInvalidRating)
	}

	if len(report) > certconst.MaxReferenceLength || len(notes) > certconst.MaxNotesLength {
		panic(certconst.ErrInvalidParameters)
	}

	now := runtime.GetTime()
	if validUntil < 0 || (validUntil != 0 && validUntil <= now) {
		panic(certconst.ErrInvalidParameters)
	}

	certKey := pairKey(certificationPrefix, artifact, version)
	if storage.Get(ctx, certKey) != nil {
		panic(certconst.ErrAlreadyCertified)
	}

	common.SetSerialized(ctx, certKey, Certification{
		Auditor:    auditor,
		Rating:     rating,
		Report:     report,
		IssuedAt:   now,
		ValidUntil: validUntil,
		Notes:      notes,
	})

	index := appendHistory(ctx, artifact, HistoryEntry{
		Version: version,
		Auditor: auditor,
		Rating:  rating,
		Time:    now,
	})

	a.CertificationCount = a.CertificationCount + 1
	common.SetSerialized(ctx, audKey, a)

	common.Increment(ctx, totalCertificationsKey)
	if index == 1 {
		common.Increment(ctx, totalCertifiedContractsKey)
	}

	reqKey := pairKey(requestPrefix, artifact, version)
	reqData := storage.Get(ctx, reqKey)
	if reqData != nil {
		req := std.Deserialize(reqData.([]byte)).(Request)
		req.Status = requeststatus.Certified
		common.SetSerialized(ctx, reqKey, req)
	}

	runtime.Notify("CertificationIssued", artifact, version, auditor, rating)
}

// RevokeCertification removes the live certification of the artifact
// version. It can be invoked by the issuing auditor or by the owner, any
// other caller gets ErrNotAuthorized even for a missing certification. History,
// requests and statistics stay untouched, so the version can be certified
// again later.
func RevokeCertification(caller, artifact interop.Hash160, version string) {
	common.CheckAccount(caller)
	common.CheckAccount(artifact)
	checkVersionString(version)
	common.CheckWitness(caller)

	ctx := storage.GetContext()

	key := pairKey(certificationPrefix, artifact, version)
	data := storage.Get(ctx, key)

	// Only the owner learns whether a pair without issuer is certified.
	isIssuer := false
	if data != nil {
		cert := std.Deserialize(data.([]byte)).(Certification)
		isIssuer = caller.Equals(cert.Auditor)
	}
	if !isIssuer && !isOwner(ctx, caller) {
		panic(certconst.ErrNotAuthorized)
	}

	if data == nil {
		panic(certconst.ErrNotCertified)
	}

	storage.Delete(ctx, key)

	runtime.Notify("CertificationRevoked", artifact, version, caller)
}

// GetRequest returns the certification request of the artifact version or nil.
func GetRequest(artifact interop.Hash160, version string) any {
	if !common.IsValidAccount(artifact) || !isValidVersionString(version) {
		return nil
	}

	data := storage.Get(storage.GetReadOnlyContext(), pairKey(requestPrefix, artifact, version))
	if data == nil {
		return nil
	}
	return std.Deserialize(data.([]byte)).(Request)
}

// GetCertification returns the live certification of the artifact version or
// nil.
func GetCertification(artifact interop.Hash160, version string) any {
	if !common.IsValidAccount(artifact) || !isValidVersionString(version) {
		return nil
	}

	data := storage.Get(storage.GetReadOnlyContext(), pairKey(certificationPrefix, artifact, version))
	if data == nil {
		return nil
	}
	return std.Deserialize(data.([]byte)).(Certification)
}
