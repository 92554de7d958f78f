package certification

import (
	"github.com/nspcc-dev/certification-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// VerificationInfo is a summary of the artifact version certification joined
// with the issuing auditor record.
type VerificationInfo struct {
	Certified       bool
	Auditor         interop.Hash160
	AuditorName     string
	AuditorCompany  string
	Rating          int
	IssuedAt        int
	ValidUntil      int
	ReputationScore int
}

// IsCertified checks whether the artifact version has a live certification.
// Expiration time is not taken into account. Malformed arguments result in
// false.
func IsCertified(artifact interop.Hash160, version string) bool {
	if !common.IsValidAccount(artifact) || !isValidVersionString(version) {
		return false
	}
	return storage.Get(storage.GetReadOnlyContext(), pairKey(certificationPrefix, artifact, version)) != nil
}

// VerifyCertification returns the same result as IsCertified and records it
// in the CertificationVerified notification, so a submitted transaction
// leaves a verification trace in the application log.
func VerifyCertification(artifact interop.Hash160, version string) bool {
	certified := IsCertified(artifact, version)
	if common.IsValidAccount(artifact) {
		runtime.Notify("CertificationVerified", artifact, version, certified)
	}
	return certified
}

// GetVerificationInfo returns certification details of the artifact version.
// Certified is false and the other fields are empty if there is no live
// certification. Auditor name, company and reputation are empty if the
// auditor record is missing.
func GetVerificationInfo(artifact interop.Hash160, version string) VerificationInfo {
	info := VerificationInfo{}
	if !common.IsValidAccount(artifact) || !isValidVersionString(version) {
		return info
	}

	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, pairKey(certificationPrefix, artifact, version))
	if data == nil {
		return info
	}
	cert := std.Deserialize(data.([]byte)).(Certification)

	info.Certified = true
	info.Auditor = cert.Auditor
	info.Rating = cert.Rating
	info.IssuedAt = cert.IssuedAt
	info.ValidUntil = cert.ValidUntil

	data = storage.Get(ctx, accountKey(auditorPrefix, cert.Auditor))
	if data != nil {
		a := std.Deserialize(data.([]byte)).(Auditor)
		info.AuditorName = a.Name
		info.AuditorCompany = a.Company
		info.ReputationScore = a.ReputationScore
	}

	return info
}
