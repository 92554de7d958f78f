package certification

import (
	"math/big"

	"github.com/nspcc-dev/certification-contract/contracts/certification/auditorstatus"
	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/certification-contract/contracts/certification/requeststatus"
)

// Possible auditor states in [CertificationAuditor].
var (
	// AuditorStatusActive is used by auditors allowed to issue certifications.
	AuditorStatusActive = big.NewInt(int64(auditorstatus.Active))

	// AuditorStatusInactive is used by auditors that stopped working.
	AuditorStatusInactive = big.NewInt(int64(auditorstatus.Inactive))

	// AuditorStatusProbation is used by auditors under review.
	AuditorStatusProbation = big.NewInt(int64(auditorstatus.Probation))

	// AuditorStatusSuspended is used by auditors banned by the owner.
	AuditorStatusSuspended = big.NewInt(int64(auditorstatus.Suspended))
)

// Possible request states in [CertificationRequest].
var (
	RequestStatusPending   = big.NewInt(int64(requeststatus.Pending))
	RequestStatusInReview  = big.NewInt(int64(requeststatus.InReview))
	RequestStatusCertified = big.NewInt(int64(requeststatus.Certified))
	RequestStatusRejected  = big.NewInt(int64(requeststatus.Rejected))
)

// Rating and reputation bounds.
const (
	MinRating         = certconst.MinRating
	MaxRating         = certconst.MaxRating
	MaxReputation     = certconst.MaxReputation
	InitialReputation = certconst.InitialReputation
)

var (
	auditorStatusNames = map[auditorstatus.Type]string{
		auditorstatus.Active:    "active",
		auditorstatus.Inactive:  "inactive",
		auditorstatus.Probation: "probation",
		auditorstatus.Suspended: "suspended",
	}
	requestStatusNames = map[requeststatus.Type]string{
		requeststatus.Pending:   "pending",
		requeststatus.InReview:  "in review",
		requeststatus.Certified: "certified",
		requeststatus.Rejected:  "rejected",
	}
)

// AuditorStatusString returns human-readable name of the auditor status.
func AuditorStatusString(status *big.Int) string {
	if status != nil && status.IsInt64() {
		if s, ok := auditorStatusNames[auditorstatus.Type(status.Int64())]; ok {
			return s
		}
	}
	return "unknown"
}

// ParseAuditorStatus converts status name to its numeric value.
func ParseAuditorStatus(name string) (*big.Int, bool) {
	for st, s := range auditorStatusNames {
		if s == name {
			return big.NewInt(int64(st)), true
		}
	}
	return nil, false
}

// RequestStatusString returns human-readable name of the request status.
func RequestStatusString(status *big.Int) string {
	if status != nil && status.IsInt64() {
		if s, ok := requestStatusNames[requeststatus.Type(status.Int64())]; ok {
			return s
		}
	}
	return "unknown"
}

// ParseRequestStatus converts status name to its numeric value.
func ParseRequestStatus(name string) (*big.Int, bool) {
	for st, s := range requestStatusNames {
		if s == name {
			return big.NewInt(int64(st)), true
		}
	}
	return nil, false
}
