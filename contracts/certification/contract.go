package certification

import (
	"github.com/nspcc-dev/certification-contract/common"
	"github.com/nspcc-dev/certification-contract/contracts/certification/auditorstatus"
	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/certification-contract/contracts/certification/requeststatus"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// AuditorApplication is a pending request of an account to become an
	// auditor. It lives until the owner approves it.
	AuditorApplication struct {
		Name        string
		Company     string
		Website     string
		Credentials string
		SubmittedAt int
	}

	// Auditor is an approved auditor record. Auditors are never removed,
	// only their status changes.
	Auditor struct {
		Name               string
		Company            string
		Website            string
		ReputationScore    int
		CertificationCount int
		Status             auditorstatus.Type
		ApprovedAt         int
	}

	// Request is a certification request for an artifact version.
	Request struct {
		Requester   interop.Hash160
		Description string
		Repository  string
		RequestedAt int
		Status      requeststatus.Type
	}

	// Certification is a live certification of an artifact version.
	// ValidUntil equal to 0 means the certification has no expiration.
	Certification struct {
		Auditor    interop.Hash160
		Rating     int
		Report     string
		IssuedAt   int
		ValidUntil int
		Notes      string
	}

	// HistoryEntry is an immutable record of a certification issued for
	// an artifact.
	HistoryEntry struct {
		Version string
		Auditor interop.Hash160
		Rating  int
		Time    int
	}

	// Statistics contains platform-wide counters.
	Statistics struct {
		TotalAuditors           int
		TotalCertifications     int
		TotalCertifiedContracts int
	}
)

const (
	ownerKey                   = "owner"
	totalAuditorsKey           = "totalAuditors"
	totalCertificationsKey     = "totalCertifications"
	totalCertifiedContractsKey = "totalCertifiedContracts"

	applicationPrefix   = 'p'
	auditorPrefix       = 'a'
	requestPrefix       = 'r'
	certificationPrefix = 'c'
	historyPrefix       = 'h'
	historyCountPrefix  = 'n'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	owner := runtime.GetScriptContainer().Sender
	if data != nil {
		args := data.([]any)
		if len(args) > 0 && args[0] != nil {
			addr := args[0].(interop.Hash160)
			if common.IsValidAccount(addr) {
				owner = addr
			}
		}
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, totalAuditorsKey, 0)
	storage.Put(ctx, totalCertificationsKey, 0)
	storage.Put(ctx, totalCertifiedContractsKey, 0)

	runtime.Log("certification contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckWitness(getOwner(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("certification contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Owner returns the account allowed to approve auditors and administer
// the registry.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// TransferOwnership sets a new registry owner. It must be signed by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	oldOwner := getOwner(ctx)
	common.CheckWitness(oldOwner)
	common.CheckAccount(newOwner)

	storage.Put(ctx, ownerKey, newOwner)
	runtime.Notify("OwnershipTransferred", oldOwner, newOwner)
}

// GetStatistics returns platform-wide counters. Counters only grow.
func GetStatistics() Statistics {
	ctx := storage.GetReadOnlyContext()
	return Statistics{
		TotalAuditors:           common.GetInt(ctx, totalAuditorsKey),
		TotalCertifications:     common.GetInt(ctx, totalCertificationsKey),
		TotalCertifiedContracts: common.GetInt(ctx, totalCertifiedContractsKey),
	}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func isOwner(ctx storage.Context, account interop.Hash160) bool {
	return account.Equals(getOwner(ctx))
}

func checkVersionString(version string) {
	if len(version) == 0 || len(version) > certconst.MaxVersionLength {
		panic(certconst.ErrInvalidParameters)
	}
}

func isValidVersionString(version string) bool {
	return len(version) > 0 && len(version) <= certconst.MaxVersionLength
}

func pairKey(prefix byte, artifact interop.Hash160, version string) []byte {
	key := append([]byte{prefix}, artifact...)
	return append(key, []byte(version)...)
}

func accountKey(prefix byte, account interop.Hash160) []byte {
	return append([]byte{prefix}, account...)
}
