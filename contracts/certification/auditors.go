package certification

import (
	"github.com/nspcc-dev/certification-contract/common"
	"github.com/nspcc-dev/certification-contract/contracts/certification/auditorstatus"
	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Apply registers an auditor application of the candidate account. The
// transaction must be signed by the candidate. An account can have either a
// pending application or an auditor record, never both.
func Apply(candidate interop.Hash160, name, company, website, credentials string) {
	common.CheckAccount(candidate)
	common.CheckWitness(candidate)

	if len(name) == 0 || len(name) > certconst.MaxNameLength ||
		len(company) > certconst.MaxCompanyLength ||
		len(website) > certconst.MaxWebsiteLength ||
		len(credentials) > certconst.MaxCredentialsLength {
		panic(certconst.ErrInvalidParameters)
	}

	ctx := storage.GetContext()

	appKey := accountKey(applicationPrefix, candidate)
	if storage.Get(ctx, appKey) != nil || storage.Get(ctx, accountKey(auditorPrefix, candidate)) != nil {
		panic(certconst.ErrAlreadyRegistered)
	}

	common.SetSerialized(ctx, appKey, AuditorApplication{
		Name:        name,
		Company:     company,
		Website:     website,
		Credentials: credentials,
		SubmittedAt: runtime.GetTime(),
	})

	runtime.Notify("AuditorApplied", candidate)
}

// Approve turns a pending application into an active auditor with the initial
// reputation score. It can be invoked only by the owner.
func Approve(candidate interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckWitness(getOwner(ctx))
	common.CheckAccount(candidate)

	appKey := accountKey(applicationPrefix, candidate)
	data := storage.Get(ctx, appKey)
	if data == nil {
		panic(certconst.ErrNotRegistered)
	}

	audKey := accountKey(auditorPrefix, candidate)
	if storage.Get(ctx, audKey) != nil {
		panic(certconst.ErrAlreadyRegistered)
	}

	app := std.Deserialize(data.([]byte)).(AuditorApplication)

	common.SetSerialized(ctx, audKey, Auditor{
		Name:               app.Name,
		Company:            app.Company,
		Website:            app.Website,
		ReputationScore:    certconst.InitialReputation,
		CertificationCount: 0,
		Status:             auditorstatus.Active,
		ApprovedAt:         runtime.GetTime(),
	})
	storage.Delete(ctx, appKey)
	common.Increment(ctx, totalAuditorsKey)

	runtime.Notify("AuditorApproved", candidate)
}

// SetAuditorStatus changes the status of an existing auditor. Only active
// auditors can issue certifications. It can be invoked only by the owner.
func SetAuditorStatus(auditor interop.Hash160, status auditorstatus.Type) {
	ctx := storage.GetContext()
	common.CheckWitness(getOwner(ctx))
	common.CheckAccount(auditor)

	a := mustGetAuditor(ctx, auditor)

	if status < auditorstatus.Active || status > auditorstatus.Suspended {
		panic(certconst.ErrInvalidStatus)
	}

	a.Status = status
	common.SetSerialized(ctx, accountKey(auditorPrefix, auditor), a)

	runtime.Notify("AuditorStatusChanged", auditor, int(status))
}

// SetReputation sets the reputation score of an existing auditor. It can be
// invoked only by the owner.
func SetReputation(auditor interop.Hash160, score int) {
	ctx := storage.GetContext()
	common.CheckWitness(getOwner(ctx))
	common.CheckAccount(auditor)

	a := mustGetAuditor(ctx, auditor)

	if score < 0 || score > certconst.MaxReputation {
		panic(certconst.ErrInvalidParameters)
	}

	a.ReputationScore = score
	common.SetSerialized(ctx, accountKey(auditorPrefix, auditor), a)

	runtime.Notify("ReputationChanged", auditor, score)
}

// IsActiveAuditor checks whether the account is an auditor in Active status.
func IsActiveAuditor(account interop.Hash160) bool {
	if !common.IsValidAccount(account) {
		return false
	}
	return isActiveAuditor(storage.GetReadOnlyContext(), account)
}

// GetAuditor returns the auditor record of the account or nil if the account
// is not an auditor.
func GetAuditor(account interop.Hash160) any {
	if !common.IsValidAccount(account) {
		return nil
	}

	data := storage.Get(storage.GetReadOnlyContext(), accountKey(auditorPrefix, account))
	if data == nil {
		return nil
	}
	return std.Deserialize(data.([]byte)).(Auditor)
}

// GetApplication returns the pending application of the account or nil.
func GetApplication(account interop.Hash160) any {
	if !common.IsValidAccount(account) {
		return nil
	}

	data := storage.Get(storage.GetReadOnlyContext(), accountKey(applicationPrefix, account))
	if data == nil {
		return nil
	}
	return std.Deserialize(data.([]byte)).(AuditorApplication)
}

// ListAuditors returns accounts of all approved auditors regardless of their
// status.
func ListAuditors() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	result := []interop.Hash160{}

	it := storage.Find(ctx, []byte{auditorPrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		key := iterator.Value(it).([]byte)
		result = append(result, interop.Hash160(key[1:]))
	}

	return result
}

// IterateAuditors returns iterator over accounts of all approved auditors.
func IterateAuditors() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{auditorPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

func mustGetAuditor(ctx storage.Context, account interop.Hash160) Auditor {
	data := storage.Get(ctx, accountKey(auditorPrefix, account))
	if data == nil {
		panic(certconst.ErrNotRegistered)
	}
	return std.Deserialize(data.([]byte)).(Auditor)
}

func isActiveAuditor(ctx storage.Context, account interop.Hash160) bool {
	data := storage.Get(ctx, accountKey(auditorPrefix, account))
	if data == nil {
		return false
	}
	a := std.Deserialize(data.([]byte)).(Auditor)
	return a.Status == auditorstatus.Active
}
