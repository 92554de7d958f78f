// Package certification contains RPC wrappers for Certification Registry contract.
package certification

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CertificationAuditor is a contract-specific certification.Auditor type used by its methods.
type CertificationAuditor struct {
	Name string
	Company string
	Website string
	ReputationScore *big.Int
	CertificationCount *big.Int
	Status *big.Int
	ApprovedAt *big.Int
}

// CertificationAuditorApplication is a contract-specific certification.AuditorApplication type used by its methods.
type CertificationAuditorApplication struct {
	Name string
	Company string
	Website string
	Credentials string
	SubmittedAt *big.Int
}

// CertificationCertification is a contract-specific certification.Certification type used by its methods.
type CertificationCertification struct {
	Auditor util.Uint160
	Rating *big.Int
	Report string
	IssuedAt *big.Int
	ValidUntil *big.Int
	Notes string
}

// CertificationHistoryEntry is a contract-specific certification.HistoryEntry type used by its methods.
type CertificationHistoryEntry struct {
	Version string
	Auditor util.Uint160
	Rating *big.Int
	Time *big.Int
}

// CertificationRequest is a contract-specific certification.Request type used by its methods.
type CertificationRequest struct {
	Requester util.Uint160
	Description string
	Repository string
	RequestedAt *big.Int
	Status *big.Int
}

// CertificationStatistics is a contract-specific certification.Statistics type used by its methods.
type CertificationStatistics struct {
	TotalAuditors *big.Int
	TotalCertifications *big.Int
	TotalCertifiedContracts *big.Int
}

// CertificationVerificationInfo is a contract-specific certification.VerificationInfo type used by its methods.
type CertificationVerificationInfo struct {
	Certified bool
	Auditor util.Uint160
	AuditorName string
	AuditorCompany string
	Rating *big.Int
	IssuedAt *big.Int
	ValidUntil *big.Int
	ReputationScore *big.Int
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner util.Uint160
}

// AuditorAppliedEvent represents "AuditorApplied" event emitted by the contract.
type AuditorAppliedEvent struct {
	Candidate util.Uint160
}

// AuditorApprovedEvent represents "AuditorApproved" event emitted by the contract.
type AuditorApprovedEvent struct {
	Auditor util.Uint160
}

// AuditorStatusChangedEvent represents "AuditorStatusChanged" event emitted by the contract.
type AuditorStatusChangedEvent struct {
	Auditor util.Uint160
	Status *big.Int
}

// ReputationChangedEvent represents "ReputationChanged" event emitted by the contract.
type ReputationChangedEvent struct {
	Auditor util.Uint160
	Score *big.Int
}

// CertificationRequestedEvent represents "CertificationRequested" event emitted by the contract.
type CertificationRequestedEvent struct {
	Artifact util.Uint160
	Version string
	Requester util.Uint160
}

// RequestStatusChangedEvent represents "RequestStatusChanged" event emitted by the contract.
type RequestStatusChangedEvent struct {
	Artifact util.Uint160
	Version string
	Status *big.Int
}

// CertificationIssuedEvent represents "CertificationIssued" event emitted by the contract.
type CertificationIssuedEvent struct {
	Artifact util.Uint160
	Version string
	Auditor util.Uint160
	Rating *big.Int
}

// CertificationRevokedEvent represents "CertificationRevoked" event emitted by the contract.
type CertificationRevokedEvent struct {
	Artifact util.Uint160
	Version string
	RevokedBy util.Uint160
}

// CertificationVerifiedEvent represents "CertificationVerified" event emitted by the contract.
type CertificationVerifiedEvent struct {
	Artifact util.Uint160
	Version string
	Certified bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetApplication invokes `getApplication` method of contract. Nil is
// returned if there is no pending application.
func (c *ContractReader) GetApplication(account util.Uint160) (*CertificationAuditorApplication, error) {
	return itemToCertificationAuditorApplication(unwrap.Item(c.invoker.Call(c.hash, "getApplication", account)))
}

// GetAuditor invokes `getAuditor` method of contract. Nil is returned if the
// account is not an auditor.
func (c *ContractReader) GetAuditor(account util.Uint160) (*CertificationAuditor, error) {
	return itemToCertificationAuditor(unwrap.Item(c.invoker.Call(c.hash, "getAuditor", account)))
}

// GetCertification invokes `getCertification` method of contract. Nil is
// returned if there is no live certification.
func (c *ContractReader) GetCertification(artifact util.Uint160, version string) (*CertificationCertification, error) {
	return itemToCertificationCertification(unwrap.Item(c.invoker.Call(c.hash, "getCertification", artifact, version)))
}

// GetHistoryCount invokes `getHistoryCount` method of contract.
func (c *ContractReader) GetHistoryCount(artifact util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getHistoryCount", artifact))
}

// GetHistoryEntry invokes `getHistoryEntry` method of contract. Nil is
// returned for indices out of range.
func (c *ContractReader) GetHistoryEntry(artifact util.Uint160, index *big.Int) (*CertificationHistoryEntry, error) {
	return itemToCertificationHistoryEntry(unwrap.Item(c.invoker.Call(c.hash, "getHistoryEntry", artifact, index)))
}

// GetRequest invokes `getRequest` method of contract. Nil is returned if
// there is no request.
func (c *ContractReader) GetRequest(artifact util.Uint160, version string) (*CertificationRequest, error) {
	return itemToCertificationRequest(unwrap.Item(c.invoker.Call(c.hash, "getRequest", artifact, version)))
}

// GetStatistics invokes `getStatistics` method of contract.
func (c *ContractReader) GetStatistics() (*CertificationStatistics, error) {
	return itemToCertificationStatistics(unwrap.Item(c.invoker.Call(c.hash, "getStatistics")))
}

// GetVerificationInfo invokes `getVerificationInfo` method of contract.
func (c *ContractReader) GetVerificationInfo(artifact util.Uint160, version string) (*CertificationVerificationInfo, error) {
	return itemToCertificationVerificationInfo(unwrap.Item(c.invoker.Call(c.hash, "getVerificationInfo", artifact, version)))
}

// IsActiveAuditor invokes `isActiveAuditor` method of contract.
func (c *ContractReader) IsActiveAuditor(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isActiveAuditor", account))
}

// IsCertified invokes `isCertified` method of contract.
func (c *ContractReader) IsCertified(artifact util.Uint160, version string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isCertified", artifact, version))
}

// IterateAuditors invokes `iterateAuditors` method of contract.
func (c *ContractReader) IterateAuditors() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateAuditors"))
}

// IterateAuditorsExpanded is similar to IterateAuditors (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateAuditorsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateAuditors", _numOfIteratorItems))
}

// ListAuditors invokes `listAuditors` method of contract.
func (c *ContractReader) ListAuditors() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "listAuditors"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Apply creates a transaction invoking `apply` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Apply(candidate util.Uint160, name string, company string, website string, credentials string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "apply", candidate, name, company, website, credentials)
}

// ApplyTransaction creates a transaction invoking `apply` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApplyTransaction(candidate util.Uint160, name string, company string, website string, credentials string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "apply", candidate, name, company, website, credentials)
}

// ApplyUnsigned creates a transaction invoking `apply` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApplyUnsigned(candidate util.Uint160, name string, company string, website string, credentials string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "apply", nil, candidate, name, company, website, credentials)
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(candidate util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", candidate)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(candidate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", candidate)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(candidate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, candidate)
}

// IssueCertification creates a transaction invoking `issueCertification` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) IssueCertification(auditor util.Uint160, artifact util.Uint160, version string, rating *big.Int, report string, validUntil *big.Int, notes string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "issueCertification", auditor, artifact, version, rating, report, validUntil, notes)
}

// IssueCertificationTransaction creates a transaction invoking `issueCertification` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IssueCertificationTransaction(auditor util.Uint160, artifact util.Uint160, version string, rating *big.Int, report string, validUntil *big.Int, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "issueCertification", auditor, artifact, version, rating, report, validUntil, notes)
}

// IssueCertificationUnsigned creates a transaction invoking `issueCertification` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IssueCertificationUnsigned(auditor util.Uint160, artifact util.Uint160, version string, rating *big.Int, report string, validUntil *big.Int, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "issueCertification", nil, auditor, artifact, version, rating, report, validUntil, notes)
}

// RequestCertification creates a transaction invoking `requestCertification` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RequestCertification(requester util.Uint160, artifact util.Uint160, version string, description string, repository string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "requestCertification", requester, artifact, version, description, repository)
}

// RequestCertificationTransaction creates a transaction invoking `requestCertification` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RequestCertificationTransaction(requester util.Uint160, artifact util.Uint160, version string, description string, repository string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "requestCertification", requester, artifact, version, description, repository)
}

// RequestCertificationUnsigned creates a transaction invoking `requestCertification` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RequestCertificationUnsigned(requester util.Uint160, artifact util.Uint160, version string, description string, repository string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "requestCertification", nil, requester, artifact, version, description, repository)
}

// RevokeCertification creates a transaction invoking `revokeCertification` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeCertification(caller util.Uint160, artifact util.Uint160, version string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeCertification", caller, artifact, version)
}

// RevokeCertificationTransaction creates a transaction invoking `revokeCertification` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeCertificationTransaction(caller util.Uint160, artifact util.Uint160, version string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeCertification", caller, artifact, version)
}

// RevokeCertificationUnsigned creates a transaction invoking `revokeCertification` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeCertificationUnsigned(caller util.Uint160, artifact util.Uint160, version string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeCertification", nil, caller, artifact, version)
}

// SetAuditorStatus creates a transaction invoking `setAuditorStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAuditorStatus(auditor util.Uint160, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAuditorStatus", auditor, status)
}

// SetAuditorStatusTransaction creates a transaction invoking `setAuditorStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAuditorStatusTransaction(auditor util.Uint160, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAuditorStatus", auditor, status)
}

// SetAuditorStatusUnsigned creates a transaction invoking `setAuditorStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAuditorStatusUnsigned(auditor util.Uint160, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAuditorStatus", nil, auditor, status)
}

// SetReputation creates a transaction invoking `setReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReputation(auditor util.Uint160, score *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReputation", auditor, score)
}

// SetReputationTransaction creates a transaction invoking `setReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReputationTransaction(auditor util.Uint160, score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReputation", auditor, score)
}

// SetReputationUnsigned creates a transaction invoking `setReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReputationUnsigned(auditor util.Uint160, score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReputation", nil, auditor, score)
}

// SetRequestStatus creates a transaction invoking `setRequestStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRequestStatus(caller util.Uint160, artifact util.Uint160, version string, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRequestStatus", caller, artifact, version, status)
}

// SetRequestStatusTransaction creates a transaction invoking `setRequestStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRequestStatusTransaction(caller util.Uint160, artifact util.Uint160, version string, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRequestStatus", caller, artifact, version, status)
}

// SetRequestStatusUnsigned creates a transaction invoking `setRequestStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRequestStatusUnsigned(caller util.Uint160, artifact util.Uint160, version string, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRequestStatus", nil, caller, artifact, version, status)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// VerifyCertification creates a transaction invoking `verifyCertification` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) VerifyCertification(artifact util.Uint160, version string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "verifyCertification", artifact, version)
}

// VerifyCertificationTransaction creates a transaction invoking `verifyCertification` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VerifyCertificationTransaction(artifact util.Uint160, version string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "verifyCertification", artifact, version)
}

// VerifyCertificationUnsigned creates a transaction invoking `verifyCertification` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VerifyCertificationUnsigned(artifact util.Uint160, version string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "verifyCertification", nil, artifact, version)
}

// itemToCertificationAuditor converts stack item into *CertificationAuditor.
// Null item is converted to nil.
func itemToCertificationAuditor(item stackitem.Item, err error) (*CertificationAuditor, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(CertificationAuditor)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationAuditor from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CertificationAuditor) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Company, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Company: %w", err)
	}

	index++
	res.Website, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Website: %w", err)
	}

	index++
	res.ReputationScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReputationScore: %w", err)
	}

	index++
	res.CertificationCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CertificationCount: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.ApprovedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ApprovedAt: %w", err)
	}

	return nil
}

// itemToCertificationAuditorApplication converts stack item into *CertificationAuditorApplication.
// Null item is converted to nil.
func itemToCertificationAuditorApplication(item stackitem.Item, err error) (*CertificationAuditorApplication, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(CertificationAuditorApplication)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationAuditorApplication from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CertificationAuditorApplication) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Company, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Company: %w", err)
	}

	index++
	res.Website, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Website: %w", err)
	}

	index++
	res.Credentials, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Credentials: %w", err)
	}

	index++
	res.SubmittedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}

	return nil
}

// itemToCertificationCertification converts stack item into *CertificationCertification.
// Null item is converted to nil.
func itemToCertificationCertification(item stackitem.Item, err error) (*CertificationCertification, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(CertificationCertification)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationCertification from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CertificationCertification) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Auditor, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}

	index++
	res.Rating, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rating: %w", err)
	}

	index++
	res.Report, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Report: %w", err)
	}

	index++
	res.IssuedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IssuedAt: %w", err)
	}

	index++
	res.ValidUntil, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ValidUntil: %w", err)
	}

	index++
	res.Notes, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Notes: %w", err)
	}

	return nil
}

// itemToCertificationHistoryEntry converts stack item into *CertificationHistoryEntry.
// Null item is converted to nil.
func itemToCertificationHistoryEntry(item stackitem.Item, err error) (*CertificationHistoryEntry, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(CertificationHistoryEntry)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationHistoryEntry from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CertificationHistoryEntry) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Version, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}

	index++
	res.Auditor, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}

	index++
	res.Rating, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rating: %w", err)
	}

	index++
	res.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// itemToCertificationRequest converts stack item into *CertificationRequest.
// Null item is converted to nil.
func itemToCertificationRequest(item stackitem.Item, err error) (*CertificationRequest, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(CertificationRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CertificationRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Requester, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	index++
	res.Description, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Repository, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Repository: %w", err)
	}

	index++
	res.RequestedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequestedAt: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// itemToCertificationStatistics converts stack item into *CertificationStatistics.
func itemToCertificationStatistics(item stackitem.Item, err error) (*CertificationStatistics, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CertificationStatistics)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationStatistics from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CertificationStatistics) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.TotalAuditors, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalAuditors: %w", err)
	}

	index++
	res.TotalCertifications, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalCertifications: %w", err)
	}

	index++
	res.TotalCertifiedContracts, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalCertifiedContracts: %w", err)
	}

	return nil
}

// itemToCertificationVerificationInfo converts stack item into *CertificationVerificationInfo.
func itemToCertificationVerificationInfo(item stackitem.Item, err error) (*CertificationVerificationInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CertificationVerificationInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CertificationVerificationInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
// Auditor is left zero when the record has no auditor.
func (res *CertificationVerificationInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Certified, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Certified: %w", err)
	}

	index++
	res.Auditor, err = itemToOptionalUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}

	index++
	res.AuditorName, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field AuditorName: %w", err)
	}

	index++
	res.AuditorCompany, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field AuditorCompany: %w", err)
	}

	index++
	res.Rating, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rating: %w", err)
	}

	index++
	res.IssuedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IssuedAt: %w", err)
	}

	index++
	res.ValidUntil, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ValidUntil: %w", err)
	}

	index++
	res.ReputationScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReputationScore: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	var res []*OwnershipTransferredEvent
	err := eachEvent(log, "OwnershipTransferred", func(item *stackitem.Array) error {
		e := new(OwnershipTransferredEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}
	e.PreviousOwner, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}
	e.NewOwner, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}
	return nil
}

// AuditorAppliedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorApplied" name from the provided [result.ApplicationLog].
func AuditorAppliedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorAppliedEvent, error) {
	var res []*AuditorAppliedEvent
	err := eachEvent(log, "AuditorApplied", func(item *stackitem.Array) error {
		e := new(AuditorAppliedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorAppliedEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorAppliedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}
	e.Candidate, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Candidate: %w", err)
	}
	return nil
}

// AuditorApprovedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorApproved" name from the provided [result.ApplicationLog].
func AuditorApprovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorApprovedEvent, error) {
	var res []*AuditorApprovedEvent
	err := eachEvent(log, "AuditorApproved", func(item *stackitem.Array) error {
		e := new(AuditorApprovedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorApprovedEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorApprovedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}
	e.Auditor, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}
	return nil
}

// AuditorStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorStatusChanged" name from the provided [result.ApplicationLog].
func AuditorStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorStatusChangedEvent, error) {
	var res []*AuditorStatusChangedEvent
	err := eachEvent(log, "AuditorStatusChanged", func(item *stackitem.Array) error {
		e := new(AuditorStatusChangedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}
	e.Auditor, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}
	e.Status, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	return nil
}

// ReputationChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationChanged" name from the provided [result.ApplicationLog].
func ReputationChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationChangedEvent, error) {
	var res []*ReputationChangedEvent
	err := eachEvent(log, "ReputationChanged", func(item *stackitem.Array) error {
		e := new(ReputationChangedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}
	e.Auditor, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}
	e.Score, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}
	return nil
}

// CertificationRequestedEventsFromApplicationLog retrieves a set of all emitted events
// with "CertificationRequested" name from the provided [result.ApplicationLog].
func CertificationRequestedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CertificationRequestedEvent, error) {
	var res []*CertificationRequestedEvent
	err := eachEvent(log, "CertificationRequested", func(item *stackitem.Array) error {
		e := new(CertificationRequestedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CertificationRequestedEvent or
// returns an error if it's not possible to do to so.
func (e *CertificationRequestedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}
	e.Artifact, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Artifact: %w", err)
	}
	e.Version, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}
	e.Requester, err = itemToUint160(arr[2])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}
	return nil
}

// RequestStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestStatusChanged" name from the provided [result.ApplicationLog].
func RequestStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestStatusChangedEvent, error) {
	var res []*RequestStatusChangedEvent
	err := eachEvent(log, "RequestStatusChanged", func(item *stackitem.Array) error {
		e := new(RequestStatusChangedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RequestStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}
	e.Artifact, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Artifact: %w", err)
	}
	e.Version, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}
	e.Status, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	return nil
}

// CertificationIssuedEventsFromApplicationLog retrieves a set of all emitted events
// with "CertificationIssued" name from the provided [result.ApplicationLog].
func CertificationIssuedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CertificationIssuedEvent, error) {
	var res []*CertificationIssuedEvent
	err := eachEvent(log, "CertificationIssued", func(item *stackitem.Array) error {
		e := new(CertificationIssuedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CertificationIssuedEvent or
// returns an error if it's not possible to do to so.
func (e *CertificationIssuedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}
	e.Artifact, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Artifact: %w", err)
	}
	e.Version, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}
	e.Auditor, err = itemToUint160(arr[2])
	if err != nil {
		return fmt.Errorf("field Auditor: %w", err)
	}
	e.Rating, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rating: %w", err)
	}
	return nil
}

// CertificationRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "CertificationRevoked" name from the provided [result.ApplicationLog].
func CertificationRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CertificationRevokedEvent, error) {
	var res []*CertificationRevokedEvent
	err := eachEvent(log, "CertificationRevoked", func(item *stackitem.Array) error {
		e := new(CertificationRevokedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CertificationRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *CertificationRevokedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}
	e.Artifact, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Artifact: %w", err)
	}
	e.Version, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}
	e.RevokedBy, err = itemToUint160(arr[2])
	if err != nil {
		return fmt.Errorf("field RevokedBy: %w", err)
	}
	return nil
}

// CertificationVerifiedEventsFromApplicationLog retrieves a set of all emitted events
// with "CertificationVerified" name from the provided [result.ApplicationLog].
func CertificationVerifiedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CertificationVerifiedEvent, error) {
	var res []*CertificationVerifiedEvent
	err := eachEvent(log, "CertificationVerified", func(item *stackitem.Array) error {
		e := new(CertificationVerifiedEvent)
		res = append(res, e)
		return e.FromStackItem(item)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CertificationVerifiedEvent or
// returns an error if it's not possible to do to so.
func (e *CertificationVerifiedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}
	e.Artifact, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Artifact: %w", err)
	}
	e.Version, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}
	e.Certified, err = arr[2].TryBool()
	if err != nil {
		return fmt.Errorf("field Certified: %w", err)
	}
	return nil
}

func eachEvent(log *result.ApplicationLog, name string, f func(*stackitem.Array) error) error {
	if log == nil {
		return errors.New("nil application log")
	}

	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			err := f(e.Item)
			if err != nil {
				return fmt.Errorf("failed to deserialize %sEvent from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
		}
	}

	return nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

func isNull(item stackitem.Item) bool {
	_, ok := item.(stackitem.Null)
	return ok
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func itemToOptionalUint160(item stackitem.Item) (util.Uint160, error) {
	if isNull(item) {
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	if len(b) == 0 {
		return util.Uint160{}, nil
	}
	return util.Uint160DecodeBytesBE(b)
}
