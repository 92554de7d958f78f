package certconst

import "github.com/nspcc-dev/certification-contract/common"

// Errors thrown by the Certification contract. The set is closed: every
// failed invocation of the contract ends with exactly one of these messages.
const (
	// ErrNotAuthorized is thrown when the invocation lacks the witness of the
	// account the operation requires (owner, issuing auditor, active auditor).
	ErrNotAuthorized = common.ErrWitnessFailed
	// ErrAlreadyRegistered is thrown on a second application, approval or
	// certification request for the same subject.
	ErrAlreadyRegistered = "already registered"
	// ErrNotRegistered is thrown when an auditor or a pending application is
	// missing.
	ErrNotRegistered = "not registered"
	// ErrInvalidRating is thrown for a security rating outside
	// [MinRating, MaxRating].
	ErrInvalidRating = "invalid rating"
	// ErrAlreadyCertified is thrown on issuance for an artifact version with a
	// live certification.
	ErrAlreadyCertified = "already certified"
	// ErrNotCertified is thrown on revocation of an artifact version without a
	// live certification.
	ErrNotCertified = "not certified"
	// ErrInvalidStatus is thrown for auditor or request statuses outside their
	// enumerations.
	ErrInvalidStatus = "invalid status"
	// ErrInvalidParameters is thrown for malformed identities, strings out of
	// length bounds and other invalid arguments.
	ErrInvalidParameters = common.ErrInvalidAccount
	// ErrContractNotFound is thrown when a certification request for the
	// artifact version does not exist.
	ErrContractNotFound = "contract not found"
)

// Field length limits in bytes.
const (
	MaxNameLength        = 64
	MaxCompanyLength     = 64
	MaxWebsiteLength     = 128
	MaxCredentialsLength = 256
	MaxVersionLength     = 32
	MaxDescriptionLength = 256
	MaxReferenceLength   = 128
	MaxNotesLength       = 256
)

// Rating and reputation bounds.
const (
	MinRating = 1
	MaxRating = 10

	// InitialReputation is assigned to every newly approved auditor.
	InitialReputation = 5
	MaxReputation     = 10
)
