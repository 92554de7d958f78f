package certification

import (
	"errors"
	"strings"

	"github.com/nspcc-dev/certification-contract/contracts/certification/certconst"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
)

// Errors returned by the contract. Use errors.Is to match them against
// errors returned by ErrorFromException and ErrorFromExecution.
var (
	ErrNotAuthorized     = errors.New(certconst.ErrNotAuthorized)
	ErrAlreadyRegistered = errors.New(certconst.ErrAlreadyRegistered)
	ErrNotRegistered     = errors.New(certconst.ErrNotRegistered)
	ErrInvalidRating     = errors.New(certconst.ErrInvalidRating)
	ErrAlreadyCertified  = errors.New(certconst.ErrAlreadyCertified)
	ErrNotCertified      = errors.New(certconst.ErrNotCertified)
	ErrInvalidStatus     = errors.New(certconst.ErrInvalidStatus)
	ErrInvalidParameters = errors.New(certconst.ErrInvalidParameters)
	ErrContractNotFound  = errors.New(certconst.ErrContractNotFound)
)

var contractErrors = []error{
	ErrNotAuthorized,
	ErrAlreadyRegistered,
	ErrNotRegistered,
	ErrInvalidRating,
	ErrAlreadyCertified,
	ErrNotCertified,
	ErrInvalidStatus,
	ErrInvalidParameters,
	ErrContractNotFound,
}

type exceptionError struct {
	kind      error
	exception string
	cause     error
}

func (e *exceptionError) Error() string { return e.exception }

func (e *exceptionError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func kindOf(msg string) error {
	for _, e := range contractErrors {
		if strings.Contains(msg, e.Error()) {
			return e
		}
	}
	return nil
}

// ErrorFromException translates FAULT exception message into one of the
// contract errors. The original message is kept as the error text. Nil is
// returned for an empty message, unknown messages are returned as is.
func ErrorFromException(exception string) error {
	if exception == "" {
		return nil
	}
	if kind := kindOf(exception); kind != nil {
		return &exceptionError{kind: kind, exception: exception}
	}
	return errors.New(exception)
}

// ErrorFromExecution returns an error for a FAULTed execution result and nil
// for a successful one.
func ErrorFromExecution(res *state.Execution) error {
	if res == nil || res.VMState == vmstate.Halt {
		return nil
	}
	if res.FaultException == "" {
		return errors.New("execution failed with " + res.VMState.String() + " state")
	}
	return ErrorFromException(res.FaultException)
}

// WrapError converts errors of test invocations carrying the contract FAULT
// exception (e.g. "invocation failed: ...: not authorized") to contract
// errors. The original error stays in the chain. Other errors are returned
// unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	for _, e := range contractErrors {
		if errors.Is(err, e) {
			return err
		}
	}
	if kind := kindOf(err.Error()); kind != nil {
		return &exceptionError{kind: kind, exception: err.Error(), cause: err}
	}
	return err
}
