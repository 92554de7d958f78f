package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrWitnessFailed is thrown by CheckWitness.
	ErrWitnessFailed = "not authorized"

	// ErrInvalidAccount is thrown by CheckAccount.
	ErrInvalidAccount = "invalid parameters"
)

// CheckWitness checks witness of the passed account.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(account interop.Hash160) {
	if !runtime.CheckWitness(account) {
		panic(ErrWitnessFailed)
	}
}

// IsValidAccount checks that the account is a well-formed script hash.
func IsValidAccount(account interop.Hash160) bool {
	return len(account) == interop.Hash160Len
}

// CheckAccount panics with ErrInvalidAccount if the account is not a
// well-formed script hash.
func CheckAccount(account interop.Hash160) {
	if !IsValidAccount(account) {
		panic(ErrInvalidAccount)
	}
}
