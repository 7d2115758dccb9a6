package types

import (
	"cosmossdk.io/errors"
)

// Bridge module sentinel errors
var (
	ErrAbortedComputation      = errors.Register(ModuleName, 2, "the computation was aborted")
	ErrInvalidDenom            = errors.Register(ModuleName, 3, "invalid asset denomination")
	ErrInvalidOwner            = errors.Register(ModuleName, 4, "invalid account owner")
	ErrOnlyOwner               = errors.Register(ModuleName, 5, "only owner can perform this operation")
	ErrRequestAlreadyFinalized = errors.Register(ModuleName, 6, "request already finalized")
	ErrActiveClaim             = errors.Register(ModuleName, 7, "active claim exists and is not expired yet")
	ErrBondTooLow              = errors.Register(ModuleName, 8, "bond is too low")
	ErrNoClaim                 = errors.Register(ModuleName, 9, "no claim exists")
	ErrClaimExpired            = errors.Register(ModuleName, 10, "claim has expired")
	ErrMathOverflow            = errors.Register(ModuleName, 11, "math overflow")
	ErrAlreadyFinalized        = errors.Register(ModuleName, 12, "already finalized")
	ErrDuplicateRequest        = errors.Register(ModuleName, 13, "request already exists")
	ErrRequestNotFound         = errors.Register(ModuleName, 14, "request not found")
	ErrZeroAmount              = errors.Register(ModuleName, 15, "amount cannot be zero")
	ErrConfigExists            = errors.Register(ModuleName, 16, "bridge config already initialized")
	ErrConfigNotFound          = errors.Register(ModuleName, 17, "bridge config not initialized")
	ErrJobIdInUse              = errors.Register(ModuleName, 18, "computation job id already in use")
	ErrJobNotFound             = errors.Register(ModuleName, 19, "computation job not found")
	ErrJobResolved             = errors.Register(ModuleName, 20, "computation job already resolved")
	ErrJobNotResolvable        = errors.Register(ModuleName, 21, "computation job has no callback")
	ErrInvalidAddress          = errors.Register(ModuleName, 22, "invalid address")
	ErrClaimLapsed             = errors.Register(ModuleName, 23, "lapsed claim must be released before a new claim")
	ErrInvalidConfig           = errors.Register(ModuleName, 24, "invalid bridge config")
)
