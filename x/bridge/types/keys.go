package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "bridge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for bridge
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_bridge"
)

// Store key prefixes. Requests are keyed by (payer, request_id) so a
// payer can never collide with another payer's ids; jobs are keyed by
// the caller-chosen job id alone.
var (
	ConfigKey         = []byte{0x01}
	RequestKeyPrefix  = []byte{0x02}
	JobKeyPrefix      = []byte{0x03}
	LockedValuePrefix = []byte{0x04}
)

// RequestKey builds the composite store key for a bridge request.
func RequestKey(payer sdk.AccAddress, requestID uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, requestID)

	key := make([]byte, 0, len(RequestKeyPrefix)+1+len(payer)+8)
	key = append(key, RequestKeyPrefix...)
	key = append(key, byte(len(payer)))
	key = append(key, payer.Bytes()...)
	return append(key, idBz...)
}

// RequestPayerPrefix returns the iteration prefix covering every
// request created by the given payer.
func RequestPayerPrefix(payer sdk.AccAddress) []byte {
	key := make([]byte, 0, len(RequestKeyPrefix)+1+len(payer))
	key = append(key, RequestKeyPrefix...)
	key = append(key, byte(len(payer)))
	return append(key, payer.Bytes()...)
}

// JobKey builds the store key for a computation job.
func JobKey(jobID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, jobID)
	return append(JobKeyPrefix, bz...)
}

// LockedValueKey builds the per-denom locked value accumulator key.
func LockedValueKey(denom string) []byte {
	return append(LockedValuePrefix, []byte(denom)...)
}
