package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilbridge/veil/x/bridge/types"
)

func TestDefaultGenesisIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisValidate(t *testing.T) {
	cfg := validConfig()
	gs := types.GenesisState{
		Config:   &cfg,
		Requests: []types.BridgeRequest{validRequest()},
	}
	require.NoError(t, gs.Validate())

	// Duplicate (payer, request_id) pairs are rejected.
	gs.Requests = append(gs.Requests, validRequest())
	require.Error(t, gs.Validate())

	// A claimed request without a config cannot have been produced by
	// the module.
	claimed := validRequest()
	claimed.Claimed = true
	claimed.Solver = testAddr("solver")
	claimed.ClaimDeadline = claimed.CreatedAt + 3600
	claimed.BondAmount = 1_000
	gs = types.GenesisState{Requests: []types.BridgeRequest{claimed}}
	require.Error(t, gs.Validate())

	badCfg := validConfig()
	badCfg.FeeBps = types.MaxBps + 1
	gs = types.GenesisState{Config: &badCfg}
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidConfig)

	// Duplicate job ids are rejected.
	job := types.ComputationJob{
		JobId:        3,
		Kind:         types.JobKindReseal,
		Requester:    testAddr("solver"),
		ClientPubkey: make([]byte, types.ClientPubkeyLen),
		Nonce:        make([]byte, types.NonceLen),
		Status:       types.JobStatusPending,
	}
	gs = types.GenesisState{Jobs: []types.ComputationJob{job, job}}
	require.Error(t, gs.Validate())
}
