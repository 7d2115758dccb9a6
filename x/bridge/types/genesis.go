package types

import (
	"fmt"
)

// GenesisState is the bridge module's genesis state. Config may be nil
// on a fresh chain; the owner initializes it with MsgInitConfig.
type GenesisState struct {
	Config   *BridgeConfig    `json:"config,omitempty"`
	Requests []BridgeRequest  `json:"requests"`
	Jobs     []ComputationJob `json:"jobs"`
}

// DefaultGenesis returns the default genesis state: no config, no
// outstanding requests or jobs.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Requests: []BridgeRequest{},
		Jobs:     []ComputationJob{},
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	}

	seenReqs := make(map[string]bool, len(gs.Requests))
	for _, req := range gs.Requests {
		if err := req.Validate(); err != nil {
			return err
		}
		key := fmt.Sprintf("%s/%d", req.Payer, req.RequestId)
		if seenReqs[key] {
			return fmt.Errorf("duplicate request %s", key)
		}
		seenReqs[key] = true
		if req.Claimed && gs.Config == nil {
			return fmt.Errorf("request %s carries a claim but no config is set", key)
		}
	}

	seenJobs := make(map[uint64]bool, len(gs.Jobs))
	for _, job := range gs.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if seenJobs[job.JobId] {
			return fmt.Errorf("duplicate job %d", job.JobId)
		}
		seenJobs[job.JobId] = true
	}

	return nil
}
