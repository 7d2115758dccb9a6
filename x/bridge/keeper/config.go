package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// GetConfig returns the singleton bridge config
func (k Keeper) GetConfig(ctx sdk.Context) (types.BridgeConfig, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ConfigKey)
	if bz == nil {
		return types.BridgeConfig{}, types.ErrConfigNotFound
	}

	var cfg types.BridgeConfig
	if err := k.cdc.Unmarshal(bz, &cfg); err != nil {
		return types.BridgeConfig{}, fmt.Errorf("unmarshal bridge config: %w", err)
	}
	return cfg, nil
}

// HasConfig reports whether the bridge config has been initialized
func (k Keeper) HasConfig(ctx sdk.Context) bool {
	return k.getStore(ctx).Has(types.ConfigKey)
}

// SetConfig persists the bridge config
func (k Keeper) SetConfig(ctx sdk.Context, cfg types.BridgeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	bz, err := k.cdc.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal bridge config: %w", err)
	}
	k.getStore(ctx).Set(types.ConfigKey, bz)
	return nil
}

// InitConfig creates the singleton config. The signer becomes the
// owner: the trusted relayer and the slash collector. Fails if a config
// already exists so ownership cannot be hijacked by re-initialization.
func (k Keeper) InitConfig(ctx sdk.Context, cfg types.BridgeConfig) error {
	if k.HasConfig(ctx) {
		return types.ErrConfigExists
	}
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigUpdated,
			sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
		),
	)

	k.Logger(ctx).Info("bridge config initialized",
		"owner", cfg.Owner,
		"fee_bps", cfg.FeeBps,
		"claim_window_secs", cfg.ClaimWindowSecs,
	)
	return nil
}

// UpdateConfig applies an owner-signed partial update. Nil fields keep
// their current value; the merged config is validated as a whole before
// it replaces the stored one. Owner and bond denom are immutable.
func (k Keeper) UpdateConfig(ctx sdk.Context, authority string, update types.MsgUpdateConfig) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if authority != cfg.Owner {
		return types.ErrOnlyOwner.Wrapf("got %s, want %s", authority, cfg.Owner)
	}

	if update.FeeBps != nil {
		cfg.FeeBps = *update.FeeBps
	}
	if update.MinFee != nil {
		cfg.MinFee = *update.MinFee
	}
	if update.MaxFee != nil {
		cfg.MaxFee = *update.MaxFee
	}
	if update.ClaimWindowSecs != nil {
		cfg.ClaimWindowSecs = *update.ClaimWindowSecs
	}
	if update.MinSolverBond != nil {
		cfg.MinSolverBond = *update.MinSolverBond
	}
	if update.SlashBps != nil {
		cfg.SlashBps = *update.SlashBps
	}

	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigUpdated,
			sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
		),
	)
	return nil
}
