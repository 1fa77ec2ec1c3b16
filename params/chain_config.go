package params

import "fmt"

// ChainConfig binds EIP-155 signatures to a network.
type ChainConfig struct {
	ChainID uint64 `json:"chainId" toml:"chain_id"`

	// EnforceChainID rejects EIP-155 signatures (v >= 35) whose embedded chain
	// id differs from ChainID. Raw and legacy v values carry no chain id and
	// are always accepted.
	EnforceChainID bool `json:"enforceChainId" toml:"enforce_chain_id"`
}

func MainnetChainConfig() *ChainConfig {
	return &ChainConfig{
		ChainID:        1,
		EnforceChainID: false,
	}
}

// CheckChainID validates a chain id decoded from v against the config.
func (c *ChainConfig) CheckChainID(id uint64) error {
	if !c.EnforceChainID || id == c.ChainID {
		return nil
	}
	return fmt.Errorf("%w: signature is bound to chain %d, expected %d", ErrChainIDMismatch, id, c.ChainID)
}
