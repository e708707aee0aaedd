package config

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

const (
	NetworkPolygonAmoy = "POLYGON_AMOY"
	NetworkPolygon     = "POLYGON"
)

var networkChainIDs = map[string]int64{
	NetworkPolygonAmoy: 80002,
}

// Token is an ERC-20 contract the custody core knows how to account for.
type Token struct {
	Asset    string
	Address  common.Address
	Decimals int32
}

// TokenRegistry maps network -> asset -> token. Tokens without a contract
// address are treated as unsupported.
type TokenRegistry struct {
	mu       sync.RWMutex
	networks map[string]map[string]Token
}

func NewTokenRegistry(daiAddress string) *TokenRegistry {
	amoy := map[string]Token{
		"USDT": {Asset: "USDT", Address: common.HexToAddress("0x83e4D17029a1a81D5f4bBD1D3ef1c1c91f35022f"), Decimals: 6},
		"USDC": {Asset: "USDC", Address: common.HexToAddress("0x23c6cDA5C992acDdc99cB8DF1164D42D20E77838"), Decimals: 6},
	}
	if common.IsHexAddress(strings.TrimSpace(daiAddress)) {
		amoy["DAI"] = Token{Asset: "DAI", Address: common.HexToAddress(strings.TrimSpace(daiAddress)), Decimals: 18}
	}

	return &TokenRegistry{
		networks: map[string]map[string]Token{
			NetworkPolygonAmoy: amoy,
		},
	}
}

// Override replaces or adds tokens for a network from a deployment descriptor.
// Entries with an invalid address are ignored.
func (r *TokenRegistry) Override(network string, tokens map[string]DeployedToken) {
	network = NormalizeNetwork(network)

	r.mu.Lock()
	defer r.mu.Unlock()

	assets, ok := r.networks[network]
	if !ok {
		assets = map[string]Token{}
		r.networks[network] = assets
	}
	for asset, token := range tokens {
		if !common.IsHexAddress(token.Address) {
			continue
		}
		asset = strings.ToUpper(strings.TrimSpace(asset))
		assets[asset] = Token{Asset: asset, Address: common.HexToAddress(token.Address), Decimals: token.Decimals}
	}
}

func (r *TokenRegistry) Lookup(network, asset string) (Token, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.networks[NormalizeNetwork(network)][strings.ToUpper(strings.TrimSpace(asset))]
	return token, ok
}

func (r *TokenRegistry) ByAddress(network string, address common.Address) (Token, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, token := range r.networks[NormalizeNetwork(network)] {
		if token.Address == address {
			return token, true
		}
	}
	return Token{}, false
}

// NormalizeNetwork uppercases the name and resolves the POLYGON alias.
func NormalizeNetwork(network string) string {
	network = strings.ToUpper(strings.TrimSpace(network))
	if network == NetworkPolygon {
		return NetworkPolygonAmoy
	}
	return network
}

func NetworkChainID(network string) (int64, bool) {
	id, ok := networkChainIDs[NormalizeNetwork(network)]
	return id, ok
}
