package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnsupportedChain error = errors.New("unsupported chain id")
	ErrDeployment       error = errors.New("invalid deployment descriptor")
)

var chainNetworks = map[int64]string{
	80002: "amoy",
	80001: "mumbai",
	5:     "goerli",
	137:   "polygon",
	31337: "localhost",
}

type Contracts struct {
	Vault       string `json:"Vault"`
	StableToken string `json:"StableToken"`
	NFTPass     string `json:"NFTPass"`
	MockSwap    string `json:"MockSwap"`
}

type DeployedToken struct {
	Address  string `json:"address"`
	Decimals int32  `json:"decimals"`
}

// Deployment is the contract set published for one chain.
type Deployment struct {
	Network   string                   `json:"-"`
	ChainID   int64                    `json:"chainId"`
	Contracts Contracts                `json:"contracts"`
	Tokens    map[string]DeployedToken `json:"tokens"`
}

// LoadDeployment reads <dir>/<network>.json where network is picked by chainID.
func LoadDeployment(dir string, chainID int64) (Deployment, error) {
	network, ok := chainNetworks[chainID]
	if !ok {
		return Deployment{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}

	path := filepath.Join(dir, network+".json")
	content, err := os.ReadFile(path)
	if err != nil {
		return Deployment{}, fmt.Errorf("read deployment file %s: %w", path, err)
	}

	var deployment Deployment
	if err := json.Unmarshal(content, &deployment); err != nil {
		return Deployment{}, fmt.Errorf("%w: %s: %w", ErrDeployment, path, err)
	}

	if deployment.ChainID != 0 && deployment.ChainID != chainID {
		return Deployment{}, fmt.Errorf("%w: %s declares chain %d, expected %d", ErrDeployment, path, deployment.ChainID, chainID)
	}

	deployment.Network = network
	deployment.ChainID = chainID
	return deployment, nil
}

// VaultAddress reports the vault contract, if the descriptor deploys one.
func (d Deployment) VaultAddress() (common.Address, bool) {
	return contractAddress(d.Contracts.Vault)
}

// SwapAddress reports the swap contract, if the descriptor deploys one.
func (d Deployment) SwapAddress() (common.Address, bool) {
	return contractAddress(d.Contracts.MockSwap)
}

func contractAddress(value string) (common.Address, bool) {
	if !common.IsHexAddress(value) {
		return common.Address{}, false
	}
	address := common.HexToAddress(value)
	if address == (common.Address{}) {
		return common.Address{}, false
	}
	return address, true
}
