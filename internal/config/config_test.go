package config_test

import (
	"os"
	"path/filepath"
	"time"

	"custodian/internal/config"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func setEnv(values map[string]string) {
	for key, value := range values {
		previous, existed := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if existed {
				os.Setenv(key, previous)
				return
			}
			os.Unsetenv(key)
		})
	}
}

var _ = Describe("NewAppConfig", func() {
	var (
		app config.App
		err error
		env map[string]string
	)

	BeforeEach(func() {
		env = map[string]string{
			"API_PORT":          "8080",
			"DB_CONNECTION_URL": "postgres://localhost/custody",
			"JWT_SECRET":        "jwt-secret",
			"RPC_URL":           "http://localhost:8545",
			"CHAIN_ID":          "80002",
		}
	})

	JustBeforeEach(func() {
		setEnv(env)
		app, err = config.NewAppConfig()
	})

	When("only the required variables are set", func() {
		It("should fill in the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.ChainID).To(Equal(int64(80002)))
			Expect(app.DeploymentsPath).To(Equal("deployments"))
			Expect(app.Confirmations).To(Equal(uint64(6)))
			Expect(app.PollInterval).To(Equal(12 * time.Second))
			Expect(app.MaxRange).To(Equal(uint64(2000)))
			Expect(app.RPCTimeout).To(Equal(10 * time.Second))
			Expect(app.ScryptN).To(Equal(16384))
			Expect(app.DecryptMaxAttempts).To(Equal(5))
			Expect(app.DecryptWindow).To(Equal(15 * time.Minute))
			Expect(app.AuditQueueSize).To(Equal(1024))
		})
	})

	When("overrides are provided", func() {
		BeforeEach(func() {
			env["CONFIRMATIONS"] = "12"
			env["WATCHER_POLL_MS"] = "500"
			env["REDIS_URL"] = "redis://localhost:6379/0"
			env["AMOY_MOCK_DAI"] = "0x00000000000000000000000000000000000000dd"
			env["SCRYPT_N"] = "1024"
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Confirmations).To(Equal(uint64(12)))
			Expect(app.PollInterval).To(Equal(500 * time.Millisecond))
			Expect(app.RedisURL).To(Equal("redis://localhost:6379/0"))
			Expect(app.DAIAddress).To(Equal("0x00000000000000000000000000000000000000dd"))
			Expect(app.ScryptN).To(Equal(1024))
		})
	})

	DescribeTable("rejecting an unusable scrypt work factor",
		func(value string) {
			setEnv(map[string]string{"SCRYPT_N": value})
			_, err := config.NewAppConfig()
			Expect(err).To(MatchError(ContainSubstring("environment variable is invalid: SCRYPT_N")))
		},
		Entry("zero", "0"),
		Entry("one", "1"),
		Entry("not a power of two", "1000"),
	)

	When("a required variable is empty", func() {
		BeforeEach(func() {
			env["JWT_SECRET"] = ""
		})

		It("should name the missing variable", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found: JWT_SECRET")))
		})
	})

	When("a numeric variable cannot be parsed", func() {
		BeforeEach(func() {
			env["CONFIRMATIONS"] = "six"
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable is invalid: CONFIRMATIONS")))
		})
	})

	When("the chain id is not a number", func() {
		BeforeEach(func() {
			env["CHAIN_ID"] = "amoy"
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("CHAIN_ID")))
		})
	})
})

var _ = Describe("LoadDeployment", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)).To(Succeed())
	}

	It("should pick the file by chain id", func() {
		write("amoy.json", `{
			"chainId": 80002,
			"contracts": {"Vault": "0x00000000000000000000000000000000000000aa", "MockSwap": "0x00000000000000000000000000000000000000bb"},
			"tokens": {"DAI": {"address": "0x00000000000000000000000000000000000000cc", "decimals": 18}}
		}`)

		deployment, err := config.LoadDeployment(dir, 80002)
		Expect(err).NotTo(HaveOccurred())
		Expect(deployment.Network).To(Equal("amoy"))
		Expect(deployment.Contracts.Vault).To(Equal("0x00000000000000000000000000000000000000aa"))
		Expect(deployment.Tokens).To(HaveKeyWithValue("DAI", config.DeployedToken{Address: "0x00000000000000000000000000000000000000cc", Decimals: 18}))

		vault, ok := deployment.VaultAddress()
		Expect(ok).To(BeTrue())
		Expect(vault).To(Equal(common.HexToAddress("0xaa")))
		swap, ok := deployment.SwapAddress()
		Expect(ok).To(BeTrue())
		Expect(swap).To(Equal(common.HexToAddress("0xbb")))
	})

	It("should report contracts the descriptor does not deploy", func() {
		write("amoy.json", `{"chainId": 80002, "contracts": {"Vault": "", "MockSwap": "0x0000000000000000000000000000000000000000"}}`)

		deployment, err := config.LoadDeployment(dir, 80002)
		Expect(err).NotTo(HaveOccurred())
		_, ok := deployment.VaultAddress()
		Expect(ok).To(BeFalse())
		_, ok = deployment.SwapAddress()
		Expect(ok).To(BeFalse())
	})

	It("should reject unsupported chains", func() {
		_, err := config.LoadDeployment(dir, 1)
		Expect(err).To(MatchError(config.ErrUnsupportedChain))
	})

	It("should fail when the file is missing", func() {
		_, err := config.LoadDeployment(dir, 31337)
		Expect(err).To(MatchError(ContainSubstring("localhost.json")))
	})

	It("should fail on invalid json", func() {
		write("polygon.json", `{"chainId":`)
		_, err := config.LoadDeployment(dir, 137)
		Expect(err).To(MatchError(config.ErrDeployment))
	})

	It("should fail when the file declares another chain", func() {
		write("goerli.json", `{"chainId": 80002}`)
		_, err := config.LoadDeployment(dir, 5)
		Expect(err).To(MatchError(config.ErrDeployment))
	})
})

var _ = Describe("TokenRegistry", func() {
	var registry *config.TokenRegistry

	BeforeEach(func() {
		registry = config.NewTokenRegistry("")
	})

	It("should resolve the default stablecoins on amoy", func() {
		token, ok := registry.Lookup("polygon_amoy", "usdt")
		Expect(ok).To(BeTrue())
		Expect(token.Decimals).To(Equal(int32(6)))
		Expect(token.Address).To(Equal(common.HexToAddress("0x83e4D17029a1a81D5f4bBD1D3ef1c1c91f35022f")))
	})

	It("should treat POLYGON as an alias", func() {
		token, ok := registry.Lookup("POLYGON", "USDC")
		Expect(ok).To(BeTrue())
		Expect(token.Asset).To(Equal("USDC"))
	})

	It("should not know DAI without an address", func() {
		_, ok := registry.Lookup(config.NetworkPolygonAmoy, "DAI")
		Expect(ok).To(BeFalse())

		registry = config.NewTokenRegistry("0x00000000000000000000000000000000000000dd")
		token, ok := registry.Lookup(config.NetworkPolygonAmoy, "DAI")
		Expect(ok).To(BeTrue())
		Expect(token.Decimals).To(Equal(int32(18)))
	})

	It("should resolve tokens by contract address", func() {
		token, ok := registry.ByAddress(config.NetworkPolygonAmoy, common.HexToAddress("0x23c6cda5c992acddc99cb8df1164d42d20e77838"))
		Expect(ok).To(BeTrue())
		Expect(token.Asset).To(Equal("USDC"))

		_, ok = registry.ByAddress(config.NetworkPolygonAmoy, common.HexToAddress("0x01"))
		Expect(ok).To(BeFalse())
	})

	It("should let a deployment override the defaults", func() {
		registry.Override("POLYGON", map[string]config.DeployedToken{
			"usdt": {Address: "0x00000000000000000000000000000000000000ee", Decimals: 6},
			"BAD":  {Address: "not-an-address", Decimals: 6},
		})

		token, ok := registry.Lookup(config.NetworkPolygonAmoy, "USDT")
		Expect(ok).To(BeTrue())
		Expect(token.Address).To(Equal(common.HexToAddress("0x00000000000000000000000000000000000000ee")))
		_, ok = registry.Lookup(config.NetworkPolygonAmoy, "BAD")
		Expect(ok).To(BeFalse())
	})

	It("should map networks to chain ids", func() {
		id, ok := config.NetworkChainID("polygon")
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(int64(80002)))
	})
})
