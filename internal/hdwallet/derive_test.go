package hdwallet_test

import (
	"strings"

	"custodian/internal/hdwallet"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tyler-smith/go-bip39"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var _ = Describe("Derivation", func() {
	Describe("NewMnemonic", func() {
		It("should return a valid 12 word mnemonic", func() {
			mnemonic, err := hdwallet.NewMnemonic()
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Fields(mnemonic)).To(HaveLen(12))
			Expect(bip39.IsMnemonicValid(mnemonic)).To(BeTrue())
		})

		It("should not repeat itself", func() {
			first, err := hdwallet.NewMnemonic()
			Expect(err).NotTo(HaveOccurred())
			second, err := hdwallet.NewMnemonic()
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})
	})

	Describe("DeriveAccount", func() {
		It("should follow the BIP-44 ethereum path", func() {
			account, err := hdwallet.DeriveAccount(testMnemonic, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Address.Hex()).To(Equal("0x9858EfFD232B4033E47d90003D41EC34EcaEda94"))
			Expect(account.Path).To(Equal("m/44'/60'/0'/0/0"))

			account, err = hdwallet.DeriveAccount(testMnemonic, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Address.Hex()).To(Equal("0x6Fac4D18c912343BF86fa7049364Dd4E424Ab9C0"))
		})

		It("should return a key that controls the address", func() {
			account, err := hdwallet.DeriveAccount(testMnemonic, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(crypto.PubkeyToAddress(account.PrivateKey.PublicKey)).To(Equal(account.Address))
		})

		It("should be deterministic", func() {
			first, err := hdwallet.DeriveAccount(testMnemonic, 3)
			Expect(err).NotTo(HaveOccurred())
			second, err := hdwallet.DeriveAccount(testMnemonic, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Address).To(Equal(first.Address))
			Expect(crypto.FromECDSA(second.PrivateKey)).To(Equal(crypto.FromECDSA(first.PrivateKey)))
		})

		It("should reject an invalid mnemonic", func() {
			_, err := hdwallet.DeriveAccount("abandon abandon abandon", 0)
			Expect(err).To(MatchError(hdwallet.ErrInvalidMnemonic))
		})

		It("should reject hardened indices", func() {
			_, err := hdwallet.DeriveAccount(testMnemonic, 1<<31)
			Expect(err).To(MatchError(hdwallet.ErrIndexOutOfRange))
		})
	})
})
