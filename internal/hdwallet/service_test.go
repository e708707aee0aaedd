package hdwallet_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"custodian/internal/audit"
	"custodian/internal/envelope"
	"custodian/internal/hdwallet"
	"custodian/internal/hdwallet/fake"
	"custodian/internal/ratelimit"
	"custodian/internal/repository"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const walletID = "0123456789abcdef01234567"

var _ = Describe("KeyService", func() {
	var (
		service     *hdwallet.KeyService
		fakeStore   *fake.KeyStore
		fakeLimiter *fake.Limiter
		fakeAuditor *fake.Auditor
		sealer      *envelope.Sealer
		ctx         context.Context
		fakeErr     error

		mu        sync.Mutex
		stored    *repository.MnemonicRecord
		nextIndex uint32
		addresses map[string]repository.DerivedAddress
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		fakeStore = new(fake.KeyStore)
		fakeLimiter = new(fake.Limiter)
		fakeAuditor = new(fake.Auditor)
		sealer = envelope.NewSealer("a-master-key-of-sufficient-length", envelope.WithWorkFactor(1024))

		stored = nil
		nextIndex = 0
		addresses = map[string]repository.DerivedAddress{}

		fakeLimiter.AllowReturns(true, nil)

		fakeStore.GetMnemonicStub = func(_ context.Context, principalID string) (repository.MnemonicRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			if stored == nil || stored.PrincipalID != principalID {
				return repository.MnemonicRecord{}, repository.ErrMnemonicNotFound
			}
			return *stored, nil
		}
		fakeStore.GetMnemonicByIDStub = func(_ context.Context, id, principalID string) (repository.MnemonicRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			if stored == nil || stored.ID != id || stored.PrincipalID != principalID {
				return repository.MnemonicRecord{}, repository.ErrMnemonicNotFound
			}
			return *stored, nil
		}
		fakeStore.InsertMnemonicIfAbsentStub = func(_ context.Context, record repository.MnemonicRecord) (repository.MnemonicRecord, bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if stored != nil {
				return *stored, false, nil
			}
			record.ID = "m-1"
			stored = &record
			return record, true, nil
		}
		fakeStore.ReserveIndexStub = func(context.Context, string) (uint32, error) {
			mu.Lock()
			defer mu.Unlock()
			index := nextIndex
			nextIndex++
			return index, nil
		}
		fakeStore.SaveDerivedAddressStub = func(_ context.Context, address repository.DerivedAddress, _ bool) (repository.DerivedAddress, error) {
			mu.Lock()
			defer mu.Unlock()
			if existing, ok := addresses[address.Address]; ok {
				return existing, nil
			}
			address.IsDefault = len(addresses) == 0
			addresses[address.Address] = address
			return address, nil
		}
		fakeStore.FindDerivedAddressStub = func(_ context.Context, principalID, address string) (repository.DerivedAddress, error) {
			mu.Lock()
			defer mu.Unlock()
			found, ok := addresses[address]
			if !ok || found.PrincipalID != principalID {
				return repository.DerivedAddress{}, repository.ErrAddressNotFound
			}
			return found, nil
		}
	})

	JustBeforeEach(func() {
		service = hdwallet.NewKeyService(zap.NewNop().Sugar(), fakeStore, sealer, fakeLimiter, fakeAuditor)
	})

	auditActions := func() []string {
		actions := make([]string, 0, fakeAuditor.RecordCallCount())
		for i := 0; i < fakeAuditor.RecordCallCount(); i++ {
			_, entry := fakeAuditor.RecordArgsForCall(i)
			actions = append(actions, entry.Action)
		}
		return actions
	}

	Describe("GetOrCreateMnemonic", func() {
		var (
			record repository.MnemonicRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = service.GetOrCreateMnemonic(ctx, "u1", walletID, "")
		})

		When("the principal has no mnemonic", func() {
			It("should seal a new mnemonic and store it at index zero", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("m-1"))
				Expect(record.NextIndex).To(BeZero())
				Expect(record.Network).To(Equal(hdwallet.DefaultNetwork))

				plain, openErr := sealer.Open(record.EncryptedMnemonic)
				Expect(openErr).NotTo(HaveOccurred())
				Expect(strings.Fields(plain)).To(HaveLen(12))
				Expect(record.EncryptedMnemonic.CipherText).NotTo(ContainSubstring(plain))

				Expect(auditActions()).To(Equal([]string{audit.ActionMnemonicCreated}))
			})
		})

		When("the principal already has one", func() {
			BeforeEach(func() {
				stored = &repository.MnemonicRecord{ID: "m-existing", PrincipalID: "u1", WalletID: walletID}
			})

			It("should return it without generating another", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("m-existing"))
				Expect(fakeStore.InsertMnemonicIfAbsentCallCount()).To(BeZero())
				Expect(fakeAuditor.RecordCallCount()).To(BeZero())
			})
		})

		When("another caller wins the insert", func() {
			BeforeEach(func() {
				fakeStore.InsertMnemonicIfAbsentReturns(repository.MnemonicRecord{ID: "m-winner", PrincipalID: "u1"}, false, nil)
			})

			It("should return the winner and not audit a creation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("m-winner"))
				Expect(fakeAuditor.RecordCallCount()).To(BeZero())
			})
		})

		When("the master key is not configured", func() {
			BeforeEach(func() {
				sealer = envelope.NewSealer("short")
			})

			It("should return a configuration error and store nothing", func() {
				Expect(err).To(MatchError(envelope.ErrConfiguration))
				Expect(fakeStore.InsertMnemonicIfAbsentCallCount()).To(BeZero())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.GetMnemonicStub = nil
				fakeStore.GetMnemonicReturns(repository.MnemonicRecord{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeriveNextAddress", func() {
		When("no mnemonic exists", func() {
			It("should return ErrNoMnemonic without reserving an index", func() {
				_, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT"})
				Expect(err).To(MatchError(hdwallet.ErrNoMnemonic))
				Expect(fakeStore.ReserveIndexCallCount()).To(BeZero())
			})
		})

		When("the asset is not supported", func() {
			It("should return ErrUnsupported", func() {
				_, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "DOGE"})
				Expect(err).To(MatchError(hdwallet.ErrUnsupported))
			})
		})

		When("the network is not supported", func() {
			It("should return ErrUnsupported", func() {
				_, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT", Network: "SOLANA"})
				Expect(err).To(MatchError(hdwallet.ErrUnsupported))
			})
		})

		When("a mnemonic exists", func() {
			JustBeforeEach(func() {
				_, err := service.GetOrCreateMnemonic(ctx, "u1", walletID, "POLYGON_AMOY")
				Expect(err).NotTo(HaveOccurred())
			})

			It("should hand out successive indices and distinct addresses", func() {
				first, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "usdt", Network: "POLYGON_AMOY"})
				Expect(err).NotTo(HaveOccurred())
				second, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT", Network: "POLYGON"})
				Expect(err).NotTo(HaveOccurred())

				Expect(first.DerivationIndex).To(Equal(uint32(0)))
				Expect(second.DerivationIndex).To(Equal(uint32(1)))
				Expect(first.Address).NotTo(Equal(second.Address))
				Expect(first.Address).To(Equal(strings.ToLower(first.Address)))
				Expect(first.Asset).To(Equal("USDT"))
				Expect(second.Network).To(Equal("POLYGON_AMOY"))
				Expect(first.WalletID).To(Equal(walletID))
				Expect(first.IsDefault).To(BeTrue())
				Expect(second.IsDefault).To(BeFalse())

				Expect(auditActions()).To(Equal([]string{
					audit.ActionMnemonicCreated,
					audit.ActionAddressDerived,
					audit.ActionAddressDerived,
				}))
			})

			It("should give concurrent callers distinct indices", func() {
				var (
					wg      sync.WaitGroup
					results = make(chan repository.DerivedAddress, 8)
				)
				for i := 0; i < 8; i++ {
					wg.Add(1)
					go func() {
						defer GinkgoRecover()
						defer wg.Done()
						derived, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDC"})
						Expect(err).NotTo(HaveOccurred())
						results <- derived
					}()
				}
				wg.Wait()
				close(results)

				indices := map[uint32]struct{}{}
				seen := map[string]struct{}{}
				for derived := range results {
					indices[derived.DerivationIndex] = struct{}{}
					seen[derived.Address] = struct{}{}
				}
				Expect(indices).To(HaveLen(8))
				Expect(seen).To(HaveLen(8))
			})

			It("should not reserve an index when the envelope cannot be opened", func() {
				service = hdwallet.NewKeyService(zap.NewNop().Sugar(), fakeStore,
					envelope.NewSealer("a-different-master-key-entirely", envelope.WithWorkFactor(1024)),
					fakeLimiter, fakeAuditor)

				_, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT"})
				Expect(err).To(MatchError(envelope.ErrIntegrity))
				Expect(fakeStore.ReserveIndexCallCount()).To(BeZero())
			})

			It("should surface a failing save after spending the index", func() {
				fakeStore.SaveDerivedAddressStub = nil
				fakeStore.SaveDerivedAddressReturns(repository.DerivedAddress{}, fakeErr)

				_, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT"})
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStore.ReserveIndexCallCount()).To(Equal(1))
			})
		})
	})

	Describe("GetPrivateKeyForAddress", func() {
		var (
			derived repository.DerivedAddress
			request hdwallet.ExportRequest
			key     hdwallet.ExportedKey
			err     error
		)

		BeforeEach(func() {
			request = hdwallet.ExportRequest{
				PrincipalID: "u1",
				Confirmed:   true,
				IP:          "10.0.0.1",
				UserAgent:   "test-agent",
			}
		})

		JustBeforeEach(func() {
			_, setupErr := service.GetOrCreateMnemonic(ctx, "u1", walletID, "")
			Expect(setupErr).NotTo(HaveOccurred())
			derived, setupErr = service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT"})
			Expect(setupErr).NotTo(HaveOccurred())
			_, setupErr = service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT"})
			Expect(setupErr).NotTo(HaveOccurred())

			if request.Address == "" {
				request.Address = strings.ToUpper(derived.Address[2:])
				request.Address = "0x" + request.Address
			}
			key, err = service.GetPrivateKeyForAddress(ctx, request)
		})

		lastAudit := func() audit.Entry {
			_, entry := fakeAuditor.RecordArgsForCall(fakeAuditor.RecordCallCount() - 1)
			return entry
		}

		When("the request is confirmed and within limits", func() {
			It("should return the key that controls the stored address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(key.Address).To(Equal(derived.Address))
				Expect(key.Index).To(Equal(uint32(0)))

				raw, decodeErr := hexutil.Decode(key.PrivateKey)
				Expect(decodeErr).NotTo(HaveOccurred())
				privateKey, keyErr := crypto.ToECDSA(raw)
				Expect(keyErr).NotTo(HaveOccurred())
				Expect(strings.ToLower(crypto.PubkeyToAddress(privateKey.PublicKey).Hex())).To(Equal(derived.Address))

				entry := lastAudit()
				Expect(entry.Action).To(Equal(audit.ActionKeyExported))
				Expect(entry.EntityID).To(Equal(derived.Address))
				Expect(entry.Metadata).To(HaveKeyWithValue("reason", "export"))
				Expect(entry.Metadata).To(HaveKeyWithValue("ip", "10.0.0.1"))
				Expect(entry.Metadata).To(HaveKeyWithValue("userAgent", "test-agent"))
				Expect(entry.Metadata).NotTo(HaveKey("privateKey"))
			})
		})

		When("the request is not confirmed", func() {
			BeforeEach(func() {
				request.Confirmed = false
			})

			It("should deny before consuming the rate limit", func() {
				Expect(err).To(MatchError(hdwallet.ErrConfirmationRequired))
				Expect(fakeLimiter.AllowCallCount()).To(BeZero())
				Expect(lastAudit().Action).To(Equal(audit.ActionKeyExportDenied))
				Expect(lastAudit().Metadata).To(HaveKeyWithValue("denial", "confirmation_required"))
			})
		})

		When("the rate limit is exhausted", func() {
			BeforeEach(func() {
				fakeLimiter.AllowReturns(false, nil)
			})

			It("should not touch the mnemonic", func() {
				Expect(err).To(MatchError(hdwallet.ErrRateLimited))
				Expect(fakeStore.FindDerivedAddressCallCount()).To(BeZero())
				Expect(fakeStore.GetMnemonicByIDCallCount()).To(BeZero())
				Expect(lastAudit().Action).To(Equal(audit.ActionKeyExportRateLimited))
			})
		})

		When("the limiter fails", func() {
			BeforeEach(func() {
				fakeLimiter.AllowReturns(false, fakeErr)
			})

			It("should fail closed", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStore.FindDerivedAddressCallCount()).To(BeZero())
			})
		})

		When("the address belongs to another principal", func() {
			BeforeEach(func() {
				request.Address = "0x000000000000000000000000000000000000dead"
			})

			It("should return ErrAddressNotFound", func() {
				Expect(err).To(MatchError(hdwallet.ErrAddressNotFound))
				Expect(lastAudit().Metadata).To(HaveKeyWithValue("denial", "address_not_found"))
			})
		})

		When("the stored index no longer matches the address", func() {
			BeforeEach(func() {
				fakeStore.FindDerivedAddressStub = func(_ context.Context, principalID, address string) (repository.DerivedAddress, error) {
					mu.Lock()
					defer mu.Unlock()
					found := addresses[address]
					found.DerivationIndex = 5
					return found, nil
				}
			})

			It("should refuse to return a key", func() {
				Expect(err).To(MatchError(hdwallet.ErrDerivationMismatch))
				Expect(key.PrivateKey).To(BeEmpty())
				Expect(lastAudit().Metadata).To(HaveKeyWithValue("denial", "derivation_mismatch"))
			})
		})
	})

	Describe("export rate limiting", func() {
		It("should allow five confirmed exports in fifteen minutes and reject the sixth", func() {
			service = hdwallet.NewKeyService(zap.NewNop().Sugar(), fakeStore, sealer,
				ratelimit.NewWindowLimiter(5, 15*time.Minute), fakeAuditor)

			_, err := service.GetOrCreateMnemonic(ctx, "u1", walletID, "")
			Expect(err).NotTo(HaveOccurred())
			derived, err := service.DeriveNextAddress(ctx, hdwallet.DeriveRequest{PrincipalID: "u1", Asset: "USDT"})
			Expect(err).NotTo(HaveOccurred())

			request := hdwallet.ExportRequest{PrincipalID: "u1", Address: derived.Address, Confirmed: true}
			for i := 0; i < 5; i++ {
				_, err := service.GetPrivateKeyForAddress(ctx, request)
				Expect(err).NotTo(HaveOccurred(), "call %d", i+1)
			}

			_, err = service.GetPrivateKeyForAddress(ctx, request)
			Expect(err).To(MatchError(hdwallet.ErrRateLimited))
		})
	})
})
