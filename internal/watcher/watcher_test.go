package watcher_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"custodian/internal/audit"
	"custodian/internal/config"
	"custodian/internal/ethereum"
	"custodian/internal/ledger"
	"custodian/internal/repository"
	"custodian/internal/watcher"
	"custodian/internal/watcher/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const walletID = "0123456789abcdef01234567"

// bank keeps balances and settled transactions in memory for a real ledger.
type bank struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	records  []repository.Transaction
	wallets  map[string]bool
	// stale hides recorded hashes from TransactionExists, as a lagging replica would.
	stale bool
}

func (b *bank) GetBalance(_ context.Context, walletID, asset string) (repository.Balance, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return repository.Balance{WalletID: walletID, Asset: asset, Available: b.balances[walletID+"/"+asset]}, nil
}

func (b *bank) ApplyLegs(_ context.Context, walletID string, legs []repository.Leg, record *repository.Transaction) ([]repository.Balance, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if record != nil && record.TxHash != nil {
		for _, existing := range b.records {
			if *existing.TxHash == *record.TxHash {
				return nil, repository.ErrDuplicateTransaction
			}
		}
	}

	balances := make([]repository.Balance, 0, len(legs))
	for _, leg := range legs {
		key := walletID + "/" + leg.Asset
		b.balances[key] = b.balances[key].Add(leg.Delta)
		balances = append(balances, repository.Balance{WalletID: walletID, Asset: leg.Asset, Available: b.balances[key]})
	}
	if record != nil {
		b.records = append(b.records, *record)
	}
	return balances, nil
}

func (b *bank) TransactionExists(_ context.Context, txHash string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stale {
		return false, nil
	}
	for _, record := range b.records {
		if record.TxHash != nil && *record.TxHash == txHash {
			return true, nil
		}
	}
	return false, nil
}

func (b *bank) WalletExists(_ context.Context, id string) (bool, error) {
	return b.wallets[id], nil
}

var _ = Describe("ParseReference", func() {
	DescribeTable("reference formats",
		func(reference string, valid bool) {
			id, err := watcher.ParseReference(reference)
			if valid {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(walletID))
				return
			}
			Expect(err).To(MatchError(watcher.ErrMalformedReference))
		},
		Entry("well formed", "w_"+walletID, true),
		Entry("uppercase hex", "w_0123456789ABCDEF01234567", false),
		Entry("too short", "w_0123456789abcdef0123456", false),
		Entry("too long", "w_0123456789abcdef012345678", false),
		Entry("missing prefix", walletID, false),
		Entry("wrong prefix case", "W_"+walletID, false),
		Entry("surrounding whitespace", " w_"+walletID, false),
		Entry("empty", "", false),
	)
})

var _ = Describe("Watcher", func() {
	var (
		subject     *watcher.Watcher
		store       *bank
		fakeChain   *fake.ChainReader
		fakeTokens  *fake.Tokens
		cfg         watcher.Config
		ctx         context.Context
		usdt        config.Token
		event       ethereum.DepositEvent
		settleCalls func() int
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = &bank{
			balances: map[string]decimal.Decimal{},
			wallets:  map[string]bool{walletID: true},
		}
		usdt = config.Token{Asset: "USDT", Address: common.HexToAddress("0x83e4D17029a1a81D5f4bBD1D3ef1c1c91f35022f"), Decimals: 6}

		fakeChain = new(fake.ChainReader)
		fakeChain.ReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, nil)

		fakeTokens = new(fake.Tokens)
		fakeTokens.ByAddressStub = func(_ string, address common.Address) (config.Token, bool) {
			return usdt, address == usdt.Address
		}

		cfg = watcher.Config{
			Vault:         common.HexToAddress("0xaa"),
			Network:       config.NetworkPolygonAmoy,
			ChainID:       80002,
			Confirmations: 6,
			PollInterval:  10 * time.Millisecond,
			MaxRange:      2000,
		}

		event = ethereum.DepositEvent{
			TxHash:      common.HexToHash("0xd1"),
			BlockNumber: 100,
			User:        common.HexToAddress("0x01"),
			Token:       usdt.Address,
			Amount:      big.NewInt(50_000_000),
			Reference:   "w_" + walletID,
		}
	})

	JustBeforeEach(func() {
		ledgerSvc := ledger.NewLedger(zap.NewNop().Sugar(), store, new(noopAuditor))
		counting := &countingLedger{Ledger: ledgerSvc}
		settleCalls = counting.Calls
		subject = watcher.NewWatcher(zap.NewNop().Sugar(), cfg, fakeChain, counting, store, fakeTokens)
	})

	Describe("ProcessEvent", func() {
		It("should credit a deposit exactly once as it gains confirmations", func() {
			outcome, err := subject.ProcessEvent(ctx, event, 103)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeDeferred))
			Expect(store.records).To(BeEmpty())

			outcome, err = subject.ProcessEvent(ctx, event, 107)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeCredited))

			balance, _ := store.GetBalance(ctx, walletID, "USDT")
			Expect(balance.Available.StringFixed(2)).To(Equal("50.00"))
			Expect(store.records).To(HaveLen(1))
			Expect(*store.records[0].TxHash).To(Equal(event.TxHash.Hex()))
			Expect(store.records[0].Confirmations).To(Equal(uint64(7)))
			Expect(store.records[0].Type).To(Equal(repository.TypeReceive))
			Expect(store.records[0].Status).To(Equal(repository.StatusCompleted))

			outcome, err = subject.ProcessEvent(ctx, event, 120)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeDuplicate))

			balance, _ = store.GetBalance(ctx, walletID, "USDT")
			Expect(balance.Available.StringFixed(2)).To(Equal("50.00"))
			Expect(store.records).To(HaveLen(1))
			Expect(settleCalls()).To(Equal(1))
		})

		It("should treat exactly the threshold as enough", func() {
			outcome, err := subject.ProcessEvent(ctx, event, 106)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeCredited))
		})

		DescribeTable("should credit sub-cent amounts rounded down",
			func(raw int64, credited string) {
				event.Amount = big.NewInt(raw)
				_, err := subject.ProcessEvent(ctx, event, 200)
				Expect(err).NotTo(HaveOccurred())

				balance, _ := store.GetBalance(ctx, walletID, "USDT")
				Expect(balance.Available.StringFixed(2)).To(Equal(credited))
			},
			Entry("below half a cent", int64(1_234_567), "1.23"),
			Entry("above half a cent", int64(1_995_000), "1.99"),
		)

		It("should not credit half a cent of dust as a cent", func() {
			event.Amount = big.NewInt(5_000)
			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeInvalidAmount))
			Expect(store.records).To(BeEmpty())
		})

		It("should drop dust that rounds to zero", func() {
			event.Amount = big.NewInt(1)
			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeInvalidAmount))
			Expect(store.records).To(BeEmpty())
		})

		It("should drop malformed references", func() {
			event.Reference = "wallet-1"
			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeUnattributed))
			Expect(settleCalls()).To(BeZero())
		})

		It("should drop references to unknown wallets", func() {
			event.Reference = "w_ffffffffffffffffffffffff"
			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeUnattributed))
			Expect(settleCalls()).To(BeZero())
		})

		It("should drop tokens outside the registry", func() {
			event.Token = common.HexToAddress("0xbad")
			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeUnknownToken))
			Expect(settleCalls()).To(BeZero())
		})

		It("should defer when the receipt is not available yet", func() {
			fakeChain.ReceiptReturns(nil, ethereum.ErrReceiptNotFound)
			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeDeferred))
		})

		It("should report rpc failures", func() {
			fakeChain.ReceiptReturns(nil, errors.New("timeout"))
			_, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).To(MatchError(ContainSubstring("fetch receipt: timeout")))
		})

		It("should treat a duplicate found while settling as done", func() {
			hash := event.TxHash.Hex()
			store.records = append(store.records, repository.Transaction{TxHash: &hash})
			store.stale = true

			outcome, err := subject.ProcessEvent(ctx, event, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(watcher.OutcomeDuplicate))
			Expect(settleCalls()).To(Equal(1))

			balance, _ := store.GetBalance(ctx, walletID, "USDT")
			Expect(balance.Available.IsZero()).To(BeTrue())
		})
	})

	Describe("Poll", func() {
		BeforeEach(func() {
			fakeChain.HeadBlockReturnsOnCall(0, 100, nil)
		})

		JustBeforeEach(func() {
			Expect(subject.Poll(ctx)).To(Succeed())
		})

		It("should start from the chain head without fetching history", func() {
			Expect(subject.Cursor()).To(Equal(uint64(100)))
			Expect(fakeChain.DepositEventsCallCount()).To(BeZero())
		})

		It("should scan up to head minus confirmations", func() {
			fakeChain.HeadBlockReturns(110, nil)
			Expect(subject.Poll(ctx)).To(Succeed())

			_, vault, from, to := fakeChain.DepositEventsArgsForCall(0)
			Expect(vault).To(Equal(cfg.Vault))
			Expect(from).To(Equal(uint64(101)))
			Expect(to).To(Equal(uint64(104)))
			Expect(subject.Cursor()).To(Equal(uint64(104)))
		})

		It("should not scan when nothing is deep enough", func() {
			fakeChain.HeadBlockReturns(105, nil)
			Expect(subject.Poll(ctx)).To(Succeed())
			Expect(fakeChain.DepositEventsCallCount()).To(BeZero())
			Expect(subject.Cursor()).To(Equal(uint64(100)))
		})

		It("should cap the range", func() {
			fakeChain.HeadBlockReturns(100_000, nil)
			Expect(subject.Poll(ctx)).To(Succeed())

			_, _, from, to := fakeChain.DepositEventsArgsForCall(0)
			Expect(from).To(Equal(uint64(101)))
			Expect(to).To(Equal(uint64(2100)))
			Expect(subject.Cursor()).To(Equal(uint64(2100)))
		})

		It("should credit events in range", func() {
			fakeChain.HeadBlockReturns(110, nil)
			event.BlockNumber = 102
			fakeChain.DepositEventsReturns([]ethereum.DepositEvent{event}, nil)
			fakeChain.ReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(102)}, nil)

			Expect(subject.Poll(ctx)).To(Succeed())
			Expect(store.records).To(HaveLen(1))
			Expect(subject.Cursor()).To(Equal(uint64(104)))
		})

		It("should stop the cursor before a deferred event", func() {
			fakeChain.HeadBlockReturns(110, nil)
			event.BlockNumber = 103
			fakeChain.DepositEventsReturns([]ethereum.DepositEvent{event}, nil)
			fakeChain.ReceiptReturns(nil, ethereum.ErrReceiptNotFound)

			Expect(subject.Poll(ctx)).To(Succeed())
			Expect(subject.Cursor()).To(Equal(uint64(102)))
		})

		It("should keep the cursor when fetching events fails", func() {
			fakeChain.HeadBlockReturns(110, nil)
			fakeChain.DepositEventsReturns(nil, errors.New("rpc down"))

			Expect(subject.Poll(ctx)).To(MatchError(ContainSubstring("rpc down")))
			Expect(subject.Cursor()).To(Equal(uint64(100)))
		})

		It("should keep the cursor when an event fails", func() {
			fakeChain.HeadBlockReturns(110, nil)
			fakeChain.DepositEventsReturns([]ethereum.DepositEvent{event}, nil)
			fakeChain.ReceiptReturns(nil, errors.New("rpc down"))

			Expect(subject.Poll(ctx)).To(HaveOccurred())
			Expect(subject.Cursor()).To(Equal(uint64(100)))
		})
	})

	Describe("Run", func() {
		It("should keep polling through failures until cancelled", func() {
			fakeChain.HeadBlockReturnsOnCall(0, 0, errors.New("boot failure"))
			fakeChain.HeadBlockReturns(100, nil)

			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{})
			go func() {
				defer close(done)
				subject.Run(runCtx)
			}()

			Eventually(fakeChain.HeadBlockCallCount).Should(BeNumerically(">=", 3))
			Expect(subject.Cursor()).To(Equal(uint64(100)))

			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})

type noopAuditor struct{}

func (noopAuditor) Record(context.Context, audit.Entry) {}

type countingLedger struct {
	*ledger.Ledger
	mu    sync.Mutex
	calls int
}

func (c *countingLedger) Settle(ctx context.Context, settlement ledger.Settlement) (ledger.SettlementResult, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.Ledger.Settle(ctx, settlement)
}

func (c *countingLedger) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
