package ethereum_test

import (
	"math/big"

	"custodian/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func addressTopic(hex string) common.Hash {
	return common.BytesToHash(common.HexToAddress(hex).Bytes())
}

var _ = Describe("Log decoding", func() {
	It("should use the canonical Transfer topic", func() {
		Expect(ethereum.TransferTopic.Hex()).To(Equal("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"))
	})

	Describe("DecodeDeposit", func() {
		It("should decode indexed and data fields", func() {
			event, err := ethereum.DecodeDeposit(depositLog(5, common.HexToHash("0xfe"), 42, "w_abc"))
			Expect(err).NotTo(HaveOccurred())
			Expect(event.Amount).To(Equal(big.NewInt(42)))
			Expect(event.Reference).To(Equal("w_abc"))
			Expect(event.BlockNumber).To(Equal(uint64(5)))
		})

		It("should reject other events", func() {
			log := depositLog(5, common.HexToHash("0xfe"), 42, "w_abc")
			log.Topics[0] = ethereum.TransferTopic
			_, err := ethereum.DecodeDeposit(log)
			Expect(err).To(MatchError(ethereum.ErrUnexpectedLog))
		})
	})

	Describe("DecodeTransfer", func() {
		It("should decode an ERC-20 transfer", func() {
			transfer, err := ethereum.DecodeTransfer(types.Log{
				Address: common.HexToAddress("0xcc"),
				Topics:  []common.Hash{ethereum.TransferTopic, addressTopic("0x01"), addressTopic("0x02")},
				Data:    common.BigToHash(big.NewInt(50_000_000)).Bytes(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(transfer.Contract).To(Equal(common.HexToAddress("0xcc")))
			Expect(transfer.From).To(Equal(common.HexToAddress("0x01")))
			Expect(transfer.To).To(Equal(common.HexToAddress("0x02")))
			Expect(transfer.Value.Int64()).To(Equal(int64(50_000_000)))
		})

		It("should reject an ERC-721 transfer", func() {
			_, err := ethereum.DecodeTransfer(types.Log{
				Topics: []common.Hash{ethereum.TransferTopic, addressTopic("0x01"), addressTopic("0x02"), common.BigToHash(big.NewInt(1))},
			})
			Expect(err).To(MatchError(ethereum.ErrUnexpectedLog))
		})
	})

	Describe("DecodeERC721Transfer", func() {
		It("should decode the token id from the topics", func() {
			transfer, err := ethereum.DecodeERC721Transfer(types.Log{
				Topics: []common.Hash{ethereum.TransferTopic, {}, addressTopic("0x02"), common.BigToHash(big.NewInt(77))},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(transfer.From).To(Equal(common.Address{}))
			Expect(transfer.TokenID.Int64()).To(Equal(int64(77)))
		})
	})

	Describe("DecodeSwap", func() {
		It("should decode every swap field", func() {
			data, err := ethereum.PackSwap(common.HexToAddress("0x0a"), common.HexToAddress("0x0b"), big.NewInt(100), big.NewInt(99), big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())

			swap, err := ethereum.DecodeSwap(types.Log{
				Topics: []common.Hash{ethereum.SwapTopic, addressTopic("0x01")},
				Data:   data,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(swap.User).To(Equal(common.HexToAddress("0x01")))
			Expect(swap.TokenIn).To(Equal(common.HexToAddress("0x0a")))
			Expect(swap.TokenOut).To(Equal(common.HexToAddress("0x0b")))
			Expect(swap.AmountIn.Int64()).To(Equal(int64(100)))
			Expect(swap.AmountOut.Int64()).To(Equal(int64(99)))
			Expect(swap.Fee.Int64()).To(Equal(int64(1)))
		})

		It("should fail on truncated data", func() {
			_, err := ethereum.DecodeSwap(types.Log{
				Topics: []common.Hash{ethereum.SwapTopic, addressTopic("0x01")},
				Data:   make([]byte, 10),
			})
			Expect(err).To(HaveOccurred())
		})
	})
})
