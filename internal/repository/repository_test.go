package repository_test

import (
	"context"
	"database/sql"
	"time"

	"custodian/internal/db"
	"custodian/internal/envelope"
	"custodian/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("Repository", func() {
	var (
		repo   *repository.Repository
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		ctx    context.Context
		now    time.Time
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		now = time.Now().UTC()

		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		gormDB, err := gorm.Open(postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		}), &gorm.Config{SkipDefaultTransaction: true})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewRepository(&db.PostgresDB{DB: gormDB})
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	mnemonicColumns := []string{
		"id", "principal_id", "wallet_id", "network",
		"mnemonic_cipher_text", "mnemonic_salt", "mnemonic_iv", "mnemonic_auth_tag",
		"next_index", "created_at", "updated_at",
	}

	Describe("GetMnemonic", func() {
		var (
			record repository.MnemonicRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = repo.GetMnemonic(ctx, "u1")
		})

		When("the principal has a mnemonic", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "mnemonic_records" WHERE principal_id = \$1 .*`).
					WithArgs("u1", 1).
					WillReturnRows(sqlmock.NewRows(mnemonicColumns).
						AddRow("m-1", "u1", "aaaaaaaaaaaaaaaaaaaaaaaa", "POLYGON_AMOY", "Y3Q=", "c2FsdA==", "aXY=", "dGFn", 4, now, now))
			})

			It("should return the record with its envelope", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("m-1"))
				Expect(record.NextIndex).To(Equal(uint32(4)))
				Expect(record.EncryptedMnemonic).To(Equal(envelope.Envelope{
					CipherText: "Y3Q=",
					Salt:       "c2FsdA==",
					IV:         "aXY=",
					AuthTag:    "dGFn",
				}))
			})
		})

		When("the principal has no mnemonic", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "mnemonic_records" WHERE principal_id = \$1 .*`).
					WillReturnRows(sqlmock.NewRows(mnemonicColumns))
			})

			It("should return ErrMnemonicNotFound", func() {
				Expect(err).To(MatchError(repository.ErrMnemonicNotFound))
			})
		})
	})

	Describe("InsertMnemonicIfAbsent", func() {
		var (
			record  repository.MnemonicRecord
			created bool
			err     error
		)

		JustBeforeEach(func() {
			record, created, err = repo.InsertMnemonicIfAbsent(ctx, repository.MnemonicRecord{
				PrincipalID: "u1",
				WalletID:    "aaaaaaaaaaaaaaaaaaaaaaaa",
				Network:     "POLYGON_AMOY",
			})
		})

		When("no record exists", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "mnemonic_records" .* ON CONFLICT \("principal_id"\) DO NOTHING`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			})

			It("should create the record starting at index zero", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(record.ID).NotTo(BeEmpty())
				Expect(record.NextIndex).To(BeZero())
			})
		})

		When("another caller inserted first", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "mnemonic_records" .* ON CONFLICT \("principal_id"\) DO NOTHING`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT \* FROM "mnemonic_records" WHERE principal_id = \$1 .*`).
					WithArgs("u1", 1).
					WillReturnRows(sqlmock.NewRows(mnemonicColumns).
						AddRow("m-winner", "u1", "aaaaaaaaaaaaaaaaaaaaaaaa", "POLYGON_AMOY", "Y3Q=", "c2FsdA==", "aXY=", "dGFn", 0, now, now))
			})

			It("should return the existing record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(record.ID).To(Equal("m-winner"))
			})
		})
	})

	Describe("ReserveIndex", func() {
		var (
			index uint32
			err   error
		)

		JustBeforeEach(func() {
			index, err = repo.ReserveIndex(ctx, "m-1")
		})

		When("the record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`UPDATE mnemonic_records SET next_index = next_index \+ 1, updated_at = \$1 WHERE id = \$2 RETURNING next_index - 1`).
					WithArgs(sqlmock.AnyArg(), "m-1").
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(3))
			})

			It("should return the value before the increment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(index).To(Equal(uint32(3)))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`UPDATE mnemonic_records SET next_index`).
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
			})

			It("should return ErrMnemonicNotFound", func() {
				Expect(err).To(MatchError(repository.ErrMnemonicNotFound))
			})
		})
	})

	Describe("SaveDerivedAddress", func() {
		var (
			address    repository.DerivedAddress
			setDefault bool
			saved      repository.DerivedAddress
			err        error
		)

		addressColumns := []string{"id", "wallet_id", "asset", "network", "address", "principal_id", "derivation_index", "is_default", "mnemonic_record_id"}

		BeforeEach(func() {
			setDefault = false
			address = repository.DerivedAddress{
				WalletID:         "aaaaaaaaaaaaaaaaaaaaaaaa",
				Asset:            "USDT",
				Network:          "POLYGON_AMOY",
				Address:          "0x9858effd232b4033e47d90003d41ec34ecaeda94",
				PrincipalID:      "u1",
				DerivationIndex:  0,
				MnemonicRecordID: "m-1",
			}

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT .* FROM "mnemonic_records" WHERE id = \$1 .*FOR UPDATE`).
				WithArgs("m-1", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("m-1"))
		})

		JustBeforeEach(func() {
			saved, err = repo.SaveDerivedAddress(ctx, address, setDefault)
		})

		When("it is the first address for the wallet and asset", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "derived_addresses" WHERE .*address = \$4 LIMIT \$5`).
					WillReturnRows(sqlmock.NewRows(addressColumns))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "derived_addresses" WHERE .*is_default`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO "derived_addresses"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should save it as the default address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.IsDefault).To(BeTrue())
				Expect(saved.ID).NotTo(BeEmpty())
			})
		})

		When("a default exists and setDefault is requested", func() {
			BeforeEach(func() {
				setDefault = true
				mock.ExpectQuery(`SELECT \* FROM "derived_addresses" WHERE .*address = \$4 LIMIT \$5`).
					WillReturnRows(sqlmock.NewRows(addressColumns))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "derived_addresses" WHERE .*is_default`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec(`UPDATE "derived_addresses" SET "is_default"=\$1 WHERE`).
					WithArgs(false, address.WalletID, address.Asset, address.Network).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "derived_addresses"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should demote the others and save the new default", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.IsDefault).To(BeTrue())
			})
		})

		When("a default exists and setDefault is not requested", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "derived_addresses" WHERE .*address = \$4 LIMIT \$5`).
					WillReturnRows(sqlmock.NewRows(addressColumns))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "derived_addresses" WHERE .*is_default`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec(`INSERT INTO "derived_addresses"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should save a non-default address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.IsDefault).To(BeFalse())
			})
		})

		When("the same address was saved before", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "derived_addresses" WHERE .*address = \$4 LIMIT \$5`).
					WillReturnRows(sqlmock.NewRows(addressColumns).
						AddRow("d-1", address.WalletID, address.Asset, address.Network, address.Address, "u1", 0, true, "m-1"))
				mock.ExpectCommit()
			})

			It("should return the stored row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal("d-1"))
				Expect(saved.IsDefault).To(BeTrue())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "derived_addresses" WHERE .*address = \$4 LIMIT \$5`).
					WillReturnRows(sqlmock.NewRows(addressColumns))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "derived_addresses" WHERE .*is_default`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO "derived_addresses"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should roll back and return the error", func() {
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err.Error()).To(ContainSubstring("insert derived address"))
			})
		})
	})

	Describe("FindDerivedAddress", func() {
		It("should return ErrAddressNotFound for an address outside the principal's scope", func() {
			mock.ExpectQuery(`SELECT \* FROM "derived_addresses" WHERE principal_id = \$1 AND address = \$2 .*`).
				WithArgs("u2", "0xabc", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			_, err := repo.FindDerivedAddress(ctx, "u2", "0xabc")
			Expect(err).To(MatchError(repository.ErrAddressNotFound))
		})
	})

	balanceColumns := []string{"wallet_id", "asset", "available", "locked", "updated_at"}

	Describe("ApplyLegs balance statements", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
		})

		It("should upsert a credit leg and return the new balance", func() {
			mock.ExpectQuery(`INSERT INTO balances .* ON CONFLICT \(wallet_id, asset\) DO UPDATE SET available = balances.available \+ EXCLUDED.available`).
				WithArgs("w1", "USDT", decimal.RequireFromString("50"), sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows(balanceColumns).AddRow("w1", "USDT", "150.00", "0.00", now))
			mock.ExpectCommit()

			balances, err := repo.ApplyLegs(ctx, "w1", []repository.Leg{{Asset: "USDT", Delta: decimal.RequireFromString("50")}}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(balances[0].Available.StringFixed(2)).To(Equal("150.00"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should decrement a covered debit leg conditionally", func() {
			mock.ExpectQuery(`UPDATE balances SET available = available - \$1, updated_at = \$2\s+WHERE wallet_id = \$3 AND asset = \$4 AND available >= \$5`).
				WillReturnRows(sqlmock.NewRows(balanceColumns).AddRow("w1", "USDT", "25.50", "0.00", now))
			mock.ExpectCommit()

			balances, err := repo.ApplyLegs(ctx, "w1", []repository.Leg{{Asset: "USDT", Delta: decimal.RequireFromString("-74.50")}}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(balances[0].Available.StringFixed(2)).To(Equal("25.50"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("ApplyLegs", func() {
		var (
			record   *repository.Transaction
			legs     []repository.Leg
			balances []repository.Balance
			err      error
		)

		BeforeEach(func() {
			hash := "0x" + "ab" + "00000000000000000000000000000000000000000000000000000000000000"
			record = &repository.Transaction{
				WalletID: "w1",
				Type:     repository.TypeTopUp,
				Status:   repository.StatusCompleted,
				Asset:    "USDT",
				Network:  "POLYGON_AMOY",
				Amount:   decimal.RequireFromString("50"),
				Fee:      decimal.Zero,
				TxHash:   &hash,
			}
			legs = []repository.Leg{{Asset: "USDT", Delta: decimal.RequireFromString("50")}}
			mock.ExpectBegin()
		})

		JustBeforeEach(func() {
			balances, err = repo.ApplyLegs(ctx, "w1", legs, record)
		})

		When("the transaction is new", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "transactions" .* ON CONFLICT \("tx_hash"\) DO NOTHING`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`INSERT INTO balances`).
					WillReturnRows(sqlmock.NewRows(balanceColumns).AddRow("w1", "USDT", "50.00", "0.00", now))
				mock.ExpectCommit()
			})

			It("should record and credit in one unit", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balances).To(HaveLen(1))
				Expect(balances[0].Available.StringFixed(2)).To(Equal("50.00"))
				Expect(record.ID).NotTo(BeEmpty())
			})
		})

		When("the tx hash is already recorded", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "transactions" .* ON CONFLICT \("tx_hash"\) DO NOTHING`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			})

			It("should not touch balances", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateTransaction))
				Expect(balances).To(BeNil())
			})
		})

		When("a debit leg cannot be covered", func() {
			BeforeEach(func() {
				record = nil
				legs = []repository.Leg{
					{Asset: "USDT", Delta: decimal.RequireFromString("-101")},
					{Asset: "USDC", Delta: decimal.RequireFromString("100")},
				}
				mock.ExpectQuery(`UPDATE balances SET available = available - `).
					WillReturnRows(sqlmock.NewRows(balanceColumns))
				mock.ExpectRollback()
			})

			It("should not apply the credit leg", func() {
				Expect(err).To(MatchError(repository.ErrInsufficientFunds))
			})
		})
	})

	Describe("TransactionExists", func() {
		It("should count rows by tx hash", func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE tx_hash = \$1`).
				WithArgs("0xfeed").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

			exists, err := repo.TransactionExists(ctx, "0xfeed")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Describe("GetBalance", func() {
		It("should return a zero balance when no row exists", func() {
			mock.ExpectQuery(`SELECT \* FROM "balances" WHERE wallet_id = \$1 AND asset = \$2`).
				WillReturnRows(sqlmock.NewRows(balanceColumns))

			balance, err := repo.GetBalance(ctx, "w1", "DAI")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Available.IsZero()).To(BeTrue())
			Expect(balance.Asset).To(Equal("DAI"))
		})
	})

	Describe("DefaultWallet", func() {
		walletColumns := []string{"id", "principal_id", "name", "is_default", "created_at"}

		When("the principal already has one", func() {
			It("should return it", func() {
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE principal_id = \$1 AND is_default`).
					WillReturnRows(sqlmock.NewRows(walletColumns).AddRow("bbbbbbbbbbbbbbbbbbbbbbbb", "u1", "Main", true, now))

				wallet, err := repo.DefaultWallet(ctx, "u1")
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet.ID).To(Equal("bbbbbbbbbbbbbbbbbbbbbbbb"))
			})
		})

		When("the principal has none", func() {
			It("should create one with a 24 hex character id", func() {
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE principal_id = \$1 AND is_default`).
					WillReturnRows(sqlmock.NewRows(walletColumns))
				mock.ExpectExec(`INSERT INTO "wallets" .* ON CONFLICT DO NOTHING`).
					WillReturnResult(sqlmock.NewResult(0, 1))

				wallet, err := repo.DefaultWallet(ctx, "u1")
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet.ID).To(MatchRegexp(`^[0-9a-f]{24}$`))
				Expect(wallet.IsDefault).To(BeTrue())
			})
		})
	})

	Describe("SaveAuditLog", func() {
		It("should insert the entry", func() {
			mock.ExpectExec(`INSERT INTO "audit_logs"`).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.SaveAuditLog(ctx, repository.AuditLog{
				PrincipalID: "u1",
				Action:      "ADDRESS_DERIVED",
				EntityID:    "0xabc",
				Metadata:    map[string]any{"index": 0},
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
