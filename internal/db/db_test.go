package db_test

import (
	"context"
	"database/sql"
	"errors"

	"custodian/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Vault struct {
	ID       uint `gorm:"primaryKey"`
	Principal string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"vaults\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Vault{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "vaults" WHERE principal = \$1 ORDER BY "vaults"\."id" LIMIT \$2.*`).
					WithArgs("u1", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "principal"}).
						AddRow(1, "u1"))
			})

			It("should return the correct record", func() {
				var result Vault
				err := testDB.GetOneBy(ctx, "principal", "u1", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Principal).To(Equal("u1"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "vaults" WHERE principal = \$1 ORDER BY "vaults"\."id" LIMIT \$2.*`).
					WithArgs("u404", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Vault
				err := testDB.GetOneBy(ctx, "principal", "u404", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Exists", func() {
		var (
			exists bool
			err    error
		)

		JustBeforeEach(func() {
			exists, err = testDB.Exists(ctx, &Vault{}, "principal", "u1")
		})

		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "vaults" WHERE principal = \$1`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should report true", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "vaults" WHERE principal = \$1`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should report false", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "vaults".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("Atomic", func() {
		var fnErr error

		JustBeforeEach(func() {
			err = testDB.Atomic(ctx, func(tx *gorm.DB) error {
				if execErr := tx.Exec(`UPDATE tests SET principal = ? WHERE id = ?`, "Carol", 1).Error; execErr != nil {
					return execErr
				}
				return fnErr
			})
		})

		When("the function succeeds", func() {
			BeforeEach(func() {
				fnErr = nil
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE tests SET principal = \$1 WHERE id = \$2`).
					WithArgs("Carol", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should commit", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the function fails", func() {
			BeforeEach(func() {
				fnErr = errors.New("boom")
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE tests SET principal = \$1 WHERE id = \$2`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			})

			It("should roll back and return the error", func() {
				Expect(err).To(MatchError(fnErr))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
