package infrastructures

import (
	"os"

	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the redemption path relies on to retry
	// voucher code generation.
	db, err := gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

// Migrate keeps the schema in sync. Also used by tests against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.LedgerEntry{},
		&models.Voucher{},
		&models.AuditLog{},
		&models.AdminKey{},
	)
}
