package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Relational schema used when STORAGE_DRIVER is sqlite or mysql. Table and
// column names match the DynamoDB attribute names.

type saleModel struct {
	ID            string          `gorm:"primaryKey;size:64;not null"`
	ProductID     string          `gorm:"size:64;index:idx_sales_product_buyer;not null"`
	SellerID      string          `gorm:"size:64;not null"`
	BuyerEmail    string          `gorm:"size:255;index:idx_sales_product_buyer;not null"`
	BuyerName     string          `gorm:"size:255"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentID     string          `gorm:"size:64;index"`
	PaymentStatus string          `gorm:"size:32;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (saleModel) TableName() string { return "sales" }

type membershipModel struct {
	ProductID  string `gorm:"primaryKey;size:64;not null"`
	BuyerEmail string `gorm:"primaryKey;size:255;not null"`
	BuyerName  string `gorm:"size:255"`
	Status     string `gorm:"size:32;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (membershipModel) TableName() string { return "memberships" }

type subscriptionModel struct {
	UserID        string `gorm:"primaryKey;size:64;not null"`
	Status        string `gorm:"size:32;not null"`
	LastPaymentID string `gorm:"size:64;index"`
	ActivatedAt   *time.Time
	ExpiresAt     *time.Time
	UpdatedAt     time.Time
}

func (subscriptionModel) TableName() string { return "subscriptions" }

type credentialModel struct {
	UserID      string `gorm:"primaryKey;size:64;not null"`
	AccessToken string `gorm:"size:512;not null"`
	UpdatedAt   time.Time
}

func (credentialModel) TableName() string { return "mercado_pago_config" }

type productModel struct {
	ID          string          `gorm:"primaryKey;size:64;not null"`
	UserID      string          `gorm:"size:64;index;not null"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive    bool            `gorm:"not null"`
	CreatedAt   time.Time
}

func (productModel) TableName() string { return "products" }

// AutoMigrate creates or updates every table the SQL repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&saleModel{},
		&membershipModel{},
		&subscriptionModel{},
		&credentialModel{},
		&productModel{},
	)
}
