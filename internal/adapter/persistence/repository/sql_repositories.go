package repository

import (
	"context"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ISaleRepository = (*SaleSQLRepository)(nil)

func NewSaleSQLRepository(db *gorm.DB) *SaleSQLRepository {
	return &SaleSQLRepository{db: db}
}

func (r *SaleSQLRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	m := saleModel{
		ID:            s.ID,
		ProductID:     s.ProductID,
		SellerID:      s.SellerID,
		BuyerEmail:    s.BuyerEmail,
		BuyerName:     s.BuyerName,
		Amount:        s.Amount,
		PaymentID:     s.PaymentID,
		PaymentStatus: string(s.PaymentStatus),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Sale{}, err
	}
	return fromSaleModel(m), nil
}

func (r *SaleSQLRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *SaleSQLRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Sale, error) {
	return r.first(r.db.WithContext(ctx).Where("payment_id = ?", paymentID).Order("created_at desc"))
}

func (r *SaleSQLRepository) FindLatestByProductAndBuyer(ctx context.Context, productID, buyerEmail string) (entities.Sale, error) {
	return r.first(r.db.WithContext(ctx).
		Where("product_id = ? AND buyer_email = ?", productID, buyerEmail).
		Order("created_at desc"))
}

func (r *SaleSQLRepository) UpdateStatusByPaymentID(ctx context.Context, paymentID string, status entities.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&saleModel{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]interface{}{"payment_status": string(status), "updated_at": time.Now()}).Error
}

func (r *SaleSQLRepository) UpdateStatusByID(ctx context.Context, id string, status entities.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&saleModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"payment_status": string(status), "updated_at": time.Now()}).Error
}

func (r *SaleSQLRepository) first(q *gorm.DB) (entities.Sale, error) {
	var m saleModel
	res := q.Limit(1).Find(&m)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Sale{}, res.Error
	}
	return fromSaleModel(m), nil
}

func fromSaleModel(m saleModel) entities.Sale {
	return entities.Sale{
		ID:            m.ID,
		ProductID:     m.ProductID,
		SellerID:      m.SellerID,
		BuyerEmail:    m.BuyerEmail,
		BuyerName:     m.BuyerName,
		Amount:        m.Amount,
		PaymentID:     m.PaymentID,
		PaymentStatus: entities.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type MembershipSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IMembershipRepository = (*MembershipSQLRepository)(nil)

func NewMembershipSQLRepository(db *gorm.DB) *MembershipSQLRepository {
	return &MembershipSQLRepository{db: db}
}

func (r *MembershipSQLRepository) CreateIfAbsent(ctx context.Context, m entities.Membership) error {
	row := membershipModel{
		ProductID:  m.ProductID,
		BuyerEmail: m.BuyerEmail,
		BuyerName:  m.BuyerName,
		Status:     string(m.Status),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "buyer_email"}},
		DoNothing: true,
	}).Create(&row).Error
}

func (r *MembershipSQLRepository) GetByProductAndBuyer(ctx context.Context, productID, buyerEmail string) (entities.Membership, error) {
	var m membershipModel
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND buyer_email = ?", productID, buyerEmail).
		Limit(1).Find(&m)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Membership{}, res.Error
	}
	return entities.Membership{
		ProductID:  m.ProductID,
		BuyerEmail: m.BuyerEmail,
		BuyerName:  m.BuyerName,
		Status:     entities.PaymentStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func (r *MembershipSQLRepository) UpdateStatusByProductAndBuyer(ctx context.Context, productID, buyerEmail string, status entities.PaymentStatus) error {
	q := r.db.WithContext(ctx).Model(&membershipModel{}).
		Where("product_id = ? AND buyer_email = ?", productID, buyerEmail)
	if status.IsPreApproval() {
		q = q.Where("status <> ?", string(entities.PaymentStatusApproved))
	}
	return q.Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()}).Error
}

type SubscriptionSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionSQLRepository)(nil)

func NewSubscriptionSQLRepository(db *gorm.DB) *SubscriptionSQLRepository {
	return &SubscriptionSQLRepository{db: db}
}

func (r *SubscriptionSQLRepository) UpsertByUserID(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	row := subscriptionModel{
		UserID:        s.UserID,
		Status:        string(s.Status),
		LastPaymentID: s.LastPaymentID,
		ActivatedAt:   s.ActivatedAt,
		ExpiresAt:     s.ExpiresAt,
		UpdatedAt:     s.UpdatedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "last_payment_id", "activated_at", "expires_at", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionSQLRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *SubscriptionSQLRepository) GetByLastPaymentID(ctx context.Context, paymentID string) (entities.Subscription, error) {
	return r.first(r.db.WithContext(ctx).Where("last_payment_id = ?", paymentID))
}

func (r *SubscriptionSQLRepository) UpdateStatus(ctx context.Context, userID string, status entities.SubscriptionStatus) error {
	return r.db.WithContext(ctx).Model(&subscriptionModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now().UTC()}).Error
}

func (r *SubscriptionSQLRepository) Activate(ctx context.Context, userID, paymentID string, activatedAt, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&subscriptionModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"status":          string(entities.SubscriptionStatusActive),
			"last_payment_id": paymentID,
			"activated_at":    activatedAt.UTC(),
			"expires_at":      expiresAt.UTC(),
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (r *SubscriptionSQLRepository) first(q *gorm.DB) (entities.Subscription, error) {
	var m subscriptionModel
	res := q.Limit(1).Find(&m)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Subscription{}, res.Error
	}
	return entities.Subscription{
		UserID:        m.UserID,
		Status:        entities.SubscriptionStatus(m.Status),
		LastPaymentID: m.LastPaymentID,
		ActivatedAt:   m.ActivatedAt,
		ExpiresAt:     m.ExpiresAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

type CredentialSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ICredentialRepository = (*CredentialSQLRepository)(nil)

func NewCredentialSQLRepository(db *gorm.DB) *CredentialSQLRepository {
	return &CredentialSQLRepository{db: db}
}

func (r *CredentialSQLRepository) GetBySellerID(ctx context.Context, sellerID string) (entities.Credential, error) {
	var m credentialModel
	res := r.db.WithContext(ctx).Where("user_id = ?", sellerID).Limit(1).Find(&m)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Credential{}, res.Error
	}
	return entities.Credential{SellerID: m.UserID, AccessToken: m.AccessToken, UpdatedAt: m.UpdatedAt}, nil
}

func (r *CredentialSQLRepository) Upsert(ctx context.Context, c entities.Credential) error {
	row := credentialModel{UserID: c.SellerID, AccessToken: c.AccessToken}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"access_token": c.AccessToken,
			"updated_at":   time.Now(),
		}),
	}).Create(&row).Error
}

type ProductSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IProductRepository = (*ProductSQLRepository)(nil)

func NewProductSQLRepository(db *gorm.DB) *ProductSQLRepository {
	return &ProductSQLRepository{db: db}
}

func (r *ProductSQLRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	row := productModel{
		ID:          p.ID,
		UserID:      p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductSQLRepository) GetActiveByID(ctx context.Context, id string) (entities.Product, error) {
	var m productModel
	res := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).Limit(1).Find(&m)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Product{}, res.Error
	}
	return entities.Product{
		ID:          m.ID,
		SellerID:    m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}, nil
}
