package storage

import (
	"context"
	"errors"
	"log"

	"marketgogo/backend/internal/config"
	"marketgogo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Storage interface {
	GetTranslation(ctx context.Context, locale, objectClass, field, foreignKey string) (string, bool, error)
	UpsertTranslation(ctx context.Context, locale, objectClass, field, foreignKey, content string) error
	CountTranslationsByLocale(ctx context.Context) (map[string]int64, error)
	PurgeOrphanTranslations(ctx context.Context, objectClass, table, keyColumn string) (int64, error)

	GetSessionLocale(ctx context.Context, sessionID string) (string, error)
	SetSessionLocale(ctx context.Context, sessionID, locale string) error

	SaveProduct(product *models.Product) error
	GetProductByPublicID(publicID string) (*models.Product, error)
	ListProducts(limit, offset int) ([]models.Product, error)

	SaveCompany(company *models.Company) error
	GetCompanyByPublicID(publicID string) (*models.Company, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
	}
}

// GetTranslation returns the stored translation content for the exact
// (locale, objectClass, field, foreignKey) tuple. The boolean reports whether
// a row exists; a stored empty string is still a hit.
func (s *Service) GetTranslation(ctx context.Context, locale, objectClass, field, foreignKey string) (string, bool, error) {
	var t models.Translation
	err := s.DB.WithContext(ctx).
		Where("locale = ? AND object_class = ? AND field = ? AND foreign_key = ?",
			locale, objectClass, field, foreignKey).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to look up translation %s/%s.%s#%s: %v",
			locale, objectClass, field, foreignKey, err)
		return "", false, err
	}
	return t.Content, true, nil
}

// UpsertTranslation inserts a translation row, or updates its content when a
// row with the same key tuple already exists. The conflict target is the
// composite unique index, so concurrent upserts for the same key resolve to
// last-write-wins instead of duplicate rows.
func (s *Service) UpsertTranslation(ctx context.Context, locale, objectClass, field, foreignKey, content string) error {
	t := models.Translation{
		Locale:      locale,
		ObjectClass: objectClass,
		Field:       field,
		ForeignKey:  foreignKey,
		Content:     content,
	}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "locale"}, {Name: "object_class"}, {Name: "field"}, {Name: "foreign_key"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(&t).Error

	if err != nil {
		log.Printf("ERROR: Failed to upsert translation %s/%s.%s#%s: %v",
			locale, objectClass, field, foreignKey, err)
		return err
	}
	return nil
}

// CountTranslationsByLocale returns the number of stored translation rows per
// locale, for the admin stats report.
func (s *Service) CountTranslationsByLocale(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Locale string
		Total  int64
	}
	var rows []row
	err := s.DB.WithContext(ctx).Model(&models.Translation{}).
		Select("locale, count(*) as total").
		Group("locale").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Locale] = r.Total
	}
	return counts, nil
}

// PurgeOrphanTranslations deletes translation rows of the given object class
// whose foreign key no longer matches a live row in the owning table. Owning
// records are referenced by value only, so deletes on the owning side leave
// orphans behind until this sweep runs.
func (s *Service) PurgeOrphanTranslations(ctx context.Context, objectClass, table, keyColumn string) (int64, error) {
	result := s.DB.WithContext(ctx).Exec(
		"DELETE FROM ext_translations WHERE object_class = ? AND foreign_key NOT IN (SELECT "+keyColumn+"::text FROM "+table+")",
		objectClass,
	)
	if result.Error != nil {
		log.Printf("ERROR: Failed to purge orphan translations for %s: %v", objectClass, result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetSessionLocale reads the locale stored for a session from Redis. A
// missing key is not an error; it returns an empty locale.
func (s *Service) GetSessionLocale(ctx context.Context, sessionID string) (string, error) {
	locale, err := s.Redis.Get(ctx, "session_locale:"+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return locale, nil
}

// SetSessionLocale stores the resolved locale for a session in Redis. The
// entry expires with the session TTL; there is no explicit clearing.
func (s *Service) SetSessionLocale(ctx context.Context, sessionID, locale string) error {
	return s.Redis.Set(ctx, "session_locale:"+sessionID, locale, config.SessionTTL).Err()
}

// SaveProduct persists a product listing.
func (s *Service) SaveProduct(product *models.Product) error {
	if err := s.DB.Save(product).Error; err != nil {
		log.Printf("ERROR: Failed to save product %s: %v", product.PublicID, err)
		return err
	}
	return nil
}

// GetProductByPublicID returns a product by its public UUID, or nil when no
// such product exists.
func (s *Service) GetProductByPublicID(publicID string) (*models.Product, error) {
	var product models.Product
	err := s.DB.Where("public_id = ?", publicID).First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get product %s: %v", publicID, err)
		return nil, err
	}
	return &product, nil
}

// ListProducts returns a page of product listings ordered by creation time.
func (s *Service) ListProducts(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := s.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		log.Printf("ERROR: Failed to list products: %v", err)
		return nil, err
	}
	return products, nil
}

// SaveCompany persists a company record.
func (s *Service) SaveCompany(company *models.Company) error {
	if err := s.DB.Save(company).Error; err != nil {
		log.Printf("ERROR: Failed to save company %s: %v", company.PublicID, err)
		return err
	}
	return nil
}

// GetCompanyByPublicID returns a company by its public UUID, or nil when no
// such company exists.
func (s *Service) GetCompanyByPublicID(publicID string) (*models.Company, error) {
	var company models.Company
	err := s.DB.Where("public_id = ?", publicID).First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get company %s: %v", publicID, err)
		return nil, err
	}
	return &company, nil
}
