package store

import (
	"context"
	"errors"
	"time"

	"companyreg/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CompanyStore struct{ db *gorm.DB }

func (s *Store) Companies() *CompanyStore { return &CompanyStore{db: s.DB} }

func (c *CompanyStore) Create(ctx context.Context, company *domain.Company) error {
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}
	if err := c.db.WithContext(ctx).Create(company).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return err
	}
	return nil
}

func (c *CompanyStore) GetByID(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	err := c.db.WithContext(ctx).
		Preload("VerificationTokens").
		First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &company, nil
}

// GetByEmail matches case-insensitively. The email column is citext under
// postgres; the explicit LOWER comparison keeps sqlite dev mode honest too.
func (c *CompanyStore) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var company domain.Company
	err := c.db.WithContext(ctx).
		Preload("VerificationTokens").
		First(&company, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (c *CompanyStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&domain.Company{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *CompanyStore) Update(ctx context.Context, company *domain.Company) error {
	now := time.Now().UTC()
	company.UpdatedAt = &now
	return c.db.WithContext(ctx).Save(company).Error
}

func (c *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := c.db.WithContext(ctx).
		Preload("VerificationTokens").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
