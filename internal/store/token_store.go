package store

import (
	"context"
	"errors"
	"time"

	"companyreg/internal/domain"

	"gorm.io/gorm"
)

type TokenStore struct{ db *gorm.DB }

func (s *Store) Tokens() *TokenStore { return &TokenStore{db: s.DB} }

func (t *TokenStore) Create(ctx context.Context, token *domain.VerificationToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}
	return t.db.WithContext(ctx).Create(token).Error
}

// FindValid returns the token for (companyID, code, kind) that is unused
// and not yet expired, or ErrRecordNotFound.
func (t *TokenStore) FindValid(ctx context.Context, companyID uint, code string, kind domain.TokenKind) (*domain.VerificationToken, error) {
	var token domain.VerificationToken
	err := t.db.WithContext(ctx).
		Where("company_id = ? AND code = ? AND kind = ? AND used = ? AND expires_at > ?",
			companyID, code, kind, false, time.Now().UTC()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &token, nil
}

// Consume marks the token used only if it is currently unused. A lost race
// surfaces as ErrTokenConsumed instead of a silent double redemption.
func (t *TokenStore) Consume(ctx context.Context, tokenID uint) error {
	res := t.db.WithContext(ctx).Model(&domain.VerificationToken{}).
		Where("id = ? AND used = ?", tokenID, false).
		Update("used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTokenConsumed
	}
	return nil
}

// InvalidateAll marks every unused token of that company and kind as used
// and returns how many were swept.
func (t *TokenStore) InvalidateAll(ctx context.Context, companyID uint, kind domain.TokenKind) (int64, error) {
	res := t.db.WithContext(ctx).Model(&domain.VerificationToken{}).
		Where("company_id = ? AND kind = ? AND used = ?", companyID, kind, false).
		Update("used", true)
	return res.RowsAffected, res.Error
}
