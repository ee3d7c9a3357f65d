package domain

import "time"

// TokenKind is the purpose a verification token was issued for. New kinds
// (password reset etc.) are additive and need no schema change.
type TokenKind string

const (
	TokenKindEmailVerification TokenKind = "email_verification"
)

type VerificationToken struct {
	ID        uint      `gorm:"primaryKey" db:"id" json:"id"`
	CompanyID uint      `gorm:"index;not null" db:"company_id" json:"companyId"`
	Code      string    `gorm:"type:varchar(6);not null" db:"code" json:"-"`
	Kind      TokenKind `gorm:"type:varchar(64);not null" db:"kind" json:"kind"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null" db:"expires_at" json:"expiresAt"`
	Used      bool      `gorm:"not null;default:false" db:"used" json:"used"`
}

func (VerificationToken) TableName() string { return "verification_tokens" }

// ValidAt reports whether the token is still redeemable: unused and not
// yet expired.
func (t *VerificationToken) ValidAt(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
