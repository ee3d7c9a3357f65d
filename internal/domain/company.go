package domain

import "time"

type Company struct {
	ID            uint       `gorm:"primaryKey" db:"id" json:"id"`
	ArabicName    string     `gorm:"type:varchar(255);not null" db:"arabic_name" json:"arabicName"`
	EnglishName   string     `gorm:"type:varchar(255);not null" db:"english_name" json:"englishName"`
	Email         string     `gorm:"type:citext;uniqueIndex:ux_companies_email" db:"email" json:"email"`
	Phone         *string    `gorm:"type:varchar(15)" db:"phone" json:"phone,omitempty"`
	WebsiteURL    *string    `gorm:"type:varchar(500)" db:"website_url" json:"websiteUrl,omitempty"`
	LogoPath      *string    `gorm:"type:text" db:"logo_path" json:"logoPath,omitempty"`
	PasswordHash  *string    `gorm:"type:text" db:"password_hash" json:"-"`
	EmailVerified bool       `gorm:"not null;default:false" db:"email_verified" json:"emailVerified"`
	CreatedAt     time.Time  `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updatedAt,omitempty"`

	VerificationTokens []VerificationToken `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Company) TableName() string { return "companies" }

// AccountState is the explicit registration state of a company account.
// The persisted representation stays the (email_verified, password_hash)
// column pair; State derives the enum so transitions can switch on it.
type AccountState int

const (
	StateUnverified AccountState = iota
	StateVerified
	StateCredentialed
)

func (s AccountState) String() string {
	switch s {
	case StateUnverified:
		return "unverified"
	case StateVerified:
		return "verified"
	case StateCredentialed:
		return "credentialed"
	default:
		return "unknown"
	}
}

func (c *Company) State() AccountState {
	switch {
	case !c.EmailVerified:
		return StateUnverified
	case c.PasswordHash == nil || *c.PasswordHash == "":
		return StateVerified
	default:
		return StateCredentialed
	}
}

// CanAuthenticate reports whether the account completed the full
// verify-then-set-password flow.
func (c *Company) CanAuthenticate() bool { return c.State() == StateCredentialed }
