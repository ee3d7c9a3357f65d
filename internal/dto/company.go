package dto

import (
	"io"
	"time"

	"companyreg/internal/domain"
)

type SignUpRequest struct {
	ArabicName  string `json:"arabicName"`
	EnglishName string `json:"englishName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Logo        *LogoUpload
}

// LogoUpload carries a multipart file without binding the workflow to
// net/http types.
type LogoUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// CompanyResponse is the public projection of a company: no credential
// material ever leaves the service.
type CompanyResponse struct {
	ID            uint      `json:"id"`
	ArabicName    string    `json:"arabicName"`
	EnglishName   string    `json:"englishName"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	WebsiteURL    *string   `json:"websiteUrl,omitempty"`
	LogoPath      *string   `json:"logoPath,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		ArabicName:    c.ArabicName,
		EnglishName:   c.EnglishName,
		Email:         c.Email,
		Phone:         c.Phone,
		WebsiteURL:    c.WebsiteURL,
		LogoPath:      c.LogoPath,
		EmailVerified: c.EmailVerified,
		CreatedAt:     c.CreatedAt,
	}
}
