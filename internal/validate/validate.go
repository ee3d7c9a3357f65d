// Package validate implements field-level validation for the registration
// workflow. Each Check* function returns every message that applies, so
// callers can report all input problems in one round trip.
package validate

import (
	"net/mail"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"companyreg/internal/dto"
)

const (
	maxNameLen     = 255
	maxEmailLen    = 255
	maxWebsiteLen  = 500
	maxLogoSize    = 15 * 1024 * 1024
	minPasswordLen = 7
)

var (
	phoneRe  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	otpRe    = regexp.MustCompile(`^\d{6}$`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
	logoExts = map[string]struct{}{".jpg": {}, ".jpeg": {}, ".png": {}}
)

func SignUp(r dto.SignUpRequest) []string {
	var errs []string
	if strings.TrimSpace(r.ArabicName) == "" {
		errs = append(errs, "Arabic company name is required")
	} else if len(r.ArabicName) > maxNameLen {
		errs = append(errs, "Arabic company name must not exceed 255 characters")
	}
	if strings.TrimSpace(r.EnglishName) == "" {
		errs = append(errs, "English company name is required")
	} else if len(r.EnglishName) > maxNameLen {
		errs = append(errs, "English company name must not exceed 255 characters")
	}
	errs = append(errs, email(r.Email)...)
	if r.Phone != "" && !phoneRe.MatchString(r.Phone) {
		errs = append(errs, "Invalid phone number format")
	}
	if r.WebsiteURL != "" {
		if u, err := url.Parse(r.WebsiteURL); err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, "Invalid website URL format")
		} else if len(r.WebsiteURL) > maxWebsiteLen {
			errs = append(errs, "Website URL must not exceed 500 characters")
		}
	}
	if r.Logo != nil {
		if !AllowedLogoExtension(r.Logo.Filename) {
			errs = append(errs, "Logo must be a valid image file (jpg, jpeg, png)")
		}
		if r.Logo.Size > maxLogoSize {
			errs = append(errs, "Logo file size must not exceed 15MB")
		}
	}
	return errs
}

func VerifyOtp(r dto.VerifyOtpRequest) []string {
	var errs []string
	if r.CompanyID == 0 {
		errs = append(errs, "Valid company ID is required")
	}
	errs = append(errs, otpCode(r.OtpCode)...)
	return errs
}

func SetPassword(r dto.SetPasswordRequest) []string {
	var errs []string
	if r.CompanyID == 0 {
		errs = append(errs, "Valid company ID is required")
	}
	errs = append(errs, otpCode(r.OtpCode)...)
	switch {
	case r.NewPassword == "":
		errs = append(errs, "Password is required")
	default:
		if len(r.NewPassword) < minPasswordLen {
			errs = append(errs, "Password must be at least 7 characters long")
		}
		if !upperRe.MatchString(r.NewPassword) {
			errs = append(errs, "Password must contain at least one uppercase letter")
		}
		if !digitRe.MatchString(r.NewPassword) {
			errs = append(errs, "Password must contain at least one number")
		}
		if !symbolRe.MatchString(r.NewPassword) {
			errs = append(errs, "Password must contain at least one special character")
		}
	}
	if r.ConfirmPassword == "" {
		errs = append(errs, "Password confirmation is required")
	} else if r.ConfirmPassword != r.NewPassword {
		errs = append(errs, "Passwords do not match")
	}
	return errs
}

func Login(r dto.LoginRequest) []string {
	var errs []string
	errs = append(errs, email(r.Email)...)
	if r.Password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}

// AllowedLogoExtension reports whether the filename carries an extension
// from the image allow-list.
func AllowedLogoExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := logoExts[ext]
	return ok
}

func email(addr string) []string {
	if strings.TrimSpace(addr) == "" {
		return []string{"Email is required"}
	}
	var errs []string
	if a, err := mail.ParseAddress(addr); err != nil || a.Address != addr {
		errs = append(errs, "Invalid email format")
	}
	if len(addr) > maxEmailLen {
		errs = append(errs, "Email must not exceed 255 characters")
	}
	return errs
}

func otpCode(code string) []string {
	if code == "" {
		return []string{"OTP code is required"}
	}
	if !otpRe.MatchString(code) {
		return []string{"OTP code must be 6 digits"}
	}
	return nil
}
