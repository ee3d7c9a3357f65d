package dto

type VerifyOtpRequest struct {
	CompanyID uint   `json:"companyId"`
	OtpCode   string `json:"otpCode"`
}

type SetPasswordRequest struct {
	CompanyID       uint   `json:"companyId"`
	OtpCode         string `json:"otpCode"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Opaque success markers for operations without a payload.
const (
	MarkerOtpVerified = "OTP_VERIFIED"
	MarkerPasswordSet = "PASSWORD_SET"
)
