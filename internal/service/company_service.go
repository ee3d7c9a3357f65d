package service

import (
	"context"

	"companyreg/internal/dto"
)

// CompanyService is the registration workflow engine. Every method returns
// the uniform result envelope; failures are reported inside it, never as a
// Go error crossing the transport boundary.
type CompanyService interface {
	SignUp(ctx context.Context, r dto.SignUpRequest) dto.Result[dto.CompanyResponse]
	VerifyOtp(ctx context.Context, r dto.VerifyOtpRequest) dto.Result[string]
	SetPassword(ctx context.Context, r dto.SetPasswordRequest) dto.Result[string]
	Login(ctx context.Context, r dto.LoginRequest) dto.Result[dto.CompanyResponse]
	GetByID(ctx context.Context, id uint) dto.Result[dto.CompanyResponse]
	List(ctx context.Context) dto.Result[[]dto.CompanyResponse]
}
