package usecase

import (
	authdomain "naturemillets-backend/internal/auth/domain"
	authdto "naturemillets-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	SignIn(req *authdto.SignInRequest) (*authdto.TokenResponse, error)
	SignUp(req *authdto.SignUpRequest) (*authdto.TokenResponse, error)
	GoogleSignIn(idToken string) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
	RegisterDevice(userID, token, deviceInfo string) error
	UnregisterDevice(token string) error
}
