package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/utils"
)

const accessTokenTTL = 12 * time.Hour

// AuthService validates the configured buyer credential and issues session
// tokens.
type AuthService struct {
	Tokens       *utils.Manager
	BuyerID      string
	PasswordHash string
}

type SignInResult struct {
	BuyerID      string `json:"buyerId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s *AuthService) SignIn(ctx context.Context, buyerID, password string) (SignInResult, error) {
	if buyerID != s.BuyerID {
		return SignInResult{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
		return SignInResult{}, models.ErrInvalidCredentials
	}

	access, err := s.Tokens.NewJWT(buyerID, accessTokenTTL)
	if err != nil {
		return SignInResult{}, err
	}
	refresh, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return SignInResult{}, err
	}
	return SignInResult{BuyerID: buyerID, AccessToken: access, RefreshToken: refresh}, nil
}
