package models

import "github.com/golang-jwt/jwt"

type Claims struct {
	BuyerID string `json:"buyer_id"`
	Role    string `json:"role"`
	jwt.StandardClaims
}
