// file: internals/helpers/token.go
package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"iflow_backend/internals/configs"
)

// TokenTTL: umur access token (selaras dengan frontend yang menyimpan 7 hari).
const TokenTTL = 7 * 24 * time.Hour

// CreateToken menerbitkan JWT HS256 dengan klaim user_id + username.
func CreateToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
