package utils

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
)

var JwtSecret []byte

func init() {
	// Load the .env file
	if err := godotenv.Load(); err != nil {
		// It's okay if the .env file isn't found; environment variables may be set elsewhere
		log.Println("No .env file found or error loading .env file:", err)
	}

	secret := os.Getenv("API_JWT_SECRET")
	if secret == "" {
		log.Fatal("API_JWT_SECRET is not set in the environment")
	}

	JwtSecret = []byte(secret)
}

// GenerateAPIToken creates a JWT for a storefront client calling the
// checkout endpoints.
func GenerateAPIToken(clientID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"client_id": clientID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	})

	return token.SignedString(JwtSecret)
}

// ExtractClientIDFromToken validates a bearer token and returns the client id.
func ExtractClientIDFromToken(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization header format")
	}

	tokenString := parts[1]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})

	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	clientID, ok := claims["client_id"].(string)
	if !ok {
		return "", errors.New("invalid client ID in token")
	}

	return clientID, nil
}
