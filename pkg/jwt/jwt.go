package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims standards JWT plus les champs propres à l'application.
// Kind porte le type de profil résolu (supplier, pharmacy, admin, none) et
// Verified le drapeau de vérification — purement indicatif, le routage ne
// s'en sert jamais comme barrière.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Kind     string `json:"kind"`
	Verified bool   `json:"verified"`
}

// Generate génère un jeton JWT signé portant userID, kind et verified.
func Generate(secret, userID, kind string, verified bool, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		Kind:     kind,
		Verified: verified,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valide le jeton et renvoie userID, kind et verified.
// Erreur si le jeton est invalide, expiré ou mal signé.
func Parse(secret, tokenString string) (userID, kind string, verified bool, err error) {
	if secret == "" {
		return "", "", false, fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", false, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", false, fmt.Errorf("claims invalides")
	}
	return claims.UserID, claims.Kind, claims.Verified, nil
}
