package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"showlink/internal/apperr"
	"showlink/internal/dao"
	"showlink/internal/version"
)

const claimsKey = "claims"

// TokenClaims is what the access and refresh tokens carry: the upstream
// platform sessions of the signed in player.
type TokenClaims struct {
	jwt.RegisteredClaims
	GameChatToken       string `json:"gameChatToken,omitempty"`
	PlayFabId           string `json:"playFabId,omitempty"`
	PlayFabSessionToken string `json:"playFabSessionToken,omitempty"`
	EntityToken         string `json:"entityToken,omitempty"`
	Email               string `json:"email,omitempty"`
	Role                string `json:"role,omitempty"`
}

func (tc *TokenClaims) IsGuest() bool {
	return tc.GameChatToken != "" && tc.PlayFabSessionToken != ""
}

func (tc *TokenClaims) IsUser() bool {
	return tc.GameChatToken != "" && tc.PlayFabId != "" && tc.PlayFabSessionToken != "" && tc.Email != ""
}

func (tc *TokenClaims) IsProducer() bool {
	return tc.IsUser() && tc.Role == dao.RoleProducer
}

func SignToken(claims TokenClaims, secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" || ttl <= 0 {
		return "", apperr.Config(apperr.MsgMissingCredentials)
	}
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    version.APP,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies tokenStr and checks its time claims against now, the
// same clock the token was signed with.
func ParseToken(tokenStr, secret string, now func() time.Time) (*TokenClaims, error) {
	if secret == "" {
		return nil, apperr.Config(apperr.MsgMissingCredentials)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(now))
	if err != nil || !token.Valid {
		return nil, apperr.Wrap(http.StatusUnauthorized, apperr.MsgAccessDenied, err)
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, apperr.Permission(apperr.MsgAccessDenied)
	}
	return claims, nil
}

// tokenFromHeader accepts both a bare token and "Bearer <token>".
func tokenFromHeader(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}

func (s *Server) mustBe(allowed func(*TokenClaims) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromHeader(c)
		if tokenStr == "" {
			s.writeError(c, http.StatusUnauthorized, apperr.Permission(apperr.MsgAccessDenied))
			return
		}
		claims, err := ParseToken(tokenStr, s.conf.Jwt.Secret, s.now)
		if err != nil || !allowed(claims) {
			s.writeError(c, http.StatusUnauthorized, apperr.Permission(apperr.MsgAccessDenied))
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func (s *Server) MustBeGuest() gin.HandlerFunc {
	return s.mustBe((*TokenClaims).IsGuest)
}

func (s *Server) MustBeUser() gin.HandlerFunc {
	return s.mustBe((*TokenClaims).IsUser)
}

func (s *Server) MustBeProducer() gin.HandlerFunc {
	return s.mustBe((*TokenClaims).IsProducer)
}

func getClaims(c *gin.Context) *TokenClaims {
	return c.MustGet(claimsKey).(*TokenClaims)
}
