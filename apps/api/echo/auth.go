package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/daakhpc/StudentAdmissionSystem/core"
)

// appJWTConfig is the default JWT auth middleware config.
var appJWTConfig = middleware.JWTConfig{
	SigningKey:    []byte(core.Conf.SecretKey),
	SigningMethod: middleware.AlgorithmHS256,
	ContextKey:    "adminToken",
	Claims:        new(Claims),
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"` // -> ADMIN DASHBOARD
}

func GetAdminClaims(email string) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   email,
			Audience:  "AdminDashboard",
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email:   email,
		IsAdmin: true,
	}
}

// authenticate checks the credentials against the configured admin account.
func authenticate(email, pwd string) (*Claims, error) {
	email = core.CleanString(email, true /* lower */)
	if core.Conf.AdminEmail == "" || email != core.Conf.AdminEmail {
		return nil, errAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(core.Conf.AdminPasswordHash), []byte(pwd)); err != nil {
		return nil, errAuthenticationFailed
	}
	return GetAdminClaims(email), nil
}

// GenerateToken generates a signed JWT token string representing the admin Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}
