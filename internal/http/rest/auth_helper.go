package rest

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/util/values"
	"github.com/pkg/errors"
)

type TokenClaims struct {
	UserID int64
	Exp    int64
}

// Simplified token creation
func (api *API) createToken(id int64) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(id, 10),
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) verifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(api.Config.JwtSecret), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.New("token expired")
		}
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	exp, _ := claims["exp"].(float64)
	return &TokenClaims{UserID: userID, Exp: int64(exp)}, nil
}

// RegisterDeviceHelper upserts the user for a device identifier and issues a
// session token. An already-known device gets its last_active bumped.
func (api *API) RegisterDeviceHelper(ctx context.Context, req model.RegisterDeviceRequest) (model.RegisterDeviceResponse, string, string, error) {
	user, err := api.Deps.Store.UpsertUserByDevice(ctx, req.DeviceID, req.IsAdmin)
	if err != nil {
		return model.RegisterDeviceResponse{}, values.Error, "Failed to register device", err
	}

	token, expiresAt, err := api.createToken(user.ID)
	if err != nil {
		return model.RegisterDeviceResponse{}, values.Error, "Failed to create session token", err
	}

	resp := model.RegisterDeviceResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}
	return resp, values.Created, "Device registered successfully", nil
}
