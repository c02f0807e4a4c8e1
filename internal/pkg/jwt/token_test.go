package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "ridemate-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "rider@example.com", models.RoleRider, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "rider@example.com", claims["email"])
	assert.Equal(t, models.RoleRider, claims["role"])
	assert.Equal(t, "ridemate-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(uuid.New(), "rider@example.com", models.RoleRider, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1 // already expired

	token, _, err := GenerateToken(uuid.New(), "rider@example.com", models.RoleRider, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	cfg := testJWTConfig()

	// Token signed with "none" must be rejected
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"user_id": uuid.New().String()})
	tokenString, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
}
