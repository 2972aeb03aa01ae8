package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "roadbuddy-client",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("user-1", "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, "roadbuddy-client", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("user-1", "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Expiration = -1

	token, _, err := GenerateToken("user-1", "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
