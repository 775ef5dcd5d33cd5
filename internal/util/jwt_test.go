package util

import (
	"testing"
	"time"

	"shakti_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Email:     "asha@example.org",
		Role:      model.Seller,
	}

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.Seller, claims.Role)
	assert.Equal(t, "asha@example.org", claims.Email)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}
	token, err := GenerateJWT(user, "right-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWT_Expired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}
	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// A rejected token must always carry a non-nil error, so the middleware's
// error branch is what turns it away rather than a caller's nil check.
func TestParseJWT_RejectionAlwaysErrors(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		claims, err := ParseJWT(token, "secret")
		assert.Error(t, err, "token %q", token)
		assert.Nil(t, claims, "token %q", token)
	}
}
