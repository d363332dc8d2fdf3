package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateUserJWT(t *testing.T) {
	key := []byte("secret")
	subject := Subject{ID: 42, Email: "agent@example.com", UserTypeID: 2}

	tokenStr, err := GenerateUserJWT(subject, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(tokenStr, key)
	require.NoError(t, err)
	assert.Equal(t, subject.ID, claims.UserID)
	assert.Equal(t, subject.Email, claims.Email)
	assert.Equal(t, subject.UserTypeID, claims.UserTypeID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateUserJWT_Errors(t *testing.T) {
	key := []byte("secret")

	expired, err := GenerateUserJWT(Subject{ID: 1}, -time.Minute, key)
	require.NoError(t, err)
	_, expErr := ValidateUserJWT(expired, key)
	require.ErrorIs(t, expErr, ErrTokenExpired)

	valid, err := GenerateUserJWT(Subject{ID: 1}, time.Hour, key)
	require.NoError(t, err)
	_, keyErr := ValidateUserJWT(valid, []byte("another secret"))
	require.Error(t, keyErr)

	_, garbageErr := ValidateUserJWT("not-a-token", key)
	require.Error(t, garbageErr)
}
