package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenLifecycle(t *testing.T) {
	u := User{}
	assert.False(t, u.IsTokenValid())

	require.NoError(t, u.GenerateToken())
	assert.NotEmpty(t, u.Token)
	require.NotNil(t, u.TokenExp)
	assert.True(t, u.IsTokenValid())

	u.ClearToken()
	assert.Empty(t, u.Token)
	assert.Nil(t, u.TokenExp)
	assert.False(t, u.IsTokenValid())
}

func TestUserExpiredToken(t *testing.T) {
	u := User{}
	require.NoError(t, u.GenerateToken())

	past := time.Now().Add(-time.Minute)
	u.TokenExp = &past
	assert.False(t, u.IsTokenValid())
}

func TestUserTokensAreUnique(t *testing.T) {
	a, b := User{}, User{}
	require.NoError(t, a.GenerateToken())
	require.NoError(t, b.GenerateToken())
	assert.NotEqual(t, a.Token, b.Token)
}
