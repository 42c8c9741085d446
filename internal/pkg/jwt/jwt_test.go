package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "15m")

	caller := worker.Caller{
		WorkerID: "worker-1",
		OrgID:    "org-1",
		Email:    "alice@example.com",
		Role:     worker.RoleStaff,
	}
	token, expiresAt, err := svc.GenerateAccessToken(caller)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	get := func(key string) interface{} {
		v, ok := decoded.Get(key)
		require.True(t, ok, "missing claim %s", key)
		return v
	}
	assert.Equal(t, "worker-1", get("worker_id"))
	assert.Equal(t, "org-1", get("org_id"))
	assert.Equal(t, "alice@example.com", get("email"))
	assert.Equal(t, string(worker.RoleStaff), get("role"))
	assert.Equal(t, "access", get("type"))
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken(worker.Caller{WorkerID: "worker-1"})
	assert.Error(t, err)
}

func TestSSETokenRoundtrip(t *testing.T) {
	svc := NewJWTService(testSecret, "15m")

	token, expiresIn, err := svc.GenerateSSEToken("worker-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	workerID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "worker-1", workerID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "15m")

	token, _, err := svc.GenerateAccessToken(worker.Caller{WorkerID: "worker-1", OrgID: "org-1"})
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}
