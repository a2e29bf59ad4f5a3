package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"psychology-assessment-client/internal/app/models"
	sharedRedis "psychology-assessment-client/internal/app/services/shared/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingPersistence struct {
	err error
}

func (f *failingPersistence) Load(ctx context.Context) (string, error)          { return "", f.err }
func (f *failingPersistence) Save(ctx context.Context, credential string) error { return f.err }
func (f *failingPersistence) Delete(ctx context.Context) error                  { return f.err }

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func TestCredentialStore_SetAndClear(t *testing.T) {
	ctx := context.Background()
	persistence := NewMemoryCredentialPersistence()
	store := NewCredentialStore(persistence, zap.NewNop())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.CurrentCredential())

	token := signedToken(t, "alice")
	require.NoError(t, store.SetCredential(ctx, token))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, token, store.CurrentCredential())
	assert.Equal(t, "alice", store.Identity().Subject)
	persisted, _ := persistence.Load(ctx)
	assert.Equal(t, token, persisted)

	store.SetUser(&models.User{ID: 1, Username: "alice"})
	require.NotNil(t, store.Identity().User)

	require.NoError(t, store.ClearCredential(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, models.Identity{}, store.Identity())
	persisted, _ = persistence.Load(ctx)
	assert.Empty(t, persisted)
}

func TestCredentialStore_OpaqueCredential(t *testing.T) {
	store := NewCredentialStore(NewMemoryCredentialPersistence(), zap.NewNop())

	require.NoError(t, store.SetCredential(context.Background(), "not-a-jwt"))

	assert.True(t, store.IsAuthenticated(), "presence is the only check")
	assert.Empty(t, store.Identity().Subject)

	store.SetUser(&models.User{Username: "bob"})
	assert.Equal(t, "bob", store.Identity().Subject)
}

func TestCredentialStore_SetUserWithoutCredential(t *testing.T) {
	store := NewCredentialStore(NewMemoryCredentialPersistence(), zap.NewNop())

	store.SetUser(&models.User{Username: "ghost"})

	assert.Nil(t, store.Identity().User)
}

func TestCredentialStore_SetCredentialPersistenceFailure(t *testing.T) {
	store := NewCredentialStore(&failingPersistence{err: errors.New("disk full")}, zap.NewNop())

	err := store.SetCredential(context.Background(), "abc")

	assert.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestCredentialStore_ClearCredentialPersistenceFailure(t *testing.T) {
	persistence := &failingPersistence{}
	store := NewCredentialStore(persistence, zap.NewNop())
	require.NoError(t, store.SetCredential(context.Background(), "abc"))
	persistence.err = errors.New("disk gone")

	err := store.ClearCredential(context.Background())

	assert.Error(t, err)
	assert.False(t, store.IsAuthenticated(), "memory is cleared even when persistence fails")
}

func TestCredentialStore_RestoreFromFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "credential.json")
	token := signedToken(t, "carol")

	first := NewCredentialStore(NewFileCredentialPersistence(path, "token"), zap.NewNop())
	require.NoError(t, first.SetCredential(ctx, token))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second := NewCredentialStore(NewFileCredentialPersistence(path, "token"), zap.NewNop())
	require.NoError(t, second.Restore(ctx))
	assert.Equal(t, token, second.CurrentCredential())
	assert.Equal(t, "carol", second.Identity().Subject)

	require.NoError(t, second.ClearCredential(ctx))
	third := NewCredentialStore(NewFileCredentialPersistence(path, "token"), zap.NewNop())
	require.NoError(t, third.Restore(ctx))
	assert.False(t, third.IsAuthenticated())
}

func TestFileCredentialPersistence_KeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credential.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))
	persistence := NewFileCredentialPersistence(path, "token")

	require.NoError(t, persistence.Save(ctx, "abc"))
	require.NoError(t, persistence.Delete(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(data))
}

func TestFileCredentialPersistence_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := NewFileCredentialPersistence(path, "token").Load(context.Background())

	assert.Error(t, err)
}

func TestCredentialStore_RestoreFromRedis(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	repository := sharedRedis.NewRedisRepository(client)

	first := NewCredentialStore(NewRedisCredentialPersistence(repository, "token"), zap.NewNop())
	require.NoError(t, first.SetCredential(ctx, "abc"))
	assert.True(t, server.Exists("token"))
	assert.Equal(t, time.Duration(0), server.TTL("token"), "the credential has no expiry")

	second := NewCredentialStore(NewRedisCredentialPersistence(repository, "token"), zap.NewNop())
	require.NoError(t, second.Restore(ctx))
	assert.Equal(t, "abc", second.CurrentCredential())

	require.NoError(t, second.ClearCredential(ctx))
	assert.False(t, server.Exists("token"))
}
