package wiring

import (
	"context"
	"path/filepath"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfigs(store string) (*config.DriverConfig, *config.InternalConfig) {
	driverConfig := &config.DriverConfig{}
	internalConfig := &config.InternalConfig{
		Backend:    config.AppBackend{BaseUrl: "http://127.0.0.1:1/", RequestTimeoutInSeconds: 1},
		Credential: config.AppCredential{Store: store, StorageKey: "assessment:credential"},
		Report:     config.AppReport{FailureMarkers: "失败,failed", PollIntervalInSeconds: 1},
	}
	return driverConfig, internalConfig
}

func TestOpenDrivers_NothingConfigured(t *testing.T) {
	driverConfig, internalConfig := newTestConfigs(constvars.CredentialStoreMemory)

	bootstrap := OpenDrivers(driverConfig, internalConfig, zap.NewNop())

	assert.Nil(t, bootstrap.Redis)
	assert.Nil(t, bootstrap.MongoDB)
	assert.Nil(t, bootstrap.Minio)
	assert.Nil(t, bootstrap.RabbitMQ)
	assert.NoError(t, bootstrap.Shutdown(context.Background()))
}

func TestNewCore_MemoryStore(t *testing.T) {
	driverConfig, internalConfig := newTestConfigs(constvars.CredentialStoreMemory)
	bootstrap := OpenDrivers(driverConfig, internalConfig, zap.NewNop())

	core, err := NewCore(context.Background(), bootstrap)
	require.NoError(t, err)

	assert.False(t, core.CredentialStore.IsAuthenticated())
	assert.Nil(t, core.JournalRepository)
	assert.Equal(t, 1, core.Observers.Len())
	assert.Equal(t, models.ReportStatusUninitialized, core.Workflow.State().Status)
}

func TestNewCore_RestoresRedisCredential(t *testing.T) {
	server := miniredis.RunT(t)
	require.NoError(t, server.Set("assessment:credential", `"tok-1"`))
	require.NoError(t, server.Set("assessment:credential:last_submission", `"S9"`))

	driverConfig, internalConfig := newTestConfigs(constvars.CredentialStoreRedis)
	driverConfig.Redis = config.Redis{Host: server.Host(), Port: server.Port()}

	bootstrap := OpenDrivers(driverConfig, internalConfig, zap.NewNop())
	require.NotNil(t, bootstrap.Redis)

	core, err := NewCore(context.Background(), bootstrap)
	require.NoError(t, err)

	assert.True(t, core.CredentialStore.IsAuthenticated())
	assert.Equal(t, "tok-1", core.CredentialStore.CurrentCredential())
	assert.Equal(t, models.SubmissionID("S9"), core.Workflow.State().SubmissionID)
	assert.Equal(t, models.ReportStatusPending, core.Workflow.State().Status)
	assert.NoError(t, bootstrap.Shutdown(context.Background()))
}

func TestNewCore_FileStoreSurvivesRestart(t *testing.T) {
	driverConfig, internalConfig := newTestConfigs(constvars.CredentialStoreFile)
	internalConfig.Credential.FilePath = filepath.Join(t.TempDir(), "credential.json")

	first, err := NewCore(context.Background(), OpenDrivers(driverConfig, internalConfig, zap.NewNop()))
	require.NoError(t, err)
	require.NoError(t, first.CredentialStore.SetCredential(context.Background(), "tok-2"))

	second, err := NewCore(context.Background(), OpenDrivers(driverConfig, internalConfig, zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, "tok-2", second.CredentialStore.CurrentCredential())
}

func TestNewCore_ResumesLastSubmissionFromFile(t *testing.T) {
	ctx := context.Background()
	driverConfig, internalConfig := newTestConfigs(constvars.CredentialStoreFile)
	internalConfig.Credential.FilePath = filepath.Join(t.TempDir(), "credential.json")

	first, err := NewCore(ctx, OpenDrivers(driverConfig, internalConfig, zap.NewNop()))
	require.NoError(t, err)
	require.NoError(t, first.CredentialStore.SetCredential(ctx, "tok-3"))
	first.Workflow.Resume(ctx, "S7")
	first.Observers.SubmissionAccepted(ctx, first.Workflow.Draft(), first.Workflow.State())

	second, err := NewCore(ctx, OpenDrivers(driverConfig, internalConfig, zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, "tok-3", second.CredentialStore.CurrentCredential())
	assert.Equal(t, models.SubmissionID("S7"), second.Workflow.State().SubmissionID)

	second.Workflow.Reset(ctx)

	third, err := NewCore(ctx, OpenDrivers(driverConfig, internalConfig, zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, "tok-3", third.CredentialStore.CurrentCredential())
	assert.Equal(t, models.ReportStatusUninitialized, third.Workflow.State().Status)
}
