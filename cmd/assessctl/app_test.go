package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliBackend struct {
	mu       sync.Mutex
	paths    []string
	auth     []string
	statuses []string
}

func (b *cliBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paths = append(b.paths, r.URL.Path)
	b.auth = append(b.auth, r.Header.Get("Authorization"))

	switch r.URL.Path {
	case "/auth/token":
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	case "/auth/users/me":
		w.Write([]byte(`{"id":3,"username":"alice","is_active":true}`))
	case "/scales":
		w.Write([]byte(`{"scales":[{"code":"PHQ9","name":"Patient Health Questionnaire"}]}`))
	case "/scales/PHQ9/questions":
		w.Write([]byte(`{"questions":[{"number":1,"text":"Little interest","options":[{"text":"Not at all","score":0}]}]}`))
	case "/assessments/submit":
		w.Write([]byte(`{"status":"success","message":"submitted","submission_id":"S1"}`))
	case "/reports/S1/status":
		status := "processing"
		if len(b.statuses) > 0 {
			status, b.statuses = b.statuses[0], b.statuses[1:]
		}
		w.Write([]byte(`{"status":"` + status + `"}`))
	case "/reports/S1":
		w.Write([]byte(`{"report":{"report_text":"narrative"}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not Found"}`))
	}
}

func (b *cliBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.paths)
}

type cliFixture struct {
	backend        *cliBackend
	server         *httptest.Server
	credentialFile string
}

func newCLIFixture(t *testing.T) *cliFixture {
	backend := &cliBackend{}
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return &cliFixture{
		backend:        backend,
		server:         server,
		credentialFile: filepath.Join(t.TempDir(), "credential.json"),
	}
}

// run executes one assessctl invocation with fresh configuration, the way
// separate shell commands would.
func (f *cliFixture) run(args ...string) (string, error) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "error"}}
	internalConfig := &config.InternalConfig{
		Backend: config.AppBackend{RequestTimeoutInSeconds: 5},
		Credential: config.AppCredential{
			Store:      constvars.CredentialStoreFile,
			StorageKey: "token",
		},
		Report: config.AppReport{FailureMarkers: "失败,failed", PollIntervalInSeconds: 1},
		App:    config.App{RequestBodyLimitInMegabyte: 5},
	}

	out := &bytes.Buffer{}
	cmd := rootCmd(driverConfig, internalConfig, out)
	cmd.SetArgs(append([]string{"--backend", f.server.URL, "--credential-file", f.credentialFile}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[int]string
		wantErr bool
	}{
		{name: "pairs", pairs: []string{"1=a", " 2 = b "}, want: map[int]string{1: "a", 2: "b"}},
		{name: "empty", pairs: nil, want: map[int]string{}},
		{name: "missing separator", pairs: []string{"1a"}, wantErr: true},
		{name: "empty value", pairs: []string{"1="}, wantErr: true},
		{name: "zero ordinal", pairs: []string{"0=a"}, wantErr: true},
		{name: "non numeric ordinal", pairs: []string{"q1=a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswers(tt.pairs)
			if tt.wantErr {
				assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLI_LoginPersistsBetweenInvocations(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as alice")

	out, err = f.run("whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	out, err = f.run("logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", out)

	out, err = f.run("whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in\n", out)
}

func TestCLI_LoginValidatesInput(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run("login", "-u", "al", "-p", "x")

	assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidInput))
	assert.Equal(t, 0, f.backend.requestCount())
}

func TestCLI_ScalesRequireLogin(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run("scales")

	assert.True(t, exceptions.IsKind(err, exceptions.KindUnauthorized))
	assert.Equal(t, 0, f.backend.requestCount())
}

func TestCLI_ScalesAndQuestions(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)

	out, err := f.run("scales")
	require.NoError(t, err)
	assert.Contains(t, out, "PHQ9")
	assert.Contains(t, out, "Patient Health Questionnaire")

	out, err = f.run("questions", "PHQ9")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Little interest")
	assert.Contains(t, out, "[0] Not at all")
}

func TestCLI_SubmitAndWatch(t *testing.T) {
	f := newCLIFixture(t)
	f.backend.statuses = []string{"processing", "complete"}
	_, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)

	out, err := f.run("submit", "--scale", "PHQ9", "-a", "1=a", "-a", "2=b", "--name", "Ann", "--age", "30", "--watch", "--interval", "10ms")

	require.NoError(t, err)
	assert.Contains(t, out, "Submitted S1 (pending)")
	assert.Contains(t, out, "status: processing")
	assert.Contains(t, out, "status: complete")
	assert.Contains(t, out, "narrative")

	f.backend.mu.Lock()
	defer f.backend.mu.Unlock()
	assert.Equal(t, "Bearer tok", f.backend.auth[len(f.backend.auth)-1])
}

func TestCLI_SubmitWithoutScaleMakesNoCall(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)
	before := f.backend.requestCount()

	_, err = f.run("submit", "-a", "1=a")

	assert.True(t, exceptions.IsKind(err, exceptions.KindIncompleteDraft))
	assert.Equal(t, before, f.backend.requestCount())
}

func TestCLI_SubmitThenFollowInLaterInvocations(t *testing.T) {
	f := newCLIFixture(t)
	f.backend.statuses = []string{"processing"}
	_, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)

	out, err := f.run("status")
	require.NoError(t, err)
	assert.Equal(t, "No submission\n", out)

	out, err = f.run("submit", "--scale", "PHQ9", "-a", "1=a")
	require.NoError(t, err)
	assert.Contains(t, out, "Submitted S1 (pending)")

	out, err = f.run("status")
	require.NoError(t, err)
	assert.Equal(t, "S1 status: processing\n", out)

	out, err = f.run("report")
	require.NoError(t, err)
	assert.Equal(t, "narrative\n", out)

	f.backend.mu.Lock()
	defer f.backend.mu.Unlock()
	assert.Contains(t, f.backend.paths, "/reports/S1/status")
	assert.Equal(t, "/reports/S1", f.backend.paths[len(f.backend.paths)-1])
}

func TestCLI_StatusWatchReportsFailure(t *testing.T) {
	f := newCLIFixture(t)
	f.backend.statuses = []string{"processing", "failed"}
	_, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)
	_, err = f.run("submit", "--scale", "PHQ9", "-a", "1=a")
	require.NoError(t, err)

	out, err := f.run("status", "--watch", "--interval", "10ms")

	assert.True(t, exceptions.IsKind(err, exceptions.KindServerError))
	assert.Contains(t, out, "status: processing")
	assert.Contains(t, out, "status: failed")
}

func TestCLI_RejectsNonPositiveInterval(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.run("login", "-u", "alice", "-p", "secret1")
	require.NoError(t, err)
	before := f.backend.requestCount()

	for _, interval := range []string{"0", "-1s"} {
		_, err = f.run("submit", "--scale", "PHQ9", "-a", "1=a", "--watch", "--interval", interval)
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidInput), interval)
	}
	assert.Equal(t, before, f.backend.requestCount())

	_, err = pollLimiter(10 * time.Millisecond)
	assert.NoError(t, err)
}

func TestPrintProgress(t *testing.T) {
	out := &bytes.Buffer{}
	a := &app{out: out}
	progress := a.printProgress()
	pending := models.ReportState{SubmissionID: "S1", Status: models.ReportStatusPending}

	progress(pending, exceptions.ErrNetworkUnreachable(nil, "/reports/S1/status"))
	assert.Contains(t, out.String(), "poll failed, retrying: ")

	out.Reset()
	progress(pending, exceptions.ErrUnauthorized(nil, "/reports/S1/status"))
	assert.Contains(t, out.String(), "poll failed: ")
	assert.NotContains(t, out.String(), "retrying")

	out.Reset()
	failed := models.ReportState{SubmissionID: "S1", Status: models.ReportStatusFailed}
	progress(failed, exceptions.ErrDecodeResponse(nil, "/reports/S1/status"))
	assert.NotContains(t, out.String(), "retrying")
}

func TestCLI_FlagDefaultsFollowConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{
		Credential: config.AppCredential{FilePath: "/tmp/assess/credential.json"},
	}

	cmd := rootCmd(driverConfig, internalConfig, &bytes.Buffer{})

	assert.Equal(t, "warn", cmd.PersistentFlags().Lookup("log-level").DefValue)
	assert.Equal(t, "/tmp/assess/credential.json", cmd.PersistentFlags().Lookup("credential-file").DefValue)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, constvars.ErrClientNotLoggedIn+" (unauthorized)", errorDetail(exceptions.ErrNotLoggedIn(nil)))
}
