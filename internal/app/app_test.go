package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/denmor86/ya-pedidos/internal/config"
	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/mailer"
	"github.com/denmor86/ya-pedidos/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	cfg.Server.ListenAddr = "127.0.0.1:0"
	cfg.Server.UploadsDir = filepath.Join(t.TempDir(), "nested", "uploads")
	cfg.Server.PublicDir = t.TempDir()
	return cfg
}

func TestNew(t *testing.T) {
	testCases := []struct {
		TestName           string
		SetupMail          func(cfg *config.MailConfig)
		ExpectedMailerType bool
	}{
		{
			TestName:  "Mail not configured #1",
			SetupMail: func(cfg *config.MailConfig) {},
		},
		{
			TestName: "Mail configured #2",
			SetupMail: func(cfg *config.MailConfig) {
				cfg.Username = "streakxit@gmail.com"
				cfg.Password = "app-password"
			},
			ExpectedMailerType: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			cfg := testConfig(t)
			tc.SetupMail(&cfg.Mail)

			app, err := New(cfg)
			require.NoError(t, err)

			info, err := os.Stat(cfg.Server.UploadsDir)
			require.NoError(t, err, "uploads dir must be created on startup")
			assert.True(t, info.IsDir())

			notifications, ok := app.Orders.Notifier.(*services.Notifications)
			require.True(t, ok)
			if tc.ExpectedMailerType {
				assert.IsType(t, &mailer.Mailer{}, notifications.Mail)
			} else {
				assert.Nil(t, notifications.Mail)
			}

			w := httptest.NewRecorder()
			app.Server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestNew_UploadsDirError(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg.Server.UploadsDir = filepath.Join(blocker, "uploads")

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
