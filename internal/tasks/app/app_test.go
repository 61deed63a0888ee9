package app

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ReleasesResourcesWhenServerFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKS_DATABASE_FILE", filepath.Join(dir, "tasks.db"))
	t.Setenv("TASKS_PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("TASKS_UPLOAD_ROOT", filepath.Join(dir, "images"))

	// Hold the port so ListenAndServe fails straight away.
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	app, err := New(cfg)
	require.NoError(t, err)

	err = app.Run()
	require.ErrorContains(t, err, "server failed")

	require.Error(t, app.db.Ping(context.Background()), "database should be closed")
	require.Panics(t, app.housekeepingService.Stop, "housekeeping should already be stopped")
}
