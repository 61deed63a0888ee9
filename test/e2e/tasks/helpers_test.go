package tasks_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for tasks service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "tasks-service-test:latest"

	testFullName = "Jane Citizen"
	testPassword = "Password1!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Tasks Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Tasks Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/tasks/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv is the environment every test container starts with.
func baseEnv() map[string]string {
	return map[string]string{
		"ENV":        "dev",
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",
	}
}

// relaxedEnv lifts the rate limits and the login delay so tests can make
// many rapid requests.
func relaxedEnv() map[string]string {
	env := baseEnv()
	maps.Copy(env, map[string]string{
		"TASKS_LOGIN_DELAY":           "0s",
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
	return env
}

// startContainer starts the tasks service and returns a client for it.
func startContainer(t *testing.T, env map[string]string) *tasksdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return tasksdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// setupTasksContainer starts the service with relaxed limits.
func setupTasksContainer(t *testing.T) *tasksdk.Client {
	t.Helper()
	return startContainer(t, relaxedEnv())
}

// registerAndLogin creates username and opens a session for it.
func registerAndLogin(t *testing.T, client *tasksdk.Client, username string) *tasksdk.Session {
	t.Helper()

	_, err := client.Register(t.Context(), testFullName, username, testPassword)
	require.NoError(t, err)

	session, err := client.Login(t.Context(), username, testPassword)
	require.NoError(t, err)
	return session
}

func createTask(t *testing.T, session *tasksdk.Session, title string) *tasksdk.TaskResponse {
	t.Helper()
	task, err := session.CreateTask(t.Context(), tasksdk.TaskRequest{
		Title:     tasksdk.String(title),
		Completed: tasksdk.String("N"),
	})
	require.NoError(t, err)
	return task
}

// pngImage returns a small valid PNG.
func pngImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// requireAPIError asserts err is an API error with status and message.
func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var apiErr *tasksdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *tasksdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	if message != "" {
		require.True(t, apiErr.HasMessage(message), "missing %q in %v", message, apiErr.Messages)
	}
}
