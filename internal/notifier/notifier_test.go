package notifier

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.lock")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	t.Run("valid lockfile and process", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "beunstoppable-tray"}, nil
		}
		path := writeLockfile(t, "8931|1234|s3cret")

		port, secret, err := findAndValidateTrayProcess(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8931" || secret != "s3cret" {
			t.Errorf("got port=%s secret=%s, want 8931/s3cret", port, secret)
		}
	})

	t.Run("missing lockfile", func(t *testing.T) {
		_, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "absent.lock"))
		if err == nil {
			t.Error("error = nil, want error for missing lockfile")
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		path := writeLockfile(t, "8931|1234")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("error = nil, want error for malformed lockfile")
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		path := writeLockfile(t, "70000|1234|s3cret")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("error = nil, want error for bad port")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "something-else"}, nil
		}
		path := writeLockfile(t, "8931|1234|s3cret")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("error = nil, want error for impostor process")
		}
	})

	t.Run("dead process", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		path := writeLockfile(t, "8931|1234|s3cret")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("error = nil, want error for dead process")
		}
	})
}

func trayServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return u.Port()
}

func TestSendNotification(t *testing.T) {
	payload := WebhookPayload{Text: "hello", DurationMs: constants.NotificationDurationMs}

	t.Run("sends secret header", func(t *testing.T) {
		var gotSecret string
		port := trayServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotSecret = r.Header.Get("X-Beunstoppable-Secret")
		})

		if err := sendNotification(port, "s3cret", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotSecret != "s3cret" {
			t.Errorf("secret header = %q, want s3cret", gotSecret)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		attempts := 0
		port := trayServer(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < constants.NotifyMaxRetries {
				w.WriteHeader(http.StatusInternalServerError)
			}
		})

		if err := sendNotification(port, "s3cret", payload); err != nil {
			t.Fatalf("unexpected error after retries: %v", err)
		}
		if attempts != constants.NotifyMaxRetries {
			t.Errorf("attempts = %d, want %d", attempts, constants.NotifyMaxRetries)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		attempts := 0
		port := trayServer(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		})

		if err := sendNotification(port, "s3cret", payload); err == nil {
			t.Fatal("error = nil, want error after exhausting retries")
		}
		if attempts != constants.NotifyMaxRetries {
			t.Errorf("attempts = %d, want %d", attempts, constants.NotifyMaxRetries)
		}
	})
}
