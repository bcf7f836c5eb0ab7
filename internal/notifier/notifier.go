package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
)

// Test seams.
var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Notifier delivers reminder text to the local tray application over
// its loopback webhook. The tray app writes a lockfile with its port,
// pid and shared secret; the pid is validated against the process
// table before anything is sent.
type Notifier struct{}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(text string) error {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return fmt.Errorf("failed to get user config dir: %w", err)
	}

	lockfile := filepath.Join(configDir, constants.TrayAppIdentifier, constants.NotifierLockfileName)
	port, secret, err := findAndValidateTrayProcess(lockfile)
	if err != nil {
		return err
	}

	return sendNotification(port, secret, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("notification tray app is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return "", "", errors.New("invalid port number in lockfile")
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}

	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("notification tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName+"-tray") {
		return "", "", fmt.Errorf("process with PID %d is not the tray app (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

// sendNotification posts the payload to the tray app, retrying a
// fixed number of times so a reminder survives a momentary hiccup in
// the webhook listener.
func sendNotification(port string, secret string, payload WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= constants.NotifyMaxRetries; attempt++ {
		if attempt > 1 {
			time.Sleep(constants.NotifyRetryDelay)
		}
		if lastErr = postNotification(port, secret, jsonData); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("notification failed after %d attempts: %w", constants.NotifyMaxRetries, lastErr)
}

func postNotification(port string, secret string, jsonData []byte) error {
	req, err := http.NewRequest("POST", fmt.Sprintf("http://127.0.0.1:%s", port), bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Beunstoppable-Secret", secret)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
