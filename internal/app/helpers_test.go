package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/forkliftgo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
// testutil has its own copy; importing it here would be an import cycle
// since testutil depends on app.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest creates a new app instance with debug logging captured in a
// buffer. A zero Marker defaults to '@'; Threshold is used as given. The logs
// are dumped on cleanup when FORKLIFT_TEST_LOGS=true.
func setupAppTest(t *testing.T, appConfig Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	if appConfig.Marker == 0 {
		appConfig.Marker = '@'
	}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(out, logBuffer, &appConfig, hcl.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("FORKLIFT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
