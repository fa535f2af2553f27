package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// testLogger records messages so tests can assert on warnings.
type testLogger struct {
	debugs []string
	warns  []string
	errs   []string
}

func (l *testLogger) Debug(format string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

func (l *testLogger) Info(format string, args ...any) {}

func (l *testLogger) Warn(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *testLogger) Error(format string, args ...any) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func newTestResolver(t *testing.T, dir string, opts ...Option) *Resolver {
	t.Helper()
	opts = append([]Option{WithWorkdir(dir), WithLogger(&testLogger{})}, opts...)
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}
