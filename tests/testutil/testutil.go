package testutil

import (
	"os"
	"strings"
	"testing"
)

// RequireTestEnvironment fails the test immediately unless GO_ENV=test.
// The integration and acceptance suites migrate and truncate tables, so
// they must never run against a development or production tracking
// database.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("refusing to run: GO_ENV=%q, want \"test\" (the suite truncates tables)", env)
	}
}

// RequireTestEnvironmentOrSkip skips the test instead of failing it when
// GO_ENV is not "test". Use it for tests that are optional outside CI.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Skipf("skipping: GO_ENV must be \"test\" (current: %q)", env)
	}
}

// MustSetTestEnvironment forces GO_ENV=test. Call it from TestMain or a
// suite's SetupSuite before any database work.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("failed to set GO_ENV=test: %v", err)
	}
	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("failed to verify GO_ENV=test")
	}
}

// LooksLikeTestDatabase reports whether a database URL plausibly points at
// a test database, by convention a name ending in "test".
func LooksLikeTestDatabase(url string) bool {
	trimmed := strings.TrimSuffix(url, "?sslmode=disable")
	return strings.HasSuffix(trimmed, "test") || strings.HasSuffix(trimmed, "_test")
}
