package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	sharedBinaryDir  string
	binaryOnce       sync.Once
	binaryErr        error
)

// SharedBinaryPath returns the path to a shipit binary shared by all tests
// in a package, building it on first use.
func SharedBinaryPath() (string, error) {
	binaryOnce.Do(func() {
		sharedBinaryPath, binaryErr = buildBinary()
	})
	return sharedBinaryPath, binaryErr
}

// TestMain builds the shipit binary once for packages that execute it and
// cleans it up after the tests run.
func TestMain(m *testing.M) {
	if _, err := SharedBinaryPath(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build shipit binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if sharedBinaryDir != "" {
		_ = os.RemoveAll(sharedBinaryDir)
	}
	os.Exit(code)
}

func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "shipit-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	sharedBinaryDir = tmpDir

	binaryPath := filepath.Join(tmpDir, "shipit")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/shipit")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir to the directory containing go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
