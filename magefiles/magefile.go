//go:build mage

// Package main provides build targets for lexodoro using Mage.
//
// Usage:
//
//	mage build      Compile the lexodoro binary to bin/
//	mage test       Run all tests
//	mage lint       Run go vet and golangci-lint
//	mage generate   Regenerate gomock mocks
//	mage install    Install lexodoro to GOPATH/bin
//	mage clean      Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "lexodoro"
	binaryDir  = "bin"
	cmdDir     = "./cmd/app"
)

// version is stamped into main.version. VERSION overrides git describe.
func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && v != "" {
		return v
	}
	return "dev"
}

// Build compiles the lexodoro binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	ldflags := strings.Join([]string{
		"-X main.version=" + version(),
		"-X main.gitCommit=" + commit,
		"-X main.buildTime=" + time.Now().UTC().Format(time.RFC3339),
	}, " ")
	return sh.RunV(binGo, "build", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every package's tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs go vet, then golangci-lint when it is installed.
func Lint() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	if _, err := sh.Output("golangci-lint", "version"); err != nil {
		fmt.Println("golangci-lint not found, skipping")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Generate regenerates the gomock mocks from the go:generate directives.
func Generate() error {
	return sh.RunV(binGo, "generate", "./internal/store/...", "./internal/platform/...")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), filepath.Join(binaryDir, binaryName))
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}
