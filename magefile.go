//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/nfo"
	binPath    = "./bin/nfo"
)

// Default target - build the binary
var Default = Build

// Build builds the nfo binary with version metadata.
func Build() error {
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))

	fmt.Println("Building nfo...")
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/nfo"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Printf("Built: %s\n", binPath)
	return nil
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Lint runs gofmt and go vet, then golangci-lint when it is installed.
func Lint() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		if sh.CmdRan(err) {
			return fmt.Errorf("golangci-lint failed: %w", err)
		}
		fmt.Println("golangci-lint not found, skipping")
	}
	return nil
}

// QA runs lint and tests, then builds.
func QA() {
	mg.SerialDeps(Lint, Test, Build)
}

// Demo pipes sample text through the freshly built binary.
func Demo() error {
	mg.Deps(Build)
	for _, args := range [][]string{
		{"--preset", "unicode", "--gradient", "gradient"},
		{"--preset", "ansi", "--border", "single", "--gradient", "sunset", "--title", "DEMO"},
		{"--network-safe", "--nfo", "--group", "ACME", "--release", "nfo " + gitVersion()},
	} {
		cmd := "echo NFO | " + binPath + " " + strings.Join(quoteAll(args), " ")
		if err := sh.RunV("sh", "-c", cmd); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("./bin")
}

func quoteAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return out
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || out == "" {
		return "dev"
	}
	return out
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || out == "" {
		return "unknown"
	}
	return out
}
