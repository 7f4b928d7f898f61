//go:build mage

// Package main provides build targets for merklize using Mage.
//
// Usage:
//
//	mage build      Compile the merklize binary to bin/
//	mage generate   Run go generate (stringer)
//	mage test       Run all tests
//	mage vectors    Rewrite conformance listings and CIDs
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "merklize"
	binaryDir  = "bin"
	cmdDir     = "./cmd/merklize"
	vectorsDir = "testdata/conformance/merklize"
)

// Build compiles the merklize binary to bin/.
func Build() error {
	mg.Deps(Generate)
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Generate runs go generate across the module.
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vectors regenerates the expected outputs of every conformance vector.
func Vectors() error {
	inputs, err := filepath.Glob(filepath.Join(vectorsDir, "*.nq"))
	if err != nil {
		return err
	}
	args := append([]string{"run", "./internal/tools/vector_gen", "-write"}, inputs...)
	return sh.RunV("go", args...)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}
