//go:build mage

// Package main contains Mage build targets for ventureos.
package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "ventureos"
	cmdPkg  = "./cmd/ventureos"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := binDir + "/" + binName
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet over the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs lint and tests, then builds.
func Check() {
	mg.SerialDeps(Lint, Test, Build)
}

// Demo runs a headless generation with a fixed seed.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(binDir+"/"+binName, "generate", "--seed", "42", "dog walking app")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
