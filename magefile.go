//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target when running mage without arguments.
var Default = Build

// Build compiles the tangocho binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "tangocho", "./cmd/tangocho")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/tangocho")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("tangocho")
}
