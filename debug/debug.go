// Package debug provides env-gated stderr tracing for treeflat traversals.
//
// Set TREEFLAT_DEBUG_FLATTEN, TREEFLAT_DEBUG_BROADCAST or
// TREEFLAT_DEBUG_REGISTRY to a true-ish value to enable the corresponding
// trace output.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Flatten   bool
	Broadcast bool
	Registry  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Flatten = boolEnv("TREEFLAT_DEBUG_FLATTEN")
	d.Broadcast = boolEnv("TREEFLAT_DEBUG_BROADCAST")
	d.Registry = boolEnv("TREEFLAT_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Flatten() bool {
	return d.Flatten
}
func Broadcast() bool {
	return d.Broadcast
}
func Registry() bool {
	return d.Registry
}
