// Package debug gates diagnostic logging on JOT_DEBUG_* environment
// variables. Gates are read once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Match bool
	Patch bool
	Eval  bool
	Diff  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JOT_DEBUG_PARSE")
	d.Match = boolEnv("JOT_DEBUG_MATCH")
	d.Patch = boolEnv("JOT_DEBUG_PATCH")
	d.Eval = boolEnv("JOT_DEBUG_EVAL")
	d.Diff = boolEnv("JOT_DEBUG_DIFF")
	d.LSP = boolEnv("JOT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// SetAll turns every gate on or off, overriding the environment.
func SetAll(v bool) {
	d.Parse = v
	d.Match = v
	d.Patch = v
	d.Eval = v
	d.Diff = v
	d.LSP = v
}

func Parse() bool {
	return d.Parse
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func LSP() bool {
	return d.LSP
}
