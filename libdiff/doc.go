// Package libdiff computes structural differences between value
// trees.
//
// # Usage
//
//	// one delta per added, removed or changed key
//	deltas := libdiff.Objects(a.Root(), b.Root())
//
//	// align keyed object arrays before comparing
//	deltas, err := libdiff.ArraysByKey(xs, ys, "name")
//
// Deltas carry the key path of the changed slot and the values on
// both sides; they can be rendered for review or fed to tooling.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - value model
//   - github.com/jot-format/go-jot/ir/kpath - path addressing
package libdiff
