// Package paths centralizes file system locations for skillery.
//
// Configuration lives under the XDG config home, built artifacts under
// the XDG data home. Both can be overridden per invocation; these are
// only the defaults and the canonical artifact file names.
package paths
