/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides the per-base-directory resolution strategies
// used by the yevu importer: direct filesystem lookup and node-style
// package resolution.
package resolver

// Outcome is the tagged result of a single resolver attempt.
//
// An attempt either finds a file (Path set), finds nothing (zero value),
// or finds nothing while an underlying collaborator reported a real
// failure (Err set). Carried errors never interrupt the attempt sequence;
// the importer surfaces the most recent one only when every attempt has
// been exhausted.
type Outcome struct {
	// Path is the resolved absolute path. Empty means not found.
	Path string

	// Err is an error carried from an underlying collaborator.
	// Expected absence is never an error.
	Err error
}

// Found returns true if the attempt resolved a file.
func (o Outcome) Found() bool {
	return o.Path != ""
}

// Resolver applies one resolution strategy against one base directory.
type Resolver interface {
	// Resolve attempts to resolve specifier relative to base.
	Resolve(base, specifier string) Outcome
}

// ModuleResolver is the external collaborator that implements node-style
// module resolution. yevu ships a default in package nodeutil; hosts may
// substitute their own.
type ModuleResolver interface {
	// Resolve resolves request against basedir, returning an absolute
	// path. Plain absence is reported with an error implementing
	// NotFounder; any other error is a genuine failure.
	Resolve(request, basedir string) (string, error)
}

// NotFounder is implemented by module-resolution errors that report
// plain absence rather than a genuine failure.
type NotFounder interface {
	NotFound() bool
}
