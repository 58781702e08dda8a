/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importer resolves @import-style module specifiers for SCSS
// preprocessors. An Importer tries local files first, then node-style
// packages, across an ordered list of base directories, and reports the
// first match.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yevufs "bennypowers.dev/yevu/fs"
	"bennypowers.dev/yevu/nodeutil"
	"bennypowers.dev/yevu/resolver"
)

// DefaultExtension is the stylesheet extension assumed when Options
// leaves it unset.
const DefaultExtension = ".scss"

// Options configures an Importer. All fields are optional.
type Options struct {
	// Root is the project root used as the final resolution base.
	// Defaults to the working directory at construction time.
	Root string

	// Extension is the expected stylesheet extension. A leading dot is
	// added when missing. Defaults to ".scss".
	Extension string

	// FS is the filesystem used for lookups. Defaults to the os package.
	FS yevufs.FileSystem

	// Modules performs node-style package resolution. Defaults to a
	// nodeutil.Resolver over FS.
	Modules resolver.ModuleResolver
}

// ResolveOptions carries the per-call options a host supplies alongside
// a resolution request.
type ResolveOptions struct {
	// IncludePaths are additional resolution bases, tried in the given
	// order before the importing file's directory and the root.
	IncludePaths []string
}

// Result is a successful resolution.
type Result struct {
	// File is the resolved path on disk.
	File string
}

// NotFoundError is the fatal resolution failure: every strategy was
// exhausted and at least one underlying attempt reported a genuine
// error. It aborts the host's compilation of the current file.
type NotFoundError struct {
	Specifier string
	Parent    string
	Err       error
}

// Error implements error. The message format is part of the host
// contract.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Could not find file: %s from parent %s", e.Specifier, e.Parent)
}

// Unwrap exposes the carried error from the underlying resolution
// attempt.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Importer resolves specifiers against an immutable configuration.
// It is safe for concurrent use: each Resolve call owns its own state.
type Importer struct {
	root  string
	ext   string
	local *resolver.Local
	pkg   *resolver.Package
}

// New creates an Importer bound to opts. The root defaults to the
// working directory, evaluated once here and never re-read at
// resolution time.
func New(opts Options) (*Importer, error) {
	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determining working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}
	root = abs

	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = yevufs.NewOSFileSystem()
	}

	modules := opts.Modules
	if modules == nil {
		modules = nodeutil.New(filesystem, ext)
	}

	return &Importer{
		root:  root,
		ext:   ext,
		local: resolver.NewLocal(filesystem, ext),
		pkg:   resolver.NewPackage(modules, ext),
	}, nil
}

// Root returns the configured root directory.
func (im *Importer) Root() string {
	return im.root
}

// Extension returns the configured extension, with its leading dot.
func (im *Importer) Extension() string {
	return im.ext
}

// Resolve resolves specifier for the host. prevFile is the previously
// resolved file that contains the import; it need not exist on disk
// (compilation may have started from an in-memory string).
//
// Exactly one of three outcomes occurs per call:
//   - a non-nil Result when a strategy found the file;
//   - (nil, nil) when nothing matched and nothing failed, signaling the
//     host to apply its own default resolution;
//   - a non-nil *NotFoundError when every attempt was exhausted and at
//     least one underlying attempt reported a genuine error.
func (im *Importer) Resolve(specifier, prevFile string, opts ResolveOptions) (*Result, error) {
	var carried error
	for _, a := range im.attempts(im.includePaths(prevFile, opts.IncludePaths)) {
		outcome := a.strategy.Resolve(a.base, specifier)
		if outcome.Found() {
			return &Result{File: outcome.Path}, nil
		}
		if outcome.Err != nil {
			carried = outcome.Err
		}
	}

	if carried != nil {
		return nil, &NotFoundError{
			Specifier: specifier,
			Parent:    prevFile,
			Err:       carried,
		}
	}
	return nil, nil
}

// includePaths computes the ordered base-directory list for one call:
// per-call include paths in their given order, then the importing
// file's directory, then the root. Empty entries are dropped and order
// is never re-sorted.
func (im *Importer) includePaths(prevFile string, extra []string) []string {
	paths := make([]string, 0, len(extra)+2)
	for _, p := range extra {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if prevFile != "" {
		paths = append(paths, filepath.Dir(prevFile))
	}
	paths = append(paths, im.root)
	return paths
}

// attempt binds one strategy to one base directory.
type attempt struct {
	strategy resolver.Resolver
	base     string
}

// attempts expands the include-path list into the full ordered attempt
// list: every local attempt in include-path order, then every package
// attempt in include-path order. The caller owns the returned slice;
// attempts run strictly one at a time, so a match at an earlier base
// always wins regardless of how fast a later base could answer.
func (im *Importer) attempts(includePaths []string) []attempt {
	attempts := make([]attempt, 0, len(includePaths)*2)
	for _, base := range includePaths {
		attempts = append(attempts, attempt{strategy: im.local, base: base})
	}
	for _, base := range includePaths {
		attempts = append(attempts, attempt{strategy: im.pkg, base: base})
	}
	return attempts
}
