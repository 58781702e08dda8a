/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package nodeutil implements node-style module resolution against a
// yevu filesystem. It is the default ModuleResolver used by the
// importer; hosts with their own resolution algorithm can substitute it.
package nodeutil

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	yevufs "bennypowers.dev/yevu/fs"
)

// entryFields are the package.json fields consulted for a package's
// stylesheet entry point, in priority order.
var entryFields = []string{"style", "sass", "main"}

// defaultExtensions are probed for extensionless file candidates.
var defaultExtensions = []string{".scss", ".sass", ".css"}

// NotFoundError reports plain absence: the request simply does not
// resolve to anything. It is distinct from genuine failures such as an
// unreadable or malformed package.json.
type NotFoundError struct {
	Request string
	BaseDir string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find module %q from %s", e.Request, e.BaseDir)
}

// NotFound marks this error as plain absence.
func (e *NotFoundError) NotFound() bool {
	return true
}

// Resolver resolves module requests the way node does: relative requests
// against the base directory, bare requests by walking up the directory
// tree looking in node_modules.
type Resolver struct {
	fs   yevufs.FileSystem
	exts []string
}

// New creates a node-style resolver. extensions are tried in order for
// extensionless file candidates; when empty, the stylesheet defaults
// (.scss, .sass, .css) are used.
func New(filesystem yevufs.FileSystem, extensions ...string) *Resolver {
	if len(extensions) == 0 {
		extensions = defaultExtensions
	}
	return &Resolver{
		fs:   filesystem,
		exts: extensions,
	}
}

// Resolve resolves request against basedir. It returns an absolute path,
// a *NotFoundError for plain absence, or another error for genuine
// failures encountered while searching.
func (r *Resolver) Resolve(request, basedir string) (string, error) {
	if strings.HasPrefix(request, "./") || strings.HasPrefix(request, "../") || filepath.IsAbs(request) {
		candidate := request
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(basedir, candidate)
		}
		return r.loadPath(filepath.Clean(candidate), request, basedir)
	}

	// Bare request: walk up looking in node_modules, as npm does.
	dir := basedir
	for {
		nodeModules := filepath.Join(dir, "node_modules")
		candidate := filepath.Clean(filepath.Join(nodeModules, request))

		// Path traversal protection: the candidate must stay inside
		// node_modules.
		if !isInsideDir(candidate, nodeModules) {
			return "", fmt.Errorf("path traversal detected in request: %s", request)
		}

		if path, err := r.loadPath(candidate, request, basedir); err == nil {
			return path, nil
		} else if !isAbsence(err) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", &NotFoundError{Request: request, BaseDir: basedir}
}

// loadPath resolves candidate as a file first, then as a package
// directory.
func (r *Resolver) loadPath(candidate, request, basedir string) (string, error) {
	if path, ok := r.loadFile(candidate); ok {
		return path, nil
	}
	if path, err := r.loadDir(candidate); err != nil || path != "" {
		return path, err
	}
	return "", &NotFoundError{Request: request, BaseDir: basedir}
}

// loadFile returns candidate if it is an existing file, otherwise probes
// each configured extension.
func (r *Resolver) loadFile(candidate string) (string, bool) {
	if info, err := r.fs.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, true
	}
	for _, ext := range r.exts {
		if withExt := candidate + ext; r.fs.Exists(withExt) {
			return withExt, true
		}
	}
	return "", false
}

// loadDir resolves candidate as a package directory: consult
// package.json entry fields, then fall back to an index file. An
// unreadable or malformed package.json is a genuine error, not absence.
func (r *Resolver) loadDir(dir string) (string, error) {
	info, err := r.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", nil
	}

	manifest := filepath.Join(dir, "package.json")
	if r.fs.Exists(manifest) {
		data, err := r.fs.ReadFile(manifest)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", manifest, err)
		}

		var fields map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(data), &fields); err != nil {
			return "", fmt.Errorf("parsing %s: %w", manifest, err)
		}

		for _, field := range entryFields {
			entry, ok := fields[field].(string)
			if !ok || entry == "" {
				continue
			}
			if path, ok := r.loadFile(filepath.Join(dir, entry)); ok {
				return path, nil
			}
		}
	}

	if path, ok := r.loadFile(filepath.Join(dir, "index")); ok {
		return path, nil
	}
	if path, ok := r.loadFile(filepath.Join(dir, "_index")); ok {
		return path, nil
	}

	return "", nil
}

// isAbsence reports whether err is plain absence rather than a genuine
// failure.
func isAbsence(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// isInsideDir returns true if path is inside dir after cleaning.
func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
