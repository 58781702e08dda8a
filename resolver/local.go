/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"path/filepath"
	"strings"

	yevufs "bennypowers.dev/yevu/fs"
)

// Local resolves a specifier as a plain file relative to a base directory.
type Local struct {
	fs  yevufs.FileSystem
	ext string
}

// NewLocal creates a resolver that checks for files directly on the
// filesystem. ext is the expected stylesheet extension, including the
// leading dot.
func NewLocal(filesystem yevufs.FileSystem, ext string) *Local {
	return &Local{
		fs:  filesystem,
		ext: ext,
	}
}

// Resolve joins base and specifier, ensures the extension, and checks
// existence. A stat failure of any kind is folded into "not found":
// local absence is expected and common, never exceptional. When the
// direct candidate is absent, an underscore-prefixed partial alongside
// it is probed next.
func (l *Local) Resolve(base, specifier string) Outcome {
	candidate := EnsureExtension(filepath.Join(base, specifier), l.ext)
	if l.fs.Exists(candidate) {
		return Outcome{Path: candidate}
	}

	name := filepath.Base(candidate)
	if !strings.HasPrefix(name, "_") {
		partial := filepath.Join(filepath.Dir(candidate), "_"+name)
		if l.fs.Exists(partial) {
			return Outcome{Path: partial}
		}
	}

	return Outcome{}
}
