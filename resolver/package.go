/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "errors"

// Package resolves a specifier as a node-style package via an external
// ModuleResolver.
type Package struct {
	modules ModuleResolver
	ext     string
}

// NewPackage creates a resolver that delegates to modules for node-style
// package lookup. ext is the expected stylesheet extension, including the
// leading dot.
func NewPackage(modules ModuleResolver, ext string) *Package {
	return &Package{
		modules: modules,
		ext:     ext,
	}
}

// Resolve attempts module resolution with the extension appended to the
// specifier, then retries with the bare specifier. When both attempts
// fail, plain absence yields an empty Outcome; a genuine failure from the
// second attempt is carried so the importer can distinguish "absent
// everywhere" from "something went wrong while searching".
func (p *Package) Resolve(base, specifier string) Outcome {
	if path, err := p.modules.Resolve(EnsureExtension(specifier, p.ext), base); err == nil {
		return Outcome{Path: path}
	}

	path, err := p.modules.Resolve(specifier, base)
	if err == nil {
		return Outcome{Path: path}
	}
	if isNotFound(err) {
		return Outcome{}
	}
	return Outcome{Err: err}
}

func isNotFound(err error) bool {
	var nf NotFounder
	return errors.As(err, &nf) && nf.NotFound()
}
