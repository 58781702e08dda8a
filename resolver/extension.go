/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "strings"

// EnsureExtension returns spec unchanged when it already contains ext
// anywhere in the string, otherwise appends ext.
//
// The substring rule, rather than a suffix check, is deliberate: it
// matches the behavior hosts have depended on since the original
// node-sass importers, where a directory name containing the extension
// token also counts as already-extended.
func EnsureExtension(spec, ext string) string {
	if strings.Contains(spec, ext) {
		return spec
	}
	return spec + ext
}
