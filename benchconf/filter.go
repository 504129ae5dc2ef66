// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchconf

import "regexp"

// A Filter selects configurations by name. A zero Filter selects
// everything. When several criteria are set, a name must satisfy all
// of them.
type Filter struct {
	Names    []string       // if non-empty, only these names
	Regex    *regexp.Regexp // if non-nil, names must match
	NotRegex *regexp.Regexp // if non-nil, names must not match
}

// Match reports whether name is selected by f.
func (f *Filter) Match(name string) bool {
	if f.Regex != nil && !f.Regex.MatchString(name) {
		return false
	}
	if f.NotRegex != nil && f.NotRegex.MatchString(name) {
		return false
	}
	if len(f.Names) > 0 {
		for _, n := range f.Names {
			if n == name {
				return true
			}
		}
		return false
	}
	return true
}

// Apply returns the configurations in configs selected by f,
// preserving their order.
func (f *Filter) Apply(configs []Named) []Named {
	var out []Named
	for _, c := range configs {
		if f.Match(c.Name) {
			out = append(out, c)
		}
	}
	return out
}
