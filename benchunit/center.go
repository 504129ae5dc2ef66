// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"strings"
	"unicode/utf8"
)

// Center centers text in a field of width runes, padding with fill.
// If the padding is uneven, the extra rune goes on the right. Text
// that is already at least width runes long is returned as is.
func Center(text string, width int, fill rune) string {
	added := width - utf8.RuneCountInString(text)
	if added <= 0 {
		return text
	}
	left := added / 2
	right := added - left
	pad := string(fill)
	return strings.Repeat(pad, left) + text + strings.Repeat(pad, right)
}
