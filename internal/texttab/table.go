// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out aligned text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Its methods return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	rows [][]textCell
	// rules[i] is the fill of a horizontal rule printed before
	// rows[i], or 0 for none. A rule after the last row is at
	// rules[len(rows)].
	rules []rune
	// Margin separates adjacent columns. The zero value means
	// two spaces.
	Margin string
}

type textCell struct {
	value     string
	alignment align
}

// A CellOption modifies a cell.
type CellOption func(c *textCell)

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center CellOption = func(c *textCell) { c.alignment = alignCenter }
	Right  CellOption = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad returns s padded with spaces to width w.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	t.growRules()
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	return t
}

// Rule adds a horizontal rule spanning the whole table, drawn with
// fill, after the rows added so far.
func (t *Table) Rule(fill rune) *Table {
	t.growRules()
	t.rules[len(t.rows)] = fill
	return t
}

func (t *Table) growRules() {
	for len(t.rules) < len(t.rows)+1 {
		t.rules = append(t.rules, 0)
	}
}

// Format lays out table t and writes it to w. Trailing spaces are
// trimmed from every line.
func (t *Table) Format(w io.Writer) error {
	margin := t.Margin
	if margin == "" {
		margin = "  "
	}

	var ws []int
	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(ws) {
				ws = append(ws, 0)
			}
			ws[i] = max(ws[i], utf8.RuneCountInString(c.value))
		}
	}
	total := 0
	for i, cw := range ws {
		if i > 0 {
			total += utf8.RuneCountInString(margin)
		}
		total += cw
	}

	t.growRules()
	rule := func(i int) error {
		if t.rules[i] == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Repeat(string(t.rules[i]), total))
		return err
	}
	var line strings.Builder
	for r, row := range t.rows {
		if err := rule(r); err != nil {
			return err
		}
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString(margin)
			}
			line.WriteString(c.alignment.pad(c.value, ws[i]))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return rule(len(t.rows))
}
