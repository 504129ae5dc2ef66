// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchsummary

import (
	"io"

	"github.com/google/safehtml/template"
)

const htmlText = `<table class='dramstat'>
{{- range .}}
<tbody>
<tr><th colspan='5' class='metric'>{{.Name}}
<tr><th>module<th>data width<th>length<th>random<th>result
{{- range .Rows}}
<tr><td>{{.Module}}<td>{{.DataWidth}}<td>{{.Length}}<td>{{.Random}}<td>{{.Value}}
{{- end}}
</tbody>
{{- end}}
</table>
`

var htmlTemplate = template.Must(template.New("summary").Parse(htmlText))

type htmlSection struct {
	Name string
	Rows []htmlRow
}

type htmlRow struct {
	Module            string
	DataWidth, Length int
	Random            int
	Value             string
}

// WriteHTML writes s to w as an HTML table with a section per metric.
// The output is a fragment meant to be embedded in a page.
func (s *Summary) WriteHTML(w io.Writer) error {
	sections := make([]htmlSection, len(s.metrics))
	for i, m := range s.metrics {
		sections[i].Name = m.Name
		for val, cfg := range s.ByMetric(m) {
			sections[i].Rows = append(sections[i].Rows, htmlRow{
				Module:    cfg.Module,
				DataWidth: cfg.DataWidth,
				Length:    cfg.Length,
				Random:    boolInt(cfg.Random),
				Value:     m.Format(val),
			})
		}
	}
	return htmlTemplate.Execute(w, sections)
}
