// Package report renders sweep outcomes as Markdown and writes them to disk.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/internal/registry"
	"github.com/harness/pubcheck/internal/sweep"
)

const (
	PassGlyph = "✅"
	FailGlyph = "❌"
	NAGlyph   = "—"
)

// Document is everything a report shows.
type Document struct {
	RunID       string
	GeneratedAt time.Time
	Outcome     sweep.Outcome
}

type section struct {
	kind    catalog.Kind
	title   string
	heading string
	detail  bool
}

var sections = []section{
	{kind: catalog.Service, title: "Service Projects", heading: "Service"},
	{kind: catalog.Library, title: "Library Sub-projects", heading: "Library"},
	{kind: catalog.Special, title: "Special Projects", heading: "Project", detail: true},
}

// Render produces the Markdown report. Output depends only on d.
func Render(d Document) string {
	var b strings.Builder

	b.WriteString("# Publish Validation Report\n\n")
	if d.RunID != "" {
		fmt.Fprintf(&b, "- **Run ID:** `%s`\n", d.RunID)
	}
	if !d.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- **Generated:** %s\n", d.GeneratedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString("\n")

	b.WriteString("## Legend\n\n")
	fmt.Fprintf(&b, "- %s published (links to the checked URL)\n", PassGlyph)
	fmt.Fprintf(&b, "- %s missing (links to the checked URL)\n", FailGlyph)
	fmt.Fprintf(&b, "- %s not expected in this registry\n\n", NAGlyph)

	for _, s := range sections {
		renderSection(&b, s, rowsOfKind(d.Outcome.Rows, s.kind))
	}

	renderStatistics(&b, d.Outcome)
	return b.String()
}

func rowsOfKind(rows []sweep.Row, k catalog.Kind) []sweep.Row {
	var out []sweep.Row
	for _, r := range rows {
		if r.Entry.Kind == k {
			out = append(out, r)
		}
	}
	return out
}

// columns is the union of the targets expected for rows, in report order.
func columns(rows []sweep.Row) []catalog.Target {
	want := map[catalog.Target]bool{}
	for _, r := range rows {
		for _, t := range catalog.Targets(r.Entry) {
			want[t] = true
		}
	}
	var cols []catalog.Target
	for _, t := range catalog.AllTargets {
		if want[t] {
			cols = append(cols, t)
		}
	}
	return cols
}

func renderSection(b *strings.Builder, s section, rows []sweep.Row) {
	fmt.Fprintf(b, "## %s\n\n", s.title)
	if len(rows) == 0 {
		b.WriteString("_No artifacts of this kind._\n\n")
		return
	}

	cols := columns(rows)
	header := []string{s.heading}
	for _, t := range cols {
		header = append(header, t.Label())
	}
	header = append(header, "Complete")
	writeTableRow(b, header)

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeTableRow(b, sep)

	for _, r := range rows {
		cells := []string{escape(r.Entry.Name)}
		for _, t := range cols {
			res, ok := r.Result(t)
			if !ok {
				cells = append(cells, NAGlyph)
				continue
			}
			cells = append(cells, glyphLink(res))
		}
		cells = append(cells, completeGlyph(r.Complete))
		writeTableRow(b, cells)
	}
	b.WriteString("\n")

	if s.detail {
		for _, r := range rows {
			renderDetail(b, r)
		}
	}
}

func renderDetail(b *strings.Builder, r sweep.Row) {
	fmt.Fprintf(b, "### %s\n\n", escape(r.Entry.Name))
	if len(r.Results) == 0 {
		b.WriteString("- no registry checks apply\n\n")
		return
	}
	for _, res := range r.Results {
		line := fmt.Sprintf("- %s: %s [%s](%s)", res.Target.Label(), glyph(res.Exists), res.URL, res.URL)
		if !res.Exists && res.Reason != registry.ReasonNone {
			line += fmt.Sprintf(" (%s)", res.Reason)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func renderStatistics(b *strings.Builder, o sweep.Outcome) {
	s := o.Summary
	complete := 0
	for _, r := range o.Rows {
		if r.Complete {
			complete++
		}
	}

	b.WriteString("## Statistics\n\n")
	writeTableRow(b, []string{"Metric", "Value"})
	writeTableRow(b, []string{"---", "---"})
	writeTableRow(b, []string{"Total checks", fmt.Sprint(s.Total)})
	writeTableRow(b, []string{"Passed", fmt.Sprint(s.Passed)})
	writeTableRow(b, []string{"Failed", fmt.Sprint(s.Failed())})
	writeTableRow(b, []string{"Success rate", fmt.Sprintf("%d%%", s.SuccessRate())})
	writeTableRow(b, []string{"Complete artifacts", fmt.Sprintf("%d/%d", complete, len(o.Rows))})
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func glyph(ok bool) string {
	if ok {
		return PassGlyph
	}
	return FailGlyph
}

func glyphLink(res registry.Result) string {
	if res.URL == "" {
		return glyph(res.Exists)
	}
	return fmt.Sprintf("[%s](%s)", glyph(res.Exists), res.URL)
}

func completeGlyph(ok bool) string {
	if ok {
		return PassGlyph + " yes"
	}
	return FailGlyph + " no"
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
