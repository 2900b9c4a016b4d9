package sweep

import (
	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/internal/registry"
)

// Summary counts checks over a sweep.
type Summary struct {
	Total  int
	Passed int
}

// Failed is the number of negative checks.
func (s Summary) Failed() int {
	return s.Total - s.Passed
}

// SuccessRate is the integer-truncated percentage of passed checks, 0 when
// nothing was checked.
func (s Summary) SuccessRate() int {
	if s.Total == 0 {
		return 0
	}
	return s.Passed * 100 / s.Total
}

// Summarize folds results into a Summary.
func Summarize(results []registry.Result) Summary {
	var s Summary
	for _, r := range results {
		s.Total++
		if r.Exists {
			s.Passed++
		}
	}
	return s
}

// Row is one artifact of the report.
type Row struct {
	Entry   catalog.Entry
	Results []registry.Result
	// Complete is true when every result exists. An artifact without
	// applicable targets is complete.
	Complete bool
}

// Result returns the result for target t, if that target was checked.
func (r Row) Result(t catalog.Target) (registry.Result, bool) {
	for _, res := range r.Results {
		if res.Target == t {
			return res, true
		}
	}
	return registry.Result{}, false
}

// Rows groups results by artifact in catalog order. Results for artifacts
// missing from c are ignored.
func Rows(c catalog.Catalog, results []registry.Result) []Row {
	byName := make(map[string][]registry.Result, len(c))
	for _, r := range results {
		byName[r.Artifact.Name] = append(byName[r.Artifact.Name], r)
	}

	rows := make([]Row, 0, len(c))
	for _, e := range c {
		row := Row{Entry: e, Results: byName[e.Name], Complete: true}
		for _, r := range row.Results {
			if !r.Exists {
				row.Complete = false
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Outcome is the product of a sweep.
type Outcome struct {
	Rows    []Row
	Summary Summary
}

// Complete reports whether every artifact is fully published.
func (o Outcome) Complete() bool {
	for _, r := range o.Rows {
		if !r.Complete {
			return false
		}
	}
	return true
}
