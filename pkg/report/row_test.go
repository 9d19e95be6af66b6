package report

import (
	"testing"

	"github.com/project-copacetic/report-table/pkg/types"
	"github.com/stretchr/testify/assert"
)

func versions(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Version)
	}
	return out
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"9.0.0", "10.0.0", -1},
		{"10.0.0", "9.0.0", 1},
		{"10.4.1", "10.4.1", 0},
		{"10.4.10", "10.4.9", 1},
		{"11.0.0", "11.0.0-nightly", -1},
		{"", "1.0.0", -1},
	}

	for _, tc := range tests {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.want, CompareVersions(tc.a, tc.b))
		})
	}
}

func TestSortRows(t *testing.T) {
	tests := []struct {
		name  string
		order types.SortOrder
		in    []string
		want  []string
	}{
		{
			name:  "ascending numeric",
			order: types.SortAscending,
			in:    []string{"2.0.0", "10.0.0", "1.5.0"},
			want:  []string{"1.5.0", "2.0.0", "10.0.0"},
		},
		{
			name:  "descending numeric",
			order: types.SortDescending,
			in:    []string{"2.0.0", "10.0.0", "1.5.0"},
			want:  []string{"10.0.0", "2.0.0", "1.5.0"},
		},
		{
			name:  "empty order is ascending",
			order: "",
			in:    []string{"11.3.0", "9.5.21", "10.4.11"},
			want:  []string{"9.5.21", "10.4.11", "11.3.0"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := make([]Row, 0, len(tc.in))
			for _, v := range tc.in {
				rows = append(rows, Row{Version: v})
			}
			SortRows(rows, tc.order)
			assert.Equal(t, tc.want, versions(rows))
		})
	}
}

func TestSortRowsTieBreak(t *testing.T) {
	rows := []Row{
		{Plugin: "b-panel", Image: "grafana", Version: "10.0.0"},
		{Plugin: "a-panel", Image: "grafana-enterprise", Version: "10.0.0"},
		{Plugin: "a-panel", Image: "grafana", Version: "10.0.0"},
		{Plugin: "a-panel", Image: "grafana", Version: "9.0.0"},
	}

	SortRows(rows, types.SortDescending)

	assert.Equal(t, []Row{
		{Plugin: "a-panel", Image: "grafana", Version: "10.0.0"},
		{Plugin: "a-panel", Image: "grafana-enterprise", Version: "10.0.0"},
		{Plugin: "b-panel", Image: "grafana", Version: "10.0.0"},
		{Plugin: "a-panel", Image: "grafana", Version: "9.0.0"},
	}, rows)
}

func TestNewRows(t *testing.T) {
	opts := &types.Options{Owner: "o", Repo: "r", Timestamp: "ts", Initiator: "1"}
	entries := types.Entries{
		{
			Name:      "run-a",
			HasReport: true,
			Summary:   types.Summary{Image: "grafana", Version: "10.0.0", Output: "success"},
		},
		{
			Name:    "run-b",
			Summary: types.Summary{Image: "grafana", Version: "9.0.0", Output: "failure", UploadReport: "false"},
		},
	}

	rows := NewRows(opts, entries)

	assert.Equal(t, []Row{
		{
			Image:         "grafana",
			Version:       "10.0.0",
			Passed:        true,
			Link:          "https://o.github.io/r/ts/1/grafana-10.0.0/",
			HasReport:     true,
			UploadEnabled: true,
		},
		{
			Image:   "grafana",
			Version: "9.0.0",
			Link:    "https://o.github.io/r/ts/1/grafana-9.0.0/",
		},
	}, rows)
}
