package report

import (
	"testing"

	"github.com/project-copacetic/report-table/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestLink(t *testing.T) {
	opts := &types.Options{Owner: "grafana", Repo: "plugin-e2e", Timestamp: "20241015-1200", Initiator: "42"}

	tests := []struct {
		name    string
		opts    *types.Options
		summary types.Summary
		want    string
	}{
		{
			name:    "without plugin name",
			opts:    opts,
			summary: types.Summary{Image: "grafana-enterprise", Version: "11.3.0"},
			want:    "https://grafana.github.io/plugin-e2e/20241015-1200/42/grafana-enterprise-11.3.0/",
		},
		{
			name:    "with plugin name",
			opts:    opts,
			summary: types.Summary{PluginName: "my-panel", Image: "grafana", Version: "10.4.1"},
			want:    "https://grafana.github.io/plugin-e2e/20241015-1200/42/my-panel-grafana-10.4.1/",
		},
		{
			name: "base URL override",
			opts: &types.Options{
				PagesBaseURL: "https://reports.example.com/e2e/",
				Timestamp:    "t",
				Initiator:    "7",
			},
			summary: types.Summary{Image: "grafana", Version: "9.5.0"},
			want:    "https://reports.example.com/e2e/t/7/grafana-9.5.0/",
		},
		{
			name:    "empty parts are kept",
			opts:    &types.Options{},
			summary: types.Summary{},
			want:    "https://.github.io////-/",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Link(tc.opts, tc.summary))
		})
	}
}
