package report

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
)

var (
	uploadDisabledNote = heredoc.Doc(`
		> [!NOTE]
		> Report upload was disabled for one or more runs, so their reports were not published.`)

	pagesUnreachableNote = heredoc.Doc(`
		> [!WARNING]
		> The published reports could not be reached. Check that GitHub Pages is enabled for this
		> repository and serves the gh-pages branch. A deployment that is still in progress can also
		> cause this.`)

	troubleshootingNote = heredoc.Doc(`
		<details>
		<summary>Troubleshooting failed tests</summary>

		Open the report of a failed run to see its traces, screenshots and error output.
		To reproduce a failure locally, start the Grafana image and version listed in the table
		and run ` + "`npx playwright test`" + ` against it.
		</details>`)
)

// Flags are the aggregate facts that decide which notes follow the table.
type Flags struct {
	UploadDisabled bool // at least one run did not upload its report
	AnyFailed      bool // at least one run did not succeed
	Probed         bool
	PagesReachable bool
}

// Notes returns the advisory notes for flags, in display order:
//   - upload disabled, when any run skipped the upload;
//   - pages unreachable, when the probe ran and failed;
//   - troubleshooting, when a test failed and the pages note was not added.
func Notes(f Flags) []string {
	var notes []string
	if f.UploadDisabled {
		notes = append(notes, strings.TrimSpace(uploadDisabledNote))
	}
	unreachable := f.Probed && !f.PagesReachable
	if unreachable {
		notes = append(notes, strings.TrimSpace(pagesUnreachableNote))
	}
	if f.AnyFailed && !unreachable {
		notes = append(notes, strings.TrimSpace(troubleshootingNote))
	}
	return notes
}
