package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes(t *testing.T) {
	upload := strings.TrimSpace(uploadDisabledNote)
	unreachable := strings.TrimSpace(pagesUnreachableNote)
	troubleshoot := strings.TrimSpace(troubleshootingNote)

	// Every combination of the four flags has a defined result.
	for _, uploadDisabled := range []bool{false, true} {
		for _, anyFailed := range []bool{false, true} {
			for _, probed := range []bool{false, true} {
				for _, reachable := range []bool{false, true} {
					f := Flags{UploadDisabled: uploadDisabled, AnyFailed: anyFailed, Probed: probed, PagesReachable: reachable}

					var want []string
					if uploadDisabled {
						want = append(want, upload)
					}
					if probed && !reachable {
						want = append(want, unreachable)
					} else if anyFailed {
						want = append(want, troubleshoot)
					}

					assert.Equal(t, want, Notes(f), "flags %+v", f)
				}
			}
		}
	}
}

func TestNoteText(t *testing.T) {
	require.True(t, strings.HasPrefix(strings.TrimSpace(uploadDisabledNote), "> [!NOTE]"))
	require.True(t, strings.HasPrefix(strings.TrimSpace(pagesUnreachableNote), "> [!WARNING]"))
	assert.Contains(t, troubleshootingNote, "`npx playwright test`")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(troubleshootingNote), "</details>"))
}
