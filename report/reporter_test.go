package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butter/colors"
	"butter/internal/source"
)

func loc(line, startCol, endCol int) source.Location {
	return source.NewLocation(
		source.Position{Line: line, Column: startCol},
		source.Position{Line: line, Column: endCol},
	)
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := colors.SetOutput(&buf)
	colors.SetEnabled(false)
	t.Cleanup(restore)
	return &buf
}

func TestReportLevels(t *testing.T) {
	var reports Reports

	reports.AddWarning("a.btr", loc(1, 1, 2), "careful", LINT_PHASE)
	assert.False(t, reports.HasErrors())
	assert.True(t, reports.HasWarnings())
	assert.False(t, reports.ShouldStopCompilation())

	reports.AddError("a.btr", loc(2, 1, 2), "bad", GENERATION_PHASE)
	assert.True(t, reports.HasErrors())
	assert.False(t, reports.ShouldStopCompilation())

	reports.AddSyntaxError("a.btr", loc(3, 1, 2), "broken", PARSING_PHASE)
	assert.True(t, reports.ShouldStopCompilation())

	reports.AddInfo("a.btr", loc(4, 1, 2), "fyi", LINT_PHASE)

	warnings, errs := reports.Counts()
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 2, errs)
	assert.Len(t, reports.Filter(INFO), 1)
	assert.Equal(t, 4, reports.Len())
}

func TestReportHintAndLabel(t *testing.T) {
	var reports Reports
	r := reports.AddWarning("a.btr", loc(1, 1, 2), "msg", LINT_PHASE).AddHint("try this").AddLabel("here").AddHint("")
	assert.Equal(t, "try this", r.Hint)
	assert.Equal(t, "here", r.Label)
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		add  func(r *Reports)
		want string
	}{
		{"clean", func(r *Reports) {}, "------------- Passed -------------"},
		{"one warning", func(r *Reports) {
			r.AddWarning("f", loc(1, 1, 1), "w", LINT_PHASE)
		}, "------------- Passed with 1 warning -------------"},
		{"two errors", func(r *Reports) {
			r.AddError("f", loc(1, 1, 1), "e", LINT_PHASE)
			r.AddCriticalError("f", loc(1, 1, 1), "e", LINT_PHASE)
		}, "------------- failed with 2 errors -------------"},
		{"mixed", func(r *Reports) {
			r.AddWarning("f", loc(1, 1, 1), "w", LINT_PHASE)
			r.AddWarning("f", loc(1, 1, 1), "w", LINT_PHASE)
			r.AddError("f", loc(1, 1, 1), "e", LINT_PHASE)
		}, "------------- failed with 2 warnings and 1 error -------------"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reports Reports
			tt.add(&reports)
			assert.Equal(t, tt.want, reports.StatusLine())
		})
	}
}

func TestDisplayAllPrintsSnippet(t *testing.T) {
	out := captureOutput(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "main.btr")
	require.NoError(t, os.WriteFile(file, []byte("func main() -> int {\n    let x = xs[0];\n}\n"), 0644))

	var reports Reports
	reports.AddWarning(file, loc(2, 13, 18), UNSUPPORTED_EXPRESSION, LINT_PHASE).AddHint("indexing is emitted as a placeholder")
	reports.DisplayAll()

	text := out.String()
	assert.Contains(t, text, "[Warning while linting 🚨]: "+UNSUPPORTED_EXPRESSION)
	assert.Contains(t, text, "2 |     let x = xs[0];")
	assert.Contains(t, text, "^~~~~")
	assert.Contains(t, text, "Help: indexing is emitted as a placeholder")
	assert.Contains(t, text, "Passed with 1 warning")

	// The caret sits under the first character of the span.
	for _, l := range strings.Split(text, "\n") {
		if strings.Contains(l, "^") {
			assert.Equal(t, strings.Index("2 |     let x = xs[0];", "xs"), strings.Index(l, "^"))
		}
	}
}

func TestDisplayAllWithoutSource(t *testing.T) {
	out := captureOutput(t)

	var reports Reports
	reports.AddError("/does/not/exist.btr", source.Location{}, "failed to write", GENERATION_PHASE)
	reports.DisplayAll()

	assert.Contains(t, out.String(), "[Error while generating 😨]: failed to write")
	assert.Contains(t, out.String(), "--> [/does/not/exist.btr]")
	assert.Contains(t, out.String(), "failed with 1 error")
}

func TestWriteSummary(t *testing.T) {
	var reports Reports
	reports.AddWarning("f", loc(1, 1, 1), "w", LINT_PHASE)
	reports.AddWarning("f", loc(1, 1, 1), "w", LINT_PHASE)
	reports.AddSyntaxError("f", loc(1, 1, 1), "s", PARSING_PHASE)

	var buf bytes.Buffer
	reports.WriteSummary(&buf)

	text := buf.String()
	assert.Contains(t, text, "Phase")
	assert.Contains(t, text, "linting")
	assert.Contains(t, text, "syntax error")
	assert.Regexp(t, `linting\s*\|\s*warning\s*\|\s*2`, text)
}
