package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

func sampleReports() []m.FileReport {
	return []m.FileReport{
		{
			Origin:    "b.py",
			Functions: 2,
			Violations: []m.Violation{{
				StartLine: 4,
				EndColumn: 10,
				Name:      "foo",
				Message:   "Function 'foo' does not follow the required format",
				Severity:  m.SeverityWarning,
				Code:      m.CodeFunctionFormat,
			}},
		},
		{
			Origin:    "a.py",
			Functions: 1,
		},
	}
}

func TestReportStore_SaveLoadRoundTrip(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	store := NewReportStore()
	require.NoError(t, store.SaveReports(dir, sampleReports()))

	loaded, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Sorted by origin on load.
	assert.Equal(t, m.Path("a.py"), loaded[0].Origin)
	assert.Equal(t, m.Path("b.py"), loaded[1].Origin)

	assert.Equal(t, 2, loaded[1].Functions)
	require.Len(t, loaded[1].Violations, 1)
	assert.Equal(t, "foo", loaded[1].Violations[0].Name)
	assert.Equal(t, m.SeverityWarning, loaded[1].Violations[0].Severity)
	assert.Equal(t, m.CodeFunctionFormat, loaded[1].Violations[0].Code)
}

func TestReportStore_SaveOverwritesSameOrigin(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	store := NewReportStore()
	require.NoError(t, store.SaveReports(dir, []m.FileReport{{Origin: "a.py", Functions: 1}}))
	require.NoError(t, store.SaveReports(dir, []m.FileReport{{Origin: "a.py", Functions: 3}}))

	loaded, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 3, loaded[0].Functions)
}

func TestReportStore_LoadSkipsUnknownSchema(t *testing.T) {
	dir := t.TempDir()

	stale := reportPayload{Schema: reportSchemaVersion + 1, Origin: "old.py"}
	data, err := msgpack.Marshal(&stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.mp"), data, 0o644))

	store := NewReportStore()

	loaded, err := store.LoadReports(m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestReportStore_LoadMissingDir(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReports(m.Path(filepath.Join(t.TempDir(), "nope")))
	require.Error(t, err)
}
