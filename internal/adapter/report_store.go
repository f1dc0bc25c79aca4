package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// Current schema version - increment when reportPayload format changes.
const reportSchemaVersion uint16 = 1

const reportFileExt = ".mp"

// ReportStore persists and retrieves per-file scan reports.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.FileReport) error
	LoadReports(dir m.Path) ([]m.FileReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore backed by msgpack files on disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// reportPayload is the on-disk shape of one file's scan report.
type reportPayload struct {
	Schema     uint16
	Origin     string
	Functions  int
	Violations []violationPayload
}

type violationPayload struct {
	StartLine int
	EndColumn int
	Name      string
	Message   string
	Severity  string
	Code      string
}

// SaveReports writes one msgpack file per report under dir, named by
// the origin path's SHA-256 so repeated scans of the same file
// overwrite its previous report.
func (rs *reportStore) SaveReports(dir m.Path, reports []m.FileReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return err
	}

	for _, report := range reports {
		payload := toPayload(report)

		data, err := msgpack.Marshal(&payload)
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", report.Origin, err)
		}

		if err := os.WriteFile(reportPath(dir, report.Origin), data, 0o644); err != nil {
			return err
		}
	}

	return nil
}

// LoadReports reads every report under dir, skipping payloads written
// with a different schema version, and returns them sorted by origin.
func (rs *reportStore) LoadReports(dir m.Path) ([]m.FileReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory %s: %w", dir, err)
	}

	var reports []m.FileReport

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportFileExt) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, err
		}

		var payload reportPayload
		if err := msgpack.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", entry.Name(), err)
		}

		if payload.Schema != reportSchemaVersion {
			continue
		}

		reports = append(reports, fromPayload(payload))
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Origin < reports[j].Origin })

	return reports, nil
}

func reportPath(dir m.Path, origin m.Path) string {
	sum := sha256.Sum256([]byte(origin))

	return filepath.Join(string(dir), hex.EncodeToString(sum[:])+reportFileExt)
}

func toPayload(report m.FileReport) reportPayload {
	payload := reportPayload{
		Schema:    reportSchemaVersion,
		Origin:    string(report.Origin),
		Functions: report.Functions,
	}

	for _, v := range report.Violations {
		payload.Violations = append(payload.Violations, violationPayload{
			StartLine: v.StartLine,
			EndColumn: v.EndColumn,
			Name:      v.Name,
			Message:   v.Message,
			Severity:  string(v.Severity),
			Code:      v.Code,
		})
	}

	return payload
}

func fromPayload(payload reportPayload) m.FileReport {
	report := m.FileReport{
		Origin:    m.Path(payload.Origin),
		Functions: payload.Functions,
	}

	for _, v := range payload.Violations {
		report.Violations = append(report.Violations, m.Violation{
			StartLine: v.StartLine,
			EndColumn: v.EndColumn,
			Name:      v.Name,
			Message:   v.Message,
			Severity:  m.Severity(v.Severity),
			Code:      v.Code,
		})
	}

	return report
}
