package domain

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bannerfmt/internal/adapter"
	"github.com/mouse-blink/bannerfmt/internal/controller"
	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// CheckArgs configures a check run.
type CheckArgs struct {
	Paths   []m.Path
	Exclude []string
	Workers int
	Reports m.Path
}

// FixArgs configures a fix run.
type FixArgs struct {
	Paths   []m.Path
	Exclude []string
	Workers int
}

// ListArgs configures a list run.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Workers int
}

// ViewArgs configures a view run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for banner checking operations.
type Workflow interface {
	// Check scans files, renders violations, persists reports, and
	// returns the total violation count.
	Check(args CheckArgs) (int, error)
	// Fix inserts missing banners into files in place.
	Fix(args FixArgs) error
	// List shows scanned files with function and violation counts.
	List(args ListArgs) error
	// View renders previously saved reports.
	View(args ViewArgs) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	store   adapter.ReportStore
	ui      controller.UI
	scanner ViolationScanner
	fixer   FixGenerator
}

// NewWorkflow creates a Workflow instance over the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI) Workflow {
	det := NewRegexDetector()

	return &workflow{
		fs:      fs,
		store:   store,
		ui:      ui,
		scanner: NewViolationScanner(det),
		fixer:   NewFixGenerator(det),
	}
}

// Check scans all files, shows the violations, and stores one report
// per file under args.Reports.
func (w *workflow) Check(args CheckArgs) (int, error) {
	reports, err := w.scanFiles(args.Paths, args.Exclude, args.Workers)
	if err != nil {
		return 0, err
	}

	if err := w.ui.DisplayViolations(reports); err != nil {
		return 0, err
	}

	if args.Reports != "" {
		if err := w.store.SaveReports(args.Reports, reports); err != nil {
			return 0, fmt.Errorf("failed to save reports: %w", err)
		}
	}

	total := 0
	for _, report := range reports {
		total += len(report.Violations)
	}

	return total, nil
}

// Fix rewrites every file that has violations. Each file's insertions
// are generated and applied against the same snapshot, so positions
// stay valid regardless of how many banners one file receives.
func (w *workflow) Fix(args FixArgs) error {
	files, err := w.collectFiles(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	results := make([]m.FixResult, len(files))

	g := new(errgroup.Group)
	g.SetLimit(workerCount(args.Workers))

	for i, path := range files {
		g.Go(func() error {
			result, err := w.fixFile(path)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplayFixes(results)
}

// List shows every scanned file with its function and violation counts.
func (w *workflow) List(args ListArgs) error {
	reports, err := w.scanFiles(args.Paths, args.Exclude, args.Workers)
	if err != nil {
		return err
	}

	return w.ui.DisplayCounts(reports)
}

// View loads stored reports and hands them to the UI.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayReports(reports)
}

func (w *workflow) fixFile(path m.Path) (m.FixResult, error) {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		return m.FixResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := m.NewDocument(string(content))
	blocks := w.scanner.Blocks(doc)

	result := m.FixResult{Origin: path, Functions: len(blocks)}

	violations := w.scanner.Scan(doc)
	if len(violations) == 0 {
		return result, nil
	}

	insertions := w.fixer.GenerateFix(doc, violations)

	fixed := adapter.ApplyInsertions(doc, insertions)

	perm := defaultFilePerm
	if info, err := w.fs.FileInfo(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.fs.WriteFile(path, []byte(fixed), perm); err != nil {
		return m.FixResult{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	result.Inserted = len(violations)

	return result, nil
}

// scanFiles collects the target files and scans them in parallel. Each
// file gets its own immutable snapshot; the core itself never runs
// concurrently on one document.
func (w *workflow) scanFiles(paths []m.Path, exclude []string, workers int) ([]m.FileReport, error) {
	files, err := w.collectFiles(paths, exclude)
	if err != nil {
		return nil, err
	}

	reports := make([]m.FileReport, len(files))

	g := new(errgroup.Group)
	g.SetLimit(workerCount(workers))

	for i, path := range files {
		g.Go(func() error {
			content, err := w.fs.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			doc := m.NewDocument(string(content))

			reports[i] = m.FileReport{
				Origin:     path,
				Functions:  len(w.scanner.Blocks(doc)),
				Violations: w.scanner.Scan(doc),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (w *workflow) collectFiles(paths []m.Path, exclude []string) ([]m.Path, error) {
	files, err := w.fs.Get(paths)
	if err != nil {
		return nil, err
	}

	files, err = filterExcluded(files, exclude)
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func filterExcluded(files []m.Path, exclude []string) ([]m.Path, error) {
	if len(exclude) == 0 {
		return files, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, pattern)
	}

	kept := files[:0]

	for _, file := range files {
		excluded := false

		for _, pattern := range patterns {
			if pattern.MatchString(string(file)) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, file)
		}
	}

	return kept, nil
}

func workerCount(workers int) int {
	if workers <= 0 {
		return 1
	}

	return workers
}

const defaultFilePerm os.FileMode = 0o644
