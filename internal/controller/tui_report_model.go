package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// fileItem is one entry in the report browser list.
type fileItem struct {
	path  string
	count int
}

func (f fileItem) FilterValue() string {
	return f.path
}

// reportDelegate renders fileItems as single rows: violation count then path.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(6).
		Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		countStyle = countStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.count)),
		pathStyle.Render(file.path),
	)

	_, _ = fmt.Fprint(w, line)
}

// reportModel is the Bubble Tea model behind the view command: a list
// of scanned files, with a per-file violation detail view on enter.
type reportModel struct {
	list     list.Model
	reports  []m.FileReport
	selected int // index into reports, -1 while browsing the list
	width    int
	height   int
}

func newReportModel(reports []m.FileReport) reportModel {
	items := make([]list.Item, 0, len(reports))

	for _, report := range reports {
		items = append(items, fileItem{
			path:  string(report.Origin),
			count: len(report.Violations),
		})
	}

	l := list.New(items, reportDelegate{}, 0, 0)
	l.Title = "banner format reports"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return reportModel{list: l, reports: reports, selected: -1}
}

func (mdl reportModel) Init() tea.Cmd {
	return nil
}

func (mdl reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mdl.width = msg.Width
		mdl.height = msg.Height
		mdl.list.SetSize(msg.Width, msg.Height-1)

		return mdl, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return mdl, tea.Quit

		case "enter":
			if mdl.selected == -1 && len(mdl.reports) > 0 {
				mdl.selected = mdl.list.Index()
				return mdl, nil
			}

		case "esc":
			if mdl.selected >= 0 {
				mdl.selected = -1
				return mdl, nil
			}

			return mdl, tea.Quit
		}
	}

	if mdl.selected >= 0 {
		return mdl, nil
	}

	var cmd tea.Cmd
	mdl.list, cmd = mdl.list.Update(msg)

	return mdl, cmd
}

func (mdl reportModel) View() string {
	if mdl.selected >= 0 && mdl.selected < len(mdl.reports) {
		return mdl.detailView(mdl.reports[mdl.selected])
	}

	return mdl.list.View()
}

func (mdl reportModel) detailView(report m.FileReport) string {
	out := titleStyle.Render(string(report.Origin)) + "\n\n"

	if len(report.Violations) == 0 {
		out += okStyle.Render("All functions follow the required format") + "\n"
	}

	for _, v := range report.Violations {
		out += warnLineStyle.Render(fmt.Sprintf("line %d", v.StartLine+1))
		out += fmt.Sprintf("  %s\n", v.Message)
	}

	out += "\n" + helpStyle.Render("esc back • q quit")

	return out
}
