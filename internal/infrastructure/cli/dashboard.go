package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rmarchan/tablero/pkg/application"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("TABLERO_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var semGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var semYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
var semBlue = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
var semRed = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

// severityStyle maps the semaphore severity names onto the table styles.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "green":
		return semGreen
	case "blue":
		return semBlue
	case "red":
		return semRed
	default:
		return semYellow
	}
}

type model struct {
	table    table.Model
	source   string
	overall  int
	warnings []string
	err      error
}

func initialModel() model {
	repo, err := loadRepository()
	if err != nil {
		return model{err: err}
	}

	svc := application.NewReportService(repo, nil)
	report, err := svc.BuildReport()
	if err != nil {
		return model{err: err}
	}

	columns := []table.Column{
		{Title: "Stage", Width: 14},
		{Title: "Deliverable", Width: 12},
		{Title: "Progress", Width: 8},
		{Title: "Delivery", Width: 10},
		{Title: "Consumption", Width: 14},
		{Title: "Due", Width: 12},
		{Title: "Days", Width: 5},
	}

	rows := []table.Row{}
	for _, stage := range report.Stages {
		for _, d := range stage.Deliverables {
			due := "-"
			if !d.DueDate.IsZero() {
				due = d.DueDate.Format("2006-01-02")
			}
			rows = append(rows, table.Row{
				stage.Name,
				deliverableLabel(d.Number),
				fmt.Sprintf("%d%%", d.Progress),
				severityStyle(d.Semaphore.Delivery.Severity()).Render(string(d.Semaphore.Delivery)),
				severityStyle(d.Semaphore.Consumption.Severity()).Render(string(d.Semaphore.Consumption)),
				due,
				fmt.Sprintf("%d", d.DaysRemaining),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	warnings := []string{}
	for _, diag := range report.Diagnostics {
		warnings = append(warnings, fmt.Sprintf("item %d: %s", diag.ItemID, diag.Message))
	}

	return model{
		table:    t,
		source:   report.Source,
		overall:  report.OverallProgress,
		warnings: warnings,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("tablero %s  |  overall %d%%", m.source, m.overall))

	warningView := semGreen.Render("\nClassification: OK")
	if len(m.warnings) > 0 {
		warningView = semYellow.Render("\nAMBIGUOUS TAGS:\n")
		for _, w := range m.warnings {
			warningView += fmt.Sprintf("- %s\n", w)
		}
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"\nDeliverables:",
			m.table.View(),
			warningView,
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
