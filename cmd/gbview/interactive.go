package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seqforge/gbio"
	"github.com/seqforge/gbio/flatfile"
	"github.com/seqforge/gbio/record"
	"github.com/seqforge/gbio/seq"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateRecords browserState = iota
	stateFeatures
	stateSequence
)

type browserModel struct {
	err      error
	filename string
	records  []*record.Record
	current  seq.Seq
	features []string
	view     viewport.Model
	selected int
	featIdx  int
	width    int
	height   int
	state    browserState
}

type loadedMsg struct {
	err     error
	records []*record.Record
}

func newBrowserModel(filename string) *browserModel {
	return &browserModel{filename: filename, view: viewport.New(80, 20)}
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadRecords
}

func (m *browserModel) loadRecords() tea.Msg {
	records, err := gbio.Load(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{records: records}
}

// openRecord extracts the selected record once so features and sequence can
// be rendered without re-reading cells per keystroke.
func (m *browserModel) openRecord() error {
	s, err := m.records[m.selected].Seq()
	if err != nil {
		return err
	}
	m.current = s
	m.features = m.features[:0]
	for _, f := range s.Features {
		text, err := flatfile.FormatLocation(f.Location)
		if err != nil {
			text = "?"
		}
		m.features = append(m.features,
			kindStyle.Render(fmt.Sprintf("%-16s", f.Kind))+locationStyle.Render(text))
	}
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			switch m.state {
			case stateRecords:
				if m.selected > 0 {
					m.selected--
				}
			case stateFeatures:
				if m.featIdx > 0 {
					m.featIdx--
				}
			}

		case "down", "j":
			switch m.state {
			case stateRecords:
				if m.selected < len(m.records)-1 {
					m.selected++
				}
			case stateFeatures:
				if m.featIdx < len(m.features)-1 {
					m.featIdx++
				}
			}

		case "enter":
			if m.state == stateRecords && len(m.records) > 0 {
				if err := m.openRecord(); err != nil {
					m.err = err
					return m, nil
				}
				m.featIdx = 0
				m.state = stateFeatures
			}

		case "s":
			if m.state == stateFeatures {
				m.view.SetContent(formatSequence(m.current.Sequence))
				m.view.GotoTop()
				m.state = stateSequence
			}

		case "esc":
			switch m.state {
			case stateFeatures:
				m.state = stateRecords
			case stateSequence:
				m.state = stateFeatures
			}
		}

	case loadedMsg:
		m.err = msg.err
		m.records = msg.records
	}

	if m.state == stateSequence {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.records == nil {
		return "Loading records..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("GenBank Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateRecords:
		for i, rec := range m.records {
			line := fmt.Sprintf("%-20s %s", rec.Name, recordSummary(rec))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateFeatures:
		b.WriteString(fmt.Sprintf("%s  %d features\n\n", m.current.Name, len(m.features)))
		for i, line := range m.features {
			if i == m.featIdx {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			if i == m.featIdx {
				for _, q := range m.current.Features[i].Qualifiers {
					if q.Value != nil {
						b.WriteString(helpStyle.Render(
							fmt.Sprintf("      /%s=%q", q.Key, *q.Value)))
					} else {
						b.WriteString(helpStyle.Render("      /" + q.Key))
					}
					b.WriteString("\n")
				}
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • s sequence • esc back • q quit"))

	case stateSequence:
		b.WriteString(fmt.Sprintf("%s  %d bp\n\n", m.current.Name, len(m.current.Sequence)))
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func recordSummary(rec *record.Record) string {
	topology := "linear"
	if rec.Circular() {
		topology = "circular"
	}
	length := 0
	if rec.Length != nil {
		length = *rec.Length
	}
	return fmt.Sprintf("%8d bp  %s", length, topology)
}

func formatSequence(data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); i += 60 {
		end := i + 60
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "%9d ", i+1)
		b.Write(data[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
