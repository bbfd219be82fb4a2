package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tempora/internal/cli/formatter"
	"tempora/internal/domain"
	"tempora/internal/gesture"
	"tempora/internal/timegrid"
)

// dayViewMode tracks which interaction mode the day view is in.
type dayViewMode int

const (
	modeBrowse  dayViewMode = iota // cursor over the instance list
	modeGesture                    // drag or resize in flight
)

// dayViewModel is the bubbletea Model for the interactive day view. A
// keyboard gesture moves the selected instance through the same controller
// the pointer path uses: arrow keys feed deltas, enter drops, esc cancels.
type dayViewModel struct {
	app     *App
	date    string
	filters domain.VisibilityFilters

	instances []domain.Instance
	cursor    int

	mode     dayViewMode
	ctrl     *gesture.Controller
	deltaMin int

	keys dayViewKeyMap
	help help.Model

	status   string
	err      error
	quitting bool
}

type dayLoadedMsg struct {
	instances []domain.Instance
}

type dayCommittedMsg struct {
	title string
}

type dayErrMsg struct {
	err error
}

func newDayViewModel(app *App, date string, filters domain.VisibilityFilters) dayViewModel {
	return dayViewModel{
		app:     app,
		date:    date,
		filters: filters,
		ctrl:    gesture.NewController(1, timegrid.DefaultSnapMin),
		keys:    defaultDayViewKeys(),
		help:    help.New(),
	}
}

// runDayView starts the interactive day view on the alternate screen.
func runDayView(app *App, date string, filters domain.VisibilityFilters) error {
	p := tea.NewProgram(newDayViewModel(app, date, filters), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m dayViewModel) Init() tea.Cmd {
	return m.loadDay()
}

func (m dayViewModel) loadDay() tea.Cmd {
	app, date, filters := m.app, m.date, m.filters
	return func() tea.Msg {
		instances, err := app.Schedule.Day(context.Background(), date, filters)
		if err != nil {
			return dayErrMsg{err: err}
		}
		return dayLoadedMsg{instances: instances}
	}
}

func (m dayViewModel) commitGesture(change gesture.Change) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		updated, err := app.Gestures.Commit(context.Background(), change)
		if err != nil {
			return dayErrMsg{err: err}
		}
		return dayCommittedMsg{title: "Event " + updated.Title}
	}
}

func (m dayViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case dayLoadedMsg:
		m.instances = msg.instances
		if m.cursor >= len(m.instances) {
			m.cursor = len(m.instances) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.err = nil
		return m, nil

	case dayCommittedMsg:
		m.status = fmt.Sprintf("Saved %s", msg.title)
		return m, m.loadDay()

	case dayErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeGesture {
			return m.updateGesture(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m dayViewModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.instances)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadDay()

	case key.Matches(msg, m.keys.Move):
		return m.beginGesture(m.ctrl.BeginDrag)
	case key.Matches(msg, m.keys.Start):
		return m.beginGesture(func(inst domain.Instance) error {
			return m.ctrl.BeginResize(inst, gesture.HandleTop)
		})
	case key.Matches(msg, m.keys.End):
		return m.beginGesture(func(inst domain.Instance) error {
			return m.ctrl.BeginResize(inst, gesture.HandleBottom)
		})
	}
	return m, nil
}

func (m dayViewModel) beginGesture(begin func(domain.Instance) error) (tea.Model, tea.Cmd) {
	if len(m.instances) == 0 {
		return m, nil
	}
	inst := m.instances[m.cursor]
	if inst.Kind == domain.KindTask {
		m.status = "Task pseudo-events are read-only; edit the task's due time instead."
		return m, nil
	}
	if err := begin(inst); err != nil {
		m.err = err
		return m, nil
	}
	m.mode = modeGesture
	m.deltaMin = 0
	m.status = ""
	return m, nil
}

func (m dayViewModel) updateGesture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		m.mode = modeBrowse
		m.status = "Cancelled."
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.deltaMin -= timegrid.DefaultSnapMin
	case key.Matches(msg, m.keys.Down):
		m.deltaMin += timegrid.DefaultSnapMin

	case key.Matches(msg, m.keys.Accept):
		change, changed := m.ctrl.End()
		m.mode = modeBrowse
		if !changed {
			m.status = "No change."
			return m, nil
		}
		return m, m.commitGesture(change)

	default:
		return m, nil
	}

	if err := m.ctrl.Update(gesture.Gesture{PointerDeltaY: float64(m.deltaMin)}); err != nil {
		m.err = err
		m.mode = modeBrowse
	}
	return m, nil
}

func (m dayViewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header(formatter.HumanDate(m.date, time.Now())) + "\n\n")

	if len(m.instances) == 0 {
		b.WriteString(formatter.Dim("Nothing scheduled.") + "\n")
	}
	for i, inst := range m.instances {
		cursor := "  "
		start, end := inst.StartTime, inst.EndTime
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			if m.mode == modeGesture {
				_, start, end = m.ctrl.Preview()
			}
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s %s\n",
			cursor,
			formatter.TimeRange(start, end),
			formatter.TypeBadge(inst.Type),
			formatter.Bold(inst.Title),
			formatter.KindBadge(inst.Kind),
		))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(formatter.Dim(m.status) + "\n")
	}

	if m.mode == modeGesture {
		b.WriteString(m.help.ShortHelpView(m.keys.gestureHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.browseHelp()))
	}
	return b.String()
}
