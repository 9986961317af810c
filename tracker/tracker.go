// Package tracker is the interactive view of the workout in progress
package tracker

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/session"
)

// maxMatches is the number of known exercises listed below the insert prompt.
const maxMatches = 5

type mode int

const (
	browsing mode = iota
	editing
	inserting
	confirmFinish
	confirmCancel
)

// Labeler returns the display name of a plan.
type Labeler interface {
	Label(plan models.PlanType) string
}

// Options controls the presentation of the tracker.
type Options struct {
	Labels    Labeler
	Unit      string
	DarkTheme bool
	// Known holds the exercise names suggested when inserting an exercise.
	Known []string
}

// Result describes how the tracker was left.
type Result struct {
	Workout   *models.WorkoutRecord
	Cancelled bool
}

// row addresses one line of the set list. set is -1 for an exercise that has
// no sets.
type row struct {
	exercise int
	set      int
}

// Model is the bubbletea model of the tracker.
type Model struct {
	engine    *session.Engine
	opts      Options
	style     styles
	help      help.Model
	input     textinput.Model
	result    Result
	status    string
	field     session.Field
	mode      mode
	cursor    int
	insertPos int
}

// New returns a tracker for the session held by engine.
func New(engine *session.Engine, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.SetSuggestions(opts.Known)

	if opts.Unit == "" {
		opts.Unit = "kg"
	}

	return &Model{
		engine: engine,
		opts:   opts,
		style:  newStyles(opts.DarkTheme),
		help:   help.New(),
		input:  input,
		field:  session.Weight,
	}
}

// Result reports whether the workout was finished or cancelled when the
// tracker exited. Both are empty if the user quit with the session intact.
func (m *Model) Result() Result {
	return m.result
}

func (m *Model) current() *models.ActiveSession {
	st, ok := m.engine.State().(session.InSession)
	if !ok {
		return nil
	}

	return st.Session
}

func (m *Model) rows(sess *models.ActiveSession) []row {
	var rows []row

	for i, e := range sess.Exercises {
		if len(e.Sets) == 0 {
			rows = append(rows, row{exercise: i, set: -1})
			continue
		}

		for j := range e.Sets {
			rows = append(rows, row{exercise: i, set: j})
		}
	}

	return rows
}

// selected returns the exercise and set under the cursor.
func (m *Model) selected() (*models.ActiveSession, row, bool) {
	sess := m.current()
	if sess == nil {
		return nil, row{}, false
	}

	rows := m.rows(sess)
	if len(rows) == 0 {
		return sess, row{}, false
	}

	m.cursor = max(0, min(m.cursor, len(rows)-1))

	return sess, rows[m.cursor], true
}

// moveTo places the cursor on the given set of an exercise.
func (m *Model) moveTo(exercise, set int) {
	sess := m.current()
	if sess == nil {
		return
	}

	for i, r := range m.rows(sess) {
		if r.exercise == exercise && (r.set == set || r.set == -1) {
			m.cursor = i
			return
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case editing:
			return m.handleEditKey(msg)
		case inserting:
			return m.handleInsertKey(msg)
		case confirmFinish, confirmCancel:
			return m.handleConfirmKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	return m, nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	sess, cur, ok := m.selected()
	if sess == nil {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, defaultKeymap.down):
		if m.cursor < len(m.rows(sess))-1 {
			m.cursor++
		}

	case key.Matches(msg, defaultKeymap.field):
		if m.field == session.Weight {
			m.field = session.Reps
		} else {
			m.field = session.Weight
		}

	case key.Matches(msg, defaultKeymap.edit):
		if !ok || cur.set < 0 {
			break
		}

		m.mode = editing
		m.input.Reset()
		m.input.ShowSuggestions = false
		m.input.Placeholder = m.fieldValue(sess, cur)

		return m, m.input.Focus()

	case key.Matches(msg, defaultKeymap.addSet):
		if !ok {
			break
		}

		e := sess.Exercises[cur.exercise]
		if m.engine.AddSet(e.ID) {
			m.moveTo(cur.exercise, len(e.Sets))
		}

	case key.Matches(msg, defaultKeymap.removeSet):
		if !ok || cur.set < 0 {
			break
		}

		if !m.engine.RemoveSet(sess.Exercises[cur.exercise].ID, cur.set) {
			m.status = "an exercise keeps at least one set"
		}

	case key.Matches(msg, defaultKeymap.insert):
		pos := 0
		if ok {
			pos = cur.exercise + 1
		}

		return m, m.startInsert(pos)

	case key.Matches(msg, defaultKeymap.append):
		return m, m.startInsert(session.End)

	case key.Matches(msg, defaultKeymap.removeEx):
		if ok {
			m.engine.RemoveExercise(sess.Exercises[cur.exercise].ID)
		}

	case key.Matches(msg, defaultKeymap.finish):
		m.mode = confirmFinish

	case key.Matches(msg, defaultKeymap.cancel):
		m.mode = confirmCancel
	}

	return m, nil
}

func (m *Model) startInsert(pos int) tea.Cmd {
	m.mode = inserting
	m.insertPos = pos
	m.input.Reset()
	m.input.Placeholder = "exercise name"
	m.input.ShowSuggestions = true

	return m.input.Focus()
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.esc):
		m.leaveInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		sess, cur, ok := m.selected()
		if ok && cur.set >= 0 {
			m.engine.UpdateSet(
				sess.Exercises[cur.exercise].ID,
				cur.set,
				m.field,
				m.input.Value(),
			)
		}

		m.leaveInput()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.esc):
		m.leaveInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		pos := m.insertPos

		m.leaveInput()

		if name == "" {
			return m, nil
		}

		if !m.engine.InsertExercise(name, pos) {
			m.status = "could not add " + name
			return m, nil
		}

		sess := m.current()
		if pos == session.End {
			pos = len(sess.Exercises) - 1
		}

		m.moveTo(pos, 0)

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := key.Matches(msg, defaultKeymap.confirm)
	finishing := m.mode == confirmFinish

	m.mode = browsing

	if !confirmed {
		return m, nil
	}

	if finishing {
		rec, ok := m.engine.Finish()
		if ok {
			m.result.Workout = &rec
		}

		return m, tea.Quit
	}

	m.result.Cancelled = m.engine.Cancel()

	return m, tea.Quit
}

func (m *Model) leaveInput() {
	m.mode = browsing
	m.input.Blur()
	m.input.Reset()
}

// matches lists the known exercises matching the insert prompt.
func (m *Model) matches() []string {
	found := insights.Filter(m.opts.Known, m.input.Value())
	if len(found) > maxMatches {
		found = found[:maxMatches]
	}

	return found
}

// Run shows the tracker until the user quits, finishes or cancels the
// workout.
func Run(m *Model) (Result, error) {
	p := tea.NewProgram(m)

	_, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	return m.Result(), nil
}
