package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
	"github.com/ayoisaiah/lift/internal/session"
)

func (m *Model) label(plan models.PlanType) string {
	if m.opts.Labels == nil {
		return string(plan)
	}

	return m.opts.Labels.Label(plan)
}

func (m *Model) fieldValue(sess *models.ActiveSession, r row) string {
	s := sess.Exercises[r.exercise].Sets[r.set]

	if m.field == session.Reps {
		return strconv.Itoa(s.Reps)
	}

	return recommend.FormatWeight(s.Weight)
}

func (m *Model) trend(dir session.Direction, text string) string {
	switch dir {
	case session.Up:
		return m.style.up.Render(text + " ▲")
	case session.Down:
		return m.style.down.Render(text + " ▼")
	case session.Same:
		return m.style.same.Render(text + " =")
	default:
		return text
	}
}

func (m *Model) tone(t recommend.Tone, text string) string {
	switch t {
	case recommend.Good:
		return m.style.good.Render(text)
	case recommend.Bad:
		return m.style.bad.Render(text)
	default:
		return m.style.neutral.Render(text)
	}
}

func (m *Model) setView(e models.ExerciseEntry, idx int, selected bool) string {
	s := e.Sets[idx]

	weight := recommend.FormatWeight(s.Weight) + m.opts.Unit
	reps := strconv.Itoa(s.Reps)

	if selected {
		if m.field == session.Weight {
			weight = m.style.selected.Render(weight)
		} else {
			reps = m.style.selected.Render(reps)
		}
	}

	weight = m.trend(session.Trend(e.Sets, e.LastSets, idx, session.Weight), weight)
	reps = m.trend(session.Trend(e.Sets, e.LastSets, idx, session.Reps), reps)

	cursor := "  "
	if selected {
		cursor = "> "
	}

	line := fmt.Sprintf("%sset %d: %s x %s", cursor, idx+1, weight, reps)

	if idx < len(e.LastSets) {
		last := e.LastSets[idx]
		line += m.style.hint.Render(fmt.Sprintf(
			"  (last %s x %d)",
			recommend.FormatWeight(last.Weight),
			last.Reps,
		))
	}

	return line
}

func (m *Model) sessionView(sess *models.ActiveSession) string {
	var s strings.Builder

	s.WriteString(m.style.title.Render(m.label(sess.Type) + " workout"))
	s.WriteString("\n\n")

	if len(sess.Exercises) == 0 {
		s.WriteString(m.style.hint.Render("No exercises yet. Press e to add one."))
		s.WriteString("\n")
	}

	_, cur, _ := m.selected()

	if m.mode == inserting && m.insertPos == 0 && len(sess.Exercises) > 0 {
		s.WriteString(m.insertView() + "\n")
	}

	for i, e := range sess.Exercises {
		s.WriteString(m.style.exercise.Render(fmt.Sprintf("%d. %s", i+1, e.Name)))

		if r, ok := m.engine.Recommend(e.Name); ok {
			s.WriteString("  " + m.tone(r.Tone, r.Message))
		}

		s.WriteString("\n")

		if len(e.Sets) == 0 && cur.exercise == i {
			s.WriteString("> " + m.style.hint.Render("no sets") + "\n")
		}

		for j := range e.Sets {
			selected := m.mode != inserting && cur.exercise == i && cur.set == j
			s.WriteString(m.setView(e, j, selected) + "\n")
		}

		if m.mode == inserting && m.insertPos == i+1 {
			s.WriteString(m.insertView())
		}

		s.WriteString("\n")
	}

	if m.mode == inserting &&
		(m.insertPos == session.End || len(sess.Exercises) == 0) {
		s.WriteString(m.insertView())
	}

	return s.String()
}

func (m *Model) insertView() string {
	var s strings.Builder

	s.WriteString(m.input.View() + "\n")

	for _, name := range m.matches() {
		s.WriteString(m.style.hint.Render("  "+name) + "\n")
	}

	return s.String()
}

func (m *Model) footerView() string {
	switch m.mode {
	case editing:
		return fmt.Sprintf("%s: %s\n%s",
			m.field,
			m.input.View(),
			m.help.ShortHelpView([]key.Binding{defaultKeymap.edit, defaultKeymap.esc}),
		)
	case inserting:
		return m.help.ShortHelpView([]key.Binding{defaultKeymap.edit, defaultKeymap.esc})
	case confirmFinish:
		return "Finish and save this workout? [y/N]"
	case confirmCancel:
		return "Discard this workout? [y/N]"
	default:
		return m.help.ShortHelpView(defaultKeymap.browseBindings())
	}
}

func (m *Model) View() string {
	sess := m.current()
	if sess == nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.sessionView(sess))

	if m.status != "" {
		s.WriteString(m.style.errorText.Render(m.status) + "\n")
	}

	s.WriteString(m.footerView())

	return m.style.base.Render(
		lipgloss.NewStyle().MaxWidth(maxWidth).Render(s.String()),
	)
}
