package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chordgen/midi"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/scale"
	"github.com/jsphweid/chordgen/session"
	"github.com/jsphweid/chordgen/util"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75"))
	chordStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555")).
			Padding(0, 1).
			Width(22)
	cursorStyle = chordStyle.BorderForeground(lipgloss.Color("#e5c07b"))
)

const help = "h/l move  a add  x remove  j/k semitone  J/K octave  t quality  i/I invert  p playback  r random  m/M key  s scale  v reading  g spelling  n notation  e export  q quit"

// Model is the interactive progression editor.
type Model struct {
	sess       *session.Session
	rand       *rand.Rand
	exportPath string
	export     midi.ExportOptions

	cursor   int
	roman    bool
	status   string
	err      error
	quitting bool
}

func New(sess *session.Session, r *rand.Rand, exportPath string, export midi.ExportOptions) Model {
	return Model{
		sess:       sess,
		rand:       r,
		exportPath: exportPath,
		export:     export,
		roman:      true,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) numChords() int {
	return m.sess.Progression().GetNumChords()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	m.status = ""
	sc := m.sess.Progression().GetScale()

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "h", "left":
		if m.cursor > 0 {
			m.cursor--
		}

	case "l", "right":
		if m.cursor < m.numChords()-1 {
			m.cursor++
		}

	case "a":
		index := 0
		if m.numChords() > 0 {
			index = m.cursor + 1
		}
		if m.err = m.sess.AddChord(index); m.err == nil {
			m.cursor = index
		}

	case "x":
		if m.err = m.sess.RemoveChord(m.cursor); m.err == nil && m.cursor >= m.numChords() && m.cursor > 0 {
			m.cursor--
		}

	case "k", "up":
		m.err = m.sess.TransposeChord(m.cursor, 1)

	case "j", "down":
		m.err = m.sess.TransposeChord(m.cursor, -1)

	case "K":
		m.err = m.sess.TransposeChord(m.cursor, pitchclass.NumPitchClasses)

	case "J":
		m.err = m.sess.TransposeChord(m.cursor, -pitchclass.NumPitchClasses)

	case "t":
		m.err = m.sess.CycleQuality(m.cursor)

	case "i":
		m.err = m.sess.InvertChord(m.cursor, 1)

	case "I":
		m.err = m.sess.InvertChord(m.cursor, -1)

	case "r":
		m.sess.Randomize(m.rand)
		m.status = "randomized"

	case "m":
		m.err = m.sess.TransposeKey(1)

	case "M":
		m.err = m.sess.TransposeKey(-1)

	case "v":
		m.err = m.sess.CycleReading(m.cursor)

	case "g":
		notation := scale.Alphabetical
		if m.roman {
			notation = scale.Roman
		}
		m.err = m.sess.CycleSpelling(m.cursor, notation)

	case "s":
		next := scale.IonianNaturalMinor
		if sc.GetReferentialScale() == scale.IonianNaturalMinor {
			next = scale.IonianMajor
		}
		m.err = m.sess.SetKey(sc.GetRootPitchClass(), next)

	case "n":
		m.roman = !m.roman

	case "p":
		m.err = m.sess.CyclePlaybackStyle(m.cursor)

	case "e":
		chords := m.sess.Progression().GetChords()
		if m.err = midi.WriteProgressionFile(m.exportPath, chords, m.export); m.err == nil {
			m.status = "wrote " + m.exportPath
		}
	}

	return m, nil
}

func symbol(n model.NotationRepresentation) string {
	res := n.Symbol
	if n.UpperFigure != "" || n.LowerFigure != "" {
		res += n.UpperFigure
		if n.LowerFigure != "" {
			res += "/" + n.LowerFigure
		}
	}
	if n.BassFigure != "" {
		if strings.HasPrefix(n.BassFigure, "/") {
			res += n.BassFigure
		} else {
			res += " " + n.BassFigure
		}
	}
	return res
}

func renderChord(c model.ChordView, roman bool, selected bool) string {
	label := "?"
	name := "unrecognised"
	if c.Representation != nil {
		n := c.Representation.Alphabetical
		if roman {
			n = c.Representation.Roman
		}
		label = symbol(n)
		name = util.CapitalizeFirstChar(n.Name)
	}

	body := headerStyle.Render(label) + "\n" + name + "\n" +
		dimStyle.Render(strings.Join(c.Notes, " ")) + "\n" + dimStyle.Render(c.PlaybackStyle)
	if selected {
		return cursorStyle.Render(body)
	}
	return chordStyle.Render(body)
}

// RenderProgression draws the chords side by side. cursor < 0 highlights
// nothing.
func RenderProgression(view model.ProgressionView, roman bool, cursor int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Key: %s", view.Key)))
	b.WriteString("\n\n")

	if len(view.Chords) == 0 {
		b.WriteString(dimStyle.Render("no chords"))
		return b.String()
	}
	boxes := make([]string, len(view.Chords))
	for i, c := range view.Chords {
		boxes[i] = renderChord(c, roman, i == cursor)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderProgression(m.sess.View(), m.roman, m.cursor))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

// Run blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
