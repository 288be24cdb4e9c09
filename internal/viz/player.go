package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

const (
	MinSpeed = 1
	MaxSpeed = 10

	barHeight = 14
)

// Lane is one named trace shown by the player.
type Lane struct {
	Name  string
	Trace trace.Trace
}

// TickMsg advances playback. Gen discards ticks scheduled before the last
// play or speed change.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// Player replays traces in lockstep. Shorter traces hold their final
// frame while longer ones continue.
type Player struct {
	lanes    []Lane
	cursor   int
	length   int
	playing  bool
	speed    int
	gen      int
	theme    Theme
	showHelp bool
	width    int
}

func NewPlayer(speed int, lanes ...Lane) Player {
	length := 0
	for _, l := range lanes {
		length = max(length, len(l.Trace))
	}
	return Player{
		lanes:  lanes,
		length: length,
		speed:  min(max(speed, MinSpeed), MaxSpeed),
		theme:  CurrentTheme,
		width:  80,
	}
}

// Interval is the delay between frames at the current speed.
func (p Player) Interval() time.Duration {
	return Interval(p.speed)
}

// Interval is the delay between frames at speed.
func Interval(speed int) time.Duration {
	return time.Second / time.Duration(2*max(speed, MinSpeed))
}

func (p Player) Cursor() int   { return p.cursor }
func (p Player) Playing() bool { return p.playing }
func (p Player) Speed() int    { return p.speed }

// Frame returns the frame of lane i under the cursor.
func (p Player) Frame(i int) trace.Frame {
	t := p.lanes[i].Trace
	return t[min(p.cursor, len(t)-1)]
}

func (p Player) done() bool { return p.cursor >= p.length-1 }

func (p Player) tick() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.Interval(), func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

func (p Player) Init() tea.Cmd { return nil }

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.WindowSizeMsg:
		p.width = msg.Width
	case TickMsg:
		if !p.playing || msg.Gen != p.gen {
			return p, nil
		}
		if p.done() {
			p.playing = false
			return p, nil
		}
		p.cursor++
		return p, p.tick()
	}
	return p, nil
}

func (p Player) handleKey(msg tea.KeyMsg) (Player, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case " ", "p":
		if p.playing {
			p.playing = false
			return p, nil
		}
		if p.done() {
			p.cursor = 0
		}
		return p.play()
	case "right", "l":
		p.playing = false
		p.cursor = min(p.cursor+1, max(p.length-1, 0))
	case "left", "h":
		p.playing = false
		p.cursor = max(p.cursor-1, 0)
	case "home", "g":
		p.cursor = 0
	case "end", "G":
		p.cursor = max(p.length-1, 0)
	case "+", "=":
		return p.setSpeed(p.speed + 1)
	case "-", "_":
		return p.setSpeed(p.speed - 1)
	case "r", "R":
		p.playing = false
		p.cursor = 0
	case "t", "T":
		p.theme = NextTheme(p.theme.Name)
	case "?":
		p.showHelp = !p.showHelp
	}
	return p, nil
}

func (p Player) play() (Player, tea.Cmd) {
	if p.length == 0 {
		return p, nil
	}
	p.playing = true
	p.gen++
	return p, p.tick()
}

func (p Player) setSpeed(speed int) (Player, tea.Cmd) {
	p.speed = min(max(speed, MinSpeed), MaxSpeed)
	if !p.playing {
		return p, nil
	}
	p.gen++
	return p, p.tick()
}

func (p Player) View() string {
	if p.length == 0 {
		return "nothing to replay\n"
	}

	barWidth := 1
	if len(p.lanes) == 1 {
		if n := len(p.lanes[0].Trace[0].Array); n > 0 && n*3 <= p.width {
			barWidth = 2
		}
	}

	views := make([]string, len(p.lanes))
	for i, l := range p.lanes {
		views[i] = laneStyle.Render(p.viewLane(l, p.Frame(i), barWidth))
	}

	var s strings.Builder
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...) + "\n")
	s.WriteString(Separator(min(p.width, 80)) + "\n")

	status := StatusPaused.Render("PAUSED")
	switch {
	case p.playing:
		status = StatusPlaying.Render("PLAYING")
	case p.done():
		status = StatusDone.Render("DONE")
	}
	percent := 1.0
	if p.length > 1 {
		percent = float64(p.cursor) / float64(p.length-1)
	}
	s.WriteString(fmt.Sprintf("%s  %s  %s  speed %d\n",
		status,
		ProgressBar(percent, 30),
		valueStyle.Render(fmt.Sprintf("%d/%d", p.cursor+1, p.length)),
		p.speed))
	s.WriteString(Legend(p.theme) + "\n")

	if p.showHelp {
		s.WriteString(helpStyle.Render("space play/pause  h/l step  g/G first/last  +/- speed  r rewind  t theme  q quit"))
	} else {
		s.WriteString(KeyHint.Render("? help"))
	}
	return s.String()
}

func (p Player) viewLane(l Lane, f trace.Frame, barWidth int) string {
	title := headerStyle.Foreground(p.theme.Primary).Render(strings.ToUpper(l.Name))

	end := min(p.cursor, len(l.Trace)-1)
	history := make([]float64, 0, end+1)
	for _, fr := range l.Trace[:end+1] {
		history = append(history, float64(fr.Comparisons))
	}
	sparkWidth := max(len(f.Array)*barWidth, 20)

	var s strings.Builder
	s.WriteString(title + "\n")
	s.WriteString(RenderBars(f.Array, barHeight, barWidth, p.theme) + "\n\n")
	s.WriteString(descStyle.Render(f.Description) + "\n")
	s.WriteString(labelStyle.Render("comparisons") + valueStyle.Render(fmt.Sprint(f.Comparisons)) + "\n")
	s.WriteString(labelStyle.Render("swaps") + valueStyle.Render(fmt.Sprint(f.Swaps)) + "\n")
	s.WriteString(KeyHint.Render(Sparkline(history, sparkWidth)))
	return s.String()
}

// Run replays lanes in the alternate screen until the user quits.
func Run(speed int, lanes ...Lane) error {
	_, err := tea.NewProgram(NewPlayer(speed, lanes...), tea.WithAltScreen()).Run()
	return err
}
