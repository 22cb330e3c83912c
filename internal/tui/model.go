// Package tui provides the Bubble Tea portfolio interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/termfolio/internal/anim"
	"github.com/verte-zerg/termfolio/internal/content"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/store"
)

const (
	defaultFPS    = 60
	toastDuration = 3 * time.Second
)

type frameMsg time.Time

// Model implements the Bubble Tea portfolio UI.
type Model struct {
	config  model.Config
	content content.Portfolio
	store   *store.Store
	clock   anim.Clock

	width  int
	height int

	viewport viewport.Model
	layout   *layout
	page     *page
	lines    []string
	form     *contactForm

	sections []*anim.Sequencer
	trail    *anim.Trail
	markers  []*marker

	toast      string
	toastErr   bool
	toastUntil time.Time

	started bool
	closed  bool
}

// NewModel constructs the portfolio model and registers every animation.
// A nil store disables the contact inbox.
func NewModel(cfg model.Config, p content.Portfolio, st *store.Store, clock anim.Clock) (*Model, error) {
	if clock == nil {
		clock = anim.SystemClock{}
	}
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	m := &Model{
		config:   cfg,
		content:  p,
		store:    st,
		clock:    clock,
		viewport: newViewport(),
		layout:   newLayout(),
		page:     newPage(p),
		form:     newContactForm(),
	}
	if err := m.mountSections(); err != nil {
		m.Close()
		return nil, err
	}
	if err := m.mountTrail(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	// Letter keys are page shortcuts.
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
	vp.MouseWheelDelta = 2
	return vp
}

func (m *Model) newSequencer() *anim.Sequencer {
	seq := anim.NewSequencer(m.clock, m.layout)
	seq.SetInstant(m.config.ReducedMotion)
	m.sections = append(m.sections, seq)
	return seq
}

// Named curves used across the page.
var (
	easeEnter  = anim.MustEase("power3.out")
	easeSettle = anim.MustEase("power2.out")
	easeFloat  = anim.MustEase("power1.inOut")
	easePop    = anim.MustEase("back.out(1.7)")
)

var settled = anim.Props{anim.Opacity: 1, anim.X: 0, anim.Y: 0, anim.Scale: 1}

func rise(rows float64) anim.Props {
	return anim.Props{anim.Opacity: 0, anim.Y: rows}
}

func (m *Model) mountSections() error {
	pg := m.page

	hero := m.newSequencer()
	shown := anim.Props{anim.Opacity: 1, anim.Y: 0}
	intro := anim.NewTimeline().
		Add(pg.heroTitle, anim.Tween{From: rise(2), To: shown, Duration: time.Second, Ease: easeEnter}, 0).
		Add(pg.heroSubtitle, anim.Tween{From: rise(2), To: shown, Duration: 800 * time.Millisecond, Ease: easeEnter}, -500*time.Millisecond).
		Add(pg.heroCTA, anim.Tween{From: rise(2), To: shown, Duration: 600 * time.Millisecond, Ease: easeEnter}, -300*time.Millisecond).
		Add(pg.heroSocial, anim.Tween{From: rise(2), To: shown, Duration: 600 * time.Millisecond, Ease: easeEnter}, -300*time.Millisecond)
	if err := hero.Play("hero-intro", intro); err != nil {
		return fmt.Errorf("failed to register hero: %w", err)
	}
	if !m.config.ReducedMotion {
		float := anim.NewTimeline().Add(pg.heroRoot, anim.Tween{
			To:       anim.Props{anim.Y: -1},
			Duration: 3 * time.Second,
			Ease:     easeFloat,
			Repeat:   -1,
			Yoyo:     true,
		}, 0)
		if err := hero.Play("hero-float", float); err != nil {
			return fmt.Errorf("failed to register hero float: %w", err)
		}
	}

	about := m.newSequencer()
	if err := about.Observe([]anim.Target{pg.aboutContent}, anim.Tween{
		From:     anim.Props{anim.Opacity: 0, anim.X: -6},
		To:       anim.Props{anim.Opacity: 1, anim.X: 0},
		Duration: time.Second,
		Ease:     easeEnter,
	}); err != nil {
		return fmt.Errorf("failed to register about: %w", err)
	}
	if len(pg.stats) > 0 {
		if err := about.Observe(targets(pg.stats), anim.Tween{
			From:     anim.Props{anim.Opacity: 0, anim.Y: 2, anim.Scale: 0.8},
			To:       settled,
			Duration: 800 * time.Millisecond,
			Ease:     easePop,
			Stagger:  200 * time.Millisecond,
			Trigger:  triggerStats,
		}); err != nil {
			return fmt.Errorf("failed to register stats: %w", err)
		}
	}
	for i, stat := range m.content.About.Stats {
		counter := pg.counters[i]
		if err := about.ObserveCounter(counter, 0, stat.Number, anim.Tween{
			Duration: 2 * time.Second,
			Ease:     easeSettle,
		}); err != nil {
			// Show the plain value rather than a broken counter.
			logErrf("failed to register counter %q: %v\n", stat.Label, err)
			counter.SetText(fmt.Sprint(stat.Number))
		}
	}

	skills := m.newSequencer()
	if len(pg.skills) > 0 {
		if err := skills.Observe(targets(pg.skills), anim.Tween{
			From:     anim.Props{anim.Opacity: 0, anim.Y: 1, anim.Scale: 0.9},
			To:       settled,
			Duration: 600 * time.Millisecond,
			Ease:     easeSettle,
			Stagger:  100 * time.Millisecond,
			Trigger:  triggerSkills,
		}); err != nil {
			return fmt.Errorf("failed to register skills: %w", err)
		}
	}
	for i, skill := range m.content.Skills {
		bar := pg.bars[i]
		if err := skills.ObserveProgress(bar, float64(skill.Level), anim.Tween{
			Duration:  1500 * time.Millisecond,
			Ease:      easeSettle,
			Delay:     time.Duration(i) * 100 * time.Millisecond,
			Threshold: anim.ProgressThreshold,
		}); err != nil {
			logErrf("failed to register progress bar %q: %v\n", skill.Name, err)
			bar.Apply(anim.Props{anim.Width: clampFloat(float64(skill.Level), 0, 100)})
		}
	}

	projects := m.newSequencer()
	if len(pg.projects) > 0 {
		if err := projects.Observe(targets(pg.projects), anim.Tween{
			From:     anim.Props{anim.Opacity: 0, anim.Y: 2, anim.Scale: 0.9},
			To:       settled,
			Duration: 800 * time.Millisecond,
			Ease:     easeEnter,
			Stagger:  200 * time.Millisecond,
			Trigger:  triggerProjects,
		}); err != nil {
			return fmt.Errorf("failed to register projects: %w", err)
		}
	}
	return nil
}

func targets(elems []*element) []anim.Target {
	out := make([]anim.Target, len(elems))
	for i, e := range elems {
		out[i] = e
	}
	return out
}

var segmentGlyphs = []string{"•", "•", "∙", "∙", "·", "·"}

func (m *Model) mountTrail() error {
	n := maxInt(m.config.TrailSegments, 0)
	cfg := anim.TrailConfig{
		PrimarySize: 1,
		GlowSize:    1,
		GlowDelay:   150 * time.Millisecond,
	}
	primary := &marker{glyph: "●", size: 1, style: ink(accentHex, 1), mounted: true}
	glow := &marker{glyph: "░", radius: 1, size: 1, style: ink(secondaryHex, 0.5), mounted: true}
	segments := make([]anim.Layer, n)
	segMarkers := make([]*marker, n)
	for i := 0; i < n; i++ {
		cfg.Sizes = append(cfg.Sizes, 1)
		cfg.Delays = append(cfg.Delays, time.Duration(i+1)*50*time.Millisecond)
		mk := &marker{
			glyph:   segmentGlyphs[i%len(segmentGlyphs)],
			size:    1,
			style:   ink(accentHex, 0.9-0.6*float64(i)/float64(maxInt(n, 1))),
			mounted: true,
		}
		segments[i] = mk
		segMarkers[i] = mk
	}
	trail, err := anim.NewTrail(m.clock, primary, segments, glow, cfg)
	if err != nil {
		return fmt.Errorf("failed to create trail: %w", err)
	}
	m.trail = trail

	// Glow underneath, nearest segment on top, pointer last.
	m.markers = append(m.markers, glow)
	for i := n - 1; i >= 0; i-- {
		m.markers = append(m.markers, segMarkers[i])
	}
	m.markers = append(m.markers, primary)
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.frame()
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.config.FPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		if m.closed {
			return m, nil
		}
		m.advance()
		return m, m.frame()
	case tea.FocusMsg:
		m.trail.Enter()
		return m, nil
	case tea.BlurMsg:
		m.trail.Leave()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.form.active {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	frame := m.viewport.View() + "\n" + m.renderFooter()
	return overlay(frame, m.markers)
}

// Close stops every animation and the trail. Safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	for _, seq := range m.sections {
		seq.Stop()
	}
	if m.trail != nil {
		m.trail.Stop()
	}
	m.page.unmount()
	for _, mk := range m.markers {
		mk.mounted = false
	}
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = maxInt(height-1, 1)
	m.form.setWidth(contentWidth(width))
	m.refresh()
	if !m.started {
		m.started = true
		for _, seq := range m.sections {
			seq.Start()
		}
		if m.config.Trail && !m.config.ReducedMotion {
			m.trail.Start()
		}
		m.refresh()
		return
	}
	m.scrolled()
}

// advance runs one animation frame.
func (m *Model) advance() {
	animating := false
	for _, seq := range m.sections {
		if seq.Animating() {
			animating = true
		}
		seq.Tick()
	}
	m.trail.Tick()
	if !m.toastUntil.IsZero() && !m.clock.Now().Before(m.toastUntil) {
		m.toast = ""
		m.toastUntil = time.Time{}
	}
	if animating {
		m.refresh()
	}
}

// refresh re-renders the page into the viewport and updates trigger
// positions.
func (m *Model) refresh() {
	if m.width == 0 || m.closed {
		return
	}
	lines, tops := m.page.render(m.width, m.form.view(contentWidth(m.width)))
	m.lines = lines
	m.layout.tops = tops
	m.layout.height = m.viewport.Height
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.layout.offset = m.viewport.YOffset
}

// scrolled re-checks scroll triggers after the viewport moved.
func (m *Model) scrolled() {
	m.layout.offset = m.viewport.YOffset
	for _, seq := range m.sections {
		seq.Check()
	}
	m.refresh()
}

func (m *Model) jump(anchor string) {
	top, ok := m.layout.tops[anchor]
	if !ok {
		return
	}
	m.viewport.SetYOffset(top)
	m.scrolled()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, m.quit()
	case "j", "p":
		m.jump(anchorProjects)
	case "a":
		m.jump(anchorAbout)
	case "s":
		m.jump(anchorSkills)
	case "c":
		m.jump(anchorContact)
	case "home", "g":
		m.viewport.GotoTop()
		m.scrolled()
	case "end", "G":
		m.viewport.GotoBottom()
		m.scrolled()
	case "f", "tab":
		m.jump(anchorForm)
		cmd := m.form.activate()
		m.refresh()
		return m, cmd
	case "r":
		if resume := m.content.Hero.Resume; resume != "" {
			m.notify("Resume: "+resume, false)
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.scrolled()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()
	case "esc":
		m.form.deactivate()
	case "tab":
		cmd = m.form.next(1)
	case "shift+tab":
		cmd = m.form.next(-1)
	case "ctrl+s":
		m.submit()
	default:
		cmd = m.form.update(msg)
	}
	m.refresh()
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionMotion {
		if !m.trail.Visible() {
			m.trail.Enter()
		}
		m.trail.Move(float64(msg.X), float64(msg.Y))
		return m, nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.scrolled()
		return m, cmd
	}
	return m, nil
}

// submit validates the form and records it in the session inbox.
func (m *Model) submit() {
	msg := m.form.values()
	if err := validateMessage(msg); err != nil {
		m.form.err = err.Error()
		return
	}
	if m.store != nil {
		if _, err := m.store.InsertMessage(context.Background(), msg); err != nil {
			logErrf("failed to save message: %v\n", err)
			m.notify("Could not send your message, please try again.", true)
			return
		}
	}
	m.form.reset()
	m.notify("Message sent! Thank you for reaching out. I'll get back to you soon.", false)
}

func (m *Model) notify(text string, isErr bool) {
	m.toast = text
	m.toastErr = isErr
	m.toastUntil = m.clock.Now().Add(toastDuration)
}

func (m *Model) renderFooter() string {
	segments := []string{
		"↑↓ scroll",
		"p projects",
		"c contact",
		"f message",
		"q quit",
		fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100),
	}
	if m.form.active {
		segments = []string{"tab next", "ctrl+s send", "esc close", "ctrl+c quit"}
	}
	footer := footerStyle.Render(strings.Join(segments, " · "))
	if m.toast != "" {
		style := successStyle
		if m.toastErr {
			style = errorStyle
		}
		footer = style.Render(m.toast) + "  " + footer
	}
	return fit(footer, m.width)
}

// RenderStatic renders the page at width with every animation settled.
func RenderStatic(p content.Portfolio, width int) (string, error) {
	m, err := NewModel(model.Config{ReducedMotion: true, FPS: 1}, p, nil, anim.SystemClock{})
	if err != nil {
		return "", err
	}
	defer m.Close()
	// Tall enough that every trigger is on screen.
	m.resize(width, 1<<16)
	lines := make([]string, len(m.lines))
	for i, l := range m.lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n", nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
