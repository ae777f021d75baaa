package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/five82/signet-rx/internal/anim"
	"github.com/five82/signet-rx/internal/prefs"
	"github.com/five82/signet-rx/internal/receiver"
	"github.com/five82/signet-rx/internal/spectrum"
	"github.com/five82/signet-rx/internal/state"
	"github.com/five82/signet-rx/internal/view"
)

const defaultFrameEvery = time.Second / 30

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Source     anim.Source
	Layout     string
	ThemeName  string
	PrefsPath  string
	LogPath    string
	FrameEvery time.Duration
	Logger     log.FieldLogger
	Now        func() time.Time
}

// frame is everything rendered for one tick. It is rebuilt at the start of
// every frame from a single store read.
type frame struct {
	now      time.Time
	state    *receiver.State
	display  view.Display
	mode     view.Mode
	blocks   view.BlockOrder
	link     state.Link
	rx       anim.Meter
	wx       anim.Meter
	spectrum string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store      *state.Store
	keys       keyMap
	log        log.FieldLogger
	prefsPath  string
	frameEvery time.Duration
	now        func() time.Time

	// Animation and drawing
	engine  *anim.Engine
	canvas  *spectrum.Canvas
	geom    spectrum.Layout
	palette spectrum.Palette

	// UI state
	theme    Theme
	layout   Layout
	width    int
	height   int
	ready    bool
	fullView bool

	frame   frame
	regions regions

	overlay     overlay
	detailBlock view.Block

	logs        logState
	logViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	frameEvery := opts.FrameEvery
	if frameEvery <= 0 {
		frameEvery = defaultFrameEvery
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	theme := GetTheme(themeName)
	return Model{
		store:       opts.Store,
		keys:        DefaultKeyMap(),
		log:         logger.WithField("component", "ui"),
		prefsPath:   prefsPath,
		frameEvery:  frameEvery,
		now:         now,
		engine:      anim.NewEngine(opts.Source),
		canvas:      spectrum.NewCanvas(0, 0),
		palette:     theme.Palette(),
		theme:       theme,
		layout:      layoutByName(opts.Layout),
		logs:        logState{path: opts.LogPath},
		logViewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("SIGNET-RX"),
		frameCmd(m.frameEvery),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLogViewport()
		m.arrange()
		return m, nil

	case frameMsg:
		m.advance(m.now())
		return m, frameCmd(m.frameEvery)

	case logLoadedMsg:
		m.handleLogLoaded(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Tuning..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayDetail:
		return m.renderDetail()
	case overlayLogs:
		return m.renderLogs()
	}

	return m.renderMain()
}

// advance runs one frame: read the store once, step the animation, sync
// the display and redraw the spectrum.
func (m *Model) advance(now time.Time) {
	var (
		st   *receiver.State
		link state.Link
	)
	if m.store != nil {
		st = m.store.Get()
		link = m.store.Link()
	}

	m.engine.Step(now, st)
	m.frame = frame{
		now:     now,
		state:   st,
		display: view.Sync(st),
		mode:    view.ResolveMode(st),
		blocks:  view.ResolveBlocks(st),
		link:    link,
		rx:      m.engine.RX,
		wx:      m.engine.WX,
	}
	m.arrange()
}

// arrange places the regions for the current frame and size, then draws
// the spectrum into its region.
func (m *Model) arrange() {
	m.regions = m.layout.Arrange(arrangement{
		Width:    m.width,
		Height:   m.height,
		Banner:   m.frame.display.Banner.Visible,
		Mode:     m.frame.mode,
		Blocks:   m.frame.blocks,
		FullView: m.fullView && m.layout.SupportsFullView(),
	})
	m.drawSpectrum()
}

// drawSpectrum renders the analyzer on the half-block canvas. The bar
// layout is recomputed only when the region changes size.
func (m *Model) drawSpectrum() {
	r := m.regions.Spectrum
	if r.empty() {
		m.frame.spectrum = ""
		return
	}
	iw, ih := r.inner()
	pw, ph := iw, ih*2
	if !m.geom.Matches(pw, ph) {
		m.geom = spectrum.NewLayout(spectrum.CellGeometry(anim.Bars, pw), pw, ph)
		m.canvas.Resize(pw, ph)
	}
	spectrum.Draw(m.canvas, m.geom, m.engine.Spectrum[:], m.palette)
	m.frame.spectrum = m.canvas.Cells()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayHelp:
		// Any key closes help
		m.overlay = overlayNone
		return m, nil
	case overlayDetail:
		switch {
		case key.Matches(msg, m.keys.Dismiss):
			m.overlay = overlayNone
		case key.Matches(msg, m.keys.RXDetails):
			m.detailBlock = view.BlockRX
		case key.Matches(msg, m.keys.WXDetails):
			m.detailBlock = view.BlockWX
		}
		return m, nil
	case overlayLogs:
		if key.Matches(msg, m.keys.Dismiss) || key.Matches(msg, m.keys.Logs) {
			m.overlay = overlayNone
			return m, nil
		}
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp

	case key.Matches(msg, m.keys.RXDetails):
		m.openDetail(view.BlockRX)

	case key.Matches(msg, m.keys.WXDetails):
		m.openDetail(view.BlockWX)

	case key.Matches(msg, m.keys.FullView):
		m.toggleFullView()

	case key.Matches(msg, m.keys.CycleLayout):
		m.layout = nextLayout(m.layout)
		m.fullView = false
		m.engine.Reset()
		m.arrange()
		m.savePrefs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.palette = m.theme.Palette()
		m.drawSpectrum()
		m.savePrefs()

	case key.Matches(msg, m.keys.Logs):
		m.overlay = overlayLogs
		return m, loadLogCmd(m.logs.path)
	}

	return m, nil
}

// handleMouse maps clicks onto blocks and overlays.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay == overlayLogs && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.overlay {
	case overlayDetail:
		d := view.Details(m.detailBlock, m.frame.state, m.layout.ExtendedDetails())
		if !m.detailBox(d).contains(msg.X, msg.Y) {
			m.overlay = overlayNone
		}
		return m, nil
	case overlayHelp:
		m.overlay = overlayNone
		return m, nil
	case overlayLogs:
		if !m.logBox().contains(msg.X, msg.Y) {
			m.overlay = overlayNone
		}
		return m, nil
	}

	if block, ok := m.regions.blockAt(msg.X, msg.Y); ok {
		m.openDetail(block)
		return m, nil
	}
	if m.regions.Spectrum.contains(msg.X, msg.Y) {
		m.toggleFullView()
	}
	return m, nil
}

func (m *Model) openDetail(b view.Block) {
	m.detailBlock = b
	m.overlay = overlayDetail
}

func (m *Model) toggleFullView() {
	if !m.layout.SupportsFullView() {
		return
	}
	m.fullView = !m.fullView
	m.arrange()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Layout: m.layout.Name()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("save preferences")
	}
}

// renderMain composes the dashboard from the frame's regions.
func (m Model) renderMain() string {
	var rows []string

	rows = append(rows, m.renderHeader())

	if !m.regions.Banner.empty() {
		text := "⚠ WEATHER ALERT  " + m.frame.display.Banner.Text
		rows = append(rows, m.theme.Styles().Banner.Width(m.width).MaxWidth(m.width).Render(text))
	}

	if !m.regions.Primary.empty() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			m.layout.Block(m.regions.PrimaryBlock, m.frame, m.theme, m.regions.Primary),
			m.layout.Block(m.regions.SecondaryBlock, m.frame, m.theme, m.regions.Secondary),
		))
	}

	switch {
	case !m.regions.Spectrum.empty():
		rows = append(rows, panel(m.theme, m.regions.Spectrum, "", m.frame.spectrum, false))
	case !m.regions.Manual.empty():
		rows = append(rows, manualPanel(m.frame, m.theme, m.regions.Manual))
	}

	if !m.regions.Footer.empty() {
		rows = append(rows, m.renderFooter())
	}

	return strings.Join(rows, "\n")
}

// renderFooter renders the key hint bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bindings := m.keys.ShortHelp()
	if m.layout.SupportsFullView() {
		bindings = append([]key.Binding{m.keys.FullView}, bindings...)
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.WarningText.Render(h.Key)+" "+h.Desc)
	}
	hints := strings.Join(parts, "  ")
	right := styles.FaintText.Render(m.theme.Name)
	gap := m.width - 2 - lipgloss.Width(hints) - lipgloss.Width(right)
	if gap > 0 {
		hints += strings.Repeat(" ", gap) + right
	}
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(clipLines(hints, max(m.width-2, 1)))
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
