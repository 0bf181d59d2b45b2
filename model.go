package exgain

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"exgain/bridge"
	nt "exgain/entity"
	"exgain/message"
)

const (
	footerHeight = 2
	hint         = "↑/↓ choose · ←/→ adjust · drag ◢ to resize · ? help · q quit"
)

// Model is the bubbletea model for the control panel.
type Model struct {
	Panel         Panel
	CurrentScreen Screen
	Transport     string

	Width  int
	Height int

	bridge      Bridge
	logger      Logger
	ctx         context.Context
	cfg         Config
	help        string
	errorString string
	linkDown    bool
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, cfg Config, bridge Bridge, lgr Logger) Model {

	return Model{
		Panel:         NewPanel(cfg),
		CurrentScreen: PanelScreen,
		bridge:        bridge,
		logger:        lgr,
		ctx:           ctx,
		cfg:           cfg,
	}
}

// Init announces the panel and its default size to the host.
func (m Model) Init() tea.Cmd {

	size := m.cfg.size()
	return m.send(
		message.Init{},
		message.SetSize{Width: size.Width, Height: size.Height},
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ParamChange:
		m.Panel = m.Panel.ApplyParamChange(msg)
		return m, nil

	case message.SizeUpdate:
		m.Panel = m.Panel.ApplySize(msg)
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		m.linkDown = m.linkDown || errors.Is(msg.Err, bridge.ErrClosed)
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Panel = m.Panel.SetTerminal(msg.Width, msg.Height-footerHeight)

		help, err := renderHelp(msg.Width)
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		m.help = help
		return m, nil

	case tea.KeyReleaseMsg:
		m.Panel = m.Panel.LogKey("keyup", msg.String())
		return m, nil

	case tea.KeyPressMsg:
		m.Panel = m.Panel.LogKey("keydown", msg.String())
		if !m.linkDown {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "?":
			if m.CurrentScreen == HelpScreen {
				m.CurrentScreen = PanelScreen
			} else {
				m.CurrentScreen = HelpScreen
			}
			return m, nil

		case "esc":
			if m.CurrentScreen != PanelScreen {
				m.CurrentScreen = PanelScreen
				return m, nil
			}
			return m, tea.Quit
		}

		if m.CurrentScreen != PanelScreen {
			return m, nil
		}

		var out []message.Outbound
		m.Panel, out = m.Panel.HandleKey(msg)
		return m, m.send(out...)

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft || m.CurrentScreen != PanelScreen {
			return m, nil
		}

		var out []message.Outbound
		m.Panel, out = m.Panel.Press(cell(mouse))
		return m, m.send(out...)

	case tea.MouseMotionMsg:
		var out []message.Outbound
		m.Panel, out = m.Panel.Motion(cell(msg.Mouse()))
		return m, m.send(out...)

	case tea.MouseReleaseMsg:
		m.Panel = m.Panel.Release()
		return m, nil
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case HelpScreen:
		screenContent = m.help
	default:
		screenContent = m.Panel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := RenderFooter(hint, m.Transport, false, m.Width)
	if m.errorString != "" {
		footerContent = RenderFooter(m.errorString, m.Transport, true, m.Width)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.KeyboardEnhancements.ReportEventTypes = true
	return view
}

// unexported

func cell(mouse tea.Mouse) nt.Point {
	return nt.Point{X: mouse.X, Y: mouse.Y}
}
