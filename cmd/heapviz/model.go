package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vkngwrapper/heapviz/heap"
	"github.com/vkngwrapper/heapviz/interact"
	"github.com/vkngwrapper/heapviz/internal/config"
	"github.com/vkngwrapper/heapviz/internal/logger"
	"github.com/vkngwrapper/heapviz/render"
)

// canvasTop is the terminal row the heap canvas starts on, below the header
const canvasTop = 1

// messageBar is the notification sink for rejected heap operations. The latest message stays
// visible until the next press.
type messageBar struct {
	message string
}

var _ interact.Notifier = &messageBar{}

func (b *messageBar) Notify(message string) {
	logger.L.Info("Rejected operation", "message", message)
	b.message = message
}

// Model is the bubbletea model of the visualizer
type Model struct {
	heap       *heap.Heap
	controller *interact.Controller
	layout     interact.Layout
	canvas     *render.Canvas
	messages   *messageBar
	keys       KeyMap

	capacity int
	width    int
	height   int
}

// NewModel creates the model for an empty heap configured by cfg
func NewModel(cfg config.Config) Model {
	h := heap.New(heap.Options{
		MinBlockSize: cfg.Heap.MinBlockSize,
		Logger:       logger.L,
	})

	layout := interact.DefaultLayout(cfg.Display.BytesPerCell)
	messages := &messageBar{}
	controller := interact.New(h, layout, messages, interact.Options{
		MinGrowth: cfg.Heap.MinGrowth,
		MaxBreak:  cfg.Heap.Capacity,
		Logger:    logger.L,
	})

	width := canvasWidth(layout, cfg.Heap.Capacity)
	return Model{
		heap:       h,
		controller: controller,
		layout:     layout,
		canvas:     render.NewCanvas(width, canvasHeight(layout)),
		messages:   messages,
		keys:       DefaultKeyMap(),
		capacity:   cfg.Heap.Capacity,
		width:      width,
	}
}

func canvasWidth(layout interact.Layout, capacity int) int {
	return layout.UnitAt(capacity) + layout.HandleWidth
}

func canvasHeight(layout interact.Layout) int {
	_, y := layout.InfoPosition()
	return y + 1
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Resize(max(msg.Width, canvasWidth(m.layout, m.capacity)), canvasHeight(m.layout))
		return m, nil

	case tea.MouseMsg:
		if event, ok := translateMouse(msg); ok {
			if event.Kind == interact.PointerDown {
				m.messages.message = ""
			}
			m.controller.Handle(event)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Digit):
			m.controller.Handle(interact.Key(int(msg.Runes[0] - '0')))
		case key.Matches(msg, m.keys.Backspace):
			m.controller.Handle(interact.Event{Kind: interact.Backspace})
		case key.Matches(msg, m.keys.Confirm):
			m.controller.Handle(interact.Event{Kind: interact.Confirm})
		case key.Matches(msg, m.keys.Cancel):
			m.messages.message = ""
			m.controller.Handle(interact.Event{Kind: interact.Cancel})
		}
		return m, nil
	}

	return m, nil
}

// translateMouse converts a terminal mouse message into a controller event in canvas coordinates
func translateMouse(msg tea.MouseMsg) (interact.Event, bool) {
	x, y := msg.X, msg.Y-canvasTop

	button := interact.ButtonNone
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = interact.ButtonLeft
	case tea.MouseButtonRight:
		button = interact.ButtonRight
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			return interact.Event{}, false
		}
		return interact.Event{Kind: interact.PointerDown, X: x, Y: y, Button: button}, true
	case tea.MouseActionRelease:
		// terminals often do not report which button was released
		return interact.Event{Kind: interact.PointerUp, X: x, Y: y, Button: interact.ButtonLeft}, true
	case tea.MouseActionMotion:
		return interact.Event{Kind: interact.PointerMove, X: x, Y: y, Button: button}, true
	}

	return interact.Event{}, false
}

func (m Model) View() string {
	m.canvas.Clear()
	render.Draw(m.canvas, m.controller.Frame(), m.layout)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.canvas.Render(),
		m.renderStatus(),
		messageStyle.Render(m.messages.message),
		m.renderHelp(),
	)
}

func (m Model) renderHeader() string {
	header := fmt.Sprintf("heapviz  break %d / %d bytes", m.heap.EndOfHeap(), m.capacity)
	if m.controller.Dragging() {
		header += fmt.Sprintf("  sbrk -> %d", m.controller.PendingBreak())
	}
	return headerStyle.Render(header)
}

func (m Model) renderStatus() string {
	var stats heap.DetailedStatistics
	stats.Clear()
	m.heap.AddDetailedStatistics(&stats)

	parts := []string{
		fmt.Sprintf("blocks %d", stats.BlockCount),
		fmt.Sprintf("allocations %d", stats.AllocationCount),
		fmt.Sprintf("used %d/%d", stats.UsedBytes, stats.AllocationBytes),
		fmt.Sprintf("free %d in %d ranges", stats.FreeBytes(), stats.FreeRangeCount),
		fmt.Sprintf("internal fragmentation %d", stats.InternalFragmentation()),
	}
	if stats.FreeRangeCount > 0 {
		parts = append(parts, fmt.Sprintf("largest free %d", stats.FreeRangeSizeMax))
	}

	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, "drag SBRK to grow, click a block for its menu")
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
