// Package debugger provides an interactive terminal UI for
// single-stepping a cpu.CPU and inspecting its registers, flags and
// surrounding memory between steps.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/A-Taiga/NES-Emulator/bus"
	"github.com/A-Taiga/NES-Emulator/cpu"
)

// model is the bubbletea model driving the TUI. It never calls
// anything on cpu.CPU except Step and Snapshot; everything it
// displays comes from the snapshot and a plain bus read loop.
type model struct {
	cpu    *cpu.CPU
	memory bus.Bus

	offset uint16 // page-table scroll anchor
	prevPC uint16
	err    error
}

const bytesPerPage = 16

// New constructs a debugger model over an already-wired CPU and its
// bus, starting the page table view anchored at offset.
func New(c *cpu.CPU, memory bus.Bus, offset uint16) model {
	return model{cpu: c, memory: memory, offset: offset}
}

// Run starts the interactive TUI and blocks until the user quits.
func Run(c *cpu.CPU, memory bus.Bus, offset uint16) error {
	final, err := tea.NewProgram(New(c, memory, offset)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Snapshot().PC
			m.cpu.Step()
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a line, bracketing
// whichever byte the program counter currently points at.
func (m model) renderPage(start uint16) string {
	pc := m.cpu.Snapshot().PC
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < bytesPerPage; i++ {
		addr := start + i
		b := m.memory.Read(addr)
		if addr == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	snap := m.cpu.Snapshot()
	var flags string
	for bit := byte(0x80); bit > 0; bit >>= 1 {
		if snap.P&bit != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
addr: %04x
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
cycles: %d
N V _ B D I Z C
`,
		snap.PC, m.prevPC,
		snap.EffectiveAddr,
		snap.A, snap.X, snap.Y, snap.SP,
		snap.CyclesSpent,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < bytesPerPage; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	pc := m.cpu.Snapshot().PC
	pcPage := pc - (pc % bytesPerPage)

	offsets := []uint16{
		m.offset,
		m.offset + bytesPerPage,
		m.offset + 2*bytesPerPage,
		pcPage,
		pcPage + bytesPerPage,
	}
	for _, addr := range offsets {
		pages = append(pages, m.renderPage(addr))
	}
	return strings.Join(pages, "\n")
}

func (m model) View() string {
	snap := m.cpu.Snapshot()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(snap.Opcode),
	)
}
