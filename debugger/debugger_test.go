package debugger

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/A-Taiga/NES-Emulator/bus"
	"github.com/A-Taiga/NES-Emulator/cpu"
)

func newTestModel() model {
	ram := bus.NewRAM()
	ram.Write(0xFFFC, 0x00)
	ram.Write(0xFFFD, 0x80)
	ram.Load(0x8000, []byte{0xA9, 0x42}) // LDA #$42
	c := cpu.New(ram)
	c.Step() // reset
	return New(c, ram, 0x8000)
}

func TestSpaceKeyStepsCPU(t *testing.T) {
	m := newTestModel()
	before := m.cpu.Snapshot().PC
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(model)
	assert.NotEqual(t, before, next.cpu.Snapshot().PC)
	assert.Equal(t, before, next.prevPC)
}

func TestQuitKeyEmitsQuitCmd(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestRenderPageBracketsProgramCounter(t *testing.T) {
	m := newTestModel()
	line := m.renderPage(0x8000)
	assert.Contains(t, line, "[a9]")
}

func TestStatusIncludesRegisters(t *testing.T) {
	m := newTestModel()
	s := m.status()
	assert.Contains(t, s, "PC:")
	assert.Contains(t, s, "A:")
}
