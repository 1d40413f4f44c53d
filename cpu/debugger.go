package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// The debugger is a small bubbletea program that single-steps the Cpu:
// one instruction per keypress, with the memory around the program
// counter, the register file and the trace line of the next instruction
// on screen. All memory shown is peeked, so watching a program does not
// perturb it.

type model struct {
	cpu    *Cpu
	prevPC uint16
	done   bool
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.ProgramCounter
			m.done, m.err = m.cpu.Step()
			if m.err != nil {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of memory as one line, highlighting the
// byte under the program counter.
func (m model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Bus.Peek(start + i)
		if start+i == m.cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) memoryTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	// the zero page, the stack around SP, and the code around the
	// counter
	starts := []uint16{0x0000, 0x0010, 0x0100 | uint16(m.cpu.Stack)&^0xF}
	pcRow := m.cpu.ProgramCounter &^ 0xF
	for i := range 5 {
		starts = append(starts, pcRow+16*uint16(i))
	}

	rows := []string{header}
	for _, start := range starts {
		rows = append(rows, m.renderRow(start))
	}
	return strings.Join(rows, "\n")
}

func (m model) registers() string {
	var flags string
	for _, bit := range []byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01} {
		if m.cpu.Status.Byte()&bit != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V U B D I Z C
`,
		m.cpu.ProgramCounter,
		m.prevPC,
		m.cpu.Accumulator,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.Stack,
	) + flags
}

func (m model) View() string {
	if m.done {
		return "BRK -- press any key to exit\n"
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memoryTable(),
			"   ",
			m.registers(),
		),
		"",
		Trace(m.cpu),
		"",
		spew.Sdump(Opcodes[m.cpu.Bus.Peek(m.cpu.ProgramCounter)]),
	)
}

// Debug starts an interactive TUI stepping the Cpu from its current
// state: space or j executes one instruction, q quits.
func (c *Cpu) Debug() error {
	final, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m := final.(model); m.err != nil {
		return m.err
	}
	return nil
}
