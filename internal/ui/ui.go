package ui

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/nescore/internal/nes"
	"golang.org/x/exp/maps"
)

// P - pause
// R - one instruction and stop
// F - one frame and stop
// Backspace - reset

const (
	timingScale  = 2
	timingWidth  = 341 // dots per scanline
	timingHeight = 262 // scanlines per frame

	debugScreenWidth  = 286
	debugScreenHeight = timingHeight * timingScale

	disasmLines = 7
)

var (
	colorBackground = color.RGBA{50, 50, 50, 255}
	colorVisible    = color.RGBA{30, 60, 90, 255}
	colorVBlank     = color.RGBA{90, 40, 40, 255}
	colorBeam       = color.RGBA{240, 240, 80, 255}
)

// UI shows the console state next to a map of the frame with the PPU
// position on it.
type UI struct {
	console *nes.Console

	disasm      map[uint16]string
	disasmAddrs []uint16

	paused bool
	halted error
}

func New(console *nes.Console) *UI {
	ui := &UI{console: console}
	ui.refreshDisasm()
	return ui
}

// refreshDisasm decodes the PRG window again, bank switching changes it.
func (ui *UI) refreshDisasm() {
	ui.disasm = ui.console.Disassemble(0x8000, 0xffff)
	ui.disasmAddrs = maps.Keys(ui.disasm)
	slices.Sort(ui.disasmAddrs)
}

func (ui *UI) step(run func() error) {
	if ui.halted != nil {
		return
	}
	if err := run(); err != nil {
		ui.halted = err
		ui.paused = true
		glog.Errorf("ui: console stopped: %s", err)
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ui.console.Reset()
		ui.halted = nil
		ui.refreshDisasm()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.paused = true
		ui.step(func() error {
			_, err := ui.console.Step()
			return err
		})
		ui.refreshDisasm()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ui.paused = true
		ui.step(ui.console.StepFrame)
		ui.refreshDisasm()
	}

	if !ui.paused {
		ui.step(ui.console.StepFrame)
	}
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	s := ui.console.Snapshot()

	ui.drawTiming(screen, s)

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", s.CPU.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", s.CPU.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", s.CPU.A, s.CPU.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", s.CPU.X, s.CPU.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", s.CPU.Y, s.CPU.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", s.CPU.SP)
	fmt.Fprintf(&infoStr, " CYC: %d DMA: %d\n", s.Clock, s.DMACycles)
	fmt.Fprintf(&infoStr, " PPU: %3d,%3d FRAME: %d\n", s.ScanLine, s.Dot, s.Frame)
	fmt.Fprintf(&infoStr, " RESET: %s NMI: %s\n", s.Reset, s.NMI)
	fmt.Fprintf(&infoStr, " IRQ: %s [%04b]\n", s.IRQ, s.IRQSources)
	switch {
	case ui.halted != nil:
		fmt.Fprintf(&infoStr, " HALTED: %s\n", ui.halted)
	case ui.paused:
		infoStr.WriteString(" PAUSED\n")
	default:
		infoStr.WriteString("\n")
	}
	infoStr.WriteString("\n")

	pos, found := slices.BinarySearch(ui.disasmAddrs, s.CPU.PC)
	for i := max(0, pos-disasmLines); i < min(len(ui.disasmAddrs), pos+disasmLines+1); i++ {
		addr := ui.disasmAddrs[i]
		if found && addr == s.CPU.PC {
			infoStr.WriteString("*" + ui.disasm[addr] + "\n")
			continue
		}
		infoStr.WriteString(" " + ui.disasm[addr] + "\n")
	}
	if !found {
		fmt.Fprintf(&infoStr, "*$%04X: outside PRG ROM\n", s.CPU.PC)
	}

	debugScreenOffsetX := float32(timingWidth * timingScale)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, colorBackground, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)
}

// drawTiming draws the frame as scanlines by dots: visible and
// post-render lines, vblank lines, and the current PPU position.
func (ui *UI) drawTiming(screen *ebiten.Image, s nes.Snapshot) {
	const (
		w = timingWidth * timingScale
		h = timingHeight * timingScale
	)
	vblankY := float32(241 * timingScale)
	vblankH := float32(20 * timingScale)

	vector.DrawFilledRect(screen, 0, 0, w, h, colorVisible, false)
	vector.DrawFilledRect(screen, 0, vblankY, w, vblankH, colorVBlank, false)

	x := float32(s.Dot) * timingScale
	y := float32(s.ScanLine) * timingScale
	vector.DrawFilledRect(screen, 0, y, w, timingScale, colorBeam, false)
	vector.DrawFilledRect(screen, x-2, y-2, 4+timingScale, 4+timingScale, colorBeam, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(" %s", s), 0, h-16)
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return timingWidth*timingScale + debugScreenWidth, debugScreenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	screenSizeX, screenSizeY := ui.Layout(0, 0)
	ebiten.SetWindowSize(screenSizeX, screenSizeY)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
