// Package game runs the lucky wheel window on ebiten.
package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/lucky-wheel/internal/config"
	"github.com/iburimskiy/lucky-wheel/internal/lib/logger/sl"
	"github.com/iburimskiy/lucky-wheel/internal/ui"
	"github.com/iburimskiy/lucky-wheel/internal/wheel"
)

// Game is the ebiten.Game hosting the wheel widget.
type Game struct {
	log *slog.Logger

	wheel    *wheel.Wheel
	canvas   *ebiten.Image
	renderer *wheelRenderer
	painter  *painter
	fonts    *fonts
	sound    *sound
	dialogs  ui.Dialogs

	spinButton   ui.Button
	editorButton ui.Button
	addButton    ui.Button
	showEditor   bool
	editorScroll int
	scroller     ui.Scroller

	// seconds since start, drives the banner pulse
	time    float64
	lastErr error
}

func NewGame(log *slog.Logger) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	rnd := rand.New(rand.NewPCG(seed, seed>>1|1))

	p := newPainter()
	g := &Game{
		log:      log,
		wheel:    wheel.New(wheel.DefaultSegments(), rnd),
		canvas:   ebiten.NewImage(config.CanvasSize, config.CanvasSize),
		renderer: &wheelRenderer{painter: p, face: f.label},
		painter:  p,
		fonts:    f,
		dialogs:  ui.NativeDialogs{},
	}

	spinX := config.CanvasX + config.CanvasSize/2 - config.SpinButtonWidth/2 - 60
	spinY := config.CanvasY + config.CanvasSize + config.PointerHeight
	g.spinButton = ui.Button{
		Rect:  ui.Rect{X: spinX, Y: spinY, W: config.SpinButtonWidth, H: config.SpinButtonHeight},
		Label: "Spin Wheel",
	}
	g.editorButton = ui.Button{
		Rect:  ui.Rect{X: spinX + config.SpinButtonWidth + 16, Y: spinY, W: 120, H: config.SpinButtonHeight},
		Label: "Segments",
	}
	add := ui.NewEditorLayout(0, 0).Add
	g.addButton = ui.Button{Rect: add, Label: "+ Add Segment"}

	g.sound, err = newSound()
	if err != nil {
		log.Warn("sound disabled", sl.Err(err))
	}

	return g, nil
}

// Close stops any sound still playing.
func (g *Game) Close() {
	g.sound.close()
}

func (g *Game) Update() error {
	g.time += 1.0 / 60.0 // Assuming 60 TPS

	mouseX, mouseY := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	g.spinButton.Disabled = g.wheel.Spinning()
	if g.spinButton.Update(mouseX, mouseY, pressed, released) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spin()
	}
	if g.editorButton.Update(mouseX, mouseY, pressed, released) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.showEditor = !g.showEditor
	}
	if g.showEditor {
		g.updateEditor(mouseX, mouseY, pressed, released)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// dialogs block, so read the clock after input handling
	step := g.wheel.Advance(time.Now())
	if step.Ticked {
		g.sound.tick()
	}
	if step.Finished {
		g.log.Info("spin finished", slog.String("winner", step.Winner))
		g.sound.chime()
	}

	if g.wheel.Spinning() {
		g.spinButton.Label = "Spinning..."
	} else {
		g.spinButton.Label = "Spin Wheel"
	}

	return nil
}

func (g *Game) spin() {
	if !g.wheel.Spin(time.Now()) {
		return
	}
	g.log.Debug("spin started",
		slog.Float64("rotation", g.wheel.Rotation()),
		slog.Int("segments", len(g.wheel.Segments())),
	)
}

func (g *Game) updateEditor(mouseX, mouseY int, pressed, released bool) {
	segs := g.wheel.Segments()
	l := ui.NewEditorLayout(len(segs), g.editorScroll)

	if _, dy := ebiten.Wheel(); dy != 0 && l.Panel.Contains(mouseX, mouseY) {
		g.editorScroll = ui.ClampScroll(l.Scroll-g.scroller.Steps(dy), len(segs), l.Visible)
	}

	if g.addButton.Update(mouseX, mouseY, pressed, released) {
		g.wheel.AddSegment()
		n := len(g.wheel.Segments())
		g.log.Info("segment added", sl.Segment(n-1, g.wheel.Segments()[n-1].Text))
		g.editorScroll = ui.ClampScroll(n, n, l.Visible)
		return
	}

	if !pressed {
		return
	}
	for _, row := range l.Rows {
		switch {
		case row.Fill.Contains(mouseX, mouseY):
			g.editSegment(row.Index, wheel.FieldColor)
		case row.TextColor.Contains(mouseX, mouseY):
			g.editSegment(row.Index, wheel.FieldTextColor)
		case row.Label.Contains(mouseX, mouseY):
			g.editSegment(row.Index, wheel.FieldText)
		case row.Remove.Contains(mouseX, mouseY):
			text := segs[row.Index].Text
			if g.wheel.RemoveSegment(row.Index) {
				g.log.Info("segment removed", sl.Segment(row.Index, text))
			}
		default:
			continue
		}
		return
	}
}

func (g *Game) editSegment(index int, field wheel.Field) {
	changed, err := ui.EditSegment(g.wheel, g.dialogs, index, field)
	if err != nil {
		g.lastErr = err
		g.log.Error("edit segment failed", slog.String("field", field.String()), sl.Err(err))
		return
	}
	if changed {
		g.lastErr = nil
		g.log.Info("segment updated", sl.Segment(index, g.wheel.Segments()[index].Text),
			slog.String("field", field.String()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawTitle(screen)

	g.renderer.draw(g.canvas, g.wheel.Segments(), g.wheel.Rotation())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.CanvasX, config.CanvasY)
	screen.DrawImage(g.canvas, op)

	tipX := float64(config.CanvasX) + config.CanvasSize/2
	tipY := float64(config.CanvasY+config.CanvasSize) + 15 - config.PointerHeight
	drawPointer(screen, g.painter, tipX, tipY, g.wheel.PointerOffset(), clamp01(g.sound.level()*3))

	g.drawButton(screen, &g.spinButton, spinFill)
	g.drawButton(screen, &g.editorButton, editorFill)
	g.drawWinner(screen)
	if g.showEditor {
		g.drawEditor(screen)
	}

	status := "Space: spin | S: segments | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
