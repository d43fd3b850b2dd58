package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// painter fills and strokes vector paths, reusing its vertex buffers.
type painter struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newPainter() *painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &painter{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (p *painter) fill(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	p.draw(dst, clr)
}

func (p *painter) stroke(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	p.vertices, p.indices = path.AppendVerticesAndIndicesForStroke(p.vertices[:0], p.indices[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	p.draw(dst, clr)
}

func (p *painter) draw(dst *ebiten.Image, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range p.vertices {
		v := &p.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R) / 0xff
		v.ColorG = float32(c.G) / 0xff
		v.ColorB = float32(c.B) / 0xff
		v.ColorA = float32(c.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(p.vertices, p.indices, p.white, op)
}

// fonts are the faces used across the window.
type fonts struct {
	label  *text.GoTextFace
	title  *text.GoTextFace
	button *text.GoTextFace
	banner *text.GoTextFace
	small  *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	return &fonts{
		label:  &text.GoTextFace{Source: bold, Size: 16},
		title:  &text.GoTextFace{Source: bold, Size: 40},
		button: &text.GoTextFace{Source: bold, Size: 18},
		banner: &text.GoTextFace{Source: bold, Size: 28},
		small:  &text.GoTextFace{Source: regular, Size: 14},
	}, nil
}

// drawText draws s with its anchor at (x, y), vertically centered.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
