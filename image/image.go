// Package image renders bitboards as SVG diagrams.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/haakonnh/knightbot"
)

const (
	sqSize = 45
	margin = 20
	width  = margin + 8*sqSize
	height = 8*sqSize + margin
)

type encoder struct {
	light, dark color.Color
	mark        color.Color
	origin      knightbot.Square
	blockers    knightbot.Bitboard
}

// An Option customizes the rendered diagram.
type Option func(*encoder)

// SquareColors sets the light and dark square colors.
func SquareColors(light, dark color.Color) Option {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkColor sets the fill used for squares in the bitboard.
func MarkColor(c color.Color) Option {
	return func(e *encoder) { e.mark = c }
}

// Origin draws a piece marker on sq, typically the attacking slider.
func Origin(sq knightbot.Square) Option {
	return func(e *encoder) { e.origin = sq }
}

// Blockers outlines the occupied squares.
func Blockers(bb knightbot.Bitboard) Option {
	return func(e *encoder) { e.blockers = bb }
}

// SVG writes an SVG diagram of bb to w, rank 8 at the top and file a on the left.
func SVG(w io.Writer, bb knightbot.Bitboard, opts ...Option) error {
	e := &encoder{
		light:  color.RGBA{R: 235, G: 209, B: 166, A: 255},
		dark:   color.RGBA{R: 165, G: 117, B: 80, A: 255},
		mark:   color.NRGBA{R: 220, G: 60, B: 60, A: 160},
		origin: knightbot.NoSquare,
	}
	for _, opt := range opts {
		opt(e)
	}
	ew := &errWriter{w: w}
	e.encode(svg.New(ew), bb)
	return ew.err
}

func (e *encoder) encode(canvas *svg.SVG, bb knightbot.Bitboard) {
	canvas.Start(width, height)
	for r := knightbot.Rank8; r >= knightbot.Rank1; r-- {
		y := int(knightbot.Rank8-r) * sqSize
		canvas.Text(margin/4, y+sqSize/2+5, r.String(), "font-size:12px;font-family:sans-serif")
		for f := knightbot.FileA; f <= knightbot.FileH; f++ {
			x := margin + int(f)*sqSize
			sq := knightbot.NewSquare(f, r)

			fill := e.light
			if (int(f)+int(r))%2 == 0 {
				fill = e.dark
			}
			canvas.Rect(x, y, sqSize, sqSize, "fill:"+hex(fill))
			if bb.Occupied(sq) {
				canvas.Rect(x, y, sqSize, sqSize, "fill:"+hex(e.mark)+";fill-opacity:"+opacity(e.mark))
			}
			if e.blockers.Occupied(sq) {
				canvas.Rect(x+2, y+2, sqSize-4, sqSize-4, "fill:none;stroke:black;stroke-width:3")
			}
			if sq == e.origin {
				canvas.Circle(x+sqSize/2, y+sqSize/2, sqSize/3, "fill:black")
			}
		}
	}
	for f := knightbot.FileA; f <= knightbot.FileH; f++ {
		x := margin + int(f)*sqSize + sqSize/2 - 3
		canvas.Text(x, height-5, f.String(), "font-size:12px;font-family:sans-serif")
	}
	canvas.End()
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func opacity(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("%.2f", float64(n.A)/0xff)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
