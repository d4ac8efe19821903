package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	boxPad    = 6
	boxRadius = 5
	boxFont   = 11.0
)

// textBox draws text on a rounded, semi-opaque box anchored to the upper-left
// corner of the plot area.
func textBox(text string) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontSize(boxFont)
		tb := r.MeasureText(text)

		left := cb.Left + int(0.02*float64(cb.Width()))
		top := cb.Top + int(0.02*float64(cb.Height()))
		w := tb.Width() + 2*boxPad
		h := tb.Height() + 2*boxPad

		r.SetFillColor(boxFill)
		r.SetStrokeColor(boxStroke)
		r.SetStrokeWidth(1)
		roundedRect(r, left, top, w, h, boxRadius)
		r.FillStroke()

		r.SetFontColor(drawing.ColorBlack)
		r.Text(text, left+boxPad, top+boxPad+tb.Height())
	}
}

type legendEntry struct {
	Label string
	Color drawing.Color
}

// legend draws colour swatches in the upper-right corner of the plot area.
func legend(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontSize(boxFont)

		const swatch = 12
		width, height := 0, 0
		for _, e := range entries {
			tb := r.MeasureText(e.Label)
			if w := swatch + boxPad + tb.Width(); w > width {
				width = w
			}
			height += max(tb.Height(), swatch) + boxPad
		}
		width += 2 * boxPad
		height += boxPad

		left := cb.Right - int(0.02*float64(cb.Width())) - width
		top := cb.Top + int(0.02*float64(cb.Height()))

		r.SetFillColor(drawing.Color{R: 255, G: 255, B: 255, A: 204})
		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(1)
		roundedRect(r, left, top, width, height, boxRadius)
		r.FillStroke()

		y := top + boxPad
		for _, e := range entries {
			tb := r.MeasureText(e.Label)
			row := max(tb.Height(), swatch)

			r.SetFillColor(e.Color)
			r.SetStrokeColor(e.Color)
			r.MoveTo(left+boxPad, y)
			r.LineTo(left+boxPad+swatch, y)
			r.LineTo(left+boxPad+swatch, y+swatch)
			r.LineTo(left+boxPad, y+swatch)
			r.Close()
			r.FillStroke()

			r.SetFontColor(drawing.ColorBlack)
			r.Text(e.Label, left+2*boxPad+swatch, y+row)
			y += row + boxPad
		}
	}
}

// roundedRect traces a closed rectangle path with quadratic corners.
func roundedRect(r chart.Renderer, x, y, w, h, rad int) {
	r.MoveTo(x+rad, y)
	r.LineTo(x+w-rad, y)
	r.QuadCurveTo(x+w, y, x+w, y+rad)
	r.LineTo(x+w, y+h-rad)
	r.QuadCurveTo(x+w, y+h, x+w-rad, y+h)
	r.LineTo(x+rad, y+h)
	r.QuadCurveTo(x, y+h, x, y+h-rad)
	r.LineTo(x, y+rad)
	r.QuadCurveTo(x, y, x+rad, y)
	r.Close()
}
