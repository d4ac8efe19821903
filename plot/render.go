package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/rustyeddy/bankroll/pkg/currency"
)

// ErrNoPoints is returned when there is nothing to draw.
var ErrNoPoints = errors.New("plot: no dated sessions")

// Options controls the rendered chart.
type Options struct {
	Title    string
	Width    int
	Height   int
	Currency string
}

func DefaultOptions() Options {
	return Options{
		Title:    "Poker Bankroll Tracker",
		Width:    1200,
		Height:   600,
		Currency: currency.Default,
	}
}

var (
	lineColor  = drawing.ColorFromHex("2E86AB")
	profitFill = drawing.Color{R: 0, G: 128, B: 0, A: 77}
	lossFill   = drawing.Color{R: 255, G: 0, B: 0, A: 77}
	zeroColor  = drawing.Color{R: 128, G: 128, B: 128, A: 179}
	gridColor  = drawing.Color{R: 128, G: 128, B: 128, A: 77}
	boxFill    = drawing.Color{R: 245, G: 222, B: 179, A: 204} // wheat
	boxStroke  = drawing.Color{R: 160, G: 140, B: 100, A: 204}

	// Series inherit a default stroke when theirs is zero; this one is
	// non-zero and invisible.
	transparent = drawing.Color{R: 255, G: 255, B: 255, A: 0}
)

const (
	xTickTarget = 10
	yTickTarget = 8
	day         = 24 * time.Hour
)

// Render draws s as a PNG to w.
func Render(w io.Writer, s Series, o Options) error {
	if len(s.Points) == 0 {
		return ErrNoPoints
	}

	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("load title font: %w", err)
	}

	n := len(s.Points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	profit := make([]float64, n)
	loss := make([]float64, n)
	for i, p := range s.Points {
		xs[i] = timeToX(p.Date)
		ys[i] = p.Cumulative.InexactFloat64()
		profit[i] = math.Max(ys[i], 0)
		loss[i] = math.Min(ys[i], 0)
	}

	xMin, xMax := xBounds(s.Points)
	yMin, yMax := yBounds(ys)
	yStep := niceStep(yMax-yMin, yTickTarget)
	yMin = math.Floor(yMin/yStep) * yStep
	yMax = math.Ceil(yMax/yStep) * yStep

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Profit",
			XValues: xs,
			YValues: profit,
			Style:   chart.Style{StrokeColor: profitFill, StrokeWidth: 1, FillColor: profitFill},
		},
		chart.ContinuousSeries{
			Name:    "Loss",
			XValues: xs,
			YValues: loss,
			Style:   chart.Style{StrokeColor: lossFill, StrokeWidth: 1, FillColor: lossFill},
		},
		chart.ContinuousSeries{
			Name:    "Break-even",
			XValues: []float64{xMin, xMax},
			YValues: []float64{0, 0},
			Style:   chart.Style{StrokeColor: zeroColor, StrokeWidth: 1, StrokeDashArray: []float64{5, 5}},
		},
		chart.ContinuousSeries{
			Name:    "Cumulative",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 2.5,
				DotColor:    lineColor,
				DotWidth:    5,
			},
		},
		// marker faces drawn over the line dots
		chart.ContinuousSeries{
			Name:    "Sessions",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: transparent, DotColor: drawing.ColorWhite, DotWidth: 3},
		},
	}

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1, StrokeDashArray: []float64{4, 4}}
	nameStyle := chart.Style{Font: bold, FontSize: 12}
	money := func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return currency.FormatWhole(f, o.Currency)
		}
		return ""
	}

	c := chart.Chart{
		Title:      o.Title,
		TitleStyle: chart.Style{Font: bold, FontSize: 16},
		Width:      o.Width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Date",
			NameStyle:      nameStyle,
			ValueFormatter: dateLabel,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks:          dateTicks(xMin, xMax, xTickTarget),
			TickStyle:      chart.Style{TextRotationDegrees: 45},
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           fmt.Sprintf("Cumulative Profit (%s)", currency.Symbol(o.Currency)),
			NameStyle:      nameStyle,
			ValueFormatter: money,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          valueTicks(yMin, yMax, yStep, money),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: series,
	}

	rate, _ := s.WinRate()
	c.Elements = []chart.Renderable{
		textBox(fmt.Sprintf("Win Rate: %.1f%%", rate)),
		legend([]legendEntry{{"Profit", profitFill}, {"Loss", lossFill}}),
	}

	return c.Render(chart.PNG, w)
}

// timeToX keeps the wall clock of t, so a date is labelled as it was written
// whatever its offset.
func timeToX(t time.Time) float64 {
	_, offset := t.Zone()
	return float64(t.Unix() + int64(offset))
}

func xToTime(x float64) time.Time { return time.Unix(int64(x), 0).UTC() }

func dateLabel(v interface{}) string {
	if f, ok := v.(float64); ok {
		return xToTime(f).Format("2006-01-02")
	}
	return ""
}

// xBounds spans the first to last date, widened by a day on each side when
// every point falls on one date.
func xBounds(pts []Point) (float64, float64) {
	lo, hi := pts[0].Date, pts[len(pts)-1].Date
	if !hi.After(lo) {
		lo, hi = lo.Add(-day), hi.Add(day)
	}
	return timeToX(lo), timeToX(hi)
}

// yBounds always includes zero so the break-even line is on the chart.
func yBounds(ys []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	if lo < 0 {
		lo -= pad
	}
	if hi > 0 {
		hi += pad
	}
	return lo, hi
}

// niceStep picks a 1/2/5 x 10^k step giving at most about target intervals.
func niceStep(span float64, target int) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

func valueTicks(lo, hi, step float64, format chart.ValueFormatter) []chart.Tick {
	var ticks []chart.Tick
	for v := lo; v <= hi+step/2; v += step {
		r := math.Round(v/step) * step
		if r == 0 {
			r = 0 // no "-$0"
		}
		ticks = append(ticks, chart.Tick{Value: r, Label: format(r)})
	}
	return ticks
}

// dateTicks places up to target ticks on whole days between lo and hi.
func dateTicks(lo, hi float64, target int) []chart.Tick {
	days := int(math.Round((hi - lo) / day.Seconds()))
	every := (days + target - 1) / target
	if every < 1 {
		every = 1
	}
	var ticks []chart.Tick
	for d := 0; d <= days; d += every {
		x := lo + float64(d)*day.Seconds()
		ticks = append(ticks, chart.Tick{Value: x, Label: dateLabel(x)})
	}
	return ticks
}
