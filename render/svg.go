package render

import (
	"bufio"
	"fmt"
	"gitlab.com/aoterocom/AOBankroll/models"
	"html"
	"io"
)

const (
	marginLeft   = 80
	marginRight  = 30
	marginTop    = 50
	marginBottom = 60
	ticks        = 5
)

// Tableau palette, cycled per trajectory
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// SVGRenderer draws every trajectory as a line on one chart with a dashed "Bankrupt" line at zero
type SVGRenderer struct {
	Width  int
	Height int
}

func NewSVGRenderer() SVGRenderer {
	return SVGRenderer{Width: 1200, Height: 600}
}

func Title(numHands int) string {
	return fmt.Sprintf("Monte Carlo Simulation of Blackjack Bankrolls (%d Hands)", numHands)
}

func (r SVGRenderer) Render(w io.Writer, result models.SimulationResult) error {
	width, height := r.Width, r.Height
	if width <= marginLeft+marginRight {
		width = 1200
	}
	if height <= marginTop+marginBottom {
		height = 600
	}
	plotW := float64(width - marginLeft - marginRight)
	plotH := float64(height - marginTop - marginBottom)

	maxX := float64(result.Config.NumHands)
	if maxX <= 0 {
		maxX = 1
	}
	maxY := result.MaxValue() * 1.05
	if maxY <= 0 {
		maxY = 1
	}
	sx := func(x float64) float64 { return marginLeft + x/maxX*plotW }
	sy := func(y float64) float64 { return marginTop + plotH - y/maxY*plotH }

	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' viewBox='0 0 %d %d'>", width, height, width, height)
	b.WriteString("<rect width='100%' height='100%' fill='#ffffff'/>")

	// grid and tick labels
	for i := 0; i <= ticks; i++ {
		yValue := maxY * float64(i) / ticks
		y := sy(yValue)
		fmt.Fprintf(b, "<line x1='%d' y1='%.2f' x2='%d' y2='%.2f' stroke='#e0e0e0'/>", marginLeft, y, width-marginRight, y)
		fmt.Fprintf(b, "<text x='%d' y='%.2f' text-anchor='end' font-family='sans-serif' font-size='11' fill='#333'>%s</text>",
			marginLeft-6, y+4, Amount(yValue, 0))

		xValue := maxX * float64(i) / ticks
		x := sx(xValue)
		fmt.Fprintf(b, "<line x1='%.2f' y1='%d' x2='%.2f' y2='%d' stroke='#e0e0e0'/>", x, marginTop, x, height-marginBottom)
		fmt.Fprintf(b, "<text x='%.2f' y='%d' text-anchor='middle' font-family='sans-serif' font-size='11' fill='#333'>%.0f</text>",
			x, height-marginBottom+16, xValue)
	}

	// axes
	fmt.Fprintf(b, "<line x1='%d' y1='%d' x2='%d' y2='%d' stroke='#333'/>", marginLeft, marginTop, marginLeft, height-marginBottom)
	fmt.Fprintf(b, "<line x1='%d' y1='%d' x2='%d' y2='%d' stroke='#333'/>", marginLeft, height-marginBottom, width-marginRight, height-marginBottom)

	for p, trajectory := range result.Trajectories {
		fmt.Fprintf(b, "<polyline class='path' fill='none' stroke='%s' stroke-opacity='0.7' stroke-width='1.2' points='", palette[p%len(palette)])
		for i, value := range trajectory {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%.2f,%.2f", sx(float64(i)), sy(value))
		}
		b.WriteString("'/>")
	}

	zero := sy(0)
	fmt.Fprintf(b, "<line class='bankrupt' x1='%d' y1='%.2f' x2='%d' y2='%.2f' stroke='red' stroke-dasharray='6,4' stroke-width='1.5'/>",
		marginLeft, zero, width-marginRight, zero)

	// legend
	fmt.Fprintf(b, "<line x1='%d' y1='%d' x2='%d' y2='%d' stroke='red' stroke-dasharray='6,4' stroke-width='1.5'/>",
		width-marginRight-110, marginTop+14, width-marginRight-80, marginTop+14)
	fmt.Fprintf(b, "<text x='%d' y='%d' font-family='sans-serif' font-size='12' fill='#333'>Bankrupt</text>",
		width-marginRight-74, marginTop+18)

	fmt.Fprintf(b, "<text x='%d' y='28' text-anchor='middle' font-family='sans-serif' font-size='16' fill='#111'>%s</text>",
		width/2, html.EscapeString(Title(result.Config.NumHands)))
	fmt.Fprintf(b, "<text x='%.2f' y='%d' text-anchor='middle' font-family='sans-serif' font-size='13' fill='#111'>Number of Hands Played</text>",
		marginLeft+plotW/2, height-16)
	fmt.Fprintf(b, "<text x='20' y='%.2f' text-anchor='middle' font-family='sans-serif' font-size='13' fill='#111' transform='rotate(-90 20 %.2f)'>Bankroll ($)</text>",
		marginTop+plotH/2, marginTop+plotH/2)
	b.WriteString("</svg>")

	return b.Flush()
}
