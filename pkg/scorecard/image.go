package scorecard

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/mothbench/mothbench/pkg/bench"
	"github.com/mothbench/mothbench/pkg/refs"
)

// ImageRenderer renders a run summary as a PNG badge: grade tile, stats line
// and a horizontal-bar leaderboard.
type ImageRenderer struct {
	Width     float64
	HeaderH   float64
	RowHeight float64
	FooterH   float64
	Pad       float64
	FontSize  float64
	TitleSize float64
}

// NewImageRenderer creates a renderer with 1200px width.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{
		Width:     1200,
		HeaderH:   220,
		RowHeight: 56,
		FooterH:   70,
		Pad:       40,
		FontSize:  20,
		TitleSize: 30,
	}
}

// RenderPNG writes the summary badge to outputPath.
func (r *ImageRenderer) RenderPNG(sum *bench.Summary, entries []refs.Entry, outputPath string) error {
	height := r.HeaderH + float64(len(entries))*r.RowHeight + r.FooterH + 40
	dc := gg.NewContext(int(r.Width), int(height))

	r.drawBackground(dc, height)
	y := r.drawHeader(dc, sum)
	y = r.drawLeaderboard(dc, entries, y)
	r.drawFooter(dc, y)

	return dc.SavePNG(outputPath)
}

func (r *ImageRenderer) drawBackground(dc *gg.Context, height float64) {
	dc.SetColor(hexColor("#07070c"))
	dc.DrawRectangle(0, 0, r.Width, height)
	dc.Fill()
}

func (r *ImageRenderer) drawHeader(dc *gg.Context, sum *bench.Summary) float64 {
	dc.SetColor(hexColor("#1a1a3e"))
	dc.DrawRoundedRectangle(r.Pad, 20, r.Width-2*r.Pad, r.HeaderH-40, 16)
	dc.Fill()

	// Grade tile
	tile := 110.0
	dc.SetColor(hexColor("#10b98122"))
	dc.DrawRoundedRectangle(r.Pad+24, 20+(r.HeaderH-40-tile)/2, tile, tile, 12)
	dc.Fill()
	r.loadFont(dc, 64, true)
	dc.SetColor(hexColor("#10b981"))
	dc.DrawStringAnchored(sum.Grade, r.Pad+24+tile/2, 20+(r.HeaderH-40)/2, 0.5, 0.5)

	// Title + stats
	textX := r.Pad + 24 + tile + 32
	r.loadFont(dc, r.TitleSize, true)
	dc.SetColor(color.White)
	dc.DrawString("MOTH-BENCH SCORECARD", textX, 78)

	r.loadFont(dc, r.FontSize, false)
	dc.SetColor(hexColor("#aaaacc"))
	stats := fmt.Sprintf("Avg latency %.2fs · Avg quality %.1f/10 · Success %d/%d",
		sum.AvgSeconds, sum.AvgQuality, sum.Success, sum.Total)
	dc.DrawString(stats, textX, 118)

	dc.SetColor(hexColor("#555577"))
	r.loadFont(dc, 14, false)
	dc.DrawString("Reference times are community-based and illustrative only.", textX, 150)

	return r.HeaderH
}

func (r *ImageRenderer) drawLeaderboard(dc *gg.Context, entries []refs.Entry, y float64) float64 {
	maxSeconds := 0.0
	for _, e := range entries {
		if e.AvgSeconds != nil && *e.AvgSeconds > maxSeconds {
			maxSeconds = *e.AvgSeconds
		}
	}
	if maxSeconds <= 0 {
		maxSeconds = 1
	}

	labelW := 380.0
	barMax := r.Width - 2*r.Pad - labelW - 120

	for i, e := range entries {
		rowY := y + float64(i)*r.RowHeight

		barColor := hexColor("#353b48")
		textColor := hexColor("#c0c0d0")
		if e.Name == refs.LocalName {
			barColor = hexColor(secondaryColor)
			textColor = hexColor("#a29bfe")
		}

		r.loadFont(dc, r.FontSize-2, e.Name == refs.LocalName)
		dc.SetColor(textColor)
		name := e.Name
		if len(name) > 34 {
			name = name[:34]
		}
		dc.DrawString(fmt.Sprintf("#%d %s", i+1, name), r.Pad, rowY+r.RowHeight/2+6)

		if e.AvgSeconds == nil {
			dc.SetColor(hexColor("#404050"))
			dc.DrawString("n/a", r.Pad+labelW, rowY+r.RowHeight/2+6)
			continue
		}

		w := barMax * (*e.AvgSeconds / maxSeconds)
		dc.SetColor(barColor)
		dc.DrawRoundedRectangle(r.Pad+labelW, rowY+r.RowHeight/2-10, w, 20, 6)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawString(fmt.Sprintf("%.2fs", *e.AvgSeconds), r.Pad+labelW+w+12, rowY+r.RowHeight/2+6)
	}

	return y + float64(len(entries))*r.RowHeight
}

func (r *ImageRenderer) drawFooter(dc *gg.Context, y float64) {
	r.loadFont(dc, 14, false)
	dc.SetColor(hexColor("#444460"))
	dc.DrawStringAnchored("Moth-Bench · lower is better", r.Width/2, y+r.FooterH/2, 0.5, 0.5)
}

func (r *ImageRenderer) loadFont(dc *gg.Context, size float64, bold bool) {
	// Best effort: fall back to gg's built-in face when no system font loads.
	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
	}
	if bold {
		candidates = append([]string{"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"}, candidates...)
	}
	for _, path := range candidates {
		if err := dc.LoadFontFace(path, size); err == nil {
			return
		}
	}
}

func hexColor(hex string) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		var cr, cg, cb, ca uint8
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &cr, &cg, &cb, &ca)
		return color.RGBA{cr, cg, cb, ca}
	}
	var cr, cg, cb uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &cr, &cg, &cb)
	return color.RGBA{cr, cg, cb, 255}
}
