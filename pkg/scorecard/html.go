// Package scorecard renders a finished benchmark run as a report.
//
// Two renderings are supported: a fully self-contained HTML document
// (inline styling only, no external fonts, scripts or network references,
// so the file opens from disk anywhere) and a compact PNG summary badge.
// Rendering is a pure presentation transform over an immutable summary:
// the same inputs always produce byte-identical output.
package scorecard

import (
	"fmt"
	"html"
	"strings"

	"github.com/mothbench/mothbench/pkg/bench"
	"github.com/mothbench/mothbench/pkg/catalog"
	"github.com/mothbench/mothbench/pkg/refs"
)

const (
	accentColor    = "#e84393"
	secondaryColor = "#6c5ce7"
)

// RenderHTML generates the complete scorecard document. The caller must pass
// a summary with at least one successful item.
func RenderHTML(sum *bench.Summary, entries []refs.Entry) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8" />
<title>Moth-Bench Performance Scorecard</title>
<style>
body { background: #07070c; color: #e4e4ef; font-family: sans-serif; padding: 50px; }
.hero { border: 1px solid #252540; background: linear-gradient(135deg, #6c5ce711, #e8439311); padding: 40px; border-radius: 24px; text-align: center; }
.grade { font-size: 80px; color: #10b981; font-weight: 800; }
.disclaimer { font-size: 12px; opacity: 0.7; }
table { width: 100%; margin-top: 20px; border-collapse: collapse; }
td, th { padding: 15px; border-bottom: 1px solid #252540; text-align: left; }
details { border: 1px solid #252540; border-radius: 8px; margin-top: 10px; padding: 10px 16px; }
summary { cursor: pointer; }
.cat { display: inline-block; padding: 2px 8px; border-radius: 4px; font-size: 12px; font-weight: 700; margin-right: 8px; }
.badge { display: inline-block; background: #6c5ce733; color: #a29bfe; padding: 2px 8px; border-radius: 4px; font-size: 12px; margin-left: 8px; }
.question { color: #8888aa; margin: 12px 0 6px; }
.answer { white-space: normal; color: #c0c0d0; }
</style>
</head>
<body>
`)

	writeHero(&sb, sum)
	writeLeaderboard(&sb, entries)
	writeDetails(&sb, sum.Results)

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func writeHero(sb *strings.Builder, sum *bench.Summary) {
	sb.WriteString(`<div class="hero">
<h1>🦋 MOTH-BENCH PERFORMANCE SCORECARD</h1>
`)
	fmt.Fprintf(sb, "<div class=\"grade\">%s</div>\n", html.EscapeString(sum.Grade))
	fmt.Fprintf(sb, "<p>Avg latency: %.2fs | Avg quality: %.1f/10 | Success: %d/%d</p>\n",
		sum.AvgSeconds, sum.AvgQuality, sum.Success, sum.Total)
	sb.WriteString(`<p class="disclaimer">Reference times are community-based and illustrative only. They are not official benchmarks for any provider. Your local endpoint is measured in this run.</p>
</div>
`)
}

func writeLeaderboard(sb *strings.Builder, entries []refs.Entry) {
	sb.WriteString("<table>\n<tr><th>Rank &amp; Model</th><th>Avg Response Time</th></tr>\n")
	for i, e := range entries {
		bg := "none"
		if e.Name == refs.LocalName {
			bg = secondaryColor + "33"
		}
		latency := "n/a"
		if e.AvgSeconds != nil {
			latency = fmt.Sprintf("%.2fs", *e.AvgSeconds)
		}
		fmt.Fprintf(sb, "<tr style=\"background:%s\"><td>#%d %s</td><td>%s</td></tr>\n",
			bg, i+1, html.EscapeString(e.Name), latency)
	}
	sb.WriteString("</table>\n")
}

func writeDetails(sb *strings.Builder, results []bench.Result) {
	sb.WriteString("<h2>Test Detail</h2>\n")
	for _, res := range results {
		sb.WriteString("<details>\n<summary>")
		fmt.Fprintf(sb, "<span class=\"cat\" style=\"background:%s22;color:%s\">%s</span>",
			catalog.CategoryColor(res.Category), catalog.CategoryColor(res.Category), html.EscapeString(string(res.Category)))
		fmt.Fprintf(sb, "%s — %s", html.EscapeString(res.Name), statusLabel(res))
		if res.Quality != nil {
			fmt.Fprintf(sb, "<span class=\"badge\">quality %d/10</span>", *res.Quality)
		}
		sb.WriteString("</summary>\n")
		fmt.Fprintf(sb, "<p class=\"question\">%s</p>\n", html.EscapeString(res.Question))
		fmt.Fprintf(sb, "<div class=\"answer\">%s</div>\n</details>\n", escapeMultiline(res.Answer))
	}
}

func statusLabel(res bench.Result) string {
	switch res.Status {
	case bench.StatusOK:
		return fmt.Sprintf("✅ %.2fs", res.Elapsed.Seconds())
	case bench.StatusHTTPError:
		return fmt.Sprintf("⚠️ E%d · N/A", res.HTTPCode)
	case bench.StatusTransportError:
		return fmt.Sprintf("❌ %s · N/A", html.EscapeString(res.ErrKind))
	default:
		return "N/A"
	}
}

// escapeMultiline HTML-escapes text and converts newlines to line breaks.
func escapeMultiline(s string) string {
	escaped := html.EscapeString(s)
	return strings.ReplaceAll(escaped, "\n", "<br>\n")
}
