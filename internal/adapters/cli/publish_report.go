package cli

import (
	"fmt"
	"time"

	"github.com/3-lines-studio/staticpub/internal/core"
)

// PublishReport summarises a publish run once it has finished.
type PublishReport struct {
	out       *Output
	startTime time.Time
	outputDir string
	strategy  core.Strategy
	page      core.WriteResult
	assets    []core.AssetResult
}

func NewPublishReport(out *Output, outputDir string) *PublishReport {
	return &PublishReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *PublishReport) SetPage(strategy core.Strategy, page core.WriteResult) {
	r.strategy = strategy
	r.page = page
}

func (r *PublishReport) AddAssets(assets ...core.AssetResult) {
	r.assets = append(r.assets, assets...)
}

func (r *PublishReport) Render() {
	r.render(time.Since(r.startTime))
}

func (r *PublishReport) render(duration time.Duration) {
	o := r.out
	w := o.stdout

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", o.Green("✓"), o.Sprintf("%s (%s)", core.PageFile, o.Sprintf(strategyLabel(r.strategy))))
	if r.page.BackedUp {
		fmt.Fprintf(w, "    %s\n", o.Gray(o.Sprintf("backup: %s", r.page.BackupPath)))
	}

	copied, skipped, missing := 0, 0, 0
	for _, a := range r.assets {
		switch {
		case a.Origin == core.OriginMissing:
			missing++
			fmt.Fprintf(w, "  %s %s\n", o.Gray("-"), o.Sprintf("%s (not found)", a.Name))
		case a.Write.Skipped:
			skipped++
			fmt.Fprintf(w, "  %s %s\n", o.Yellow("="), o.Sprintf("%s (already in place)", a.Name))
		default:
			copied++
			fmt.Fprintf(w, "  %s %s\n", o.Green("✓"), o.Sprintf("%s (from %s)", a.Name, a.Source))
			if a.Write.BackedUp {
				fmt.Fprintf(w, "    %s\n", o.Gray(o.Sprintf("backup: %s", a.Write.BackupPath)))
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", o.Sprintf("Assets: %d copied, %d already in place, %d not found", copied, skipped, missing))
	fmt.Fprintf(w, "  %s%s\n", o.Green("✓ "), o.Sprintf("Publish complete in %s", formatDuration(duration)))

	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", o.Gray(o.Sprintf("Output: %s", r.outputDir)))
	}
}

func strategyLabel(s core.Strategy) string {
	switch s {
	case core.StrategyGenerate:
		return "generated by the app"
	case core.StrategyRequest:
		return "rendered from GET /"
	default:
		return "not rendered"
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
