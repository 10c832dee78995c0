package preview

import (
	"context"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/Kavindu379/portfolio/internal/ui"
)

const preloadSteps = 100

// Preload shows the loading window as a progress bar before the field
// appears. A non-positive window skips it.
func Preload(ctx context.Context, w io.Writer, window time.Duration) error {
	if window <= 0 {
		return nil
	}
	desc := "Loading"
	if s := ui.PreloaderTypewriter.Strings; len(s) > 0 {
		desc = s[0]
	}
	bar := progressbar.NewOptions(preloadSteps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)

	tick := time.NewTicker(max(window/preloadSteps, time.Millisecond))
	defer tick.Stop()
	for range preloadSteps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			_ = bar.Add(1)
		}
	}
	return bar.Finish()
}
