package batch

import (
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// Progress bar across a batch of targets.
func newProgress(name string, total int) (*mpb.Progress, *mpb.Bar) {
	p := mpb.New(mpb.WithWidth(60))

	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d / %d"),
		),
	)

	// A zero-total bar never completes on its own, which would block Wait
	// forever. Empty target sets are valid input.
	if total == 0 {
		bar.SetTotal(0, true)
	}

	return p, bar
}
