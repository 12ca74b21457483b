package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func TestAgeHistogramSharedBinEdges(t *testing.T) {
	lo, hi := 12.0, 81.0
	stroke := ageHistogram(plotter.Values{67, 61, 80, 79}, lo, hi, ageHistogramBins, colorRed)
	noStroke := ageHistogram(plotter.Values{49, 81, 74, 69, 59, 78, 12}, lo, hi, ageHistogramBins, colorGreen)

	require.Len(t, stroke.Bins, ageHistogramBins)
	require.Len(t, noStroke.Bins, ageHistogramBins)
	for i := range stroke.Bins {
		assert.Equal(t, stroke.Bins[i].Min, noStroke.Bins[i].Min, "bin %d", i)
		assert.Equal(t, stroke.Bins[i].Max, noStroke.Bins[i].Max, "bin %d", i)
	}
	assert.Equal(t, lo, stroke.Bins[0].Min)
	assert.Equal(t, hi, stroke.Bins[ageHistogramBins-1].Max)
}

func TestAgeHistogramCountsEveryValue(t *testing.T) {
	values := plotter.Values{12, 12, 49, 80.5, 81}
	hist := ageHistogram(values, 12, 81, ageHistogramBins, colorBlue)

	var total float64
	for _, bin := range hist.Bins {
		total += bin.Weight
	}
	assert.Equal(t, float64(len(values)), total, "range endpoints land in the edge bins")
}

func TestAgeHistogramDegenerateRange(t *testing.T) {
	hist := ageHistogram(plotter.Values{40, 40}, 40, 40, ageHistogramBins, colorBlue)

	require.Len(t, hist.Bins, ageHistogramBins)
	assert.Greater(t, hist.Bins[ageHistogramBins-1].Max, hist.Bins[0].Min)
	assert.Equal(t, 2.0, hist.Bins[0].Weight)
}
