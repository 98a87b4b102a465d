package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func pts(ys ...float64) []DataPoint {
	out := make([]DataPoint, len(ys))
	for i, y := range ys {
		out[i] = DataPoint{Y: y}
	}
	return out
}

func ys(points []DataPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Y
	}
	return out
}

func TestDataPointValid(t *testing.T) {
	assert.True(t, DataPoint{Y: 1}.Valid())
	assert.False(t, DataPoint{Y: math.NaN()}.Valid())
	assert.False(t, DataPoint{Y: 1, X: ptr(math.Inf(1))}.Valid())
}

func TestChartDataValidate(t *testing.T) {
	cd := ChartData{
		Labels: []string{"a", "b", "c"},
		Datasets: []Dataset{
			{Label: "s1", Points: pts(1, 2, 3)},
			{Label: "s2", Points: nil},
		},
	}
	assert.NoError(t, cd.Validate())

	cd.Datasets[0].Points = pts(1, 2)
	err := cd.Validate()
	assert.Error(t, err)
}

func TestChartDataExtentSkipsHidden(t *testing.T) {
	cd := ChartData{
		Datasets: []Dataset{
			{Points: pts(1, 5)},
			{Points: pts(100, 200), Hidden: true},
		},
	}
	lo, hi, ok := cd.ExtentY()
	assert.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestPipelineDeterministic(t *testing.T) {
	p := NewPipeline().
		Add(RemoveInvalid{}).
		Add(ClampY{Min: 0, Max: 10}).
		Add(MovingAverage{W: 2}).
		Add(NormalizeY{})
	in := pts(1, 2, math.NaN(), 20, -5)
	out1 := p.Apply(in)
	out2 := p.Apply(in)
	assert.Equal(t, out1, out2)
}

func TestFilterMapWindow(t *testing.T) {
	in := pts(1, 2, 3, 4, 5)
	out := Filter{Predicate: func(p DataPoint) bool { return p.Y > 2 }}.Apply(in)
	assert.Equal(t, []float64{3, 4, 5}, ys(out))

	out = Map{Fn: func(p DataPoint) DataPoint { p.Y *= 2; return p }}.Apply(in)
	assert.Equal(t, []float64{2, 4, 6, 8, 10}, ys(out))

	out = Window{N: 2}.Apply(in)
	assert.Equal(t, []float64{4, 5}, ys(out))
}

func TestSkipTakeSample(t *testing.T) {
	in := pts(1, 2, 3, 4, 5, 6)
	assert.Equal(t, []float64{3, 4, 5, 6}, ys(Skip{N: 2}.Apply(in)))
	assert.Equal(t, []float64{1, 2, 3}, ys(Take{N: 3}.Apply(in)))
	assert.Equal(t, []float64{1, 3, 5}, ys(Sample{N: 2}.Apply(in)))
}

func TestNormalizeYConstant(t *testing.T) {
	out := NormalizeY{}.Apply(pts(5, 5, 5))
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, ys(out))
}

func TestSortReverseDedupe(t *testing.T) {
	in := pts(3, 1, 2)
	assert.Equal(t, []float64{1, 2, 3}, ys(SortByY{}.Apply(in)))
	assert.Equal(t, []float64{2, 1, 3}, ys(Reverse{}.Apply(in)))

	dedup := Dedupe{Epsilon: 0.01}.Apply(pts(1, 1.001, 1.5, 1.5))
	assert.Equal(t, []float64{1, 1.5}, ys(dedup))
}

func TestObservableDatasetCoalescesAppends(t *testing.T) {
	o := NewObservableDataset(Dataset{}, true)
	o.Append(DataPoint{Y: 1})
	o.Append(DataPoint{Y: 2})
	changes := o.Pending()
	assert.Len(t, changes, 1)
	assert.Equal(t, 2, changes[0].Count)
	assert.Equal(t, 2, o.Version())
}

func TestObservableDatasetDrain(t *testing.T) {
	o := NewObservableDataset(Dataset{}, false)
	o.Append(DataPoint{Y: 1})
	o.SetHidden(true)
	assert.Len(t, o.Drain(), 2)
	assert.Empty(t, o.Pending())
}

func TestStreamingDataSourceCapsPoints(t *testing.T) {
	s := NewStreamingDataSource(2)
	s.Enqueue(StreamMessage{Kind: MsgPoints, Points: pts(1, 2, 3)})
	ev, ok := s.Poll()
	assert.True(t, ok)
	assert.Equal(t, EventDelta, ev.Kind)
	assert.Equal(t, []float64{2, 3}, ys(s.Snapshot()))
}

func TestStreamingDataSourceConnectivity(t *testing.T) {
	s := NewStreamingDataSource(0)
	s.Enqueue(StreamMessage{Kind: MsgConnected})
	ev, ok := s.Poll()
	assert.True(t, ok)
	assert.Equal(t, EventStatusChanged, ev.Kind)
	assert.Equal(t, StatusConnected, ev.Status)
	assert.True(t, s.Connected())
}

func TestPollingDataSourceBackoff(t *testing.T) {
	p := NewPollingDataSource(1000, 8000, 2.0, 3)
	assert.True(t, p.ShouldFetch(0))
	p.BeginFetch(0)
	p.Fail(0)
	assert.Equal(t, int64(2000), p.currentIntervalMs)
	p.Fail(2000)
	assert.Equal(t, int64(4000), p.currentIntervalMs)
	p.Fail(6000)
	assert.Equal(t, PollingError, p.State())
}

func TestPollingDataSourceSuccessResets(t *testing.T) {
	p := NewPollingDataSource(1000, 8000, 2.0, 5)
	p.Fail(0)
	p.Succeed(2000)
	assert.Equal(t, 0, p.ErrorCount())
	assert.Equal(t, int64(1000), p.currentIntervalMs)
}
