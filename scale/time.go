package scale

import (
	"math"
	"time"
)

// Time maps a pair of absolute instants onto a continuous pixel
// range.5. Internally it maps linearly on the
// millisecond axis.
type Time struct {
	D0, D1 time.Time
	R0, R1 float64
	Clamp bool

	// Format overrides the default strftime-like format chosen per
	// TimeInterval. Empty means "use the interval's default."
	Format string
}

// NewTime returns a Time scale over [d0,d1] -> [r0,r1].
func NewTime(d0, d1 time.Time, r0, r1 float64) *Time {
	return &Time{D0: d0, D1: d1, R0: r0, R1: r1}
}

func (s *Time) linear() *Linear {
	return &Linear{
		D0: float64(s.D0.UnixMilli()), D1: float64(s.D1.UnixMilli()),
		R0: s.R0, R1: s.R1, Clamp: s.Clamp,
	}
}

// Scale maps an instant to a range value.
func (s *Time) Scale(t time.Time) float64 {
	return s.linear().Scale(float64(t.UnixMilli()))
}

// Invert maps a range value back to an instant.
func (s *Time) Invert(p float64) time.Time {
	ms := s.linear().Invert(p)
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// Bandwidth is always 0.
func (s *Time) Bandwidth() float64 { return 0 }

// Clone returns an independent copy.
func (s *Time) Clone() *Time {
	c := *s
	return &c
}

// TimeInterval is one entry in the fixed ascending table of calendar
// intervals TimeScale chooses ticks from.
type TimeInterval struct {
	Name string
	Duration time.Duration
	// Months and Years are set for month- and year-granularity
	// intervals, where Duration alone can't express the interval
	// (months vary in length); each holds the step count in its own
	// unit (e.g. Months=3 for "3 months", Years=10 for "10 years").
	// TimeIntervals leaves N zero.
	Months int
	Years int
	N int

	Format string

	floor func(t time.Time, n int) time.Time
	add func(t time.Time, n int) time.Time
}

func floorToUnit(d time.Duration) func(time.Time, int) time.Time {
	return func(t time.Time, n int) time.Time {
		step := d * time.Duration(n)
		if step <= 0 {
			return t
		}
		unix := t.UnixNano()
		floored := unix - unix%int64(step)
		return time.Unix(0, floored).UTC()
	}
}

func addDuration(d time.Duration) func(time.Time, int) time.Time {
	return func(t time.Time, n int) time.Time {
		return t.Add(d * time.Duration(n))
	}
}

func floorToDay(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if n <= 1 {
		return start
	}
	// Snap to an n-day boundary measured from the Unix epoch day.
	days := int(start.Unix() / 86400)
	days -= days % n
	return time.Unix(int64(days)*86400, 0).UTC()
}

func floorToWeek(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	// Weeks start on Sunday.
	start = start.AddDate(0, 0, -int(start.Weekday()))
	if n <= 1 {
		return start
	}
	weeks := int(start.Unix() / (86400 * 7))
	weeks -= weeks % n
	return time.Unix(int64(weeks)*86400*7, 0).UTC()
}

func floorToMonth(n int) func(time.Time, int) time.Time {
	return func(t time.Time, _ int) time.Time {
		y, m, _ := t.Date()
		month0 := int(m) - 1
		month0 -= month0 % n
		return time.Date(y, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	}
}

func floorToYear(n int) func(time.Time, int) time.Time {
	return func(t time.Time, _ int) time.Time {
		y := t.Year()
		y -= y % n
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

// TimeIntervals is the fixed ascending table TimeScale.Ticks chooses
// from.
var TimeIntervals = buildTimeIntervals()

func buildTimeIntervals() []TimeInterval {
	ms := time.Millisecond
	sec := time.Second
	min := time.Minute
	hr := time.Hour
	day := 24 * hr

	mk := func(name string, d time.Duration, format string) TimeInterval {
		return TimeInterval{Name: name, Duration: d, Format: format, floor: floorToUnit(d), add: addDuration(d)}
	}

	out := []TimeInterval{
		mk("1ms", 1*ms, "15:04:05.000"),
		mk("5ms", 5*ms, "15:04:05.000"),
		mk("1s", 1*sec, "15:04:05"),
		mk("5s", 5*sec, "15:04:05"),
		mk("15s", 15*sec, "15:04:05"),
		mk("30s", 30*sec, "15:04:05"),
		mk("1min", 1*min, "15:04"),
		mk("5min", 5*min, "15:04"),
		mk("15min", 15*min, "15:04"),
		mk("30min", 30*min, "15:04"),
		mk("1h", 1*hr, "15:04"),
		mk("3h", 3*hr, "Jan 2 15:04"),
		mk("6h", 6*hr, "Jan 2 15:04"),
		mk("12h", 12*hr, "Jan 2 15:04"),
		{Name: "1d", Duration: day, Format: "Jan 2", floor: floorToDay, add: addDuration(day)},
		{Name: "2d", Duration: 2 * day, Format: "Jan 2", floor: floorToDay, add: addDuration(2 * day)},
		{Name: "1w", Duration: 7 * day, Format: "Jan 2", floor: floorToWeek, add: addDuration(7 * day)},
		{Name: "2w", Duration: 14 * day, Format: "Jan 2", floor: floorToWeek, add: addDuration(14 * day)},
		{Name: "1mo", Duration: 30 * day, Format: "Jan 2006", Months: 1,
			floor: floorToMonth(1), add: func(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }},
		{Name: "3mo", Duration: 91 * day, Format: "Jan 2006", Months: 3,
			floor: floorToMonth(3), add: func(t time.Time, n int) time.Time { return t.AddDate(0, 3*n, 0) }},
		{Name: "6mo", Duration: 182 * day, Format: "Jan 2006", Months: 6,
			floor: floorToMonth(6), add: func(t time.Time, n int) time.Time { return t.AddDate(0, 6*n, 0) }},
		{Name: "1y", Duration: 365 * day, Format: "2006", Years: 1,
			floor: floorToYear(1), add: func(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) }},
		{Name: "2y", Duration: 2 * 365 * day, Format: "2006", Years: 2,
			floor: floorToYear(2), add: func(t time.Time, n int) time.Time { return t.AddDate(2*n, 0, 0) }},
		{Name: "5y", Duration: 5 * 365 * day, Format: "2006", Years: 5,
			floor: floorToYear(5), add: func(t time.Time, n int) time.Time { return t.AddDate(5*n, 0, 0) }},
		{Name: "10y", Duration: 10 * 365 * day, Format: "2006", Years: 10,
			floor: floorToYear(10), add: func(t time.Time, n int) time.Time { return t.AddDate(10*n, 0, 0) }},
	}
	return out
}

// chooseInterval picks the smallest TimeInterval whose duration is >=
// totalDuration/targetCount.
func chooseInterval(totalDuration time.Duration, targetCount int) TimeInterval {
	if targetCount <= 0 {
		targetCount = 10
	}
	want := totalDuration / time.Duration(targetCount)
	for _, iv := range TimeIntervals {
		if iv.Duration >= want {
			return iv
		}
	}
	return TimeIntervals[len(TimeIntervals)-1]
}

// Ticks chooses a TimeInterval from TimeIntervals (the smallest whose
// duration is >= domain span / target count), floors the domain start
// to that interval's natural boundary, and iterates by interval while
// inside the domain.
func (s *Time) Ticks(opts TickOptions) []Tick {
	lo, hi := s.D0, s.D1
	if lo.After(hi) {
		lo, hi = hi, lo
	}
	span := hi.Sub(lo)
	if span <= 0 {
		return nil
	}
	iv := chooseInterval(span, opts.count())
	format := s.Format
	if format == "" {
		format = iv.Format
	}

	var ticks []Tick
	cur := iv.floor(lo, 1)
	if cur.Before(lo) {
		// floor may land strictly before lo; that's fine, the
		// loop below will step forward past it if needed, but we
		// still want to include it only if it lies in-domain once
		// advanced.
	}
	limit := hi.Add(time.Millisecond)
	guard := 0
	for !cur.After(limit) && guard < 100000 {
		guard++
		if !cur.Before(lo) || nearlyEqualTime(cur, lo) {
			ticks = append(ticks, Tick{
				Value: float64(cur.UnixMilli()),
				Label: cur.Format(format),
				Position: s.Scale(cur),
			})
		}
		cur = iv.add(cur, 1)
	}
	return capTicks(ticks, opts.MaxCount)
}

func nearlyEqualTime(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d < time.Millisecond
}
