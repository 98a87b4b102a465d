package data

// ChangeKind tags the variant of a DataChange record.
type ChangeKind int

const (
	ChangeAppend ChangeKind = iota
	ChangeUpdate
	ChangeRemove
	ChangeReplace
	ChangeClear
	ChangeStyle
	ChangeVisibility
)

// DataChange records one mutation of an ObservableDataset. Fields not
// relevant to Kind are zero.
type DataChange struct {
	Kind ChangeKind
	Start int // Append, Update, Remove
	Count int // Append, Update, Remove
	Old Dataset // Replace, Clear
	New Dataset // Replace
	Hidden bool // Visibility
}

// ObservableDataset wraps a Dataset and records each mutation as a
// DataChange for consumers to poll.
type ObservableDataset struct {
	Dataset Dataset
	queue []DataChange
	version int
	coalesce bool
}

// NewObservableDataset wraps ds. When coalesce is true, consecutive
// Append changes with contiguous ranges are merged into one.
func NewObservableDataset(ds Dataset, coalesce bool) *ObservableDataset {
	return &ObservableDataset{Dataset: ds, coalesce: coalesce}
}

// Version returns the current mutation counter.
func (o *ObservableDataset) Version() int { return o.version }

// Drain removes and returns all queued changes.
func (o *ObservableDataset) Drain() []DataChange {
	q := o.queue
	o.queue = nil
	return q
}

// Pending returns the queued changes without removing them.
func (o *ObservableDataset) Pending() []DataChange {
	return o.queue
}

func (o *ObservableDataset) enqueue(c DataChange) {
	if o.coalesce && c.Kind == ChangeAppend && len(o.queue) > 0 {
		last := &o.queue[len(o.queue)-1]
		if last.Kind == ChangeAppend && last.Start+last.Count == c.Start {
			last.Count += c.Count
			o.version++
			return
		}
	}
	o.queue = append(o.queue, c)
	o.version++
}

// Append adds points to the end of the dataset.
func (o *ObservableDataset) Append(points...DataPoint) {
	start := len(o.Dataset.Points)
	o.Dataset.Points = append(o.Dataset.Points, points...)
	o.enqueue(DataChange{Kind: ChangeAppend, Start: start, Count: len(points)})
}

// Update overwrites points[index:index+len(points)] in place.
func (o *ObservableDataset) Update(index int, points []DataPoint) {
	copy(o.Dataset.Points[index:], points)
	o.enqueue(DataChange{Kind: ChangeUpdate, Start: index, Count: len(points)})
}

// Remove deletes count points starting at index.
func (o *ObservableDataset) Remove(index, count int) {
	o.Dataset.Points = append(o.Dataset.Points[:index], o.Dataset.Points[index+count:]...)
	o.enqueue(DataChange{Kind: ChangeRemove, Start: index, Count: count})
}

// Replace swaps in an entirely new Dataset.
func (o *ObservableDataset) Replace(ds Dataset) {
	old := o.Dataset
	o.Dataset = ds
	o.enqueue(DataChange{Kind: ChangeReplace, Old: old, New: ds})
}

// Clear empties the dataset's points.
func (o *ObservableDataset) Clear() {
	old := o.Dataset
	o.Dataset.Points = nil
	o.enqueue(DataChange{Kind: ChangeClear, Old: old})
}

// SetHidden toggles the dataset's visibility.
func (o *ObservableDataset) SetHidden(hidden bool) {
	o.Dataset.Hidden = hidden
	o.enqueue(DataChange{Kind: ChangeVisibility, Hidden: hidden})
}

// NotifyStyleChange enqueues a StyleChange without touching points,
// for callers that mutate Dataset's style fields directly.
func (o *ObservableDataset) NotifyStyleChange() {
	o.enqueue(DataChange{Kind: ChangeStyle})
}
