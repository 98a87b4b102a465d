package data

import (
	"sync"

	"github.com/aclements/chartcore"
)

// StreamMessageKind tags the variant of a StreamMessage.
type StreamMessageKind int

const (
	MsgPoint StreamMessageKind = iota
	MsgPoints
	MsgReplace
	MsgClear
	MsgConnected
	MsgDisconnected
	MsgError
)

// StreamMessage is one item enqueued by an external producer.
type StreamMessage struct {
	Kind   StreamMessageKind
	Point  DataPoint
	Points []DataPoint
	Err    string
}

// SourceEventKind tags the variant of a DataSourceEvent. StatusChanged
// is a chartcore addition alongside the Snapshot/Delta/Error trio so
// consumers can distinguish connect/disconnect transitions from data
// changes without inspecting message contents.
type SourceEventKind int

const (
	EventSnapshot SourceEventKind = iota
	EventDelta
	EventError
	EventStatusChanged
)

// SourceStatus is the connectivity state reported by StatusChanged.
type SourceStatus int

const (
	StatusDisconnected SourceStatus = iota
	StatusConnected
)

// DataSourceEvent is the result of draining a data source.
type DataSourceEvent struct {
	Kind   SourceEventKind
	Points []DataPoint  // Snapshot, Delta
	Err    string       // Error
	Status SourceStatus // StatusChanged
}

// StreamingDataSource receives StreamMessages from an external
// producer via a thread-safe queue and materializes them into a
// bounded point buffer, safe for concurrent producer/consumer use.
type StreamingDataSource struct {
	mu        sync.Mutex
	queue     []StreamMessage
	points    []DataPoint
	maxPoints int
	connected bool
}

// NewStreamingDataSource returns a source that drops from the front
// once it holds more than maxPoints points. maxPoints<=0 means
// unbounded.
func NewStreamingDataSource(maxPoints int) *StreamingDataSource {
	return &StreamingDataSource{maxPoints: maxPoints}
}

// Enqueue is the producer-side, non-blocking entry point; safe to
// call concurrently with Poll from any number of goroutines.
func (s *StreamingDataSource) Enqueue(msg StreamMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, msg)
}

// Poll drains the queue into internal state and returns the next
// DataSourceEvent, or ok=false if nothing was queued.
func (s *StreamingDataSource) Poll() (DataSourceEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.queue
	s.queue = nil

	if len(pending) == 0 {
		return DataSourceEvent{}, false
	}

	var ev DataSourceEvent
	for _, msg := range pending {
		switch msg.Kind {
		case MsgPoint:
			s.points = append(s.points, msg.Point)
			ev = DataSourceEvent{Kind: EventDelta, Points: []DataPoint{msg.Point}}
		case MsgPoints:
			s.points = append(s.points, msg.Points...)
			ev = DataSourceEvent{Kind: EventDelta, Points: msg.Points}
		case MsgReplace:
			s.points = append([]DataPoint(nil), msg.Points...)
			ev = DataSourceEvent{Kind: EventSnapshot, Points: s.points}
		case MsgClear:
			s.points = nil
			ev = DataSourceEvent{Kind: EventSnapshot, Points: nil}
		case MsgConnected:
			s.connected = true
			ev = DataSourceEvent{Kind: EventStatusChanged, Status: StatusConnected}
		case MsgDisconnected:
			s.connected = false
			ev = DataSourceEvent{Kind: EventStatusChanged, Status: StatusDisconnected}
		case MsgError:
			ev = DataSourceEvent{Kind: EventError, Err: msg.Err}
		}
		s.capPoints()
	}
	return ev, true
}

func (s *StreamingDataSource) capPoints() {
	if s.maxPoints > 0 && len(s.points) > s.maxPoints {
		dropped := len(s.points) - s.maxPoints
		s.points = s.points[dropped:]
		chartcore.Warn.Printf("streaming source dropped %d points past MaxPoints=%d", dropped, s.maxPoints)
	}
}

// Snapshot returns a copy of the current point buffer.
func (s *StreamingDataSource) Snapshot() []DataPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DataPoint(nil), s.points...)
}

// Connected reports the last-known connectivity status.
func (s *StreamingDataSource) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// SharedStreamingSource wraps a StreamingDataSource so that multiple
// readers can call Snapshot concurrently; the lock is held for the
// queue drain and point-buffer update in Poll and for the copies in
// Snapshot and Connected, never across a caller callback, per
// shared-resource policy.
type SharedStreamingSource struct {
	src *StreamingDataSource
}

// NewSharedStreamingSource wraps src.
func NewSharedStreamingSource(src *StreamingDataSource) *SharedStreamingSource {
	return &SharedStreamingSource{src: src}
}

// Snapshot delegates to the wrapped source; StreamingDataSource's own
// mutex already serializes concurrent callers.
func (s *SharedStreamingSource) Snapshot() []DataPoint { return s.src.Snapshot() }

// Poll delegates to the wrapped source.
func (s *SharedStreamingSource) Poll() (DataSourceEvent, bool) { return s.src.Poll() }
