package behavior

import "time"

// SignalRecord is one entry in a student's long-term signal history.
type SignalRecord struct {
	At     time.Time
	Signal Signal
	Topic  string
}

// SignalLog is a fixed-capacity ring buffer of signal records. Once full,
// appending evicts the oldest entry.
type SignalLog struct {
	buf   []SignalRecord
	start int
	count int
}

// NewSignalLog creates a SignalLog holding at most capacity records.
func NewSignalLog(capacity int) *SignalLog {
	if capacity <= 0 {
		capacity = 1
	}
	return &SignalLog{buf: make([]SignalRecord, capacity)}
}

// Append adds a record, evicting the oldest if the log is full.
func (l *SignalLog) Append(rec SignalRecord) {
	if l.count < len(l.buf) {
		l.buf[(l.start+l.count)%len(l.buf)] = rec
		l.count++
		return
	}
	l.buf[l.start] = rec
	l.start = (l.start + 1) % len(l.buf)
}

// Len returns the number of records currently held.
func (l *SignalLog) Len() int {
	return l.count
}

// Cap returns the maximum number of records the log can hold.
func (l *SignalLog) Cap() int {
	return len(l.buf)
}

// All returns the records in chronological order, oldest first.
func (l *SignalLog) All() []SignalRecord {
	out := make([]SignalRecord, 0, l.count)
	for i := 0; i < l.count; i++ {
		out = append(out, l.buf[(l.start+i)%len(l.buf)])
	}
	return out
}
