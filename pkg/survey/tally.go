package survey

import "fmt"

// Counters track how many records ended in each terminal state.
type Counters struct {
	Seen       int `json:"seen"`
	Excluded   int `json:"excluded"`
	Unresolved int `json:"unresolved"`
	Unpopular  int `json:"unpopular"`
	Included   int `json:"included"`
}

// Balanced reports whether the terminal counters partition Seen.
func (c Counters) Balanced() bool {
	return c.Seen == c.Excluded+c.Unresolved+c.Unpopular+c.Included
}

// Tally accumulates counters and the records admitted to the report. It is
// owned by a single consumer and is not safe for concurrent use.
type Tally struct {
	counters Counters
	admitted []*Record
}

// Add records the terminal state of rec. Admitted records are kept in
// arrival order. Add panics on a non-terminal state.
func (t *Tally) Add(rec *Record, s State) {
	switch s {
	case Excluded:
		t.counters.Excluded++
	case TypeUnresolved:
		t.counters.Unresolved++
	case Unpopular:
		t.counters.Unpopular++
	case Included:
		t.counters.Included++
		t.admitted = append(t.admitted, rec)
	default:
		panic(fmt.Sprintf("survey: tally of non-terminal state %v", s))
	}
	t.counters.Seen++
}

// Counters returns a snapshot of the counters.
func (t *Tally) Counters() Counters { return t.counters }

// Admitted returns the admitted records in arrival order.
func (t *Tally) Admitted() []*Record {
	return append([]*Record(nil), t.admitted...)
}
