package correlator

// Stats counts how ingested events were accounted for.
// After Finalize, Ingested == Consumed + Suppressed.
type Stats struct {
	Ingested   int64
	Actions    int64
	Consumed   int64
	Suppressed int64
	Groups     int64
}

func (s *Stats) recordIngested() {
	s.Ingested++
}

func (s *Stats) recordAction(consumed int) {
	s.Actions++
	s.Consumed += int64(consumed)
}

func (s *Stats) recordSuppressed() {
	s.Suppressed++
}

func (s *Stats) recordGroup() {
	s.Groups++
}

func (s Stats) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"events_ingested":   s.Ingested,
		"actions_emitted":   s.Actions,
		"events_consumed":   s.Consumed,
		"events_suppressed": s.Suppressed,
		"groups_resolved":   s.Groups,
	}
}
