package timetable

// DayStats holds occupancy figures for one grid row.
type DayStats struct {
	Day         string
	FilledSlots int
	TotalSlots  int
	Tokens      int
}

// Stats summarizes how much of the grid is in use.
type Stats struct {
	Tokens      int // registered tokens
	Placed      int // tokens sitting in a grid slot
	InPool      int
	FilledSlots int
	TotalSlots  int
	Days        []DayStats
}

// FillPercent returns the share of droppable slots holding at least one token.
func (s Stats) FillPercent() int {
	if s.TotalSlots == 0 {
		return 0
	}
	return (s.FilledSlots * 100) / s.TotalSlots
}

// Stats computes occupancy for the current state.
func (s *Store) Stats() Stats {
	st := Stats{
		Tokens: len(s.tokens),
		InPool: len(s.lists[PoolID]),
		Days:   make([]DayStats, 0, s.topology.Rows()),
	}

	for row, day := range s.topology.days {
		ds := DayStats{Day: day}
		for col := range s.topology.columns {
			id, ok := s.topology.Cell(row, col)
			if !ok {
				continue
			}
			ds.TotalSlots++
			if n := len(s.lists[id]); n > 0 {
				ds.FilledSlots++
				ds.Tokens += n
			}
		}
		st.Placed += ds.Tokens
		st.FilledSlots += ds.FilledSlots
		st.TotalSlots += ds.TotalSlots
		st.Days = append(st.Days, ds)
	}

	return st
}
