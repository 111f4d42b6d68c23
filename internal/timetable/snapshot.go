package timetable

import "fmt"

// Snapshot is a complete, serializable copy of the store.
type Snapshot struct {
	Timetable  map[string][]string `json:"timetable"`
	Pool       []string            `json:"pool"`
	GreenBoxes map[string]Token    `json:"greenBoxes"`
	BoxCounter int                 `json:"boxCounter"`
}

// Export returns a deep copy of the current state. Every grid slot is
// present in Timetable, empty ones as empty lists.
func (s *Store) Export() *Snapshot {
	snap := &Snapshot{
		Timetable:  make(map[string][]string, len(s.lists)-1),
		Pool:       s.List(PoolID),
		GreenBoxes: make(map[string]Token, len(s.tokens)),
		BoxCounter: s.counter,
	}
	for listID := range s.lists {
		if listID == PoolID {
			continue
		}
		snap.Timetable[listID] = s.List(listID)
	}
	for id, tok := range s.tokens {
		snap.GreenBoxes[id] = tok
	}
	return snap
}

// Import replaces the whole state with the snapshot. The snapshot is checked
// first; on any problem the store is left untouched.
func (s *Store) Import(snap *Snapshot) error {
	if err := s.Validate(snap); err != nil {
		return err
	}

	lists := make(map[string][]string, len(s.topology.slotIDs)+1)
	lists[PoolID] = append([]string{}, snap.Pool...)
	for _, id := range s.topology.slotIDs {
		lists[id] = append([]string{}, snap.Timetable[id]...)
	}
	tokens := make(map[string]Token, len(snap.GreenBoxes))
	for id, tok := range snap.GreenBoxes {
		tokens[id] = tok
	}

	s.lists = lists
	s.tokens = tokens
	s.counter = snap.BoxCounter
	return nil
}

// Clear empties the store and resets the id counter.
func (s *Store) Clear() {
	s.reset()
}

// Validate reports whether snap could be imported into this store.
func (s *Store) Validate(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: empty snapshot", ErrInvalidSnapshot)
	}
	if snap.BoxCounter < 1 {
		return fmt.Errorf("%w: box counter %d must be at least 1", ErrInvalidSnapshot, snap.BoxCounter)
	}

	for id, tok := range snap.GreenBoxes {
		if tok.ID != id {
			return fmt.Errorf("%w: registry key %q holds token %q", ErrInvalidSnapshot, id, tok.ID)
		}
		if n, ok := tokenNumber(id); ok && n >= snap.BoxCounter {
			return fmt.Errorf("%w: token %s not below box counter %d", ErrInvalidSnapshot, id, snap.BoxCounter)
		}
	}

	seen := make(map[string]string)
	check := func(listID string, ids []string) error {
		for _, id := range ids {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: token %s placed in both %s and %s", ErrInvalidSnapshot, id, prev, listID)
			}
			seen[id] = listID
			if _, ok := snap.GreenBoxes[id]; !ok {
				return fmt.Errorf("%w: token %s in %s has no registry entry", ErrInvalidSnapshot, id, listID)
			}
		}
		return nil
	}

	if err := check(PoolID, snap.Pool); err != nil {
		return err
	}
	for listID, ids := range snap.Timetable {
		if !s.topology.HasSlot(listID) {
			if len(ids) == 0 {
				continue
			}
			return fmt.Errorf("%w: %w: %s", ErrInvalidSnapshot, ErrUnknownList, listID)
		}
		if err := check(listID, ids); err != nil {
			return err
		}
	}
	return nil
}
