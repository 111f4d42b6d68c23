package timetable

import (
	"fmt"
	"io"
	"strings"
)

// Label returns the token's text, or its id when the text is blank.
func (t Token) Label() string {
	if strings.TrimSpace(t.Text) == "" {
		return t.ID
	}
	return t.Text
}

// WriteOutline writes a plain-text outline of the store: each day with its
// non-empty slots in column order, then the pool. Days without tokens are
// listed with "(free)".
func WriteOutline(w io.Writer, s *Store) error {
	top := s.Topology()
	var b strings.Builder

	for row, day := range top.Days() {
		b.WriteString(day + "\n")
		empty := true
		for col := 0; col < top.Cols(); col++ {
			slotID, ok := top.Cell(row, col)
			if !ok {
				continue
			}
			ids := s.Slot(slotID)
			if len(ids) == 0 {
				continue
			}
			empty = false
			fmt.Fprintf(&b, "  %-4s %s  %s\n", top.Code(row, col), top.Columns()[col].Label, s.labels(ids))
		}
		if empty {
			b.WriteString("  (free)\n")
		}
	}

	pool := s.Pool()
	if len(pool) == 0 {
		b.WriteString("Pool: (empty)\n")
	} else {
		fmt.Fprintf(&b, "Pool: %s\n", s.labels(pool))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Store) labels(ids []string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		tok, ok := s.tokens[id]
		if !ok {
			out = append(out, id)
			continue
		}
		out = append(out, tok.Label())
	}
	return strings.Join(out, ", ")
}
