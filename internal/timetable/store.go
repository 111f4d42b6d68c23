// Package timetable defines the placement store: tokens, the pool and the
// grid slots they are placed in.
package timetable

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Domain errors.
var (
	ErrTokenNotFound   = errors.New("token not found")
	ErrUnknownList     = errors.New("unknown list")
	ErrStaleIndex      = errors.New("source index does not hold the token")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// tokenPrefix is prepended to the counter when minting ids.
const tokenPrefix = "box-"

// Token is a labeled item living in the pool or in one grid slot.
type Token struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Location identifies where a token currently sits.
type Location struct {
	List  string
	Index int
}

// MoveRequest describes one relocation gesture.
// An empty Dest means the gesture ended outside any list.
type MoveRequest struct {
	Source      string
	SourceIndex int
	Dest        string
	DestIndex   int
	ID          string
}

// Store holds the pool, the placement map, the token registry and the id
// counter. It is not safe for concurrent use; every operation runs to
// completion before the next one starts.
type Store struct {
	topology *Topology
	lists    map[string][]string // includes PoolID
	tokens   map[string]Token
	counter  int
}

// NewStore creates an empty store for the given grid.
func NewStore(topology *Topology) *Store {
	if topology == nil {
		topology = DefaultTopology()
	}
	s := &Store{topology: topology}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.lists = make(map[string][]string, len(s.topology.slotIDs)+1)
	s.lists[PoolID] = []string{}
	for _, id := range s.topology.slotIDs {
		s.lists[id] = []string{}
	}
	s.tokens = make(map[string]Token)
	s.counter = 1
}

// Topology returns the grid the store places tokens on.
func (s *Store) Topology() *Topology { return s.topology }

// AddToken mints a new empty token and appends it to the pool.
func (s *Store) AddToken() string {
	id := tokenPrefix + strconv.Itoa(s.counter)
	s.counter++
	s.tokens[id] = Token{ID: id}
	s.lists[PoolID] = append(s.lists[PoolID], id)
	return id
}

// EditToken replaces the label of a token.
func (s *Store) EditToken(id, text string) error {
	tok, ok := s.tokens[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, id)
	}
	tok.Text = text
	s.tokens[id] = tok
	return nil
}

// RemoveToken deletes a token from the registry and from every list.
// Removing an absent token is a no-op. It reports whether anything changed.
func (s *Store) RemoveToken(id string) bool {
	_, known := s.tokens[id]
	delete(s.tokens, id)

	removed := known
	for listID, ids := range s.lists {
		kept := ids[:0:0]
		for _, v := range ids {
			if v == id {
				removed = true
				continue
			}
			kept = append(kept, v)
		}
		if len(kept) != len(ids) {
			s.lists[listID] = kept
		}
	}
	return removed
}

// Move relocates a token: the element at SourceIndex is removed from Source,
// then ID is inserted at DestIndex in Dest. When Source and Dest are the same
// list DestIndex is interpreted after the removal. DestIndex is clamped to
// the destination bounds.
func (s *Store) Move(req MoveRequest) error {
	if req.Dest == "" {
		return nil
	}
	if req.Source == req.Dest && req.SourceIndex == req.DestIndex {
		return nil
	}

	src, ok := s.lists[req.Source]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownList, req.Source)
	}
	if _, ok := s.lists[req.Dest]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownList, req.Dest)
	}
	if req.SourceIndex < 0 || req.SourceIndex >= len(src) || src[req.SourceIndex] != req.ID {
		return fmt.Errorf("%w: %s at %s[%d]", ErrStaleIndex, req.ID, req.Source, req.SourceIndex)
	}

	src = removeAt(src, req.SourceIndex)
	s.lists[req.Source] = src

	s.lists[req.Dest] = insertAt(s.lists[req.Dest], req.DestIndex, req.ID)
	return nil
}

func removeAt(ids []string, i int) []string {
	out := make([]string, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

func insertAt(ids []string, i int, id string) []string {
	if i < 0 {
		i = 0
	}
	if i > len(ids) {
		i = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:i]...)
	out = append(out, id)
	return append(out, ids[i:]...)
}

// Pool returns a copy of the pool list.
func (s *Store) Pool() []string { return s.List(PoolID) }

// Slot returns a copy of a grid slot list, or nil for unknown slots.
func (s *Store) Slot(slotID string) []string {
	if slotID == PoolID {
		return nil
	}
	return s.List(slotID)
}

// List returns a copy of any list, the pool included.
func (s *Store) List(listID string) []string {
	ids, ok := s.lists[listID]
	if !ok {
		return nil
	}
	return append([]string{}, ids...)
}

// Token returns a token by id.
func (s *Store) Token(id string) (Token, bool) {
	tok, ok := s.tokens[id]
	return tok, ok
}

// Tokens returns every registered token in mint order.
func (s *Store) Tokens() []Token {
	out := make([]Token, 0, len(s.tokens))
	for _, tok := range s.tokens {
		out = append(out, tok)
	}
	sort.Slice(out, func(i, j int) bool { return lessTokenID(out[i].ID, out[j].ID) })
	return out
}

// Len returns the number of registered tokens.
func (s *Store) Len() int { return len(s.tokens) }

// Counter returns the number the next minted token will carry.
func (s *Store) Counter() int { return s.counter }

// Locate finds the list and index currently holding id.
func (s *Store) Locate(id string) (Location, bool) {
	for listID, ids := range s.lists {
		for i, v := range ids {
			if v == id {
				return Location{List: listID, Index: i}, true
			}
		}
	}
	return Location{}, false
}

// lessTokenID orders minted ids numerically and anything else lexically after them.
func lessTokenID(a, b string) bool {
	na, okA := tokenNumber(a)
	nb, okB := tokenNumber(b)
	switch {
	case okA && okB:
		return na < nb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func tokenNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, tokenPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(tokenPrefix):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
