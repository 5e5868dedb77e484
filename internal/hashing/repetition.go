package hashing

import "github.com/lgbarn/chessticot-go/internal/chess"

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	counts  map[uint64]int
	history []uint64
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records an occurrence of pos and returns how many times it has now
// been seen.
func (r *RepetitionTable) Add(pos *chess.Position) int {
	key := Zobrist(pos)
	r.counts[key]++
	r.history = append(r.history, key)
	return r.counts[key]
}

// Remove takes back the most recent Add.
func (r *RepetitionTable) Remove() {
	if len(r.history) == 0 {
		return
	}
	key := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	if r.counts[key]--; r.counts[key] == 0 {
		delete(r.counts, key)
	}
}

// Count returns how many times pos has been recorded.
func (r *RepetitionTable) Count(pos *chess.Position) int {
	return r.counts[Zobrist(pos)]
}

// Len returns the number of recorded occurrences.
func (r *RepetitionTable) Len() int {
	return len(r.history)
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	return len(r.counts)
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.history = r.history[:0]
}
