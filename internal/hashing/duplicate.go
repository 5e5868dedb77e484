package hashing

import (
	"sync"

	"github.com/lgbarn/chessticot-go/internal/chess"
)

// GameSignature identifies a finished game.
type GameSignature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// Plies is the number of half-moves played
	Plies int
	// WeakHash is a placement-only hash for a second comparison
	WeakHash uint64
}

// SignatureOf builds the signature of a game that ended in final after plies half-moves.
func SignatureOf(final *chess.Position, plies int) GameSignature {
	return GameSignature{
		Hash:     Zobrist(final),
		Plies:    plies,
		WeakHash: WeakHash(final),
	}
}

// DuplicateDetector recognises games that ended identically. Deterministic
// players repeat themselves, so a match can use it to report how many of
// its games were distinct. It is safe for concurrent use.
type DuplicateDetector struct {
	mu             sync.RWMutex
	hashTable      map[uint64][]GameSignature
	duplicateCount int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{hashTable: make(map[uint64][]GameSignature)}
}

// CheckAndAdd reports whether a game with the same signature was already
// seen, and records it if not.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct games recorded.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
