// Package scanner detects probable overlap between 3-D beacon scans.
//
// Each scanner reports beacon positions in its own frame, with unknown
// rotation and translation. Squared distances between beacon pairs survive
// both, so each scanner is summarised by the set of distances its beacons
// produce (its fingerprints). Two scanners that share enough fingerprints
// probably see a common group of beacons.
//
// This is a heuristic. Coincidental distance collisions can produce false
// positives, and no frame alignment is attempted.
package scanner

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
)

// DefaultOverlapThreshold is the number of shared fingerprints at which two
// scanners are judged to overlap: 12 common beacons jointly produce at least
// 12 matching pairwise distances.
const DefaultOverlapThreshold = 12

// Pair is two beacons that produced a fingerprint.
type Pair struct {
	A, B geom.Point3D
}

// Scanner is one scan: an id and the beacons it saw. Fingerprints are
// computed in New and not changed afterwards.
type Scanner struct {
	ID     int
	Points geom.Set3D

	fingerprints map[int]Pair
}

// New builds a scanner and its fingerprint map from every ordered pair of
// distinct beacons. A pair and its reverse share a key; the later write
// wins. Iteration is over sorted points so the stored pair is stable.
func New(id int, pts []geom.Point3D) *Scanner {
	s := &Scanner{
		ID:           id,
		Points:       geom.NewSet3D(pts...),
		fingerprints: make(map[int]Pair),
	}
	sorted := s.Points.Sorted()
	for _, a := range sorted {
		for _, b := range sorted {
			if a == b {
				continue
			}
			s.fingerprints[a.SquaredDistance(b)] = Pair{A: a, B: b}
		}
	}
	return s
}

// Len returns the number of distinct fingerprints.
func (s *Scanner) Len() int { return len(s.fingerprints) }

// Has reports whether d is one of the scanner's fingerprints.
func (s *Scanner) Has(d int) bool {
	_, ok := s.fingerprints[d]
	return ok
}

// Pair returns the beacons recorded for fingerprint d.
func (s *Scanner) Pair(d int) (Pair, bool) {
	p, ok := s.fingerprints[d]
	return p, ok
}

// Fingerprints returns the fingerprint keys in ascending order.
func (s *Scanner) Fingerprints() []int {
	out := make([]int, 0, len(s.fingerprints))
	for d := range s.fingerprints {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// SharedFingerprints counts the fingerprint keys a and b have in common.
// The count is symmetric in its arguments.
func SharedFingerprints(a, b *Scanner) int {
	small, large := a, b
	if large.Len() < small.Len() {
		small, large = large, small
	}
	n := 0
	for d := range small.fingerprints {
		if large.Has(d) {
			n++
		}
	}
	return n
}

// Overlaps reports whether a and b share at least threshold fingerprints.
func Overlaps(a, b *Scanner, threshold int) bool {
	return SharedFingerprints(a, b) >= threshold
}

// Overlap is a pair of scanners judged to see common beacons.
type Overlap struct {
	A, B   int // scanner ids
	Shared int
}

// FindOverlaps compares every unordered pair of distinct scanners, by
// position in the slice, and returns the pairs sharing at least threshold
// fingerprints. Results are ordered by position of the first then second
// scanner. Cost is O(S²·N²); fine for tens of scanners with tens of
// beacons each.
func FindOverlaps(scanners []*Scanner, threshold int) []Overlap {
	if len(scanners) < 2 {
		return nil
	}
	var out []Overlap
	for _, c := range combin.Combinations(len(scanners), 2) {
		a, b := scanners[c[0]], scanners[c[1]]
		shared := SharedFingerprints(a, b)
		if shared < threshold {
			continue
		}
		monitoring.Logf("scanners %d and %d share %d fingerprints", a.ID, b.ID, shared)
		out = append(out, Overlap{A: a.ID, B: b.ID, Shared: shared})
	}
	return out
}
