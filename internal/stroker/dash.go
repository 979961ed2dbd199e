package stroker

import "github.com/gogpu/strokefill/internal/pathevent"

// chordTable is a chord-length approximation of a segment's arc length,
// built by sampling points along the segment and summing Euclidean
// distances between consecutive samples. It stands in for
// curveanalysis.Reparam (which only accepts bezier.Poly[Vec2]) so that
// dash placement works uniformly across every segment shape, including
// rational quadratics; dash boundaries only need to be placed to
// within a fraction of the dash length, not to curve-fitting accuracy.
type chordTable struct {
	ts    []float64
	lens  []float64 // cumulative length at ts[i]
	total float64
}

func newChordTable(seg pathevent.Segment, samples int) *chordTable {
	if samples < 4 {
		samples = 4
	}
	ts := make([]float64, samples+1)
	lens := make([]float64, samples+1)
	prev := segmentEndpoint(seg, 0)
	var acc float64
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		p := segmentEndpoint(seg, t)
		if i > 0 {
			acc += p.Sub(prev).Len()
		}
		ts[i] = t
		lens[i] = acc
		prev = p
	}
	return &chordTable{ts: ts, lens: lens, total: acc}
}

// paramAtLength returns the parameter t at which cumulative length s has
// accumulated, clamping s to [0, total].
func (c *chordTable) paramAtLength(s float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= c.total {
		return 1
	}
	lo, hi := 0, len(c.lens)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.lens[mid] < s {
			lo = mid
		} else {
			hi = mid
		}
	}
	s0, s1 := c.lens[lo], c.lens[hi]
	t0, t1 := c.ts[lo], c.ts[hi]
	if s1 <= s0 {
		return t0
	}
	return t0 + (s-s0)/(s1-s0)*(t1-t0)
}

// contourArcIndex maps a global arc-length position along a contour's
// concatenated segments back to a (segment index, local parameter)
// pair, using one chordTable per segment.
type contourArcIndex struct {
	tables []*chordTable
	bounds []float64 // bounds[i] = cumulative length before segment i; len = len(segs)+1
}

func buildContourArcIndex(segs []pathevent.Segment, samplesPerSegment int) *contourArcIndex {
	tables := make([]*chordTable, len(segs))
	bounds := make([]float64, len(segs)+1)
	for i, seg := range segs {
		t := newChordTable(seg, samplesPerSegment)
		tables[i] = t
		bounds[i+1] = bounds[i] + t.total
	}
	return &contourArcIndex{tables: tables, bounds: bounds}
}

func (idx *contourArcIndex) totalLength() float64 {
	return idx.bounds[len(idx.bounds)-1]
}

// locate returns the segment index and local parameter corresponding to
// global arc-length position s.
func (idx *contourArcIndex) locate(s float64) (int, float64) {
	n := len(idx.tables)
	if n == 0 {
		return 0, 0
	}
	if s <= 0 {
		return 0, 0
	}
	total := idx.totalLength()
	if s >= total {
		return n - 1, 1
	}
	lo, hi := 0, n
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if idx.bounds[mid] <= s {
			lo = mid
		} else {
			hi = mid
		}
	}
	i := lo
	local := s - idx.bounds[i]
	return i, idx.tables[i].paramAtLength(local)
}

// extractRange returns the segment chain covering global arc-length
// positions [s0,s1], trimming the first and last original segments and
// passing any fully-interior segments through unchanged.
func (idx *contourArcIndex) extractRange(segs []pathevent.Segment, s0, s1 float64) []pathevent.Segment {
	i0, t0 := idx.locate(s0)
	i1, t1 := idx.locate(s1)
	if i0 == i1 {
		return []pathevent.Segment{subSegment(segs[i0], t0, t1)}
	}
	out := []pathevent.Segment{subSegment(segs[i0], t0, 1)}
	for i := i0 + 1; i < i1; i++ {
		out = append(out, segs[i])
	}
	out = append(out, subSegment(segs[i1], 0, t1))
	return out
}

// dashInterval is one "on" (dash-visible) stretch of arc length.
type dashInterval struct{ start, end float64 }

// dashIntervals returns the on-intervals of the dash pattern (lengths,
// alternating on/off starting with an "on" segment at pattern offset
// 0; an odd-length list is repeated once, so the period is twice its
// sum) restricted to [0,total], given a starting phase offset.
func dashIntervals(total float64, lengths []float64, phase float64) []dashInterval {
	if len(lengths) == 0 || total <= 0 {
		return nil
	}
	if len(lengths)%2 == 1 {
		lengths = append(append([]float64(nil), lengths...), lengths...)
	}
	patternLen := 0.0
	for _, l := range lengths {
		if l < 0 {
			l = -l
		}
		patternLen += l
	}
	if patternLen <= 0 {
		return nil
	}

	pos := phaseMod(phase, patternLen)
	idx := 0
	rem := pos
	for rem >= lengths[idx] {
		rem -= lengths[idx]
		idx = (idx + 1) % len(lengths)
	}

	var out []dashInterval
	s := 0.0
	segRemaining := lengths[idx] - rem
	on := idx%2 == 0
	const maxIter = 1 << 20
	for iter := 0; s < total-1e-12 && iter < maxIter; iter++ {
		end := s + segRemaining
		if end > total {
			end = total
		}
		if on && end > s {
			out = append(out, dashInterval{start: s, end: end})
		}
		s = end
		idx = (idx + 1) % len(lengths)
		segRemaining = lengths[idx]
		if segRemaining <= 0 {
			segRemaining = 1e-9
		}
		on = !on
	}
	return out
}

func phaseMod(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	r := v
	for r < 0 {
		r += m
	}
	for r >= m {
		r -= m
	}
	return r
}

// ApplyDash splits one regularized input contour into the open
// sub-contours visible under the given dash pattern, each a
// independent piece the caller runs through the regular stroking
// pipeline with DashInitialCap/DashTerminalCap in place of
// InitialCap/TerminalCap.
func ApplyDash(c InputContour, lengths []float64, phase float64, samplesPerSegment int) []InputContour {
	if len(c.Segments) == 0 || len(lengths) == 0 {
		return []InputContour{c}
	}
	idx := buildContourArcIndex(c.Segments, samplesPerSegment)
	total := idx.totalLength()
	intervals := dashIntervals(total, lengths, phase)
	if intervals == nil {
		return nil
	}

	out := make([]InputContour, 0, len(intervals))
	for _, iv := range intervals {
		segs := idx.extractRange(c.Segments, iv.start, iv.end)
		out = append(out, InputContour{Closed: false, Segments: segs})
	}
	return out
}
