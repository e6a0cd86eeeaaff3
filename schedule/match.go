package schedule

import "math"

// MatchToleranceKHz is the exact-match window: 10 Hz.
const MatchToleranceKHz = 0.01

// MatchResult describes where a target frequency sits in a displayed set.
// Indices refer to the slice passed to Match; -1 means "none".
type MatchResult struct {
	HasTarget bool
	TargetKHz float64

	Exact   []int // every record within tolerance, in display order
	Primary int   // first exact match, used for centring

	Nearest int // smallest absolute difference, first wins ties
	Insert  int // where a marker row belongs when nothing matches exactly
}

// Matched reports whether at least one record matched exactly.
func (m MatchResult) Matched() bool {
	return len(m.Exact) > 0
}

// Match locates targetKHz in records. When ok is false there is no live
// frequency and the result carries neither matches nor an insertion point.
// records is never modified.
func Match(records []Record, targetKHz float64, ok bool) MatchResult {
	res := MatchResult{Primary: -1, Nearest: -1, Insert: -1}
	if !ok {
		return res
	}
	res.HasTarget = true
	res.TargetKHz = targetKHz

	best := math.Inf(1)
	for i, r := range records {
		diff := math.Abs(r.Frequency - targetKHz)
		if diff < best {
			best = diff
			res.Nearest = i
		}
		if diff < MatchToleranceKHz {
			res.Exact = append(res.Exact, i)
		}
	}
	if len(res.Exact) > 0 {
		res.Primary = res.Exact[0]
		return res
	}

	res.Insert = len(records)
	for i, r := range records {
		if r.Frequency > targetKHz {
			res.Insert = i
			break
		}
	}
	return res
}
