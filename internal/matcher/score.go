package matcher

import "strings"

// lengthWeight keeps partial-key matches strictly above an exact match.
const lengthWeight = 0.001

type Options struct {
	// Distance is how far into the key a match may start before the location
	// penalty reaches 1. Zero disables the penalty.
	Distance int
}

var DefaultOptions = Options{Distance: 100}

// Score rates how well candidate occurs in key, in [0,1] where 0 is a perfect match.
//
// The candidate is aligned against the closest substring of key (semi-global
// edit distance, case-insensitive). The score is the edit count normalized by
// the candidate length, plus start/Distance for matches that begin late in the
// key, plus a small penalty for the part of key left unmatched.
func Score(candidate, key string, opts Options) float64 {
	p := []rune(strings.ToLower(strings.TrimSpace(candidate)))
	t := []rune(strings.ToLower(key))

	m, n := len(p), len(t)
	if m == 0 {
		return 1
	}
	if n == 0 {
		return 1
	}

	prev := make([]int, n+1)
	prevStart := make([]int, n+1)
	cur := make([]int, n+1)
	curStart := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = 0
		prevStart[j] = j
	}

	for i := 1; i <= m; i++ {
		cur[0] = i
		curStart[0] = 0

		for j := 1; j <= n; j++ {
			cost := 1
			if p[i-1] == t[j-1] {
				cost = 0
			}

			best, start := prev[j-1]+cost, prevStart[j-1]
			if v := prev[j] + 1; v < best {
				best, start = v, prevStart[j]
			}
			if v := cur[j-1] + 1; v < best {
				best, start = v, curStart[j-1]
			}

			cur[j] = best
			curStart[j] = start
		}

		prev, cur = cur, prev
		prevStart, curStart = curStart, prevStart
	}

	bestScore := 1.0
	for j := 0; j <= n; j++ {
		start := prevStart[j]
		span := j - start

		s := float64(prev[j]) / float64(m)
		if opts.Distance > 0 {
			s += float64(start) / float64(opts.Distance)
		}
		s += lengthWeight * float64(n-span) / float64(n)

		if s < bestScore {
			bestScore = s
		}
	}

	if bestScore > 1 {
		return 1
	}
	return bestScore
}
