// Package match resolves free-text chart queries against the candidate
// titles published for an airport. It normalizes both sides, scores
// each candidate with a two-tier policy (whole-token hits dominate
// string similarity), and decides between a single confident match, an
// ambiguous short list, and no match.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/flightbag/flightbag"
)

// Scoring tiers. Whole-token hits outrank partial-token hits, which
// outrank similarity-only scores; the gaps between tiers exceed the
// default margin so a uniquely matching title always auto-accepts over
// the tier below.
const (
	scoreExact   = 1.0  // every query token equals a title word
	scorePartial = 0.80 // every query token is contained in a title word
	simCeiling   = 0.75 // upper bound for similarity-only scores

	// typeAffinity rewards candidates whose chart classification agrees
	// with the one inferred from the query, e.g. "ILS" implies an
	// approach plate.
	typeAffinity = 0.15
)

// Thresholds control the resolver's decision policy. Values are
// tunables, not an external contract; DefaultThresholds is calibrated
// for short queries against published procedure titles.
type Thresholds struct {
	// AcceptFloor is the minimum top score for any match at all.
	AcceptFloor float64

	// Margin is the minimum gap between the top two scores required to
	// commit to a single match. It also bounds the ambiguous short
	// list: candidates within Margin of the top score are listed.
	Margin float64

	// ListFloor is the minimum score for a candidate to be retained in
	// the ranking at all.
	ListFloor float64
}

// DefaultThresholds returns the standard decision thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AcceptFloor: 0.45,
		Margin:      0.15,
		ListFloor:   0.30,
	}
}

// Decision classifies a resolver outcome.
type Decision int

const (
	// NoMatch means no candidate scored at or above the accept floor.
	NoMatch Decision = iota

	// Single means one candidate cleared the floor with a clear margin
	// over the runner-up.
	Single

	// Ambiguous means several candidates are too close to call.
	Ambiguous
)

// Scored pairs a candidate with its composite score.
type Scored struct {
	Chart flightbag.Chart
	Score float64
}

// Result is the outcome of resolving a query against a candidate list.
type Result struct {
	// Decision classifies the outcome.
	Decision Decision

	// Best is the winning candidate when Decision is Single.
	Best flightbag.Chart

	// Charts holds the ranked candidates: the ambiguous short list when
	// Decision is Ambiguous, otherwise every candidate retained above
	// the list floor, for diagnostics.
	Charts []Scored
}

// Resolve scores every candidate against the query and applies the
// decision policy. It is a pure function: deterministic for identical
// inputs, with ties broken by original candidate order. Continuation
// pages (", CONT." titles) are excluded from matching; collect them
// afterwards with ContinuationPages. Empty candidate lists and empty
// queries resolve to NoMatch.
func Resolve(candidates []flightbag.Chart, q Query, th Thresholds) Result {
	if len(candidates) == 0 || len(q.Tokens) == 0 {
		return Result{Decision: NoMatch}
	}

	joined := strings.Join(q.Tokens, " ")
	var scored []Scored
	for _, c := range candidates {
		if IsContinuation(c.Title) {
			continue
		}
		if score := scoreCandidate(c, q, joined); score >= th.ListFloor {
			scored = append(scored, Scored{Chart: c, Score: score})
		}
	}
	if len(scored) == 0 {
		return Result{Decision: NoMatch}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored[0]
	if top.Score < th.AcceptFloor {
		return Result{Decision: NoMatch, Charts: scored}
	}
	if len(scored) == 1 || top.Score-scored[1].Score >= th.Margin {
		return Result{Decision: Single, Best: top.Chart, Charts: scored}
	}

	cut := top.Score - th.Margin
	if cut < th.ListFloor {
		cut = th.ListFloor
	}
	var short []Scored
	for _, s := range scored {
		if s.Score >= cut {
			short = append(short, s)
		}
	}
	return Result{Decision: Ambiguous, Charts: short}
}

// scoreCandidate computes the composite score for one candidate.
func scoreCandidate(c flightbag.Chart, q Query, joined string) float64 {
	words := Tokenize(Normalize(c.Title))
	if len(words) == 0 {
		return 0
	}
	if containsAll(words, q.Tokens, true) {
		return scoreExact
	}
	if containsAll(words, q.Tokens, false) {
		return scorePartial
	}

	title := strings.Join(words, " ")
	sim := similarity(joined, title)
	if tokenSim := meanTokenSimilarity(q.Tokens, words); tokenSim > sim {
		sim = tokenSim
	}
	if q.Type != flightbag.ChartUnknown && c.Type() == q.Type {
		sim += typeAffinity
		if sim > 1 {
			sim = 1
		}
	}
	return simCeiling * sim
}

// containsAll reports whether every query token appears among the title
// words: as an equal word when strict, or as a word substring otherwise.
func containsAll(words, tokens []string, strict bool) bool {
	for _, t := range tokens {
		found := false
		for _, w := range words {
			if w == t || (!strict && strings.Contains(w, t)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// similarity returns the normalized Levenshtein similarity of two
// strings in [0, 1].
func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// meanTokenSimilarity averages, over the query tokens, each token's
// best similarity against any single title word. Short queries against
// long titles score poorly on whole-string similarity; this term keeps
// near-miss tokens (typos, partial designators) in play.
func meanTokenSimilarity(tokens, words []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tokens {
		best := 0.0
		for _, w := range words {
			if s := similarity(t, w); s > best {
				best = s
			}
		}
		sum += best
	}
	return sum / float64(len(tokens))
}

// IsContinuation reports whether a title names a continuation page of a
// multi-page chart rather than a procedure of its own.
func IsContinuation(title string) bool {
	return strings.Contains(title, ", CONT.")
}
