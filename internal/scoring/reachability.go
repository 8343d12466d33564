package scoring

import (
	"math"
	"slices"

	"github.com/abhisek/triage/internal/catalog"
)

// MaxScore is the highest score c can produce with every answer in 1..10.
func MaxScore(c catalog.Condition) int {
	var sum float64
	for _, w := range c.Weights {
		if w.Value > 0 {
			sum += w.Value * catalog.ScaleMax
		} else {
			sum += w.Value * catalog.ScaleMin
		}
	}
	return Round(sum)
}

// MinScore is the lowest score c can produce with every answer in 1..10.
func MinScore(c catalog.Condition) int {
	var sum float64
	for _, w := range c.Weights {
		if w.Value > 0 {
			sum += w.Value * catalog.ScaleMin
		} else {
			sum += w.Value * catalog.ScaleMax
		}
	}
	return Round(sum)
}

// Reachability describes which labels a condition can actually produce.
type Reachability struct {
	Category    string
	Condition   string
	Min, Max    int
	Unreachable []Severity
}

// OK reports whether every label is reachable.
func (r Reachability) OK() bool {
	return len(r.Unreachable) == 0
}

// sumScale is the fixed-point resolution used to collect weighted sums, so
// equal sums reached through different answers collapse into one entry.
const sumScale = 1000

// AchievableScores returns every score c can produce with answers in 1..10,
// ascending. Sums are built one weighted position at a time.
func AchievableScores(c catalog.Condition) []int {
	sums := map[int64]struct{}{0: {}}
	for _, w := range c.Weights {
		next := make(map[int64]struct{}, len(sums)*catalog.ScaleMax)
		for s := range sums {
			for v := catalog.ScaleMin; v <= catalog.ScaleMax; v++ {
				next[s+int64(math.Round(w.Value*float64(v)*sumScale))] = struct{}{}
			}
		}
		sums = next
	}

	seen := make(map[int]struct{}, len(sums))
	for s := range sums {
		seen[Round(float64(s)/sumScale)] = struct{}{}
	}
	scores := make([]int, 0, len(seen))
	for sc := range seen {
		scores = append(scores, sc)
	}
	slices.Sort(scores)
	return scores
}

// CheckReachability classifies every achievable score of c and lists the
// labels none of them produce. Thresholds are data, so an unreachable label
// is a warning about the data rather than an error.
func CheckReachability(c catalog.Condition) Reachability {
	scores := AchievableScores(c)
	r := Reachability{Condition: c.Name, Min: scores[0], Max: scores[len(scores)-1]}

	produced := make(map[Severity]bool, 4)
	for _, sc := range scores {
		produced[Classify(sc, c.Thresholds)] = true
	}
	for _, sev := range Severities {
		if !produced[sev] {
			r.Unreachable = append(r.Unreachable, sev)
		}
	}
	return r
}

// CheckCatalog runs CheckReachability over every condition in p.
func CheckCatalog(p *catalog.Provider, lang catalog.Language) ([]Reachability, error) {
	var out []Reachability
	for _, key := range p.CategoryKeys() {
		conds, err := p.Conditions(lang, key)
		if err != nil {
			return nil, err
		}
		for _, c := range conds {
			r := CheckReachability(c)
			r.Category = key
			out = append(out, r)
		}
	}
	return out, nil
}
