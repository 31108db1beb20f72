package batch

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary describes the synergy spread and goal usage of a run.
type Summary struct {
	Boards int

	SynergyMean   float64
	SynergyMedian float64
	SynergyStdDev float64
	SynergyP95    float64
	SynergyMin    float64
	SynergyMax    float64

	TierUsage map[int]int    // cells drawn from each tier
	GoalUsage map[string]int // cells each goal fills
}

// GoalCount pairs a goal name with how often it was used.
type GoalCount struct {
	Name  string
	Count int
}

// TopGoals returns the n most used goals, most used first, ties by name.
func (s Summary) TopGoals(n int) []GoalCount {
	counts := make([]GoalCount, 0, len(s.GoalUsage))
	for name, c := range s.GoalUsage {
		counts = append(counts, GoalCount{Name: name, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// Tiers returns the used tiers in ascending order.
func (s Summary) Tiers() []int {
	tiers := make([]int, 0, len(s.TierUsage))
	for t := range s.TierUsage {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)
	return tiers
}

// Summarize computes statistics over per-board total synergy.
func Summarize(results []Result) (Summary, error) {
	s := Summary{
		Boards:    len(results),
		TierUsage: map[int]int{},
		GoalUsage: map[string]int{},
	}
	if len(results) == 0 {
		return s, nil
	}

	totals := make(stats.Float64Data, len(results))
	for i, r := range results {
		totals[i] = float64(r.TotalSynergy())
		for _, c := range r.Cells {
			s.TierUsage[c.Tier]++
			if c.Goal != nil {
				s.GoalUsage[c.Goal.Name]++
			}
		}
	}

	var err error
	if s.SynergyMean, err = stats.Mean(totals); err != nil {
		return s, err
	}
	if s.SynergyMedian, err = stats.Median(totals); err != nil {
		return s, err
	}
	if s.SynergyStdDev, err = stats.StandardDeviation(totals); err != nil {
		return s, err
	}
	if s.SynergyP95, err = stats.Percentile(totals, 95); err != nil {
		return s, err
	}
	if s.SynergyMin, err = stats.Min(totals); err != nil {
		return s, err
	}
	if s.SynergyMax, err = stats.Max(totals); err != nil {
		return s, err
	}
	return s, nil
}
