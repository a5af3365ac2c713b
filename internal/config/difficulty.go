package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTiers is returned when a difficulty tier table cannot be used.
var ErrInvalidTiers = errors.New("config: invalid difficulty tiers")

// DifficultyManager maps a score to the obstacle weights of its tier.
type DifficultyManager struct {
	tiers []Tier // Sorted by MinScore ascending
}

// NewDifficultyManager creates a difficulty manager from a tier table.
// An empty table falls back to DefaultTiers. The table is copied, so later
// changes to cfg do not affect the manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	src := cfg.Tiers
	if len(src) == 0 {
		src = DefaultTiers()
	}

	tiers := make([]Tier, len(src))
	for i, t := range src {
		tiers[i] = Tier{
			MinScore: t.MinScore,
			Weights:  append([]int(nil), t.Weights...),
		}
	}
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinScore < tiers[j].MinScore
	})

	return &DifficultyManager{tiers: tiers}
}

// TierIndex returns the index of the tier that applies at score.
// Scores below the first tier use the first tier.
func (d *DifficultyManager) TierIndex(score int) int {
	idx := 0
	for i, t := range d.tiers {
		if score >= t.MinScore {
			idx = i
		}
	}
	return idx
}

// Weights returns the obstacle weights for score.
// The returned slice must not be modified.
func (d *DifficultyManager) Weights(score int) []int {
	return d.tiers[d.TierIndex(score)].Weights
}

// Tiers returns the number of tiers.
func (d *DifficultyManager) Tiers() int {
	return len(d.tiers)
}

// ValidateTiers checks that a tier table is usable for obstacle selection.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: no tiers defined", ErrInvalidTiers)
	}

	hasZero := false
	seen := make(map[int]bool, len(tiers))
	for i, t := range tiers {
		if t.MinScore < 0 {
			return fmt.Errorf("%w: tier %d has negative min_score %d", ErrInvalidTiers, i, t.MinScore)
		}
		if seen[t.MinScore] {
			return fmt.Errorf("%w: duplicate min_score %d", ErrInvalidTiers, t.MinScore)
		}
		seen[t.MinScore] = true
		if t.MinScore == 0 {
			hasZero = true
		}

		if len(t.Weights) != ObstacleKinds {
			return fmt.Errorf("%w: tier %d has %d weights, expected %d", ErrInvalidTiers, i, len(t.Weights), ObstacleKinds)
		}
		total := 0
		for _, w := range t.Weights {
			if w < 0 {
				return fmt.Errorf("%w: tier %d has a negative weight", ErrInvalidTiers, i)
			}
			total += w
		}
		if total == 0 {
			return fmt.Errorf("%w: tier %d has no positive weight", ErrInvalidTiers, i)
		}
	}

	if !hasZero {
		return fmt.Errorf("%w: no tier starts at score 0", ErrInvalidTiers)
	}
	return nil
}
