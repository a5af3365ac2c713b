package engine

// GenerateObstacle creates a new obstacle at spawnX. The type is drawn
// from the weights of the difficulty tier for score, consuming exactly
// one value from rng. Spikes are SpikeSize wide, blocks ObstacleWidth.
func GenerateObstacle(spawnX float64, cfg Config, score int, rng Rand) Obstacle {
	t := pickWeighted(cfg.Weights(score), rng.Float64())
	width := cfg.SpikeSize
	if t.IsBlock() {
		width = cfg.ObstacleWidth
	}
	return Obstacle{X: spawnX, Type: t, Width: width}
}

// pickWeighted maps u in [0, 1) onto a roulette over weights: the first
// category whose running remainder drops to <= 0 wins. Zero-weight
// entries are skipped so they can never be selected.
func pickWeighted(weights []int, u float64) ObstacleType {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return SpikeFloor
	}

	r := u * float64(total)
	last := SpikeFloor
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = ObstacleType(i)
		r -= float64(w)
		if r <= 0 {
			return last
		}
	}
	// Only reachable through float rounding with u close to 1.
	return last
}

// NextGap returns the distance until the next spawn. The upper bound
// shrinks with score but never below MinGap.
func NextGap(cfg Config, score int, u float64) float64 {
	upper := cfg.MaxGap - float64(score)*cfg.GapShrinkPerPoint
	if upper < cfg.MinGap {
		upper = cfg.MinGap
	}
	return cfg.MinGap + u*(upper-cfg.MinGap)
}

// Bands returns the heights of the hazard rising from the floor and
// hanging from the ceiling. A zero height means no hazard on that side.
func (o Obstacle) Bands(cfg Config) (floor, ceiling float64) {
	switch o.Type {
	case SpikeFloor:
		return cfg.SpikeSize, 0
	case SpikeCeiling:
		return 0, cfg.SpikeSize
	case SpikeBoth:
		return cfg.SpikeSize, cfg.SpikeSize
	case BlockFloor:
		return cfg.BlockHeight, 0
	case BlockCeiling:
		return 0, cfg.BlockHeight
	case BlockGap:
		return cfg.BlockHeight, cfg.BlockHeight
	default:
		return 0, 0
	}
}

// Left returns the left edge of the obstacle.
func (o Obstacle) Left() float64 { return o.X - o.Width/2 }

// Right returns the right edge of the obstacle.
func (o Obstacle) Right() float64 { return o.X + o.Width/2 }
