package cluster

import (
	"errors"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"opinions/internal/domain"
)

// DefaultMaxIterations bounds Lloyd's iterations.
const DefaultMaxIterations = 300

// KMeans is Lloyd's algorithm with a single random initialisation: k
// distinct input points are drawn as starting centres. The same seed and
// input always give the same result.
type KMeans struct {
	seed          int64
	maxIterations int
}

// NewKMeans creates a clusterer. maxIterations <= 0 uses the default.
func NewKMeans(seed int64, maxIterations int) *KMeans {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &KMeans{seed: seed, maxIterations: maxIterations}
}

// Name returns the identifier used in config.
func (km *KMeans) Name() string { return "kmeans" }

// Seed returns the seed used for initialisation.
func (km *KMeans) Seed() int64 { return km.seed }

// Cluster partitions points into k groups. k must be in [1, len(points)].
func (km *KMeans) Cluster(points []orb.Point, k int) (domain.ClusterAssignment, error) {
	n := len(points)
	if n == 0 {
		return domain.ClusterAssignment{}, errors.New("no points to cluster")
	}
	if k <= 0 || k > n {
		return domain.ClusterAssignment{}, errors.New("k must be between 1 and the number of points")
	}
	rng := rand.New(rand.NewSource(km.seed))
	centroids := make([]orb.Point, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = points[idx]
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for iter := 0; iter < km.maxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearest(p, centroids)
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		sums := make([]orb.Point, k)
		counts := make([]int, k)
		for i, p := range points {
			c := labels[i]
			sums[c][0] += p[0]
			sums[c][1] += p[1]
			counts[c]++
		}
		for c := range centroids {
			// empty clusters keep their previous centre
			if counts[c] > 0 {
				centroids[c] = orb.Point{sums[c][0] / float64(counts[c]), sums[c][1] / float64(counts[c])}
			}
		}
	}
	return domain.ClusterAssignment{K: k, Centroids: centroids, Labels: labels}, nil
}

// nearest returns the index of the closest centre, lowest index on ties.
func nearest(p orb.Point, centroids []orb.Point) int {
	best, bestDist := 0, math.Inf(1)
	for c, centre := range centroids {
		if d := planar.DistanceSquared(p, centre); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
