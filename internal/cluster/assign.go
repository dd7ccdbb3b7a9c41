package cluster

import (
	"errors"
	"fmt"

	"opinions/internal/domain"
	"opinions/internal/survey"
)

// MaxClusters is the largest number of clusters that can be rendered.
const MaxClusters = 6

var ErrNoRespondents = errors.New("no respondents to cluster")

// ClampK reduces k to at most MaxClusters and at most n points.
func ClampK(k, n int) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if n == 0 {
		return 0, ErrNoRespondents
	}
	return min(k, MaxClusters, n), nil
}

// Assign clusters the respondents' centroids. Labels[i] is the cluster of
// respondents[i].
func Assign(c domain.Clusterer, respondents []domain.Respondent, k int) (domain.ClusterAssignment, error) {
	k, err := ClampK(k, len(respondents))
	if err != nil {
		return domain.ClusterAssignment{}, err
	}
	a, err := c.Cluster(survey.Centroids(respondents), k)
	if err != nil {
		return domain.ClusterAssignment{}, fmt.Errorf("%s: %w", c.Name(), err)
	}
	if len(a.Labels) != len(respondents) {
		return domain.ClusterAssignment{}, fmt.Errorf("%s returned %d labels for %d respondents", c.Name(), len(a.Labels), len(respondents))
	}
	return a, nil
}
