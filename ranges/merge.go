package ranges

import (
	"github.com/amp-labs/amp-ranges/logger"
)

// MergeIntersecting folds the ranges left to right, merging each into the
// first already-merged range it intersects, or keeping it on its own when it
// intersects none. This is a single pass: two merged ranges that both touch a
// later range are not merged with each other.
func (c Collection[V]) MergeIntersecting() Collection[V] {
	return c.mergeBy("intersecting", Range[V].Intersects)
}

// MergeAdjacent is MergeIntersecting with adjacency in place of intersection.
// A range adjacent to two merged ranges joins only the first.
func (c Collection[V]) MergeAdjacent() Collection[V] {
	return c.mergeBy("adjacent", Range[V].Adjacent)
}

// Merge runs MergeIntersecting and then MergeAdjacent, once each.
func (c Collection[V]) Merge() Collection[V] {
	return c.MergeIntersecting().MergeAdjacent()
}

func (c Collection[V]) mergeBy(mode string, joins func(Range[V], Range[V]) bool) Collection[V] {
	merged := make([]Range[V], 0, len(c.ranges))

outer:
	for _, r := range c.ranges {
		for i, existing := range merged {
			if joins(existing, r) {
				merged[i] = existing.span(r)

				continue outer
			}
		}

		merged = append(merged, r)
	}

	logger.Get().Debug("merged ranges",
		"mode", mode,
		"before", len(c.ranges),
		"after", len(merged))

	return c.derive(merged)
}
