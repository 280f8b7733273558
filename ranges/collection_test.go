package ranges_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-ranges/codec"
	"github.com/amp-labs/amp-ranges/errors"
	"github.com/amp-labs/amp-ranges/optional"
	"github.com/amp-labs/amp-ranges/orderkey"
	"github.com/amp-labs/amp-ranges/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collection(t *testing.T, rs ...ranges.Range[int]) ranges.Collection[int] {
	t.Helper()

	c, err := ranges.EmptyCollection[int](codec.Int).Add(rs...)
	require.NoError(t, err)

	return c
}

func assertSorted(t *testing.T, c ranges.Collection[int]) {
	t.Helper()

	assert.True(t, slices.IsSortedFunc(c.Ranges(), ranges.NewSorter[int]().Compare), "%s is not sorted", c)
}

func TestCollection_Sorting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []ranges.Range[int]
		want string
	}{
		{
			name: "by start",
			in:   []ranges.Range[int]{closed(1, 2), closed(3, 4), closed(2, 4)},
			want: "[1...2], [2...4], [3...4]",
		},
		{
			name: "ties broken by end",
			in:   []ranges.Range[int]{closed(1, 2), closed(3, 4), closed(2, 4), closed(2, 3)},
			want: "[1...2], [2...3], [2...4], [3...4]",
		},
		{
			name: "open start first",
			in:   []ranges.Range[int]{until(2), closed(3, 4), closed(2, 4), closed(2, 3)},
			want: "[...2], [2...3], [2...4], [3...4]",
		},
		{
			name: "open end last",
			in:   []ranges.Range[int]{from(2), closed(2, 4), closed(2, 3)},
			want: "[2...3], [2...4], [2...]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := ranges.NewCollection(tt.in[0], tt.in[1:]...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
			assertSorted(t, c)
		})
	}
}

func TestCollection_SortIsStable(t *testing.T) {
	t.Parallel()

	// Keys truncate, stored values do not, so equal keys can hold different values.
	floor := codec.New(
		func(v float64) int64 { return int64(v) },
		func(k int64) float64 { return float64(k) },
		nil,
	)

	first := ranges.Closed[float64](floor, 1.2, 3.9)
	second := ranges.Closed[float64](floor, 1.0, 3.0)

	c, err := ranges.NewCollection(first, ranges.Closed[float64](floor, 0, 9), second)
	require.NoError(t, err)

	a, _ := c.Get(1)
	b, _ := c.Get(2)

	assert.Equal(t, optional.Some(1.2), a.Start())
	assert.Equal(t, optional.Some(1.0), b.Start())
	assert.True(t, a.Equals(b))
}

func TestCollection_Empty(t *testing.T) {
	t.Parallel()

	c := ranges.EmptyCollection[int](codec.Int)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.String())
	assert.True(t, c.Start().Empty())
	assert.True(t, c.End().Empty())
	assert.True(t, c.StartKey().Empty())
	assert.True(t, c.EndKey().Empty())

	_, ok := c.Get(0)
	assert.False(t, ok)

	assert.Empty(t, c.Merge().String())
	assert.Empty(t, c.Not(closed(1, 2)).String())
}

func TestCollection_ZeroValueAdoptsFirstCodec(t *testing.T) {
	t.Parallel()

	var c ranges.Collection[int]

	c, err := c.Add(closed(3, 4), closed(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "[1...2], [3...4]", c.String())
	assert.Equal(t, codec.Int, c.Codec())
}

func TestCollection_AddIsImmutable(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 2))
	more, err := c.Add(closed(0, 5))
	require.NoError(t, err)

	assert.Equal(t, "[1...2]", c.String())
	assert.Equal(t, "[0...5], [1...2]", more.String())
}

func TestCollection_TypeMismatch(t *testing.T) {
	t.Parallel()

	other := codec.New(func(v int) int64 { return int64(v) }, func(k int64) int { return int(k) }, nil)
	c := collection(t, closed(1, 2))

	got, err := c.Add(closed(5, 6), ranges.Closed[int](other, 3, 4), ranges.Closed[int](other, 7, 8))
	require.Error(t, err)
	require.ErrorIs(t, err, ranges.ErrTypeMismatch)
	require.ErrorIs(t, err, errors.ErrWrongType)

	assert.Contains(t, err.Error(), "range 1 uses")
	assert.Contains(t, err.Error(), "range 2 uses")
	assert.Equal(t, "[1...2]", got.String(), "nothing is added when any range is rejected")

	_, err = ranges.NewCollection(closed(1, 2), ranges.Closed[int](other, 3, 4))
	require.ErrorIs(t, err, ranges.ErrTypeMismatch)

	_, err = ranges.EmptyCollection[int](other).Add(closed(1, 2))
	require.ErrorIs(t, err, ranges.ErrTypeMismatch)
}

func TestCollection_Filter(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 2), closed(3, 4), closed(2, 4), closed(2, 3))

	filtered := c.Filter(func(r ranges.Range[int]) bool {
		return r.Start() == optional.Some(2)
	})

	assert.Equal(t, "[2...3], [2...4]", filtered.String())
	assert.Equal(t, 4, c.Len())
}

func TestCollection_Map(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 2), closed(3, 4), closed(2, 4), closed(2, 3))

	tests := []struct {
		name string
		f    func(ranges.Range[int]) []ranges.Range[int]
		want string
	}{
		{
			name: "replace",
			f: func(r ranges.Range[int]) []ranges.Range[int] {
				return []ranges.Range[int]{r.WithStart(optional.None[int]())}
			},
			want: "[...2], [...3], [...4], [...4]",
		},
		{
			name: "splice",
			f: func(r ranges.Range[int]) []ranges.Range[int] {
				s, _ := r.Start().Get()
				e, _ := r.End().Get()

				return []ranges.Range[int]{closed(s, s), closed(e, e)}
			},
			want: "[1...1], [2...2], [2...2], [2...2], [3...3], [3...3], [4...4], [4...4]",
		},
		{
			name: "delete",
			f: func(r ranges.Range[int]) []ranges.Range[int] {
				if r.Start() == optional.Some(2) {
					return nil
				}

				return []ranges.Range[int]{r}
			},
			want: "[1...2], [3...4]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped, err := c.Map(tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mapped.String())
			assertSorted(t, mapped)
		})
	}
}

func TestCollection_MapTypeMismatch(t *testing.T) {
	t.Parallel()

	other := codec.New(func(v int) int64 { return int64(v) }, func(k int64) int { return int(k) }, nil)
	c := collection(t, closed(1, 2))

	got, err := c.Map(func(r ranges.Range[int]) []ranges.Range[int] {
		return []ranges.Range[int]{ranges.Closed[int](other, 1, 2)}
	})
	require.ErrorIs(t, err, ranges.ErrTypeMismatch)
	assert.True(t, got.Equals(c))
}

func TestCollection_Not(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 3), closed(3, 4), closed(2, 4))

	tests := []struct {
		other ranges.Range[int]
		want  string
	}{
		{other: closed(2, 3), want: "[1...1], [4...4], [4...4]"},
		{other: closed(2, 4), want: "[1...1]"},
		{other: closed(1, 4), want: ""},
		{other: closed(1, 3), want: "[4...4], [4...4]"},
	}

	for _, tt := range tests {
		t.Run(tt.other.String(), func(t *testing.T) {
			t.Parallel()

			got := c.Not(tt.other)
			assert.Equal(t, tt.want, got.String())
			assertSorted(t, got)
		})
	}
}

func TestCollection_And(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 3), closed(3, 4), closed(2, 4))

	tests := []struct {
		other ranges.Range[int]
		want  string
	}{
		{other: closed(2, 3), want: "[2...3], [2...3], [3...3]"},
		{other: closed(2, 4), want: "[2...3], [2...4], [3...4]"},
		{other: closed(1, 4), want: "[1...3], [2...4], [3...4]"},
		{other: closed(1, 3), want: "[1...3], [2...3], [3...3]"},
		{other: closed(10, 20), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.other.String(), func(t *testing.T) {
			t.Parallel()

			got := c.And(tt.other)
			assert.Equal(t, tt.want, got.String())
			assertSorted(t, got)
		})
	}
}

func eightRanges() []ranges.Range[int] {
	return []ranges.Range[int]{
		closed(1, 2), closed(3, 4), closed(2, 4), closed(2, 3),
		closed(5, 6), closed(7, 8), closed(6, 8), closed(6, 7),
	}
}

func TestCollection_MergeIntersecting(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 3), closed(3, 4), closed(2, 4))
	assert.Equal(t, "[1...4]", c.MergeIntersecting().String())

	c = collection(t, eightRanges()...)
	assert.Equal(t, "[1...4], [5...8]", c.MergeIntersecting().String())
}

func TestCollection_MergeAdjacent(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 2), closed(3, 4), closed(6, 7), closed(8, 8))
	assert.Equal(t, "[1...4], [6...8]", c.MergeAdjacent().String())

	// Overlapping ranges are left alone.
	c = collection(t, closed(1, 3), closed(2, 4))
	assert.Equal(t, "[1...3], [2...4]", c.MergeAdjacent().String())
}

func TestCollection_Merge(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 3), closed(3, 4), closed(2, 4))
	assert.Equal(t, "[1...4]", c.Merge().String())

	c = collection(t, eightRanges()...)
	assert.Equal(t, "[1...8]", c.Merge().String())

	more, err := c.Add(closed(10, 11), closed(12, 13), closed(11, 13), closed(11, 12))
	require.NoError(t, err)
	assert.Equal(t, "[1...8], [10...13]", more.Merge().String())

	open := collection(t, until(0), closed(1, 5), from(7), closed(6, 6))
	assert.Equal(t, "[...]", open.Merge().String())
}

func TestCollection_MergeProperties(t *testing.T) {
	t.Parallel()

	all := grid()

	// Every window of four grid ranges, merged, covers the same keys without
	// touching itself.
	for i := 0; i+4 <= len(all); i++ {
		c := collection(t, all[i:i+4]...)
		merged := c.Merge()

		for j, a := range merged.Ranges() {
			for _, b := range merged.Ranges()[j+1:] {
				assert.False(t, a.Intersects(b), "%s merged into %s", c, merged)
				assert.False(t, a.Adjacent(b), "%s merged into %s", c, merged)
			}
		}

		for _, p := range probes() {
			assert.Equal(t, c.ContainsValue(p), merged.ContainsValue(p), "%s merged into %s at %d", c, merged, p)
		}

		assertSorted(t, merged)
	}
}

func TestCollection_StartAndEnd(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(1, 9), closed(3, 4))

	assert.Equal(t, optional.Some(1), c.Start())
	assert.Equal(t, optional.Some(orderkey.Of(1)), c.StartKey())

	// The last range sorts last by start, not by end.
	assert.Equal(t, optional.Some(4), c.End())
	assert.Equal(t, optional.Some(orderkey.Of(4)), c.EndKey())

	c = collection(t, until(3), from(5))
	assert.True(t, c.Start().Empty())
	assert.Equal(t, optional.Some(orderkey.NegInf()), c.StartKey())
	assert.True(t, c.End().Empty())
	assert.Equal(t, optional.Some(orderkey.PosInf()), c.EndKey())
}

func TestCollection_Access(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(3, 4), closed(1, 2))

	r, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "[3...4]", r.String())

	_, ok = c.Get(-1)
	assert.False(t, ok)

	_, ok = c.Get(2)
	assert.False(t, ok)

	var seen []string
	for i, r := range c.All() {
		seen = append(seen, r.String())
		assert.Equal(t, len(seen)-1, i)
	}

	assert.Equal(t, []string{"[1...2]", "[3...4]"}, seen)

	copied := c.Ranges()
	copied[0] = closed(100, 200)
	assert.Equal(t, "[1...2], [3...4]", c.String())

	assert.True(t, c.ContainsValue(4))
	assert.False(t, c.ContainsValue(5))
}

func TestCollection_Equals(t *testing.T) {
	t.Parallel()

	a := collection(t, closed(1, 2), closed(3, 4))
	b := collection(t, closed(3, 4), closed(1, 2))
	c := collection(t, closed(1, 2))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestCollection_Distinct(t *testing.T) {
	t.Parallel()

	c := collection(t, closed(2, 3), closed(1, 2), closed(2, 3), until(4), until(4))

	distinct, err := c.Distinct()
	require.NoError(t, err)
	assert.Equal(t, "[...4], [1...2], [2...3]", distinct.String())
	assert.Equal(t, 5, c.Len())
}

func TestCollection_InvertedRanges(t *testing.T) {
	t.Parallel()

	// Inverted ranges are kept and sorted like any other.
	c := collection(t, closed(5, 1), closed(1, 5))
	assert.Equal(t, "[1...5], [5...1]", c.String())

	valid := c.Filter(func(r ranges.Range[int]) bool { return !r.Inverted() })
	assert.Equal(t, "[1...5]", valid.String())
}
