package paginator

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesReconstructCollection(t *testing.T) {
	p := New(PerPage)
	for n := 0; n <= 35; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		first := p.Paginate(int64(n), "1")
		var got []int
		for k := 1; k <= first.NumPages; k++ {
			pg := p.Paginate(int64(n), strconv.Itoa(k))
			require.Equal(t, k, pg.Number, "n=%d", n)
			got = append(got, Slice(items, pg)...)
		}

		if n == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, items, got, fmt.Sprintf("n=%d", n))
	}
}

func TestThirteenItems(t *testing.T) {
	p := New(PerPage)

	first := p.Paginate(13, "")
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.NumPages)
	assert.Equal(t, 10, first.Limit())
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	second := p.Paginate(13, "2")
	assert.Equal(t, 3, second.Limit())
	assert.Equal(t, 10, second.Offset())
	assert.Equal(t, 11, second.StartIndex())
	assert.Equal(t, 13, second.EndIndex())
	assert.False(t, second.HasNext())
}

func TestOutOfRangeClampsToLastPage(t *testing.T) {
	p := New(PerPage)

	for _, raw := range []string{"3", "99", "0", "-4"} {
		pg := p.Paginate(25, raw)
		assert.Equal(t, 3, pg.Number, raw)
		assert.Equal(t, 5, pg.Limit(), raw)
	}
}

func TestNonNumericSelectsFirstPage(t *testing.T) {
	p := New(PerPage)

	for _, raw := range []string{"", "abc", "1.5", " "} {
		assert.Equal(t, 1, p.Paginate(25, raw).Number, raw)
	}
}

func TestEmptyCollection(t *testing.T) {
	pg := New(PerPage).Paginate(0, "5")

	assert.Equal(t, 1, pg.Number)
	assert.Equal(t, 1, pg.NumPages)
	assert.Equal(t, 0, pg.Limit())
	assert.Equal(t, 0, pg.StartIndex())
	assert.Equal(t, 0, pg.EndIndex())
	assert.Empty(t, Slice([]string{}, pg))
}

func TestNewDefaultsPageSize(t *testing.T) {
	assert.Equal(t, PerPage, New(0).PerPage)
	assert.Equal(t, 3, New(3).PerPage)
}
