package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := Normalize(Params{})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = Normalize(Params{Page: -3, Limit: 1000})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)

	p = Normalize(Params{Page: 4, Limit: 10})
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Params{Page: 0, Limit: 20}.Offset())
}

func TestNewMetaCeilsTotalPages(t *testing.T) {
	meta := NewMeta(Params{Page: 2, Limit: 10}, 21)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(21), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)

	meta = NewMeta(Params{Page: 1, Limit: 10}, 20)
	assert.Equal(t, 2, meta.TotalPages)

	meta = NewMeta(Params{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, meta.TotalPages)
}
