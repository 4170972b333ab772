package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCongestionTable(t *testing.T) {
	tbl, err := NewCongestionTable(3)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []int{Unreported, Unreported, Unreported}, tbl.Snapshot())

	_, err = NewCongestionTable(0)
	assert.Error(t, err)
	_, err = NewCongestionTable(-2)
	assert.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	tbl, err := NewCongestionTable(4)
	require.NoError(t, err)

	tbl.Write(2, 77)
	tbl.Write(0, 5)
	assert.Equal(t, 77, tbl.Read(2))
	assert.Equal(t, 5, tbl.Read(0))
	assert.Equal(t, []int{5, Unreported, 77, Unreported}, tbl.Snapshot())
}

func TestSnapshotIsCopy(t *testing.T) {
	tbl, _ := NewCongestionTable(2)
	tbl.Write(1, 10)

	first := tbl.Snapshot()
	second := tbl.Snapshot()
	assert.Equal(t, first, second)

	first[1] = 99
	assert.Equal(t, 10, tbl.Read(1))
	assert.Equal(t, []int{Unreported, 10}, tbl.Snapshot())
}

func TestOutOfRangePanics(t *testing.T) {
	tbl, _ := NewCongestionTable(2)
	assert.Panics(t, func() { tbl.Write(2, 1) })
	assert.Panics(t, func() { tbl.Write(-1, 1) })
	assert.Panics(t, func() { tbl.Read(5) })
}

func TestMaxIndex(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"empty", nil, -1},
		{"single", []int{3}, 0},
		{"last", []int{40, 90, 95}, 2},
		{"middle", []int{40, 90, 55}, 1},
		{"tie goes to lowest", []int{10, 70, 70, 3}, 1},
		{"all equal", []int{0, 0, 0}, 0},
		{"skips unreported", []int{Unreported, 0, Unreported}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxIndex(tt.values))
		})
	}
}
