package houtveilig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape_Classify(t *testing.T) {
	testCases := []struct {
		name string
		x, y int
		size int
		want Region
	}{
		{name: "top left corner", x: 0, y: 0, size: 72, want: Background},
		{name: "bottom left corner", x: 0, y: 71, size: 72, want: Background},
		{name: "canopy apex", x: 36, y: 8, size: 72, want: TreeFoliage},
		{name: "below canopy apex", x: 36, y: 9, size: 72, want: TreeFoliage},
		{name: "beside canopy apex", x: 35, y: 9, size: 72, want: Background},
		{name: "above canopy", x: 36, y: 7, size: 72, want: Background},
		{name: "middle band", x: 36, y: 30, size: 72, want: TreeFoliage},
		{name: "lower band base edge", x: 13, y: 54, size: 72, want: TreeFoliage},
		{name: "outside lower band base", x: 12, y: 54, size: 72, want: Background},
		{name: "trunk edge", x: 40, y: 59, size: 72, want: TreeFoliage},
		{name: "beside trunk", x: 41, y: 59, size: 72, want: Background},
		{name: "warning apex over trunk", x: 36, y: 59, size: 72, want: Warning},
		{name: "warning body", x: 39, y: 65, size: 72, want: Warning},
		{name: "warning beside exclamation", x: 38, y: 66, size: 72, want: Warning},
		{name: "exclamation stem", x: 36, y: 65, size: 72, want: Exclamation},
		{name: "exclamation stem edge", x: 37, y: 66, size: 72, want: Exclamation},
		{name: "exclamation dot", x: 36, y: 67, size: 72, want: Exclamation},
		{name: "large canopy", x: 256, y: 200, size: 512, want: TreeFoliage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.x, tc.y, tc.size))
		})
	}
}

func TestShape_WarningOverridesFoliage(t *testing.T) {
	assert := assert.New(t)

	// The warning triangle starts on the last row of the trunk.
	assert.True(InFoliage(36, 59, 72))
	assert.True(InWarning(36, 59, 72))
	assert.Equal(Warning, Classify(36, 59, 72))

	assert.True(InWarning(36, 65, 72))
	assert.True(InExclamation(36, 65, 72))
	assert.Equal(Exclamation, Classify(36, 65, 72))
}

func TestShape_BandApexHasZeroWidth(t *testing.T) {
	b := Band{Top: 0.5, Bottom: 0.5, Scale: 0.5}
	size := 10

	// A degenerate band must not divide by zero and keeps only the center pixel.
	assert.True(t, b.Contains(5, 5, size))
	assert.False(t, b.Contains(4, 5, size))
	assert.False(t, b.Contains(6, 5, size))
	assert.False(t, b.Contains(5, 4, size))
}

func TestShape_BandWidens(t *testing.T) {
	size := 512
	band := Canopy[2]
	top := int(float64(size) * band.Top)
	bottom := int(float64(size) * band.Bottom)

	width := func(y int) int {
		n := 0
		for x := 0; x < size; x++ {
			if band.Contains(x, y, size) {
				n++
			}
		}
		return n
	}

	prev := 0
	for y := top; y <= bottom; y++ {
		w := width(y)
		assert.GreaterOrEqual(t, w, prev, "row %d", y)
		assert.Equal(t, 1, w%2, "row %d should be symmetric around the center", y)
		prev = w
	}
	assert.Zero(t, width(top-1))
	assert.Zero(t, width(bottom+1))
}

func TestShape_SymmetricAroundCenter(t *testing.T) {
	for _, size := range DefaultSizes {
		c := size / 2
		for y := 0; y < size; y++ {
			for dx := 0; c+dx < size && c-dx >= 0; dx++ {
				if Classify(c-dx, y, size) != Classify(c+dx, y, size) {
					t.Fatalf("size %d: (%d, %d) and (%d, %d) differ", size, c-dx, y, c+dx, y)
				}
			}
		}
	}
}

func TestShape_RegionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("background", Background.String())
	assert.Equal("foliage", TreeFoliage.String())
	assert.Equal("warning", Warning.String())
	assert.Equal("exclamation", Exclamation.String())
	assert.Equal("unknown", Region(42).String())
}
