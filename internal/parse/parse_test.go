package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain", input: "4.52", want: 4.52},
		{name: "with unit", input: "71.5 in", want: 71.5},
		{name: "weight", input: "265 lbs.", want: 265},
		{name: "reach inches mark", input: `72"`, want: 72},
		{name: "leading space", input: "  3.1", want: 3.1},
		{name: "negative", input: "-2.5", want: -2.5},
		{name: "leading dot", input: ".75", want: 0.75},
		{name: "empty", input: "", want: 0},
		{name: "placeholder", input: "--", want: 0},
		{name: "garbage", input: "abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Number(tt.input), 1e-9)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 55.0, Percent("55%"))
	assert.Equal(t, 55.0, Percent("55"))
	assert.Equal(t, 0.0, Percent("%"))
	assert.Equal(t, 0.0, Percent(""))
	assert.Equal(t, 0.0, Percent("n/a"))
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 71.0, Height(`5' 11"`))
	assert.Equal(t, 72.0, Height(`6'`))
	assert.Equal(t, 71.5, Height("71.5 in"))
	assert.Equal(t, 0.0, Height("--"))
}

func TestPresent(t *testing.T) {
	assert.True(t, Present("50%"))
	assert.False(t, Present(""))
	assert.False(t, Present("  "))
	assert.False(t, Present("--"))
}

func TestReadable(t *testing.T) {
	assert.True(t, Readable("4.38"))
	assert.True(t, Readable(`5' 11"`))
	assert.True(t, Readable(" 155 lbs."))
	assert.False(t, Readable("n/a"))
	assert.False(t, Readable(""))
}

func TestDate(t *testing.T) {
	want := time.Date(1988, time.July, 14, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"Jul 14, 1988", "July 14, 1988", "1988-07-14", "07/14/1988"} {
		got, ok := Date(input)
		require.True(t, ok, input)
		assert.True(t, want.Equal(got), input)
	}

	_, ok := Date("--")
	assert.False(t, ok)
	_, ok = Date("sometime in 1988")
	assert.False(t, ok)
}

func TestAge(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, Age(birth, time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, Age(birth, time.Date(2020, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, Age(birth, time.Date(2020, time.May, 30, 0, 0, 0, 0, time.UTC)))
}
