package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// burstDescription 按 descSchema 的位置拼一段可解析的 description
func burstDescription(orbit, burstID, swath string) string {
	segs := make([]string, 30)
	for i := range segs {
		segs[i] = "td"
	}
	segs[11] = orbit + "</td"
	segs[17] = burstID + "</td"
	segs[23] = swath + "</td"
	return strings.Join(segs, ">")
}

func TestClassify(t *testing.T) {
	b, err := classify(burstDescription("ASCENDING", "012345", "IW2"))
	require.NoError(t, err)
	assert.Equal(t, Ascending, b.Direction)
	assert.Equal(t, "012345", b.BurstID)
	assert.Equal(t, "IW2", b.Swath)

	b, err = classify(burstDescription("DESCENDING", "999", "IW1"))
	require.NoError(t, err)
	assert.Equal(t, Descending, b.Direction)
}

func TestClassifyBadOrbit(t *testing.T) {
	_, err := classify(burstDescription("SIDEWAYS", "1", "IW1"))
	var cerr *ClassificationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "orbit direction", cerr.Field)
	assert.Equal(t, "SIDEWAYS", cerr.Value)
}

func TestClassifyShortDescription(t *testing.T) {
	var cerr *ClassificationError
	_, err := classify("<html>nothing here</html>")
	require.ErrorAs(t, err, &cerr)

	_, err = classify("")
	require.ErrorAs(t, err, &cerr)
}

func TestPartitionIndex(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{"003", 3},
		{"008", 3},
		{"010", 5},
		{"000", 5},
		{"123", 3},
		{"014abcdef", 4},
	}
	for _, c := range cases {
		got, err := partitionIndex(c.id)
		require.NoError(t, err, c.id)
		assert.Equal(t, c.want, got, c.id)
	}
}

func TestPartitionIndexInvalid(t *testing.T) {
	for _, id := range []string{"abc", "1a2", "12", ""} {
		_, err := partitionIndex(id)
		var derr *InvalidDatasetIDError
		require.ErrorAs(t, err, &derr, "id %q", id)
	}
}

func TestDirectionStyle(t *testing.T) {
	assert.Equal(t, "A", Ascending.Tag())
	assert.Equal(t, "D", Descending.Tag())

	a := Ascending.Style()
	assert.Equal(t, "#0000ff", a.Color)
	assert.Equal(t, 0.4, a.Opacity)
	assert.Equal(t, 1, a.Weight)
	assert.Equal(t, 0.1, a.FillOpacity)

	assert.Equal(t, "#ff0000", Descending.Style().Color)
}
