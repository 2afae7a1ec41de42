package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineAt(t *testing.T) {
	source := []byte("first\nsecond\nthird\n")
	require.Equal(t, 1, LineAt(source, 0))
	require.Equal(t, 1, LineAt(source, 4))
	require.Equal(t, 2, LineAt(source, 6))
	require.Equal(t, 3, LineAt(source, 13))
	// Out-of-range offsets clamp to the end.
	require.Equal(t, 4, LineAt(source, 999))
}

func TestLocationString(t *testing.T) {
	require.Equal(t, "guide/setup:12", Location{Doc: "guide/setup", Line: 12}.String())
	require.Equal(t, "line 3", Location{Line: 3}.String())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Warningf(Location{Doc: "a", Line: 1}, "warn %d", 1)
	r.Errorf(Location{Doc: "b", Line: 2}, "err %s", "x")

	require.Len(t, r.Warnings, 1)
	require.Equal(t, "warn 1", r.Warnings[0].Message)
	require.Equal(t, "a", r.Warnings[0].Location.Doc)
	require.Len(t, r.Errors, 1)
	require.Equal(t, "err x", r.Errors[0].Message)
}
