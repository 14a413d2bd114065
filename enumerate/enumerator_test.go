package enumerate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbiloops/enumerate"
	"github.com/katalvlaran/orbiloops/orbifold"
	"github.com/katalvlaran/orbiloops/path"
)

func signatures(loops []enumerate.Loop) []string {
	out := make([]string, len(loops))
	for i, l := range loops {
		out[i] = l.Signature
	}
	return out
}

func exhaust(t *testing.T, typ orbifold.Type, maxEdges int) []enumerate.Loop {
	t.Helper()
	e, err := enumerate.New(typ, enumerate.WithMaxEdges(maxEdges))
	require.NoError(t, err)
	var out []enumerate.Loop
	for l := range e.All() {
		out = append(out, l)
	}
	return out
}

func TestNew_Errors(t *testing.T) {
	_, err := enumerate.New(0)
	assert.ErrorIs(t, err, enumerate.ErrUnknownType)
	assert.ErrorIs(t, err, orbifold.ErrUnknownType)

	_, err = enumerate.New(orbifold.P3, enumerate.WithMaxEdges(2))
	assert.ErrorIs(t, err, enumerate.ErrMaxEdges)

	e, err := enumerate.New(orbifold.P3)
	require.NoError(t, err)
	assert.Equal(t, 6, e.MaxEdges())
	assert.ErrorIs(t, e.SetMaxEdges(1), enumerate.ErrMaxEdges)
}

func TestEnumerate_P3Triangles(t *testing.T) {
	loops := exhaust(t, orbifold.P3, 3)
	assert.Equal(t, []string{
		"E01>N00,N00>N01",
		"E00>E01,N01>N00",
		"E00>N01,N01>N00",
		"N00>S00,W00>N00",
		"E00>S00,W00>N00",
		"E00>E01,N01>E00",
		"E00>E01,E01>N00",
		"E00>S00,W00>E00",
		"E00>S00,S00>N00",
		"S00>S01,W01>S00",
		"S00>S01,W01>W00",
		"S00>S01,S01>W00",
		"E00>W00,W00>N00",
		"S01>W00,W00>W01",
		"S00>W01,W01>W00",
	}, signatures(loops))

	first := loops[0].State
	assert.Equal(t, "closed[N:1→N:2 E:2→N:0 N:0→N:1]", first.String())
	assert.Equal(t, 3, loops[0].Edges())
	assert.Equal(t, orbifold.P3, loops[0].Type())
}

func TestEnumerate_Counts(t *testing.T) {
	tests := []struct {
		typ      orbifold.Type
		maxEdges int
		want     int
	}{
		{orbifold.P3, 4, 35},
		{orbifold.P3, 5, 75},
		{orbifold.P2, 3, 50},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			loops := exhaust(t, tt.typ, tt.maxEdges)
			assert.Len(t, loops, tt.want)
		})
	}
}

// Every produced loop is a valid closed state with a unique signature, and
// loops come out by non-decreasing length.
func TestEnumerate_LoopsAreValidAndDistinct(t *testing.T) {
	for _, typ := range orbifold.Types() {
		seen := make(map[string]bool)
		prev := 0
		for _, l := range exhaust(t, typ, 4) {
			assert.False(t, seen[l.Signature], "duplicate %s", l.Signature)
			seen[l.Signature] = true
			assert.Equal(t, path.Closed, l.State.Phase())
			require.NoError(t, l.State.CheckInvariants())
			assert.GreaterOrEqual(t, l.Edges(), prev)
			prev = l.Edges()

			sig, err := enumerate.Signature(l.State)
			require.NoError(t, err)
			assert.Equal(t, l.Signature, sig)
		}
		assert.NotEmpty(t, seen, typ.String())
	}
}

// Asking for more loops or longer loops extends the earlier answer.
func TestEnumerate_PrefixStability(t *testing.T) {
	e, err := enumerate.New(orbifold.P3, enumerate.WithMaxEdges(3))
	require.NoError(t, err)

	five := signatures(e.Take(5))
	require.Len(t, five, 5)
	all3 := signatures(e.Take(100))
	require.Len(t, all3, 15)
	assert.Equal(t, five, all3[:5])

	_, ok := e.Next()
	assert.False(t, ok, "exhausted at L=3")

	require.NoError(t, e.SetMaxEdges(4))
	expanded := e.Expanded()
	all4 := signatures(e.Take(100))
	assert.Equal(t, signatures(exhaust(t, orbifold.P3, 4)), all4)
	assert.Equal(t, all3, all4[:15])
	assert.Greater(t, e.Expanded(), expanded)

	// The cached prefix comes back without more search.
	expanded = e.Expanded()
	assert.Equal(t, all4[:3], signatures(e.Take(3)))
	assert.Equal(t, expanded, e.Expanded())
}

func TestEnumerate_LoweredLimitPauses(t *testing.T) {
	e, err := enumerate.New(orbifold.P3, enumerate.WithMaxEdges(4))
	require.NoError(t, err)
	require.Len(t, e.Take(20), 20)

	require.NoError(t, e.SetMaxEdges(3))
	_, ok := e.Next()
	assert.False(t, ok)
	assert.Len(t, e.Found(), 20)

	require.NoError(t, e.SetMaxEdges(4))
	assert.Len(t, e.Take(100), 35)
}

func TestEnumerate_TakeNonPositive(t *testing.T) {
	e, err := enumerate.New(orbifold.P3, enumerate.WithMaxEdges(3))
	require.NoError(t, err)
	assert.Empty(t, e.Take(-1))
	assert.Empty(t, e.Take(0))
	assert.Zero(t, e.Expanded(), "no search for an empty request")
	assert.Len(t, e.Take(2), 2)
	assert.Empty(t, e.Take(-5))
}

func TestEnumerate_AllStopsEarly(t *testing.T) {
	e, err := enumerate.New(orbifold.P4, enumerate.WithMaxEdges(3))
	require.NoError(t, err)
	n := 0
	for range e.All() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Len(t, e.Found(), 4)
}

func TestEnumerate_HookAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var hooked []string
	e, err := enumerate.New(orbifold.P3,
		enumerate.WithMaxEdges(3),
		enumerate.WithLogger(logger),
		enumerate.WithOnLoop(func(l enumerate.Loop) { hooked = append(hooked, l.Signature) }),
	)
	require.NoError(t, err)

	loops := e.Take(2)
	assert.Equal(t, signatures(loops), hooked)
	assert.Contains(t, buf.String(), "enumerate: depth")
	assert.Contains(t, buf.String(), "signature=E01>N00,N00>N01")
	assert.Contains(t, buf.String(), "type=p3")
}
