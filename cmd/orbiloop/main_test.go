package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbiloops"
	"github.com/katalvlaran/orbiloops/exchange"
	"github.com/katalvlaran/orbiloops/path"
)

const closedDoc = `type: p3
closed: true
edges:
  - {from: {side: north, t: 0.25}, to: {side: west, t: 0.5}}
  - {from: {side: south, t: 0.5}, to: {side: north, t: 0.75}}
  - {from: {side: north, t: 0.75}, to: {side: north, t: 0.25}}
`

const openDoc = `{"type": "p3", "closed": false, "edges": [
  {"from": {"side": "north", "t": 0.8}, "to": {"side": "south", "t": 0.7}},
  {"from": {"side": "west", "t": 0.7}, "to": {"side": "north", "t": 0.5}},
  {"from": {"side": "east", "t": 0.5}, "to": {"side": "south", "t": 0.3}},
  {"from": {"side": "west", "t": 0.3}, "to": {"side": "north", "t": 0.2}}
]}`

const crossingDoc = `type: p3
edges:
  - {from: {side: north, t: 0.3}, to: {side: south, t: 0.7}}
  - {from: {side: west, t: 0.7}, to: {side: north, t: 0.5}}
`

const oneEdgeDoc = `type: p3
edges:
  - {from: {side: north, t: 0.5}, to: {side: west, t: 0.5}}
`

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { orbiloops.SetLogger(nil) })
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestEnumerate_Text(t *testing.T) {
	out, _, err := run(t, "enumerate", "-L", "3")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 15)
	assert.True(t, strings.HasSuffix(got[0], "E01>N00,N00>N01"), got[0])
	assert.True(t, strings.HasPrefix(got[0], "  1  3  "), got[0])
	assert.True(t, strings.HasSuffix(got[14], "S00>W01,W01>W00"), got[14])

	out, _, err = run(t, "enumerate", "-L", "3", "-k", "4")
	require.NoError(t, err)
	assert.Len(t, lines(out), 4)
}

func TestEnumerate_StructuredOutput(t *testing.T) {
	out, _, err := run(t, "enumerate", "-t", "p4", "-L", "4", "-k", "3", "-o", "json")
	require.NoError(t, err)
	var recs []loopRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.True(t, r.Document.Closed)
		assert.Equal(t, r.Edges, len(r.Document.Edges))
		s, err := exchange.Import(r.Document)
		require.NoError(t, err, r.Signature)
		assert.Equal(t, path.Closed, s.Phase())
	}

	out, _, err = run(t, "enumerate", "-t", "p2", "-L", "3", "-k", "2", "-o", "yaml")
	require.NoError(t, err)
	recs = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.NotEmpty(t, recs[0].Signature)
}

func TestConfig_FileAndOverrides(t *testing.T) {
	cfg := writeFile(t, "orbiloop.yaml", "type: p2\nmax_edges: 3\ncount: 5\nlog_level: debug\n")

	out, errOut, err := run(t, "--config", cfg, "enumerate")
	require.NoError(t, err)
	assert.Len(t, lines(out), 5)
	assert.Contains(t, errOut, "orbiloop: configured")
	assert.Contains(t, errOut, "type=p2")

	out, errOut, err = run(t, "--config", cfg, "--log-level", "error", "enumerate", "-k", "2")
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)
	assert.Empty(t, errOut)
}

func TestConfig_Rejected(t *testing.T) {
	tests := []struct {
		name string
		file string
		args []string
	}{
		{"unknown key", "colour: red\n", nil},
		{"bad format", "format: xml\n", nil},
		{"bad level", "log_level: loud\n", nil},
		{"short loops", "max_edges: 2\n", nil},
		{"bad type flag", "", []string{"-t", "p6"}},
		{"negative count", "", []string{"-k=-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"--config", writeFile(t, "c.yaml", tt.file), "enumerate"}
			_, _, err := run(t, append(args, tt.args...)...)
			assert.Error(t, err)
		})
	}

	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "enumerate")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", writeFile(t, "open.json", openDoc))
	require.NoError(t, err)
	assert.Contains(t, out, "phase:  open\n")
	assert.Contains(t, out, "edges:  4\n")
	assert.Contains(t, out, "close:  no, "+path.ErrNotAdjacent.Error())
	assert.Contains(t, out, "trace:  4 crossings\n")
	assert.Contains(t, out, "index:  (2,1,2)\n")

	out, _, err = run(t, "check", writeFile(t, "closed.yaml", closedDoc))
	require.NoError(t, err)
	assert.Contains(t, out, "phase:  closed\n")
	assert.Contains(t, out, "close:  closed by N:1→N:0\n")

	_, errOut, err := run(t, "--log-level", "warn", "check", writeFile(t, "x.yaml", crossingDoc))
	assert.ErrorIs(t, err, path.ErrCrossing)
	assert.Contains(t, errOut, "rejected document")

	_, _, err = run(t, "-t", "p4", "check", writeFile(t, "closed.yaml", closedDoc))
	assert.ErrorIs(t, err, errConfig)
}

func TestSegments(t *testing.T) {
	out, _, err := run(t, "segments", writeFile(t, "one.yaml", oneEdgeDoc))
	require.NoError(t, err)
	assert.Equal(t, []string{"from S:0", "N[0,-)", "E[-,0)", "E[0,-)", "W[0,-)"}, lines(out))

	_, _, err = run(t, "segments", writeFile(t, "closed.yaml", closedDoc))
	assert.ErrorContains(t, err, "path is closed")
}
