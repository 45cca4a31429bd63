package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/disintegration/imaging"
	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `# единичный квадрат
0 0
1 0
1 1
0,1

1 0
`

func runCLI(t *testing.T, args []string, input string) (string, error) {
	t.Helper()
	cfg, err := parseFlags(args)
	require.NoError(t, err)
	var out bytes.Buffer
	err = run(cfg, strings.NewReader(input), &out, logger.NewNop(), aurora.NewAurora(false))
	return out.String(), err
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.seed)
	assert.Equal(t, 1000.0, cfg.width)
	assert.Equal(t, 100.0, cfg.superScale)
	assert.Equal(t, 1.0, cfg.scale)
	assert.False(t, cfg.withVoronoi)

	cfg, err = parseFlags([]string{"-r", "10", "--voronoi", "-q", "1 2", "-q", "3 4", "--png", "out.png"})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.random)
	assert.True(t, cfg.withVoronoi)
	assert.Equal(t, []string{"1 2", "3 4"}, cfg.queries)
	assert.Equal(t, "out.png", cfg.pngPath)

	_, err = parseFlags([]string{"--scale", "0"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"--unknown"})
	assert.Error(t, err)
}

func TestRun_Stdin(t *testing.T) {
	out, err := runCLI(t, []string{"--voronoi", "--list"}, square)
	require.NoError(t, err)

	assert.Contains(t, out, "points: 4 (1 skipped)\n")
	assert.Contains(t, out, "triangles: 2\n")
	assert.Contains(t, out, "edges: 5\n")
	assert.Contains(t, out, "hull edges: 4\n")
	assert.Contains(t, out, "voronoi cells: 4 (4 open)\n")
	assert.Contains(t, out, "voronoi edges: 1\n")
	// две строки с треугольниками после сводки
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 8)
}

func TestRun_Queries(t *testing.T) {
	out, err := runCLI(t, []string{"-q", "0.25 0.1", "-q", "5 5"}, square)
	require.NoError(t, err)

	assert.Contains(t, out, "query (0.25, 0.1) triangle")
	assert.Contains(t, out, "query (0.25, 0.1) nearest (0, 0)")
	assert.Contains(t, out, "query (5, 5) outside hull")
	assert.Contains(t, out, "query (5, 5) nearest (1, 1)")

	_, err = runCLI(t, []string{"-q", "oops"}, square)
	assert.Error(t, err)
}

func TestRun_Random(t *testing.T) {
	out, err := runCLI(t, []string{"-r", "50", "--seed", "3", "-V"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "points: 50 (0 skipped)\n")
	assert.Contains(t, out, "voronoi cells: 50")
}

func TestRun_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.png")
	out, err := runCLI(t, []string{"--png", path, "--scale", "200", "--size", "100"}, square)
	require.NoError(t, err)
	assert.Contains(t, out, "image: "+path)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t, nil, "0 0\n1 1\n")
	assert.ErrorIs(t, err, delaunay.ErrInsufficientPoints)

	_, err = runCLI(t, nil, "0 0\n1 1\n2 2\n")
	assert.ErrorIs(t, err, delaunay.ErrDegenerateConfiguration)

	_, err = runCLI(t, nil, "0 0\n1\n")
	assert.EqualError(t, err, `line 2: want "x y", got "1"`)
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		line string
		want geom.Point
		ok   bool
	}{
		{"1 2", geom.Pt(1, 2), true},
		{"  -1.5\t2e3 ", geom.Pt(-1.5, 2000), true},
		{"3,4", geom.Pt(3, 4), true},
		{"1 2 3", geom.NoPoint, false},
		{"x 2", geom.NoPoint, false},
		{"1 y", geom.NoPoint, false},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.line)
		if tt.ok {
			require.NoError(t, err, tt.line)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, tt.line)
		}
	}
}
