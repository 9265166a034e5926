package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/instance"
)

const corridor = `NOMBRE : corridor
COMENTARIO : two required pieces joined by one optional edge
VERTICES : 4
ARISTAS_REQ : 2
ARISTAS_NOREQ : 1
LISTA_ARISTAS_REQ :
( 1, 2)  coste 1
( 3, 4)  coste 1
LISTA_ARISTAS_NOREQ :
( 2, 3)  coste 5
`

func TestParse_Corberan(t *testing.T) {
	t.Parallel()
	in, err := instance.ParseString("corridor.txt", corridor)
	require.NoError(t, err)

	assert.Equal(t, "corridor", in.Name)
	assert.Equal(t, "two required pieces joined by one optional edge", in.Comment)
	assert.Equal(t, 4, in.Vertices)
	assert.Equal(t, []instance.EdgeSpec{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}}, in.Required)
	assert.Equal(t, []instance.EdgeSpec{{From: 1, To: 2, Weight: 5}}, in.Optional)
}

func TestParse_EnglishAliasesAndComments(t *testing.T) {
	t.Parallel()
	text := `# generated
name: triangle
vertices: 3
required_edges: 3
optional_edges: 0
required:
(1, 2), 2.0
(2, 3), 3.0   # middle
(3, 1), 1.5e0
optional:
`
	in, err := instance.ParseString("", text)
	require.NoError(t, err)
	assert.Equal(t, "triangle", in.Name)
	assert.Empty(t, in.Comment)
	assert.Len(t, in.Required, 3)
	assert.Equal(t, 1.5, in.Required[2].Weight)
	assert.Equal(t, 2, in.Required[2].From)
	assert.Empty(t, in.Optional)
}

func TestParse_CountsAreOptional(t *testing.T) {
	t.Parallel()
	in, err := instance.ParseString("", "VERTICES : 2\nLISTA_ARISTAS_REQ :\n( 1, 2) coste 4\n")
	require.NoError(t, err)
	assert.Len(t, in.Required, 1)
	assert.Empty(t, in.Optional)
}

// TestParse_EmptyLists covers edge lists with no lines: in the middle of the
// file, at end of input, and both at once.
func TestParse_EmptyLists(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		text     string
		required int
		optional int
	}{
		{"empty optional at EOF", "NOMBRE : tri\nVERTICES : 3\nARISTAS_REQ : 3\nARISTAS_NOREQ : 0\n" +
			"LISTA_ARISTAS_REQ :\n( 1, 2)  coste 2\n( 2, 3)  coste 3\n( 3, 1)  coste 1\nLISTA_ARISTAS_NOREQ :\n", 3, 0},
		{"empty required before optional", "VERTICES : 2\nLISTA_ARISTAS_REQ :\nLISTA_ARISTAS_NOREQ :\n(1,2) coste 4\n", 0, 1},
		{"both empty", "VERTICES : 5\nARISTAS_REQ : 0\nLISTA_ARISTAS_REQ :\nLISTA_ARISTAS_NOREQ :\n", 0, 0},
		{"empty list then comment", "VERTICES : 2\nREQUIRED :\n# nothing yet\nOPTIONAL :\n", 0, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var (
				in  *instance.Instance
				err error
			)
			require.NotPanics(t, func() { in, err = instance.ParseString("empty.txt", tc.text) })
			require.NoError(t, err)
			assert.Len(t, in.Required, tc.required)
			assert.Len(t, in.Optional, tc.optional)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		want error
	}{
		{"syntax", "VERTICES : 3\nLISTA_ARISTAS_REQ :\n( 1 2) coste 1\n", instance.ErrMalformed},
		{"fractional id", "VERTICES : 3\nREQUIRED :\n( 1.5, 2) 1\n", instance.ErrMalformed},
		{"unknown key", "VERTICES : 3\nCOLORS : 4\n", instance.ErrMalformed},
		{"duplicate key", "VERTICES : 3\nVERTICES : 4\n", instance.ErrMalformed},
		{"missing vertices", "REQUIRED :\n( 1, 2) 1\n", instance.ErrMalformed},
		{"list as count", "VERTICES : 3\nREQUIRED : 2\n", instance.ErrMalformed},
		{"count as list", "VERTICES :\n( 1, 2) 1\n", instance.ErrMalformed},
		{"count with edges", "VERTICES : 3\n( 1, 2) 1\n", instance.ErrMalformed},
		{"negative vertices", "VERTICES : -1\n", instance.ErrMalformed},
		{"id zero", "VERTICES : 3\nREQUIRED :\n( 0, 2) 1\n", instance.ErrVertexRange},
		{"id above V", "VERTICES : 3\nOPTIONAL :\n( 1, 4) 1\n", instance.ErrVertexRange},
		{"negative weight", "VERTICES : 3\nREQUIRED :\n( 1, 2) coste -2\n", instance.ErrNegativeWeight},
		{"count mismatch", "VERTICES : 3\nARISTAS_REQ : 2\nREQUIRED :\n( 1, 2) 1\n", instance.ErrCountMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := instance.ParseString("bad.txt", tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()
	in, err := instance.ParseString("", corridor)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in))
	assert.Equal(t, corridor, buf.String())

	again, err := instance.ParseString("", buf.String())
	require.NoError(t, err)
	assert.Equal(t, in, again)
}

// TestWrite_RoundTripNoOptional writes an instance whose optional list is
// empty, so the output ends on a bare list header.
func TestWrite_RoundTripNoOptional(t *testing.T) {
	t.Parallel()
	in := &instance.Instance{
		Name:     "triangle",
		Vertices: 3,
		Required: []instance.EdgeSpec{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}, {From: 2, To: 0, Weight: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in))
	assert.True(t, strings.HasSuffix(buf.String(), "LISTA_ARISTAS_NOREQ :\n"))

	again, err := instance.ParseString("", buf.String())
	require.NoError(t, err)
	assert.Equal(t, in.Name, again.Name)
	assert.Equal(t, in.Vertices, again.Vertices)
	assert.Equal(t, in.Required, again.Required)
	assert.Empty(t, again.Optional)

	none := &instance.Instance{Name: "empty", Vertices: 2}
	buf.Reset()
	require.NoError(t, instance.Write(&buf, none))
	again, err = instance.ParseString("", buf.String())
	require.NoError(t, err)
	assert.Empty(t, again.Required)
	assert.Empty(t, again.Optional)
}

func TestWrite_Invalid(t *testing.T) {
	t.Parallel()
	bad := &instance.Instance{Vertices: 2, Required: []instance.EdgeSpec{{From: 0, To: 2, Weight: 1}}}
	assert.ErrorIs(t, instance.Write(&bytes.Buffer{}, bad), instance.ErrVertexRange)
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "corridor.txt")
	require.NoError(t, os.WriteFile(path, []byte(corridor), 0o600))

	in, err := instance.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "corridor", in.Name)

	_, err = instance.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGraphs(t *testing.T) {
	t.Parallel()
	in, err := instance.ParseString("", corridor)
	require.NoError(t, err)

	required, full, err := in.Graphs()
	require.NoError(t, err)

	assert.Equal(t, 4, full.Order())
	assert.Equal(t, 3, full.EdgeCount())
	assert.Equal(t, 2, required.EdgeCount())
	assert.True(t, required.HasEdge(0, 1))
	assert.False(t, required.HasEdge(1, 2))
	assert.True(t, full.HasEdge(2, 1))
	for _, e := range required.Edges() {
		assert.True(t, e.Required)
	}
	assert.False(t, full.Edge(2).Required)

	bad := &instance.Instance{Vertices: 2, Optional: []instance.EdgeSpec{{From: 0, To: 1, Weight: -1}}}
	_, _, err = bad.Graphs()
	assert.ErrorIs(t, err, instance.ErrNegativeWeight)
}
