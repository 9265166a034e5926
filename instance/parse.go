package instance

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// section kinds after key normalization
const (
	keyVertices = "VERTICES"
	keyReqCount = "ARISTAS_REQ"
	keyOptCount = "ARISTAS_NOREQ"
	keyReqList  = "LISTA_ARISTAS_REQ"
	keyOptList  = "LISTA_ARISTAS_NOREQ"
)

var keyAliases = map[string]string{
	"VERTICES":            keyVertices,
	"ARISTAS_REQ":         keyReqCount,
	"REQUIRED_EDGES":      keyReqCount,
	"ARISTAS_NOREQ":       keyOptCount,
	"OPTIONAL_EDGES":      keyOptCount,
	"LISTA_ARISTAS_REQ":   keyReqList,
	"REQUIRED":            keyReqList,
	"LISTA_ARISTAS_NOREQ": keyOptList,
	"OPTIONAL":            keyOptList,
}

// Parse reads one instance from r. filename is used in error positions only.
func Parse(filename string, r io.Reader) (*Instance, error) {
	doc, err := parser.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%v", err)
	}

	return build(doc)
}

// ParseString parses an instance held in memory.
func ParseString(filename, text string) (*Instance, error) {
	return Parse(filename, strings.NewReader(text))
}

// ParseFile opens and parses the instance at path.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open instance")
	}
	defer f.Close()

	return Parse(path, f)
}

// build validates the syntax tree and converts it to 0-based form.
func build(doc *document) (*Instance, error) {
	var (
		in       = &Instance{Vertices: -1}
		counts   = map[string]int{}
		reqLines []*edgeLine
		optLines []*edgeLine
		seen     = map[string]bool{}
	)

	for _, e := range doc.Entries {
		if e.Text != nil {
			key, value, _ := strings.Cut(*e.Text, ":")
			value = strings.TrimSpace(value)
			switch strings.ToUpper(strings.TrimSpace(key)) {
			case "NOMBRE", "NAME":
				in.Name = value
			default:
				in.Comment = value
			}
			continue
		}

		s := e.Section
		key, ok := keyAliases[strings.ToUpper(s.Key)]
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "%s: unknown key %q", s.Pos, s.Key)
		}
		if seen[key] {
			return nil, errors.Wrapf(ErrMalformed, "%s: duplicate key %q", s.Pos, s.Key)
		}
		seen[key] = true

		switch key {
		case keyVertices, keyReqCount, keyOptCount:
			if s.Count == nil || len(s.Edges) > 0 {
				return nil, errors.Wrapf(ErrMalformed, "%s: %s needs a count", s.Pos, s.Key)
			}
			if *s.Count < 0 {
				return nil, errors.Wrapf(ErrMalformed, "%s: %s is negative", s.Pos, s.Key)
			}
			counts[key] = *s.Count
		case keyReqList, keyOptList:
			if s.Count != nil {
				return nil, errors.Wrapf(ErrMalformed, "%s: %s expects an edge list", s.Pos, s.Key)
			}
			if key == keyReqList {
				reqLines = s.Edges
			} else {
				optLines = s.Edges
			}
		}
	}

	v, ok := counts[keyVertices]
	if !ok {
		return nil, errors.Wrap(ErrMalformed, "missing VERTICES")
	}
	in.Vertices = v

	var err error
	if in.Required, err = convert(reqLines, v, "required"); err != nil {
		return nil, err
	}
	if in.Optional, err = convert(optLines, v, "optional"); err != nil {
		return nil, err
	}

	if n, ok := counts[keyReqCount]; ok && n != len(in.Required) {
		return nil, errors.Wrapf(ErrCountMismatch, "required: declared %d, listed %d", n, len(in.Required))
	}
	if n, ok := counts[keyOptCount]; ok && n != len(in.Optional) {
		return nil, errors.Wrapf(ErrCountMismatch, "optional: declared %d, listed %d", n, len(in.Optional))
	}

	return in, nil
}

// convert checks ids and weights of one edge list and shifts ids to 0-based.
func convert(lines []*edgeLine, v int, list string) ([]EdgeSpec, error) {
	out := make([]EdgeSpec, 0, len(lines))
	for _, l := range lines {
		if l.From < 1 || l.From > v || l.To < 1 || l.To > v {
			return nil, errors.Wrapf(ErrVertexRange, "%s: %s edge (%d, %d) with %d vertices", l.Pos, list, l.From, l.To, v)
		}
		if l.Weight < 0 || math.IsNaN(l.Weight) || math.IsInf(l.Weight, 0) {
			return nil, errors.Wrapf(ErrNegativeWeight, "%s: %s edge (%d, %d) weight %v", l.Pos, list, l.From, l.To, l.Weight)
		}
		out = append(out, EdgeSpec{From: l.From - 1, To: l.To - 1, Weight: l.Weight})
	}

	return out, nil
}
