package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/postman/instance"
	"github.com/katalvlaran/postman/rpp"
)

// report is the printable outcome of one solve. Vertex ids are 1-based, as
// in the instance file.
type report struct {
	Instance    string       `yaml:"instance"`
	Matcher     string       `yaml:"matcher"`
	Vertices    int          `yaml:"vertices"`
	Required    int          `yaml:"required_edges"`
	Components  int          `yaml:"components"`
	Links       []linkReport `yaml:"links,omitempty"`
	OddVertices []int        `yaml:"odd_vertices,omitempty"`
	Pairs       [][2]int     `yaml:"matched_pairs,omitempty"`
	AddedEdges  int          `yaml:"added_edges"`
	Walk        []int        `yaml:"walk"`
	Cost        float64      `yaml:"cost"`
	Elapsed     string       `yaml:"elapsed"`
}

type linkReport struct {
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

func newReport(in *instance.Instance, res *rpp.Result) *report {
	r := &report{
		Instance:   in.Name,
		Matcher:    res.Strategy.String(),
		Vertices:   in.Vertices,
		Required:   len(in.Required),
		Components: res.Components,
		AddedEdges: res.AddedEdges,
		Walk:       oneBased(res.Walk),
		Cost:       res.Cost,
		Elapsed:    res.Elapsed.String(),
	}
	for _, me := range res.Linked {
		r.Links = append(r.Links, linkReport{From: me.U + 1, To: me.V + 1, Cost: me.Weight})
	}
	r.OddVertices = oneBased(res.Odd)
	for _, p := range res.Matching {
		r.Pairs = append(r.Pairs, [2]int{p.U + 1, p.V + 1})
	}

	return r
}

func (r *report) writeText(w io.Writer) error {
	walk := make([]string, len(r.Walk))
	for i, v := range r.Walk {
		walk[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(w, "instance: %s\nmatcher: %s\nwalk: %s\ncost: %s\nelapsed: %s\n",
		r.Instance, r.Matcher, strings.Join(walk, " "),
		strconv.FormatFloat(r.Cost, 'f', -1, 64), r.Elapsed)

	return errors.Wrap(err, "write report")
}

func (r *report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}

func oneBased(vs []int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v + 1
	}

	return out
}
