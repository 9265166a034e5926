package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Write emits in in the canonical Spanish-keyed format, 1-based, one edge
// per line with the "coste" label. Parse(Write(in)) reproduces in.
func Write(w io.Writer, in *Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NOMBRE : %s\n", in.Name)
	fmt.Fprintf(bw, "COMENTARIO : %s\n", in.Comment)
	fmt.Fprintf(bw, "VERTICES : %d\n", in.Vertices)
	fmt.Fprintf(bw, "ARISTAS_REQ : %d\n", len(in.Required))
	fmt.Fprintf(bw, "ARISTAS_NOREQ : %d\n", len(in.Optional))
	fmt.Fprintln(bw, "LISTA_ARISTAS_REQ :")
	writeEdges(bw, in.Required)
	fmt.Fprintln(bw, "LISTA_ARISTAS_NOREQ :")
	writeEdges(bw, in.Optional)

	return errors.Wrap(bw.Flush(), "write instance")
}

func writeEdges(w io.Writer, edges []EdgeSpec) {
	for _, e := range edges {
		fmt.Fprintf(w, "( %d, %d)  coste %s\n", e.From+1, e.To+1, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
}
