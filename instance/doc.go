// Package instance reads and writes rural-postman instances in the textual
// format of the classic Corberán benchmark files:
//
//	NOMBRE : ALBAIDAA
//	COMENTARIO : small test
//	VERTICES : 4
//	ARISTAS_REQ : 2
//	ARISTAS_NOREQ : 1
//	LISTA_ARISTAS_REQ :
//	( 1, 2)  coste 1
//	( 3, 4)  coste 1
//	LISTA_ARISTAS_NOREQ :
//	( 2, 3)  coste 5
//
// English keys are accepted as aliases (NAME, COMMENT, REQUIRED_EDGES,
// OPTIONAL_EDGES, REQUIRED, OPTIONAL), the "coste" label is optional, an
// edge may also be written "(v, w), weight", and "#" starts a comment.
// Keys are case-insensitive; sections may appear in any order.
//
// Vertex ids are 1-based in text and 0-based in an Instance. Parse rejects
// ids outside [1, V], negative or non-finite weights, and declared edge
// counts that disagree with the lists; every such error wraps one of the
// package sentinels so callers can classify it with errors.Is.
//
// Graphs turns an Instance into the two graphs the solver needs: the full
// graph G and the required-edge subgraph Gr.
package instance
