// File: edgelist.go
// Role: plain-text edge-list reader and writer.
// Determinism:
//   - WriteEdgeList emits edges in (u asc, v asc) order for sorted input.
// Concurrency:
//   - Stateless; callers own the reader/writer.

package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/csr"
)

// verticesDirective is the comment that fixes the vertex count.
const verticesDirective = "# vertices"

// ErrBadLine is returned for an edge line that cannot be parsed.
var ErrBadLine = errors.New("converters: malformed edge-list line")

// ReadEdgeList parses an undirected edge list from r.
//
// The vertex count is max(highest id + 1, "# vertices N").
//
// Complexity: O(m) expected plus CSR materialization.
func ReadEdgeList(r io.Reader) (*csr.Graph, error) {
	es := builder.NewEdgeSet()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, verticesDirective) {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(text, verticesDirective)))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, line, text)
			}
			es.Grow(n)
			continue
		}
		if text[0] == '#' || text[0] == '%' {
			continue
		}

		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, line, text)
		}
		u, err := parseID(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadLine, line, err)
		}
		v, err := parseID(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadLine, line, err)
		}
		if u == v {
			es.Grow(u + 1)
			continue
		}
		if _, err = es.Add(u, v); err != nil {
			return nil, fmt.Errorf("converters: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: read: %w", err)
	}

	return es.Graph()
}

// parseID parses a non-negative vertex id within the csr.VertexID range.
func parseID(s string) (int, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// WriteEdgeList writes g as "u v" lines with u < v, preceded by the
// vertices directive.
func WriteEdgeList(w io.Writer, g *csr.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s %d\n", verticesDirective, g.VertexCount()); err != nil {
		return err
	}
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbors(csr.VertexID(v)) {
			if int(u) <= v {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", v, u); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
