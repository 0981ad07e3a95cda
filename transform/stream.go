package transform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stats counts processed lines by Kind.
type Stats struct {
	Lines   int
	Context int
	Removed int
	Added   int
	Plain   int
}

func (s *Stats) add(k Kind) {
	s.Lines++
	switch k {
	case Context:
		s.Context++
	case Removed:
		s.Removed++
	case Added:
		s.Added++
	default:
		s.Plain++
	}
}

// Stream rewrites r line by line into w. Each output line is flushed before
// the next read. A final line without a newline is still processed.
func Stream(r io.Reader, w io.Writer, strip bool) error {
	_, err := StreamStats(r, w, strip)
	return err
}

// StreamStats is Stream that also reports how many lines of each kind it saw.
func StreamStats(r io.Reader, w io.Writer, strip bool) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("reading difft output: %w", readErr)
		}
		if raw == "" && readErr != nil {
			return stats, nil
		}

		if strings.HasSuffix(raw, "\n") {
			raw = strings.TrimSuffix(raw[:len(raw)-1], "\r")
		}

		l := Classify(raw)
		stats.add(l.Kind)

		if _, err := bw.WriteString(emit(l, strip)); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}

		if readErr != nil {
			return stats, nil
		}
	}
}
