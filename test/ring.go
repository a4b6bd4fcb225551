// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
)

// RingWriter is an implementation of io.Writer that keeps the most recent
// lines written to it. Useful for capturing the echo of a log, where only the
// tail of the output is interesting.
//
// A line is not complete until the newline has been written. The incomplete
// line is included by String() but it does not count towards the number of
// lines kept.
type RingWriter struct {
	lines   []string
	next    int
	full    bool
	partial strings.Builder
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size is the number of complete lines to keep.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		lines: make([]string, size),
	}, nil
}

// Lines returns the complete lines in the order they were written, without
// the newline character.
func (r *RingWriter) Lines() []string {
	if !r.full {
		return append([]string{}, r.lines[:r.next]...)
	}
	return append(append([]string{}, r.lines[r.next:]...), r.lines[:r.next]...)
}

func (r *RingWriter) String() string {
	s := strings.Builder{}
	for _, l := range r.Lines() {
		s.WriteString(l)
		s.WriteString("\n")
	}
	s.WriteString(r.partial.String())
	return s.String()
}

// Reset forgets everything that has been written.
func (r *RingWriter) Reset() {
	clear(r.lines)
	r.next = 0
	r.full = false
	r.partial.Reset()
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (int, error) {
	s := string(p)
	for {
		line, rest, ok := strings.Cut(s, "\n")
		if !ok {
			r.partial.WriteString(line)
			break
		}
		r.partial.WriteString(line)
		r.lines[r.next] = r.partial.String()
		r.partial.Reset()
		r.next++
		if r.next == len(r.lines) {
			r.next = 0
			r.full = true
		}
		s = rest
	}
	return len(p), nil
}
