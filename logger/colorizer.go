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

package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	dimPen    = "\033[2m"
	redPen    = "\033[31m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is dimmed and entries that mention an error or fault are colored red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	var s strings.Builder

	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			s.WriteString("\n")
			continue
		}

		s.WriteString(dimPen)
		s.WriteString(tag)
		s.WriteString(":")
		s.WriteString(normalPen)
		s.WriteString(" ")
		if strings.Contains(detail, "error") || strings.Contains(detail, "fault") {
			s.WriteString(redPen)
			s.WriteString(detail)
			s.WriteString(normalPen)
		} else {
			s.WriteString(detail)
		}
		s.WriteString("\n")
	}

	if _, err := io.WriteString(c.out, s.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}

// EchoWriter returns a writer suitable for SetEcho(). If the file is a
// terminal the writer applies color, otherwise the file is returned
// unchanged.
func EchoWriter(f *os.File) io.Writer {
	if term.IsTerminal(int(f.Fd())) {
		return NewColorizer(f)
	}
	return f
}
