// This file is part of gbacore.
//
// gbacore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbacore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbacore.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/arm7tdmi/gbacore/logger"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	log.Log(logger.Allow, "cpu", "this is a test")
	log.Write(w)
	if got, want := w.String(), "cpu: this is a test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	w.Reset()

	log.Log(logger.Allow, "cpu2", "this is another test")
	log.Write(w)
	want := "cpu: this is a test\ncpu2: this is another test\n"
	if got := w.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	if got := w.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	if got := w.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	if got, want := w.String(), "cpu2: this is another test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	if got := w.String(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestLoggerWraps(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")

	w := &strings.Builder{}
	log.Write(w)
	if got, want := w.String(), "b: 2\nc: 3\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type denyPermission struct{}

func (denyPermission) AllowLogging() bool { return false }

func TestLoggerPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(denyPermission{}, "cpu", "should not appear")

	w := &strings.Builder{}
	log.Write(w)
	if got := w.String(); got != "" {
		t.Fatalf("expected nothing logged, got %q", got)
	}
}
