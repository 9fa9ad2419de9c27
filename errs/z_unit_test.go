// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errs

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWrapKeepsLevel(t *testing.T) {
	base := Warnf("sum %d invalid", 3)
	wrapped := Wrap(base, "load setting")
	if wrapped.ErrLv != Warn {
		t.Fatalf("wrap of warn should stay warn, got %s", wrapped.ErrLv)
	}
	if !errors.Is(wrapped, base) {
		t.Fatalf("errors.Is should reach the cause")
	}
	foreign := Wrap(io.EOF, "read")
	if foreign.ErrLv != Fatal || !errors.Is(foreign, io.EOF) {
		t.Fatalf("foreign cause must be fatal and unwrap to io.EOF")
	}
}

func TestErrorString(t *testing.T) {
	e := WrapWithExtra(io.EOF, "read setting", "pairlab.yaml")
	s := e.Error()
	for _, want := range []string{"errlv=fatal", "read setting", "extra: pairlab.yaml", "cause: EOF"} {
		if !strings.Contains(s, want) {
			t.Fatalf("%q missing %q", s, want)
		}
	}
}

func TestLevelOf(t *testing.T) {
	if LevelOf(nil) != None {
		t.Fatalf("nil should be None")
	}
	if LevelOf(io.EOF) != Fatal {
		t.Fatalf("foreign error should be Fatal")
	}
	if LevelOf(Wrap(NewWarn("x"), "y")) != Warn {
		t.Fatalf("wrapped warn should be Warn")
	}
	if _, ok := AsErr(io.EOF); ok {
		t.Fatalf("io.EOF is not *E")
	}
}
