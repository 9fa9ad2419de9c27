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

package perf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zintix-labs/pairlab/errs"
	"github.com/zintix-labs/pairlab/search"
)

func TestRunPProfWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	for _, mode := range []string{"heap", "allocs"} {
		ran := false
		err := RunPProf(func() error {
			ran = search.SolveDefault().Rounds > 0
			return nil
		}, mode, dir)
		if err != nil || !ran {
			t.Fatalf("%s: err=%v ran=%v", mode, err, ran)
		}
		info, err := os.Stat(filepath.Join(dir, mode+".pprof"))
		if err != nil || info.Size() == 0 {
			t.Fatalf("%s profile missing: %v", mode, err)
		}
	}
}

func TestRunPProfKeepsExeErrorWhenProfileFails(t *testing.T) {
	// dir 指向一般檔案，建立 profiling 目錄必定失敗
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	want := errors.New("boom")
	for _, mode := range []string{"heap", "allocs"} {
		err := RunPProf(func() error { return want }, mode, blocker)
		if !errors.Is(err, want) {
			t.Fatalf("%s: exe error lost: %v", mode, err)
		}
		if _, ok := errs.AsErr(err); !ok {
			t.Fatalf("%s: profile error lost: %v", mode, err)
		}
	}
}

func TestRunPProfPassThrough(t *testing.T) {
	want := errors.New("boom")
	if err := RunPProf(func() error { return want }, "", t.TempDir()); !errors.Is(err, want) {
		t.Fatalf("expected exe error, got %v", err)
	}
	if err := RunPProf(func() error { return nil }, "trace", t.TempDir()); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
