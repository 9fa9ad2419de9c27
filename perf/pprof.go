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
	"runtime"
	"runtime/pprof"

	"github.com/zintix-labs/pairlab/errs"
)

// DefaultDir pprof 檔案寫入路徑
const DefaultDir = "build/profiling"

// RunPProf 依 mode 決定要不要包一層 profiling 再執行 exe。
//
// mode: "" 不做 profiling；"cpu"、"heap"、"allocs" 分別寫出對應的 .pprof 檔到 dir。
// exe 的錯誤原樣回傳；profiling 本身的錯誤以 errs 包裝。
func RunPProf(exe func() error, mode string, dir string) error {
	if dir == "" {
		dir = DefaultDir
	}
	switch mode {
	case "":
		return exe()
	case "cpu":
		return PProfCPU(exe, dir)
	case "heap":
		return afterRun(exe, dir, "heap", true)
	case "allocs":
		return afterRun(exe, dir, "allocs", false)
	default:
		return errs.Warnf("unknown pprof mode: %q (cpu, heap, allocs)", mode)
	}
}

// PProfCPU 對 exe 做 CPU profiling，輸出 cpu.pprof。
// 也可以拿來做構建時給 pgo 的優化 blueprint。
func PProfCPU(exe func() error, dir string) error {
	f, err := create(dir, "cpu")
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return errs.Wrap(err, "failed to start cpu profile")
	}
	defer pprof.StopCPUProfile()
	return exe()
}

// afterRun 在 exe() 執行完後寫出一次 profile 快照。
// heap 會先呼叫 runtime.GC()，讓快照貼近最新的 live objects。
func afterRun(exe func() error, dir string, name string, gc bool) error {
	runErr := exe()
	if gc {
		runtime.GC()
	}
	f, err := create(dir, name)
	if err != nil {
		return errors.Join(runErr, err)
	}
	defer f.Close()
	if prof := pprof.Lookup(name); prof != nil {
		if err := prof.WriteTo(f, 0); err != nil {
			return errors.Join(runErr, errs.Wrap(err, "failed to write "+name+" profile"))
		}
	}
	return runErr
}

func create(dir string, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.WrapWithExtra(err, "failed to create profiling dir", dir)
	}
	path := filepath.Join(dir, name+".pprof")
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.WrapWithExtra(err, "failed to create profile", path)
	}
	return f, nil
}
