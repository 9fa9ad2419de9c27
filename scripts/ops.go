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

// ops 開發用的任務腳本：go run ./scripts [task]
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// 收集 pgo 用 profile 時跑的 sum
var pgoSums = []string{"8", "123.456", "1000", "0.5", "1e6"}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts [test|test-detail|pgo]")
		os.Exit(1)
	}
	if err := selectTask(os.Args[1]); err != nil {
		printColor(colorRed, err.Error())
		os.Exit(1)
	}
}

func selectTask(task string) error {
	switch task {
	case "test":
		printColor(colorGreen, "running tests")
		return goTest(keepSummary, "./...", "-cover", "-count=1")
	case "test-detail":
		printColor(colorGreen, "running tests (detail)")
		return goTest(dropNoTestFiles, "./...", "-v", "-count=1")
	case "pgo":
		return runPGO()
	default:
		return fmt.Errorf("unknown task: %s", task)
	}
}

// goTest 先清 test cache，再跑 go test，每行輸出經 filter 決定要不要印
func goTest(filter func(string) bool, args ...string) error {
	if err := exec.Command("go", "clean", "-testcache").Run(); err != nil {
		printColor(colorYellow, "go clean -testcache failed: "+err.Error())
	}
	cmd := exec.Command("go", append([]string{"test"}, args...)...)
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout // 2>&1，編譯錯誤才看得到
	if err := cmd.Start(); err != nil {
		return err
	}
	printLines(pipe, filter)
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("tests finished with errors: %w", err)
	}
	return nil
}

// runPGO 以 cpu profile 跑一輪 CLI，結果放到 cmd/pairlab/default.pgo 供 go build -pgo=auto 使用
func runPGO() error {
	printColor(colorGreen, "collecting cpu profile")
	dir := filepath.Join("build", "profiling")
	args := []string{"run", "./cmd/pairlab", "--pprof", "cpu", "--pprof-dir", dir, "-o", os.DevNull}
	for _, s := range pgoSums {
		args = append(args, "-s", s)
	}
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}
	raw, err := os.ReadFile(filepath.Join(dir, "cpu.pprof"))
	if err != nil {
		return err
	}
	dst := filepath.Join("cmd", "pairlab", "default.pgo")
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return err
	}
	printColor(colorGreen, "wrote "+dst)
	return nil
}

func printLines(r io.Reader, filter func(string) bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !filter(line) {
			continue
		}
		switch {
		case strings.HasPrefix(line, "ok"):
			printColor(colorGreen, line)
		case strings.HasPrefix(line, "FAIL"), strings.Contains(line, "build failed"), strings.Contains(line, "setup failed"):
			printColor(colorRed, line)
		default:
			fmt.Println(line)
		}
	}
}

// keepSummary 等同 grep -E '^(ok|FAIL)'，但保留建置錯誤
func keepSummary(line string) bool {
	return strings.HasPrefix(line, "ok") || strings.HasPrefix(line, "FAIL") ||
		strings.Contains(line, "build failed") || strings.Contains(line, "setup failed")
}

func dropNoTestFiles(line string) bool {
	return !strings.Contains(line, "[no test files]")
}

func printColor(color string, msg string) {
	fmt.Printf("%s%s%s\n", color, msg, colorReset)
}
