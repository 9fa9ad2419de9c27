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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := new(flags)
	cmd := &cobra.Command{
		Use:   "pairlab",
		Short: "Find the split a + b = sum that maximizes |a - b| * a * b",
		Long: `pairlab 以逐步縮放的格點搜尋找出 a + b = sum 且使 |a - b| * a * b 最大的 (a, b)。

沒有指定 --config 時使用內建設定；旗標會覆寫設定檔的值。`,
		Example: `  pairlab
  pairlab -s 8 -s 123.456 --top 5
  pairlab -c pairlab.yaml -f json -o out.json.zst`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "Path to a yaml/json setting file (default: embedded)")
	fs.Float64SliceVarP(&f.sums, "sum", "s", nil, "Sum to split; repeatable (overrides config)")
	fs.BoolVar(&f.other, "other", true, "Collect other near-best results")
	fs.IntVar(&f.top, "top", 0, "Number of other results to list, 0 = all (overrides config)")
	fs.StringVarP(&f.format, "format", "f", "", "Output format: text, json, yaml (overrides config)")
	fs.StringVarP(&f.out, "out", "o", "", "Write output to file; a .zst suffix enables compression")
	fs.StringVar(&f.logMode, "log", "", "Log mode: dev, prod, silence (overrides config)")
	fs.BoolVar(&f.progress, "progress", false, "Show a progress bar on stderr")
	fs.BoolVar(&f.table, "table", false, "Append a summary table to text output")
	fs.StringVar(&f.pprof, "pprof", "", "pprof: '', cpu, heap, allocs")
	fs.StringVar(&f.pprofDir, "pprof-dir", "", "Directory for pprof files (default: build/profiling)")
	return cmd
}
