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

package pairlab

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/pairlab/configs"
	"github.com/zintix-labs/pairlab/errs"
	"github.com/zintix-labs/pairlab/setting"
	"github.com/zintix-labs/pairlab/stats"
	"go.uber.org/goleak"
)

func TestRunEmbeddedDefault(t *testing.T) {
	cfg, err := setting.Load(configs.FS, configs.DefaultName)
	if err != nil {
		t.Fatalf("load embedded setting: %v", err)
	}
	lab, err := New(cfg)
	if err != nil {
		t.Fatalf("new lab: %v", err)
	}
	var buf bytes.Buffer
	reps, err := lab.Run(&buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(reps) != 1 || reps[0].Sum != 8 {
		t.Fatalf("unexpected reports: %+v", reps)
	}
	out := buf.String()
	if !strings.Contains(out, "Best Result: ") || !strings.Contains(out, "Other Top Results:") {
		t.Fatalf("text output expected:\n%s", out)
	}
}

func TestRunJsonManySums(t *testing.T) {
	cfg := setting.Default()
	cfg.Sums = []float64{8, 0, 100}
	cfg.Format = setting.FormatJSON
	cfg.CollectOther = false

	var logs bytes.Buffer
	lab, err := New(cfg, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))
	if err != nil {
		t.Fatalf("new lab: %v", err)
	}
	var buf bytes.Buffer
	if _, err := lab.Run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	var got []stats.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("3 reports expected, got %d", len(got))
	}
	for i, r := range got {
		if r.Sum != cfg.Sums[i] || r.Collected || len(r.BestPairs) == 0 {
			t.Fatalf("report %d unexpected: %+v", i, r)
		}
	}
	if n := strings.Count(logs.String(), `"msg":"solved"`); n != 3 {
		t.Fatalf("one solved record per sum expected, got %d", n)
	}
}

func TestRunCompressedYAML(t *testing.T) {
	cfg := setting.Default()
	cfg.Format = setting.FormatYAML
	cfg.Compress = true
	lab, err := New(cfg)
	if err != nil {
		t.Fatalf("new lab: %v", err)
	}
	var buf bytes.Buffer
	if _, err := lab.Run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	dec, err := zstd.NewReader(&buf)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer dec.Close()
	raw, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("zstd read: %v", err)
	}
	if !strings.Contains(string(raw), "best_score:") {
		t.Fatalf("yaml report expected:\n%s", raw)
	}
}

func TestProgressBarWritesWhenEnabled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	cfg := setting.Default()
	cfg.Sums = []float64{1, 2, 3}
	cfg.Progress = true
	var bar bytes.Buffer
	lab, err := New(cfg, WithProgressWriter(&bar), WithRender(&stats.JsonReportRender{}))
	if err != nil {
		t.Fatalf("new lab: %v", err)
	}
	if reps := lab.Solve(); len(reps) != 3 {
		t.Fatalf("3 reports expected, got %d", len(reps))
	}
	if bar.Len() == 0 {
		t.Fatalf("progress bar should write when enabled")
	}
}

func TestNewRejectsInvalidSetting(t *testing.T) {
	cfg := setting.Default()
	cfg.Format = "xml"
	if _, err := New(cfg); errs.LevelOf(err) != errs.Warn {
		t.Fatalf("invalid format should be a warning, got %v", err)
	}
	lab, err := New(nil)
	if err != nil {
		t.Fatalf("nil setting should use defaults: %v", err)
	}
	if _, err := lab.Run(nil); err == nil {
		t.Fatalf("nil writer should fail")
	}
}
