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

package stats_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/pairlab/pair"
	"github.com/zintix-labs/pairlab/search"
	"github.com/zintix-labs/pairlab/stats"
	"gopkg.in/yaml.v3"
)

// buildResult 手動組出一個 Result，讓斷言不依賴搜尋細節
func buildResult(collect bool) *search.Result {
	res := &search.Result{
		Sum:       8,
		BestScore: pair.New(1.6875, 8).Score(),
		Rounds:    3,
		BestPairs: []pair.Pair{pair.New(1.6875, 8)},
	}
	if collect {
		res.OtherPairs = []pair.Pair{pair.New(1.75, 8), pair.New(1.5, 8), pair.New(2, 8), pair.New(1, 8)}
	}
	return res
}

func TestNewReport(t *testing.T) {
	rep := stats.NewReport(buildResult(true), 2)
	if rep.OtherTotal != 4 || len(rep.OtherPairs) != 2 {
		t.Fatalf("top 2 of 4 expected, got %d/%d", len(rep.OtherPairs), rep.OtherTotal)
	}
	if rep.OtherPairs[0].First != 1.75 || rep.OtherPairs[0].Second != 6.25 {
		t.Fatalf("unexpected first row %+v", rep.OtherPairs[0])
	}
	if rep.Dist == nil || rep.Dist.Count != 4 {
		t.Fatalf("dist expected for 4 other pairs: %+v", rep.Dist)
	}
	scores := []float64{49.21875, 48.75, 48, 42}
	mean := (scores[0] + scores[1] + scores[2] + scores[3]) / 4
	if math.Abs(rep.Dist.Mean-mean) > 1e-12 {
		t.Fatalf("mean got %v want %v", rep.Dist.Mean, mean)
	}
	if rep.Dist.Max != 49.21875 || rep.Dist.Min != 42 {
		t.Fatalf("min/max got %v/%v", rep.Dist.Min, rep.Dist.Max)
	}
	if math.Abs(rep.Dist.Gap-(rep.BestScore-49.21875)) > 1e-12 || rep.Dist.Gap <= 0 {
		t.Fatalf("gap got %v", rep.Dist.Gap)
	}
	if rep.Dist.Std <= 0 {
		t.Fatalf("std should be positive: %v", rep.Dist.Std)
	}

	none := stats.NewReport(buildResult(false), 10)
	if none.Collected || none.Dist != nil || len(none.OtherPairs) != 0 {
		t.Fatalf("report without other results: %+v", none)
	}
}

func TestTextRender(t *testing.T) {
	var buf bytes.Buffer
	rep := stats.NewReport(buildResult(true), 10)
	if err := (&stats.TextReportRender{}).Write(&buf, []*stats.Report{rep}); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Best Result: 49.26708984375 ",
		"(Solved in 3 runs)",
		"Best Number Combination:\n1.6875 and 6.3125 -> 8 (difference: 4.625, product: 10.6523 -> result: 49.2671)\n",
		"Other Top Results:\n1.75 and 6.25 -> 8 (difference: 4.5, product: 10.9375 -> result: 49.2188)\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "+---") {
		t.Fatalf("table should be off by default")
	}

	buf.Reset()
	single := buildResult(false)
	single.Rounds = 1
	r := &stats.TextReportRender{Table: true}
	if err := r.Write(&buf, []*stats.Report{stats.NewReport(single, 10), rep}); err != nil {
		t.Fatalf("write: %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, "(Solved in 1 run)") {
		t.Fatalf("singular run expected:\n%s", out)
	}
	if strings.Count(out, "Other Top Results:") != 1 {
		t.Fatalf("only the collected report lists other results:\n%s", out)
	}
	if !strings.Contains(out, stats.MakeLine(60)) || !strings.Contains(out, "| Rounds") {
		t.Fatalf("separator and table expected:\n%s", out)
	}
}

func TestJsonAndYAMLRender(t *testing.T) {
	reps := []*stats.Report{stats.NewReport(buildResult(true), 10)}

	var buf bytes.Buffer
	if err := (&stats.JsonReportRender{}).Write(&buf, reps); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []stats.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if len(got) != 1 || got[0].Rounds != 3 || len(got[0].OtherPairs) != 4 {
		t.Fatalf("unexpected json round trip %+v", got)
	}

	buf.Reset()
	if err := (&stats.YAMLReportRender{}).Write(&buf, reps); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var doc []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml decode: %v\n%s", err, buf.String())
	}
	if len(doc) != 1 || doc[0]["rounds"] != 3 {
		t.Fatalf("unexpected yaml %v", doc)
	}
	if !strings.Contains(buf.String(), "best_pairs:\n") {
		t.Fatalf("pair lists should stay in block style:\n%s", buf.String())
	}
}

func TestZstdRender(t *testing.T) {
	reps := []*stats.Report{stats.NewReport(buildResult(true), 10)}
	var plain, packed bytes.Buffer
	if err := (&stats.JsonReportRender{}).Write(&plain, reps); err != nil {
		t.Fatalf("json: %v", err)
	}
	zr := &stats.ZstdRender{Inner: &stats.JsonReportRender{}}
	if err := zr.Write(&packed, reps); err != nil {
		t.Fatalf("zstd: %v", err)
	}
	dec, err := zstd.NewReader(&packed)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer dec.Close()
	raw, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("zstd read: %v", err)
	}
	if !bytes.Equal(raw, plain.Bytes()) {
		t.Fatalf("decompressed output differs")
	}
	if err := (&stats.ZstdRender{}).Write(io.Discard, reps); err == nil {
		t.Fatalf("missing inner render should fail")
	}
}

func TestReportFromSearch(t *testing.T) {
	rep := stats.NewReport(search.SolveDefault(), 10)
	if len(rep.OtherPairs) > 10 || rep.OtherTotal < len(rep.OtherPairs) {
		t.Fatalf("top limit not applied: %d/%d", len(rep.OtherPairs), rep.OtherTotal)
	}
	if rep.Dist == nil || rep.Dist.Gap <= 0 {
		t.Fatalf("best must beat every other result: %+v", rep.Dist)
	}
}

func TestTextFromDecodedReport(t *testing.T) {
	rep := stats.NewReport(search.Solve(123.456, true), 5)
	raw, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var back stats.Report
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if got, want := back.Text(), rep.Text(); got != want {
		t.Fatalf("decoded report renders differently:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(back.Text(), "has not yet been solved") {
		t.Fatalf("decoded report with best pairs must not render as unsolved")
	}
}

func TestUnsolvedText(t *testing.T) {
	rep := stats.NewReport(&search.Result{Sum: 2.5}, 10)
	want := "This problem (finding a number pairing summing to 2.5) has not yet been solved.\n"
	if got := rep.Text(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
