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

// Package stats 把 search.Result 整理成可輸出的報告（文字 / JSON / YAML，可選 zstd 壓縮）。
package stats

import (
	"github.com/zintix-labs/pairlab/pair"
	"github.com/zintix-labs/pairlab/search"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report 單一 sum 的搜尋報告
type Report struct {
	Sum       float64 `json:"Sum"       yaml:"sum"`
	BestScore float64 `json:"BestScore" yaml:"best_score"`
	Rounds    int     `json:"Rounds"    yaml:"rounds"`
	// Collected 是否有收集其他結果
	Collected  bool        `json:"Collected"            yaml:"collected"`
	BestPairs  []PairRow   `json:"BestPairs"            yaml:"best_pairs"`
	OtherPairs []PairRow   `json:"OtherPairs,omitempty" yaml:"other_pairs,omitempty"`
	OtherTotal int         `json:"OtherTotal"           yaml:"other_total"`
	Dist       *DistReport `json:"Dist,omitempty"       yaml:"dist,omitempty"`
}

// PairRow Pair 的輸出形式（含所有衍生值）
type PairRow struct {
	First      float64 `json:"First"      yaml:"first"`
	Second     float64 `json:"Second"     yaml:"second"`
	Difference float64 `json:"Difference" yaml:"difference"`
	Product    float64 `json:"Product"    yaml:"product"`
	Score      float64 `json:"Score"      yaml:"score"`
}

// DistReport 其他結果的分數分佈
//
// 只有收集到至少一筆其他結果時才會產生。Std 為樣本標準差，少於兩筆時為 0。
type DistReport struct {
	Count int     `json:"Count" yaml:"count"`
	Mean  float64 `json:"Mean"  yaml:"mean"`
	Std   float64 `json:"Std"   yaml:"std"`
	Min   float64 `json:"Min"   yaml:"min"`
	Max   float64 `json:"Max"   yaml:"max"`
	// Gap 最佳分數與第二名的差距
	Gap float64 `json:"Gap" yaml:"gap"`
}

// NewReport 由搜尋結果建立報告；top 為列出的其他結果上限（<= 0 表示全部）
func NewReport(res *search.Result, top int) *Report {
	r := &Report{
		Sum:        res.Sum,
		BestScore:  res.BestScore,
		Rounds:     res.Rounds,
		Collected:  res.Collected(),
		BestPairs:  rows(res.BestPairs),
		OtherPairs: rows(res.TopOther(top)),
		OtherTotal: len(res.OtherPairs),
	}
	if len(res.OtherPairs) > 0 {
		r.Dist = dist(res.BestScore, res.OtherPairs)
	}
	return r
}

func rows(ps []pair.Pair) []PairRow {
	out := make([]PairRow, len(ps))
	for i, p := range ps {
		out[i] = PairRow{
			First:      p.First(),
			Second:     p.Second(),
			Difference: p.Difference(),
			Product:    p.Product(),
			Score:      p.Score(),
		}
	}
	return out
}

// pair 還原成 Pair；sum 為報告的 Sum
func (pr PairRow) pair(sum float64) pair.Pair {
	return pair.New(pr.First, sum)
}

func dist(best float64, other []pair.Pair) *DistReport {
	scores := make([]float64, len(other))
	for i, p := range other {
		scores[i] = p.Score()
	}
	d := &DistReport{
		Count: len(scores),
		Min:   floats.Min(scores),
		Max:   floats.Max(scores),
	}
	if len(scores) < 2 {
		d.Mean = scores[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(scores, nil)
	}
	d.Gap = best - d.Max
	return d
}
