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

package search

import (
	"slices"

	"github.com/zintix-labs/pairlab/pair"
)

// Result 一次搜尋的最終結果，建立後不再變動。
type Result struct {
	Sum       float64
	BestScore float64
	// Rounds 實際執行的掃描回合數（最多 MaxRounds）
	Rounds int
	// BestPairs 分數並列最佳的所有 Pair
	BestPairs []pair.Pair
	// OtherPairs 其他接近最佳的 Pair，依分數遞減且不重複；未要求收集時為 nil
	OtherPairs []pair.Pair
}

// Collected 回報這次搜尋是否有收集其他結果
func (r *Result) Collected() bool {
	return r.OtherPairs != nil
}

// TopOther 回傳前 n 名的其他結果（n <= 0 表示全部）
func (r *Result) TopOther(n int) []pair.Pair {
	if n <= 0 || n >= len(r.OtherPairs) {
		return slices.Clone(r.OtherPairs)
	}
	return slices.Clone(r.OtherPairs[:n])
}

// sortOther 依分數遞減排序，並以 Pair.Equal 去除重複。
//
// 分數相同但互為左右交換的 Pair 在浮點運算下分數可能差一個 ulp，
// 所以不能只比較相鄰元素，改為對已保留的結果逐一比對。
func sortOther(other []pair.Pair) []pair.Pair {
	sorted := slices.Clone(other)
	slices.SortStableFunc(sorted, func(a, b pair.Pair) int {
		return b.Compare(a)
	})
	out := make([]pair.Pair, 0, len(sorted))
	for _, p := range sorted {
		if !slices.ContainsFunc(out, p.Equal) {
			out = append(out, p)
		}
	}
	return out
}
