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
	"iter"
	"math"
)

// fixedScale 定點放大倍率：每個 step 對應 1e8 個整數單位
const fixedScale float64 = 100_000_000

// conversion 一個數值單位對應多少定點單位
func conversion(step float64) float64 {
	return (1.0 / step) * fixedScale
}

// toFixed 把 value 轉成定點索引。
//
// 索引是整數值，但以 float64 保存：越後面的回合 step 越小，索引會遠超 int64 範圍。
func toFixed(value float64, step float64) float64 {
	return math.Round(value * conversion(step))
}

// fromFixed 是 toFixed 的反函數
func fromFixed(index float64, step float64) float64 {
	return index / conversion(step)
}

// grid 依序產生 [low, high] 內所有 step 倍數的候選值（兩端皆含）。
//
// 以定點索引逐格前進，每個值都由起點索引直接算出，不累加浮點 step。
// step 無法換算（0、負數或過小導致 Inf）時只產生 low 一個值。
func grid(low float64, high float64, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		conv := conversion(step)
		if !(step > 0) || math.IsInf(conv, 0) || math.IsNaN(conv) {
			yield(low)
			return
		}
		lo, hi := toFixed(low, step), toFixed(high, step)
		n := math.Floor((hi - lo) / fixedScale)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			yield(low)
			return
		}
		for k := 0; k <= int(n); k++ {
			if !yield(fromFixed(lo+float64(k)*fixedScale, step)) {
				return
			}
		}
	}
}
