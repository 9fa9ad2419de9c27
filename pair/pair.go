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

// Package pair 定義「把固定總和 sum 拆成兩個非負數」的候選值（Pair）。
//
// Pair 只儲存其中一個數（first）與總和（sum），second 一律由 sum-first 推得。
// 比較分成三個層級，彼此不可混用：
//   - Equal：精確相等（含左右交換），用於去重。
//   - IsEquivalentTo：分數差小於 Epsilon，只用於判斷收斂。
//   - Compare：依分數的全序，用於挑選最大值。
package pair

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSum 預設題目：兩數相加為 8
const DefaultSum float64 = 8.0

// Epsilon 分數差小於此值即視為等價（收斂判斷用）
const Epsilon float64 = 1e-10

// displayPrecision String() 輸出時的小數位數
const displayPrecision = 4

// Pair 一組候選拆分 (first, sum-first)。
//
// 零值 Pair 即 (0, 0)。任何建構或設定都會把 first 夾在 [0, sum] 之間。
type Pair struct {
	first float64
	sum   float64
}

// New 以 requested 作為 first 建立 Pair，超出範圍的輸入會被靜默修正。
func New(requested float64, sum float64) Pair {
	return Pair{first: clamp(requested, sum), sum: sum}
}

// Default 以 DefaultSum 建立 Pair。
func Default(requested float64) Pair {
	return New(requested, DefaultSum)
}

func (p Pair) First() float64  { return p.first }
func (p Pair) Second() float64 { return p.sum - p.first }
func (p Pair) Sum() float64    { return p.sum }

// SetFirst 設定 first（先夾到 [0, sum]）。
func (p *Pair) SetFirst(requested float64) {
	p.first = clamp(requested, p.sum)
}

// SetSecond 設定 second（先夾到 [0, sum]），實際儲存的仍是 first。
func (p *Pair) SetSecond(requested float64) {
	p.first = p.sum - clamp(requested, p.sum)
}

func (p Pair) Product() float64    { return p.first * p.Second() }
func (p Pair) Difference() float64 { return math.Abs(p.first - p.Second()) }

// Score 目標函數 |a-b| * (a*b)
func (p Pair) Score() float64 { return p.Product() * p.Difference() }

// DistanceTo 兩個 Pair 分數差的絕對值
func (p Pair) DistanceTo(o Pair) float64 {
	return math.Abs(p.Score() - o.Score())
}

// IsEquivalentTo 回報兩者分數是否近到可視為相同。
// 等價比相等弱：等價的兩個 Pair 仍可能 !Equal。
func (p Pair) IsEquivalentTo(o Pair) bool {
	return p.DistanceTo(o) < Epsilon
}

// Equal 總和相同，且 first 相同或互為左右交換。
// 交換比較兩個方向都要看：sum - first 有捨入誤差，只看一邊會讓 a.Equal(b) 與 b.Equal(a) 不一致。
func (p Pair) Equal(o Pair) bool {
	if p.sum != o.sum {
		return false
	}
	return p.first == o.first || p.first == o.Second() || p.Second() == o.first
}

// Compare 依分數排序：p 較小回傳 -1，較大回傳 1，分數相同回傳 0（不以 first 決勝負）。
func (p Pair) Compare(o Pair) int {
	l, r := p.Score(), o.Score()
	switch {
	case l > r:
		return 1
	case l < r:
		return -1
	default:
		return 0
	}
}

func (p Pair) Less(o Pair) bool { return p.Compare(o) < 0 }

// String 例如 "1.6906 and 6.3094 -> 8 (difference: 4.6188, product: 10.6667 -> result: 49.2672)"
func (p Pair) String() string {
	return fmt.Sprintf("%s and %s -> %s (difference: %s, product: %s -> result: %s)",
		FormatFloat(p.first, displayPrecision),
		FormatFloat(p.Second(), displayPrecision),
		strconv.FormatFloat(p.sum, 'f', -1, 64),
		FormatFloat(p.Difference(), displayPrecision),
		FormatFloat(p.Product(), displayPrecision),
		FormatFloat(p.Score(), displayPrecision),
	)
}

// clamp 取絕對值後不超過 sum
func clamp(requested float64, sum float64) float64 {
	nonNegative := math.Abs(requested)
	if nonNegative > sum {
		return sum
	}
	return nonNegative
}

// FormatFloat 以 precision 位小數輸出並去掉尾端多餘的 0（整數不帶小數點）。
func FormatFloat(v float64, precision int) string {
	if v == math.Trunc(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
