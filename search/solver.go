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

// Package search 以「逐步放大（zoom）」的方式在 [0, sum/2] 找出使 Pair.Score 最大的拆分。
//
// 每一回合以固定 step 掃過一個區間，找出該回合最佳值後，
// 以它為中心縮小區間、提高精度再掃一次；直到新回合不再更好（或等價）為止。
// 回合數以 MaxRounds 為硬上限，保證一定結束。
//
// 因對稱性只需掃描一半的定義域：[sum/2, sum] 只會找到互為鏡像的 Pair。
// 本包不會回傳錯誤：任何輸入都會得到一個盡力而為的結果。
package search

import (
	"log/slog"
	"math"

	"github.com/zintix-labs/pairlab/pair"
)

// MaxRounds 掃描回合數的硬上限
const MaxRounds int = 40

// OtherMinStep step 小於此值的回合不再收集其他結果
const OtherMinStep float64 = 0.01

// Solver 持有搜尋時的外部協作者（目前只有 logger），本身不保存任何搜尋狀態，可重複使用。
type Solver struct {
	log *slog.Logger
}

type Option func(*Solver)

// WithLogger 每個掃描回合輸出一筆 Debug 紀錄
func WithLogger(log *slog.Logger) Option {
	return func(s *Solver) {
		if log != nil {
			s.log = log
		}
	}
}

func NewSolver(opts ...Option) *Solver {
	s := &Solver{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSolver = NewSolver()

// Solve 使用不輸出日誌的預設 Solver
func Solve(sum float64, collectOther bool) *Result {
	return defaultSolver.Solve(sum, collectOther)
}

// SolveDefault 預設題目：sum = 8 並收集其他結果
func SolveDefault() *Result {
	return Solve(pair.DefaultSum, true)
}

// Solve 找出 sum 的最佳拆分。
//
// sum 為負時取絕對值；NaN / Inf 視為 0。
func (s *Solver) Solve(sum float64, collectOther bool) *Result {
	sum = sanitize(sum)
	st := newState(sum, collectOther)

	low, high, step := 0.0, sum/2, sum/4
	for st.rounds < MaxRounds {
		st.rounds++
		r := st.scan(low, high, step)
		s.log.Debug("scan round",
			slog.Int("round", st.rounds),
			slog.Float64("low", low),
			slog.Float64("high", high),
			slog.Float64("step", step),
			slog.Float64("best_first", r.best.First()),
			slog.Float64("best_score", r.best.Score()),
		)

		// 兩個條件在完全相等時重疊，保留兩者
		if r.best.Compare(st.overall) <= 0 || r.best.IsEquivalentTo(st.overall) {
			if len(st.best) == 0 {
				// 第一回合就收斂（例如 sum = 0）：該回合的並列最佳即為答案
				st.best = r.ties
			}
			break
		}
		st.promote(r)

		target := st.overall.First()
		margin := step / 2
		low, high = math.Max(low, target-margin), math.Min(high, target+margin)
		step = step / float64(st.rounds*4)
	}
	return st.result()
}

// state 搜尋過程的累積狀態，由 Solve 的迴圈逐回合更新
type state struct {
	sum          float64
	collectOther bool
	// zero 分數恆為 0 的退化 Pair，作為起始要打敗的對象
	zero    pair.Pair
	overall pair.Pair
	best    []pair.Pair
	other   []pair.Pair
	rounds  int
}

// round 單一回合的結果，只在該回合內有效
type round struct {
	step  float64
	best  pair.Pair
	ties  []pair.Pair
	other []pair.Pair
}

func newState(sum float64, collectOther bool) *state {
	zero := pair.New(0, sum)
	st := &state{
		sum:          sum,
		collectOther: collectOther,
		zero:         zero,
		overall:      zero,
		best:         make([]pair.Pair, 0, 4),
	}
	if collectOther {
		st.other = make([]pair.Pair, 0, 64)
	}
	return st
}

// eligible 可否進入「其他結果」：非退化 Pair、回合夠粗、且有要求收集
func (st *state) eligible(p pair.Pair, step float64) bool {
	return st.collectOther && step >= OtherMinStep && !p.Equal(st.zero)
}

func (st *state) keep(dst *[]pair.Pair, p pair.Pair, step float64) {
	if st.eligible(p, step) {
		*dst = append(*dst, p)
	}
}

// scan 掃描 [low, high]，回傳該回合的最佳、並列最佳與其他結果
func (st *state) scan(low float64, high float64, step float64) *round {
	r := &round{step: step, best: st.zero}
	for v := range grid(low, high, step) {
		p := pair.New(v, st.sum)
		switch c := p.Compare(r.best); {
		case c > 0:
			for _, t := range r.ties {
				st.keep(&r.other, t, step)
			}
			r.best = p
			r.ties = append(r.ties[:0], p)
		case c == 0:
			r.ties = append(r.ties, p)
		default:
			st.keep(&r.other, p, step)
		}
	}
	return r
}

// promote 回合結果優於目前最佳：舊的最佳降級到其他結果，回合並列最佳升為新的最佳
func (st *state) promote(r *round) {
	st.overall = r.best
	for _, b := range st.best {
		st.keep(&r.other, b, r.step)
	}
	st.best = r.ties
	if st.collectOther {
		st.other = append(st.other, r.other...)
	}
}

func (st *state) result() *Result {
	res := &Result{
		Sum:       st.sum,
		BestScore: st.overall.Score(),
		Rounds:    st.rounds,
		BestPairs: append([]pair.Pair(nil), st.best...),
	}
	if st.collectOther {
		res.OtherPairs = sortOther(st.other)
	}
	return res
}

func sanitize(sum float64) float64 {
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0
	}
	return math.Abs(sum)
}
