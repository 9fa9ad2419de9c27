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

package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// TextReportRender 人看的文字輸出
//
// 每份報告：最佳分數與回合數、所有最佳 Pair、（有收集時）前 N 名其他結果。
// Table 為 true 時再附上一張摘要表。
type TextReportRender struct {
	Table bool
}

func (tr *TextReportRender) Write(w io.Writer, rs []*Report) error {
	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteString(MakeLine(60))
			b.WriteString("\n")
		}
		b.WriteString(r.Text())
		if tr.Table {
			k, m := r.fmtBasic()
			b.WriteString(fmtTable("PAIRLAB", k, m))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Text 單份報告的文字版本
func (r *Report) Text() string {
	if len(r.BestPairs) == 0 {
		return Unsolved(r.Sum) + "\n"
	}
	var b strings.Builder
	runs := "runs"
	if r.Rounds == 1 {
		runs = "run"
	}
	fmt.Fprintf(&b, "\nBest Result: %s (Solved in %d %s)\n\n", strconv.FormatFloat(r.BestScore, 'f', -1, 64), r.Rounds, runs)
	b.WriteString("Best Number Combination:\n")
	for _, row := range r.BestPairs {
		b.WriteString(row.pair(r.Sum).String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if r.Collected {
		b.WriteString("Other Top Results:\n")
		for _, row := range r.OtherPairs {
			b.WriteString(row.pair(r.Sum).String())
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// Unsolved 尚未求解時的訊息
func Unsolved(sum float64) string {
	return fmt.Sprintf("This problem (finding a number pairing summing to %s) has not yet been solved.", strconv.FormatFloat(sum, 'f', -1, 64))
}

// MakeLine 分隔線
func MakeLine(length int) string {
	if length < 1 {
		return ""
	}
	return strings.Repeat("-", length)
}

// ============================================================
// ** 內部方法 **
// ============================================================

func (r *Report) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Sum":         p.Sprintf("%v", r.Sum),
		"Best Score":  p.Sprintf("%.6f", r.BestScore),
		"Rounds":      p.Sprintf("%d", r.Rounds),
		"Best Pairs":  p.Sprintf("%d", len(r.BestPairs)),
		"Other Pairs": "-",
		"Other Mean":  "-",
		"Other Std":   "-",
		"Gap":         "-",
	}
	if r.Collected {
		basic["Other Pairs"] = p.Sprintf("%d", r.OtherTotal)
	}
	if r.Dist != nil {
		basic["Other Mean"] = p.Sprintf("%.4f", r.Dist.Mean)
		basic["Other Std"] = p.Sprintf("%.4f", r.Dist.Std)
		basic["Gap"] = p.Sprintf("%.6f", r.Dist.Gap)
	}
	keys := []string{"Sum", "Best Score", "Rounds", "Best Pairs", "Other Pairs", "Other Mean", "Other Std", "Gap"}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var b strings.Builder
	b.WriteString(top)
	b.WriteString(p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right)))
	b.WriteString(divider)
	for _, k := range keys {
		b.WriteString(p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k]))))
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
