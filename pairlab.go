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

// Package pairlab 是 Pairlab 的組裝入口。
//
// Lab 把三樣東西組在一起：設定（要解哪些 sum、輸出格式）、搜尋器（search.Solver）、渲染器（stats.ReportRender）。
// 設定檔來源由呼叫端決定（go:embed 的 configs.FS 或 os.DirFS），Lab 本身不碰檔案路徑。
//
//	cfg, _ := setting.Load(configs.FS, configs.DefaultName)
//	lab, _ := pairlab.New(cfg)
//	reports, _ := lab.Run(os.Stdout)
package pairlab

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/pairlab/errs"
	"github.com/zintix-labs/pairlab/logger"
	"github.com/zintix-labs/pairlab/search"
	"github.com/zintix-labs/pairlab/setting"
	"github.com/zintix-labs/pairlab/stats"
)

// Lab 依設定逐一求解並輸出報告
type Lab struct {
	cfg    *setting.LabSetting
	log    *slog.Logger
	solver *search.Solver
	render stats.ReportRender
	pbw    io.Writer // 進度條輸出位置
}

// Option 調整 Lab 的組裝
type Option func(*Lab)

// WithLogger 指定 logger；未指定時依設定的 log_mode 建立
func WithLogger(log *slog.Logger) Option {
	return func(l *Lab) {
		if log != nil {
			l.log = log
		}
	}
}

// WithRender 覆寫由設定決定的渲染器
func WithRender(r stats.ReportRender) Option {
	return func(l *Lab) {
		if r != nil {
			l.render = r
		}
	}
}

// WithProgressWriter 進度條寫到 w（預設 stderr）；僅在設定開啟 progress 時有效
func WithProgressWriter(w io.Writer) Option {
	return func(l *Lab) {
		if w != nil {
			l.pbw = w
		}
	}
}

// New 建立 Lab。cfg 為 nil 時使用預設設定；cfg 會先經過 Init 檢查。
func New(cfg *setting.LabSetting, opts ...Option) (*Lab, error) {
	if cfg == nil {
		cfg = setting.Default()
	}
	if err := cfg.Init(); err != nil {
		return nil, errs.Wrap(err, "pairlab: invalid setting")
	}
	l := &Lab{
		cfg: cfg,
		pbw: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.NewDefaultLogger(cfg.Mode())
	}
	if l.render == nil {
		l.render = NewRender(cfg)
	}
	l.solver = search.NewSolver(search.WithLogger(l.log))
	return l, nil
}

// NewRender 依設定挑選渲染器；compress 開啟時外層再包一層 zstd
func NewRender(cfg *setting.LabSetting) stats.ReportRender {
	var r stats.ReportRender
	switch cfg.Format {
	case setting.FormatJSON:
		r = &stats.JsonReportRender{}
	case setting.FormatYAML:
		r = &stats.YAMLReportRender{}
	default:
		r = &stats.TextReportRender{Table: cfg.Table}
	}
	if cfg.Compress {
		r = &stats.ZstdRender{Inner: r}
	}
	return r
}

// Setting 目前使用的設定
func (l *Lab) Setting() *setting.LabSetting { return l.cfg }

// Solve 求解所有設定的 sum，回傳報告（不輸出）
func (l *Lab) Solve() []*stats.Report {
	sums := l.cfg.Sums
	reports := make([]*stats.Report, 0, len(sums))

	bar := pb.New(len(sums))
	if l.cfg.Progress {
		bar.SetWriter(l.pbw)
	} else {
		bar.SetWriter(io.Discard)
	}
	bar.Start()
	for _, sum := range sums {
		start := time.Now()
		res := l.solver.Solve(sum, l.cfg.CollectOther)
		l.log.Info("solved",
			slog.Float64("sum", res.Sum),
			slog.Float64("best_score", res.BestScore),
			slog.Int("rounds", res.Rounds),
			slog.Int("best_pairs", len(res.BestPairs)),
			slog.Int("other_pairs", len(res.OtherPairs)),
			slog.Duration("elapsed", time.Since(start)),
		)
		reports = append(reports, stats.NewReport(res, l.cfg.Top))
		bar.Increment()
	}
	used := time.Since(bar.StartTime())
	bar.Finish()
	l.log.Info("batch done", slog.Int("sums", len(sums)), slog.Duration("elapsed", used))
	return reports
}

// Run 求解後把報告寫到 w
func (l *Lab) Run(w io.Writer) ([]*stats.Report, error) {
	if w == nil {
		return nil, errs.NewFatal("pairlab: output writer required")
	}
	reports := l.Solve()
	if err := l.render.Write(w, reports); err != nil {
		return reports, errs.Wrap(err, "pairlab: render failed")
	}
	return reports, nil
}
