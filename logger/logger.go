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

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zintix-labs/pairlab/errs"
)

// enum LogMode
type LogMode uint8

const (
	ModeDev LogMode = iota
	ModeProd
	ModeSilence
)

var modeNames = map[string]LogMode{
	"dev":     ModeDev,
	"prod":    ModeProd,
	"silence": ModeSilence,
}

func (m LogMode) String() string {
	for k, v := range modeNames {
		if v == m {
			return k
		}
	}
	return "unknown"
}

// ParseMode 由設定字串取得 LogMode；空字串視為 silence
func ParseMode(s string) (LogMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeSilence, nil
	}
	if m, ok := modeNames[s]; ok {
		return m, nil
	}
	return ModeSilence, errs.Warnf("unknown log mode: %q (dev, prod, silence)", s)
}

// NewDefaultLogger returns a *slog.Logger built from LogMode defaults.
// 日誌一律寫到 stderr，stdout 保留給搜尋結果輸出。
func NewDefaultLogger(mode LogMode) *slog.Logger {
	return slog.New(buildHandler(os.Stderr, mode))
}

// NewLoggerTo 同 NewDefaultLogger，但可指定輸出位置（測試或寫檔用）
func NewLoggerTo(w io.Writer, mode LogMode) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(buildHandler(w, mode))
}

func buildHandler(w io.Writer, logmode LogMode) slog.Handler {
	switch logmode {
	case ModeDev:
		// 開發：文字 + Debug，會看到每個掃描回合
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	case ModeProd:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		// 靜默模式：全部丟掉
		return slog.DiscardHandler
	}
}
