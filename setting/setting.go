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

package setting

import (
	"math"
	"slices"
	"strings"

	"github.com/zintix-labs/pairlab/errs"
	"github.com/zintix-labs/pairlab/logger"
	"github.com/zintix-labs/pairlab/pair"
)

// 輸出格式
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultTop 文字輸出時最多列出的其他結果數
const DefaultTop int = 10

var formats = []string{FormatText, FormatJSON, FormatYAML}

// LabSetting 一次執行所需的全部設定。
type LabSetting struct {
	Sums         []float64 `yaml:"sums"          json:"sums"`
	CollectOther bool      `yaml:"collect_other" json:"collect_other"`
	Top          int       `yaml:"top"           json:"top"`
	Format       string    `yaml:"format"        json:"format"`
	Compress     bool      `yaml:"compress"      json:"compress"`
	LogMode      string    `yaml:"log_mode"      json:"log_mode"`
	Progress     bool      `yaml:"progress"      json:"progress"`
	Table        bool      `yaml:"table"         json:"table"` // 文字輸出附摘要表
}

// Default 等同內建 pairlab.yaml
func Default() *LabSetting {
	return &LabSetting{
		Sums:         []float64{pair.DefaultSum},
		CollectOther: true,
		Top:          DefaultTop,
		Format:       FormatText,
		LogMode:      logger.ModeSilence.String(),
	}
}

// Init 補預設值、正規化字串，並執行檢查
func (s *LabSetting) Init() error {
	if len(s.Sums) == 0 {
		s.Sums = []float64{pair.DefaultSum}
	}
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	if s.Format == "" {
		s.Format = FormatText
	}
	return s.valid()
}

// valid 基本檢查：sum 必須是有限非負數，輸出格式與日誌模式必須認得
func (s *LabSetting) valid() error {
	for i, sum := range s.Sums {
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return errs.Warnf("sums[%d]: sum must be finite: %v", i, sum)
		}
		if sum < 0 {
			return errs.Warnf("sums[%d]: sum must be non-negative: %v", i, sum)
		}
	}
	if s.Top < 0 {
		return errs.Warnf("top must be non-negative: %d", s.Top)
	}
	if !slices.Contains(formats, s.Format) {
		return errs.Warnf("unknown format: %q (text, json, yaml)", s.Format)
	}
	if _, err := logger.ParseMode(s.LogMode); err != nil {
		return err
	}
	return nil
}

// Mode 已通過檢查的 LogMode
func (s *LabSetting) Mode() logger.LogMode {
	m, _ := logger.ParseMode(s.LogMode)
	return m
}
