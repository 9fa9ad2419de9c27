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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/zintix-labs/pairlab/errs"
	"gopkg.in/yaml.v3"
)

// GetLabSettingByYAML
// 讀取 YAML 設定（嚴格欄位檢查：多寫或拼錯欄位就報錯），補預設值並檢查後回傳。
// 未出現在檔案中的欄位沿用 Default()。
func GetLabSettingByYAML(data []byte) (*LabSetting, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Wrap(err, "setting: failed to unmarshal yaml")
	}
	if err := s.Init(); err != nil {
		return nil, errs.Wrap(err, "setting: invalid lab setting")
	}
	return s, nil
}

// GetLabSettingByJSON
// 讀取 JSON 設定，規則同 GetLabSettingByYAML
func GetLabSettingByJSON(data []byte) (*LabSetting, error) {
	s := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, errs.Wrap(err, "setting: failed to unmarshal json")
	}
	if err := s.Init(); err != nil {
		return nil, errs.Wrap(err, "setting: invalid lab setting")
	}
	return s, nil
}

// Load 從 fsys 讀取 name，依副檔名決定 JSON 或 YAML
func Load(fsys fs.FS, name string) (*LabSetting, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errs.WrapWithExtra(err, "setting: read file failed", name)
	}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return GetLabSettingByJSON(raw)
	}
	return GetLabSettingByYAML(raw)
}
