package configs

import (
	"embed"
)

// DefaultName 內建設定檔名稱
const DefaultName = "pairlab.yaml"

// FS provides embedded default config YAMLs for external usage.
//
//go:embed *.yaml
var FS embed.FS
