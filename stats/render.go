package stats

import (
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/pairlab/errs"
	"gopkg.in/yaml.v3"
)

// ReportRender 定義輸出行為；一次寫出整批報告
type ReportRender interface {
	Write(w io.Writer, rs []*Report) error
}

// Json渲染：整批輸出為一個 JSON 陣列
type JsonReportRender struct{}

func (jr *JsonReportRender) Write(w io.Writer, rs []*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs)
}

// YAML渲染
type YAMLReportRender struct{}

func (yr *YAMLReportRender) Write(w io.Writer, rs []*Report) error {
	// 外層（報告列表、pair 列表）維持展開；只有不含子 sequence 的最內層才輸出成 flow style
	return forceReadableList(w, &rs)
}

// ZstdRender 把內層渲染器的輸出以 zstd 壓縮後寫出
type ZstdRender struct {
	Inner ReportRender
	Level zstd.EncoderLevel
}

func (zr *ZstdRender) Write(w io.Writer, rs []*Report) error {
	if zr.Inner == nil {
		return errs.NewFatal("zstd render: inner render required")
	}
	level := zr.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
	if err != nil {
		return errs.Wrap(err, "zstd render: create writer")
	}
	if err := zr.Inner.Write(zw, rs); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return errs.Wrap(err, "zstd render: close writer")
	}
	return nil
}

// YAML 內層方法
func forceReadableList[T any](w io.Writer, t *T) error {
	var node yaml.Node
	if err := node.Encode(t); err != nil {
		return err
	}
	styleReadableSequences(&node)

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&node)
}

// styleReadableSequences 只把「元素都不是 mapping / sequence」的 sequence 設為 flow style。
// 由 mapping 組成的列表（報告、pair）保持 block，數值列表則輸出成 [a, b, c]。
func styleReadableSequences(n *yaml.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.MappingNode:
		for _, c := range n.Content {
			styleReadableSequences(c)
		}
	case yaml.SequenceNode:
		nested := false
		for _, c := range n.Content {
			if c != nil && (c.Kind == yaml.SequenceNode || c.Kind == yaml.MappingNode) {
				nested = true
			}
			styleReadableSequences(c)
		}
		if !nested {
			n.Style = yaml.FlowStyle
		}
	}
}
