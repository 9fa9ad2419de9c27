package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zintix-labs/pairlab"
	"github.com/zintix-labs/pairlab/configs"
	"github.com/zintix-labs/pairlab/errs"
	"github.com/zintix-labs/pairlab/logger"
	"github.com/zintix-labs/pairlab/perf"
	"github.com/zintix-labs/pairlab/setting"
)

type flags struct {
	config   string
	sums     []float64
	other    bool
	top      int
	format   string
	out      string
	logMode  string
	progress bool
	table    bool
	pprof    string
	pprofDir string
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := loadSetting(f.config)
	if err != nil {
		return err
	}
	f.apply(cmd, cfg)

	lab, err := pairlab.New(cfg,
		pairlab.WithLogger(logger.NewLoggerTo(cmd.ErrOrStderr(), cfg.Mode())),
		pairlab.WithProgressWriter(cmd.ErrOrStderr()),
	)
	if err != nil {
		return err
	}

	w, closeOut, err := output(cmd, f.out)
	if err != nil {
		return err
	}
	runErr := perf.RunPProf(func() error {
		_, err := lab.Run(w)
		return err
	}, f.pprof, f.pprofDir)
	if err := closeOut(); err != nil && runErr == nil {
		runErr = errs.WrapWithExtra(err, "failed to close output", f.out)
	}
	return runErr
}

// loadSetting 沒給路徑時讀內建設定
func loadSetting(path string) (*setting.LabSetting, error) {
	if path == "" {
		return setting.Load(configs.FS, configs.DefaultName)
	}
	return setting.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// apply 只覆寫有明確給的旗標
func (f *flags) apply(cmd *cobra.Command, cfg *setting.LabSetting) {
	changed := cmd.Flags().Changed
	if changed("sum") {
		cfg.Sums = f.sums
	}
	if changed("other") {
		cfg.CollectOther = f.other
	}
	if changed("top") {
		cfg.Top = f.top
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("log") {
		cfg.LogMode = f.logMode
	}
	if changed("progress") {
		cfg.Progress = f.progress
	}
	if changed("table") {
		cfg.Table = f.table
	}
	if strings.EqualFold(filepath.Ext(f.out), ".zst") {
		cfg.Compress = true
	}
}

func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, errs.WrapWithExtra(err, "failed to create output dir", dir)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errs.WrapWithExtra(err, "failed to create output", path)
	}
	return file, file.Close, nil
}
