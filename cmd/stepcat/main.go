// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command stepcat tails a file and either prints its lines or counts
// them, driven by an iteratee.Step over the lines sources.FromFile
// delivers.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/streamkit/iteratee"
	"github.com/streamkit/iteratee/effects"
	"github.com/streamkit/iteratee/sources"
)

func main() {
	path := flag.String("path", "", "file to tail (required)")
	count := flag.Bool("count", false, "print the number of lines instead of the lines themselves")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *path == "" {
		logger.Error("-path is required")
		os.Exit(2)
	}

	if err := run(logger, *path, *count); err != nil {
		logger.Error("stepcat failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string, count bool) error {
	m := effects.Sync

	if count {
		s := iteratee.Fold[any, string, int](m, 0, func(n int, _ string) int { return n + 1 })
		result := sources.FromFile[any, int](effects.Run[string, int], s, path)
		final, ok := result.GetRight()
		if !ok {
			err, _ := result.GetLeft()
			return err
		}
		if !final.IsDone() {
			return fmt.Errorf("stepcat: %s: unexpected stream state", path)
		}
		fmt.Println(final.UnsafeValue())
		return nil
	}

	s := iteratee.Drain[any, string](m)
	result := sources.FromFile[any, []string](effects.Run[string, []string], s, path)
	final, ok := result.GetRight()
	if !ok {
		err, _ := result.GetLeft()
		return err
	}
	if !final.IsDone() {
		return fmt.Errorf("stepcat: %s: unexpected stream state", path)
	}
	for _, line := range final.UnsafeValue() {
		fmt.Println(line)
	}
	logger.Debug("stepcat finished", "path", path, "lines", len(final.UnsafeValue()))
	return nil
}
