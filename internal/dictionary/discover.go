// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Qualifies reports whether a file name follows the custom dictionary naming convention:
// "*dictionary*.xml" or "*custom*.dic", ignoring case.
func Qualifies(name string) bool {
	base := strings.ToLower(filepath.Base(name))

	switch FormatOf(base) {
	case FormatXML:
		return strings.Contains(base, "dictionary")

	case FormatLineList:
		return strings.Contains(base, "custom")

	default:
		return false
	}
}

// Discover returns the custom dictionaries in dir, in lexical order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("can't list dictionaries in %s: %w", dir, err)
	}

	var paths []string

	for _, e := range entries {
		if !e.Type().IsRegular() || !Qualifies(e.Name()) {
			continue
		}

		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}

// ReadFiles reads the dictionaries at paths in parallel, keeping their order.
//
// Unreadable files are logged and skipped. Cancellation of ctx is observed between files.
func ReadFiles(ctx context.Context, logger *slog.Logger, paths []string) ([]Source, error) {
	sources := make([]*Source, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := readFile(path)
			if err != nil {
				logger.WarnContext(ctx, "Skipping unreadable dictionary", slog.String("path", path), slog.Any("error", err))

				return nil
			}

			sources[i] = &src

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]Source, 0, len(sources))

	for _, src := range sources {
		if src != nil {
			result = append(result, *src)
		}
	}

	return result, nil
}

func readFile(path string) (Source, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return Source{}, err
	}

	return Source{
		Path:     path,
		Contents: contents,
		Format:   FormatOf(path),
		ModTime:  fi.ModTime(),
	}, nil
}
