// Copyright 2020-2026 The SVFront Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"errors"
	"io"
	"io/fs"
	"strings"
)

// Opener is a mechanism for reading a file's contents given a path.
//
// A return of [fs.ErrNotExist] is given special treatment by [Openers]:
// it means "try the next opener", not "the compilation failed".
type Opener interface {
	Open(path string) (text string, err error)
}

// Map implements [Opener] via lookup in a plain map, for feeding a
// compilation in-memory source without touching a filesystem, used
// heavily by this module's own tests.
type Map map[string]string

// Open implements [Opener].
func (m Map) Open(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fs.ErrNotExist
	}
	return text, nil
}

// FS adapts an [fs.FS] into an [Opener].
type FS struct {
	fs.FS
}

// Open implements [Opener].
func (o FS) Open(path string) (string, error) {
	f, err := o.FS.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	if _, err := io.Copy(&buf, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Openers tries a sequence of [Opener]s in order, moving to the next one
// whenever one reports [fs.ErrNotExist].
type Openers []Opener

// Open implements [Opener].
func (os Openers) Open(path string) (string, error) {
	for _, o := range os {
		text, err := o.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return text, err
	}
	return "", fs.ErrNotExist
}
