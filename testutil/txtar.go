//  Copyright (c) 2023 Uber Technologies, Inc.
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

// Package testutil loads golden test fixtures for the end-to-end scenarios
// in the golden package. Fixtures are stored as txtar archives: a free-form
// comment describing the scenario followed by one or more named file
// sections (here, the turtle-walk program itself). The expected results
// are asserted by the tests that load each fixture.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// Archive is a parsed fixture: the free-form leading comment plus every
// named section, keyed by file name.
type Archive struct {
	Comment string
	Files   map[string]string
}

// LoadArchive parses the txtar file at path, failing the test immediately
// if it cannot be read or contains no sections.
func LoadArchive(t *testing.T, path string) Archive {
	t.Helper()

	a, err := txtar.ParseFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, a.Files, "%s: txtar archive has no file sections", path)

	files := make(map[string]string, len(a.Files))
	for _, f := range a.Files {
		files[f.Name] = string(f.Data)
	}
	return Archive{Comment: string(a.Comment), Files: files}
}

// Section returns the named file section, failing the test if it is
// missing.
func (a Archive) Section(t *testing.T, name string) string {
	t.Helper()
	content, ok := a.Files[name]
	require.True(t, ok, "archive has no %q section", name)
	return content
}
