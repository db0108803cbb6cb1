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

package diagnostic_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlewalk/turtlewalk/diagnostic"
)

func TestErrorStringIncludesSpaceBeforeWhere(t *testing.T) {
	t.Parallel()

	e := diagnostic.Error{Line: 3, Where: "at end of file", Message: "Expect ';'."}
	require.Equal(t, "[line 3] Error at end of file: Expect ';'.", e.Error())
}

func TestErrorStringOmitsWhereWhenEmpty(t *testing.T) {
	t.Parallel()

	e := diagnostic.Error{Line: 1, Message: "Unterminated block comment."}
	require.Equal(t, "[line 1] Error: Unterminated block comment.", e.Error())
}

func TestWriterReportFormatsWithSpaceBeforeWhere(t *testing.T) {
	t.Parallel()

	var errs bytes.Buffer
	w := diagnostic.NewWriter(nil, &errs)

	w.Report(5, "at '+'", "Expect expression.")

	require.Equal(t, "[line 5] Error at '+': Expect expression.\n", errs.String())
	require.True(t, w.HadError())
}

func TestWriterErrorFormatsWithoutWhere(t *testing.T) {
	t.Parallel()

	var errs bytes.Buffer
	w := diagnostic.NewWriter(nil, &errs)

	w.Error(2, "Unexpected character '#'.")

	require.Equal(t, "[line 2] Error: Unexpected character '#'.\n", errs.String())
}
