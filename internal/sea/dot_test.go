/*
 * Copyright 2024 SeaGraph Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sea

import (
    `os`
    `path/filepath`
    `testing`

    `github.com/stretchr/testify/require`
)

func TestDot_RenderSSAGraph(t *testing.T) {
    g := CompileMethod(diamondMethod())
    s := g.ToDot()

    require.Contains(t, s, "digraph method_1_42 {")
    require.Contains(t, s, "bb_0")
    require.Contains(t, s, "bb_0 -> bb_1;")
    require.Contains(t, s, "bb_2 -> bb_3;")
    require.Contains(t, s, "φ")
}

func TestDot_DumpSea(t *testing.T) {
    g := CompileMethod(diamondMethod())
    fn := filepath.Join(t.TempDir(), "diamond.dot")

    require.NoError(t, g.DumpSea(fn))
    buf, err := os.ReadFile(fn)
    require.NoError(t, err)
    require.Equal(t, g.ToDot(), string(buf))
}
