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
    `fmt`
    `os`
    `strings`
)

/* The dump format is a debugging aid, not a stability contract. */

// ToDot renders the graph as a Graphviz directed-graph description: one node
// per region with its phi functions and instructions, one node per signature
// placeholder, and one edge per CFG successor.
func (self *SeaGraph) ToDot() string {
    var buf []string

    /* graph prolog */
    buf = append(buf, fmt.Sprintf("digraph method_%d_%d {", self.ClassIdx, self.MethodIdx))
    buf = append(buf, `    node [shape = box];`)

    /* signature placeholders */
    for i, p := range self.Params {
        buf = append(buf, fmt.Sprintf(`    sig_%d [label = "%s"];`, i, escape(p.String())))
        if i == 0 && self.Entry != nil {
            buf = append(buf, fmt.Sprintf(`    sig_%d -> bb_%d [style = dotted];`, i, self.Entry.Id))
        }
    }

    /* one node per region */
    for _, bb := range self.Regions {
        ss := []string { fmt.Sprintf("bb_%d", bb.Id) }
        for _, phi := range bb.Phi {
            ss = append(ss, escape(phi.String()))
        }
        for _, p := range bb.Ins {
            ss = append(ss, escape(p.String()))
        }
        buf = append(buf, fmt.Sprintf(`    bb_%d [label = "%s"];`, bb.Id, strings.Join(ss, `\n`)))
    }

    /* CFG edges */
    for _, bb := range self.Regions {
        for _, s := range bb.Succ {
            buf = append(buf, fmt.Sprintf("    bb_%d -> bb_%d;", bb.Id, s.Id))
        }
    }

    /* graph epilog */
    buf = append(buf, "}")
    return strings.Join(buf, "\n") + "\n"
}

// DumpSea writes the Graphviz rendering of the graph to fname.
func (self *SeaGraph) DumpSea(fname string) error {
    return os.WriteFile(fname, []byte(self.ToDot()), 0644)
}

func escape(s string) string {
    s = strings.ReplaceAll(s, `\`, `\\`)
    s = strings.ReplaceAll(s, `"`, `\"`)
    return s
}
