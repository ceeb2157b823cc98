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
    `sort`
)

/* renameAsSSA resolves every register use to its unique reaching definition
 * by walking the dominator tree parent-before-children with a scoped symbol
 * table. The outermost scope holds one signature placeholder per parameter
 * register, so every use resolves even on paths with no explicit prior
 * assignment. Preconditions: insertPhiNodes has run. */
func (self *SeaGraph) renameAsSSA() {
    st := newScopedTable()
    st.push()

    /* parameters are defined before the entry region */
    for _, p := range self.Params {
        st.bind(p.R, p)
    }

    /* walk the dominator tree from the entry */
    self.renameRegion(self.Entry, st)
    st.pop()
}

func (self *SeaGraph) renameRegion(bb *Region, st *_ScopedTable) {
    st.push()

    /* phi functions define their register before any instruction runs */
    for _, phi := range bb.Phi {
        st.bind(phi.R, phi)
    }

    /* resolve uses, then rebind definitions, in program order */
    for _, p := range bb.Ins {
        ins, ok := p.(*IrInstr)
        if !ok {
            panic(fmt.Sprintf("sea: unexpected %T in the body of bb_%d", p, bb.Id))
        }

        /* every use must already have a visible definition */
        for _, r := range ins.Uses() {
            def := st.lookup(r)
            if def == nil {
                panic(fmt.Sprintf("sea: use of r%d in bb_%d has no reaching definition", r, bb.Id))
            }
            ins.renameToSSA(r, def)
        }

        /* definitions shadow whatever was visible before */
        for _, r := range ins.Definitions() {
            st.bind(r, ins)
        }
    }

    /* feed the phi functions of the successors with the definitions
     * visible at this region's exit */
    for _, s := range bb.Succ {
        s.setPhiDefinitionsForUses(st, bb)
    }

    /* children in the dominator tree inherit this region's bindings */
    for _, p := range domChildren(bb) {
        self.renameRegion(p, st)
    }

    /* leaving the region drops its bindings */
    st.pop()
}

func domChildren(bb *Region) []*Region {
    rs := bb.IDominated().ToSlice()
    sort.Slice(rs, func(i int, j int) bool {
        return rs[i].rpo < rs[j].rpo
    })
    return rs
}
