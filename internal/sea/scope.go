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

/* _ScopedTable maps registers to their current defining instruction, with
 * one scope per dominator-tree level. Inner bindings shadow outer ones. */
type _ScopedTable struct {
    scopes []map[Reg]IrNode
}

func newScopedTable() *_ScopedTable {
    return new(_ScopedTable)
}

func (self *_ScopedTable) push() {
    self.scopes = append(self.scopes, make(map[Reg]IrNode))
}

func (self *_ScopedTable) pop() {
    if n := len(self.scopes); n == 0 {
        panic("sea: scope popped from an empty rename table")
    } else {
        self.scopes = self.scopes[:n - 1]
    }
}

func (self *_ScopedTable) bind(r Reg, def IrNode) {
    if n := len(self.scopes); n == 0 {
        panic("sea: register bound outside of any scope")
    } else if def == nil {
        panic("sea: register bound to a nil definition")
    } else {
        self.scopes[n - 1][r] = def
    }
}

/* lookup resolves r to its innermost visible definition, or nil. */
func (self *_ScopedTable) lookup(r Reg) IrNode {
    for i := len(self.scopes) - 1; i >= 0; i-- {
        if def, ok := self.scopes[i][r]; ok {
            return def
        }
    }
    return nil
}
