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
    `github.com/seagraph/seair/internal/dex`
)

type _TestOp struct {
    name string
    defs []Reg
    uses []Reg
}

func (self *_TestOp) String() string {
    return self.name
}

func (self *_TestOp) Uses() []Reg {
    return self.uses
}

func (self *_TestOp) Definitions() []Reg {
    return self.defs
}

func (self *_TestOp) Result() Reg {
    if len(self.defs) != 0 {
        return self.defs[0]
    } else {
        return NoReg
    }
}

func defOp(name string, r Reg) dex.Instr {
    return &_TestOp { name: name, defs: []Reg { r } }
}

func useOp(name string, r Reg) dex.Instr {
    return &_TestOp { name: name, uses: []Reg { r } }
}

func block(code []dex.Instr, succ ...int) dex.Block {
    return dex.Block { Code: code, Succ: succ }
}

func testMethod(nparams int, blocks ...dex.Block) *dex.Method {
    return &dex.Method {
        ClassIdx  : 1,
        MethodIdx : 42,
        NumParams : nparams,
        Blocks    : blocks,
    }
}

/* diamondMethod builds the classic diamond: bb_0 -> {bb_1, bb_2} -> bb_3,
 * with r1 defined in the entry, redefined on both branches, and used at the
 * join. r2 is defined once in the entry and used at the join. */
func diamondMethod() *dex.Method {
    return testMethod(
        0,
        block([]dex.Instr { defOp("a = const", 1), defOp("b = const", 2) }, 1, 2),
        block([]dex.Instr { defOp("c = const", 1) }, 3),
        block([]dex.Instr { defOp("d = const", 1) }, 3),
        block([]dex.Instr { useOp("return a", 1), useOp("touch b", 2) }),
    )
}

func buildGraph(m *dex.Method) *SeaGraph {
    return newGraphBuilder().build(m)
}
