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

    `github.com/seagraph/seair/internal/dex`
)

type (
    Reg = dex.Reg
)

// NoReg marks the absence of a result register.
const NoReg = dex.NoReg

// IrNode is a single operation owned by the graph. There are exactly three
// variants: ordinary instructions wrapping decoder output, signature
// placeholders for formal parameters, and phi functions.
type IrNode interface {
    fmt.Stringer
    Uses() []Reg
    Definitions() []Reg
    Result() Reg
    irnode()
}

func (*IrInstr)     irnode() {}
func (*IrSignature) irnode() {}
func (*IrPhi)       irnode() {}

// IrInstr wraps one decoded instruction. After SSA renaming, every used
// register maps to the unique instruction node that defines it.
type IrInstr struct {
    Op  dex.Instr
    ssa map[Reg]IrNode
}

func newInstr(op dex.Instr) *IrInstr {
    if op == nil {
        panic("sea: nil instruction from the decoder")
    } else {
        return &IrInstr { Op: op }
    }
}

func (self *IrInstr) String() string {
    return self.Op.String()
}

func (self *IrInstr) Uses() []Reg {
    return self.Op.Uses()
}

func (self *IrInstr) Definitions() []Reg {
    return self.Op.Definitions()
}

func (self *IrInstr) Result() Reg {
    return self.Op.Result()
}

/* renameToSSA records def as the definition reaching the use of r. */
func (self *IrInstr) renameToSSA(r Reg, def IrNode) {
    if def == nil {
        panic(fmt.Sprintf("sea: renaming the use of r%d with a nil definition", r))
    }

    /* the map is created on first rename, so a nil map also
     * means "renaming has not run on this instruction yet" */
    if self.ssa == nil {
        self.ssa = make(map[Reg]IrNode, len(self.Op.Uses()))
    }

    /* later renaming passes simply overwrite the edge */
    self.ssa[r] = def
}

// SSAUse returns the unique definition reaching the use of r.
// Preconditions: the renaming stage has completed.
func (self *IrInstr) SSAUse(r Reg) IrNode {
    if def, ok := self.ssa[r]; ok {
        return def
    } else {
        panic(fmt.Sprintf("sea: use of r%d was never renamed to SSA", r))
    }
}

// IrSignature is the placeholder definition for one formal parameter. It
// exists so that every register use resolves to a defining instruction even
// when no explicit definition precedes the use in the method body.
type IrSignature struct {
    R Reg
}

func (self *IrSignature) String() string {
    return fmt.Sprintf("signature(r%d)", self.R)
}

func (self *IrSignature) Uses() []Reg {
    return nil
}

func (self *IrSignature) Definitions() []Reg {
    return []Reg { self.R }
}

func (self *IrSignature) Result() Reg {
    return self.R
}
