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

/** Package dex declares the contract between the bytecode decoder and the
 *  SEA IR core. The decoder owns opcode semantics; the core only ever sees
 *  register def/use sets and basic block boundaries.
 */

package dex

import (
    `fmt`
)

// Reg is a virtual register number within one method body.
type Reg int

// NoReg marks the absence of a result register.
const NoReg Reg = -1

// Instr is one decoded instruction. The SEA IR core treats it as opaque
// beyond the registers it touches.
type Instr interface {
    fmt.Stringer
    Uses() []Reg
    Definitions() []Reg
    Result() Reg
}

// Block is one decoder-reported basic block: instructions in program order
// and the indices of its successor blocks.
type Block struct {
    Code []Instr
    Succ []int
}

// Method is one decoded method body. Block 0 is the entry block.
type Method struct {
    ClassIdx  uint32
    MethodIdx uint32
    NumParams int
    Blocks    []Block
}
