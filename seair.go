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

// Package seair converts one decoded method body into a control-flow graph
// in semi-pruned SSA form, ready for native code generation.
package seair

import (
	"fmt"
	"path/filepath"

	"github.com/seagraph/seair/internal/dex"
	"github.com/seagraph/seair/internal/opts"
	"github.com/seagraph/seair/internal/sea"
)

// Re-exported decoder contract, so that callers never import internal paths.
type (
	Reg    = dex.Reg
	Instr  = dex.Instr
	Block  = dex.Block
	Method = dex.Method
)

// NoReg marks the absence of a result register.
const NoReg = dex.NoReg

// Graph is the finished SSA-form graph handed to the code generator.
type Graph = sea.SeaGraph

// Region is one basic block of a compiled method.
type Region = sea.Region

// Compile analyzes one decoded method body and returns its graph in
// semi-pruned SSA form. The method either completes the full pipeline or
// analysis aborts: a malformed CFG produced by the decoder is a fatal
// programming error, not a recoverable one.
func Compile(m *Method, options ...Option) (*Graph, error) {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}

	/* validate the public boundary */
	if m == nil {
		return nil, ErrNoMethod
	}
	if m.NumParams < 0 {
		return nil, ErrBadParams
	}

	/* run the pipeline */
	g := sea.CompileMethod(m)

	/* optionally dump the finished graph */
	if o.DumpCFG {
		fn := fmt.Sprintf("class%d_method%d.dot", m.ClassIdx, m.MethodIdx)
		if err := g.DumpSea(filepath.Join(o.DumpDir, fn)); err != nil {
			return nil, err
		}
	}
	return g, nil
}
