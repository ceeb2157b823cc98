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
    `github.com/seagraph/seair/internal/opts`
)

// SeaGraph is the SEA IR of one method body. It owns every region and every
// parameter placeholder; regions are created only through the graph. One
// graph is built per compiled method and mutated through the full pipeline
// by a single goroutine.
type SeaGraph struct {
    ClassIdx  uint32
    MethodIdx uint32
    Entry     *Region
    Regions   []*Region
    Params    []*IrSignature
    order     []*Region
}

/* newRegion creates a region and registers it with the graph. */
func (self *SeaGraph) newRegion() *Region {
    bb := &Region { Id: len(self.Regions) }
    self.Regions = append(self.Regions, bb)
    return bb
}

/* addEdge wires a CFG edge, keeping the successor and predecessor lists
 * mutually consistent. */
func (self *SeaGraph) addEdge(src *Region, dst *Region) {
    if src == nil || dst == nil {
        panic("sea: nil region in a CFG edge")
    }
    src.addSuccessor(dst)
    dst.addPredecessor(src)
}

type _GraphBuilder struct {
    g map[int]*Region
}

func newGraphBuilder() *_GraphBuilder {
    return &_GraphBuilder {
        g: make(map[int]*Region),
    }
}

func (self *_GraphBuilder) build(m *dex.Method) *SeaGraph {
    nb := len(m.Blocks)

    /* the decoder must hand over at least the entry block */
    if nb == 0 {
        panic("sea: method body has no basic blocks")
    }

    /* guard against absurd decoder output */
    if nb > opts.MaxRegions {
        panic(fmt.Sprintf("sea: method body has %d basic blocks, limit is %d", nb, opts.MaxRegions))
    }

    /* create the graph */
    ret := &SeaGraph {
        ClassIdx  : m.ClassIdx,
        MethodIdx : m.MethodIdx,
    }

    /* one signature placeholder per formal parameter, conceptually located
     * before the entry region */
    for i := 0; i < m.NumParams; i++ {
        ret.Params = append(ret.Params, &IrSignature { R: Reg(i) })
    }

    /* one region per decoder basic block */
    for i := range m.Blocks {
        self.g[i] = ret.newRegion()
    }

    /* fill in instructions and wire the edges */
    for i, blk := range m.Blocks {
        bb := self.g[i]
        for _, op := range blk.Code {
            bb.addChild(newInstr(op))
        }
        for _, s := range blk.Succ {
            to, ok := self.g[s]
            if !ok {
                panic(fmt.Sprintf("sea: bb_%d has an edge to nonexistent block %d", i, s))
            }
            ret.addEdge(bb, to)
        }
    }

    /* block 0 is the entry */
    ret.Entry = self.g[0]
    return ret
}

/* convertToSSA wires phi functions and renames every use to its unique
 * reaching definition. Preconditions: the dataflow stages have run. */
func (self *SeaGraph) convertToSSA() {
    self.insertPhiNodes()
    self.renameAsSSA()
}

// CompileMethod builds the CFG of one decoded method body and runs the full
// analysis pipeline on it, leaving the graph in semi-pruned SSA form. Each
// stage has an explicit precondition on the previous one.
func CompileMethod(m *dex.Method) *SeaGraph {
    g := newGraphBuilder().build(m)
    g.computeRPO()
    g.computeIDominators()
    g.computeDominanceFrontier()
    g.computeDownExposedDefs()
    g.computeReachingDefs()
    g.convertToSSA()
    return g
}
