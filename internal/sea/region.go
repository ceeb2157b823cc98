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

    `github.com/deckarep/golang-set/v2`
)

type _RpoState uint8

const (
    _RpoUnvisited _RpoState = iota
    _RpoVisiting
    _RpoNumbered
)

// Region is a basic block of the method CFG. The dataflow analyses both run
// on it and store their results in it.
type Region struct {
    Id   int
    Ins  []IrNode
    Phi  []*IrPhi
    Succ []*Region
    Pred []*Region

    /* reverse postorder numbering */
    rpo      int
    rpoState _RpoState

    /* dominator tree linkage, derived by the graph-level algorithms */
    idom       *Region
    idominated mapset.Set[*Region]
    df         mapset.Set[*Region]

    /* dataflow results */
    deDefs   map[Reg]IrNode
    reaching map[Reg]mapset.Set[IrNode]
    nreach   int

    /* registers for which this region already has a phi function */
    phiRegs mapset.Set[Reg]
}

func (self *Region) addChild(p IrNode) {
    if p == nil {
        panic(fmt.Sprintf("sea: nil instruction added to bb_%d", self.Id))
    } else {
        self.Ins = append(self.Ins, p)
    }
}

func (self *Region) addSuccessor(p *Region) {
    if p == nil {
        panic(fmt.Sprintf("sea: nil successor linked to bb_%d", self.Id))
    } else {
        self.Succ = append(self.Succ, p)
    }
}

func (self *Region) addPredecessor(p *Region) {
    if p == nil {
        panic(fmt.Sprintf("sea: nil predecessor linked to bb_%d", self.Id))
    } else {
        self.Pred = append(self.Pred, p)
    }
}

// RPO returns the reverse-postorder index of the region.
// Preconditions: reverse-postorder numbering has run, and the region is
// reachable from the entry.
func (self *Region) RPO() int {
    if self.rpoState != _RpoNumbered {
        panic(fmt.Sprintf("sea: RPO of bb_%d queried before numbering", self.Id))
    } else {
        return self.rpo
    }
}

// IDom returns the immediate dominator of the region, or nil for the entry.
func (self *Region) IDom() *Region {
    return self.idom
}

// IDominated returns the set of regions this region immediately dominates.
// Preconditions: dominator computation has run.
func (self *Region) IDominated() mapset.Set[*Region] {
    if self.idominated == nil {
        panic(fmt.Sprintf("sea: dominated set of bb_%d queried before dominator computation", self.Id))
    } else {
        return self.idominated
    }
}

// DominanceFrontier returns the dominance frontier of the region.
// Preconditions: frontier computation has run.
func (self *Region) DominanceFrontier() mapset.Set[*Region] {
    if self.df == nil {
        panic(fmt.Sprintf("sea: dominance frontier of bb_%d queried before computation", self.Id))
    } else {
        return self.df
    }
}

// DownExposedDefs returns the last definition of every register written in
// this region, keyed by register.
// Preconditions: computeDownExposedDefs has run.
func (self *Region) DownExposedDefs() map[Reg]IrNode {
    if self.deDefs == nil {
        panic(fmt.Sprintf("sea: downward-exposed definitions of bb_%d queried before computation", self.Id))
    } else {
        return self.deDefs
    }
}

// ReachingDefs returns the definitions live at the exit of this region.
// Preconditions: the reaching-definitions fixpoint has run.
func (self *Region) ReachingDefs() map[Reg]mapset.Set[IrNode] {
    if self.reaching == nil {
        panic(fmt.Sprintf("sea: reaching definitions of bb_%d queried before computation", self.Id))
    } else {
        return self.reaching
    }
}

/* computeDownExposedDefs records, for every register defined in this region,
 * the last defining instruction in program order. */
func (self *Region) computeDownExposedDefs() {
    self.deDefs = make(map[Reg]IrNode)

    /* later definitions shadow earlier ones */
    for _, p := range self.Ins {
        for _, r := range p.Definitions() {
            self.deDefs[r] = p
        }
    }
}

/* updateReachingDefs performs one iteration of the reaching definitions
 * fixpoint and reports whether the set changed. The resulting set is the one
 * live at region exit: the union of the predecessors' sets, except that a
 * definition inside this region kills every inbound definition of the same
 * register. */
func (self *Region) updateReachingDefs() bool {
    if self.deDefs == nil {
        panic(fmt.Sprintf("sea: reaching definitions of bb_%d require downward-exposed definitions", self.Id))
    }

    /* union of the predecessors' reaching sets */
    out := make(map[Reg]mapset.Set[IrNode])
    for _, p := range self.Pred {
        for r, defs := range p.reaching {
            if s, ok := out[r]; ok {
                out[r] = s.Union(defs)
            } else {
                out[r] = defs.Clone()
            }
        }
    }

    /* a definition in this region kills everything inbound for its register */
    for r, def := range self.deDefs {
        out[r] = mapset.NewThreadUnsafeSet[IrNode](def)
    }

    /* per-pass updates only ever add (register, definition) pairs or replace
     * a register's inbound definitions with this region's own fixed DE-def,
     * so a stable pair count means a stable set */
    n := 0
    for _, s := range out {
        n += s.Cardinality()
    }

    /* update the stored set */
    rc := n != self.nreach
    self.reaching = out
    self.nreach = n
    return rc
}

/* insertPhiFor adds a phi function for r unless one already exists, and
 * reports whether one was newly created. */
func (self *Region) insertPhiFor(r Reg) bool {
    if self.phiRegs == nil {
        self.phiRegs = mapset.NewThreadUnsafeSet[Reg]()
    }

    /* nothing to do if a phi for this register already exists */
    if !self.phiRegs.Add(r) {
        return false
    }

    /* one definition slot per predecessor edge */
    self.Phi = append(self.Phi, &IrPhi {
        R: r,
        V: make([][]IrNode, len(self.Pred)),
    })
    return true
}

/* setPhiDefinitionsForUses feeds every phi in this region with the current
 * definition of its register as seen from pred, recording it at the edge
 * index matching pred's position in the predecessor list. */
func (self *Region) setPhiDefinitionsForUses(st *_ScopedTable, pred *Region) {
    if pred == nil {
        panic(fmt.Sprintf("sea: nil predecessor when feeding phi definitions of bb_%d", self.Id))
    }

    /* locate the predecessor edge index */
    idx := -1
    for i, p := range self.Pred {
        if p == pred {
            idx = i
            break
        }
    }

    /* the caller must actually be a predecessor */
    if idx < 0 {
        panic(fmt.Sprintf("sea: bb_%d is not a predecessor of bb_%d", pred.Id, self.Id))
    }

    /* record the reaching definition on every phi */
    for _, phi := range self.Phi {
        phi.renameToSSA(phi.R, st.lookup(phi.R), idx)
    }
}
