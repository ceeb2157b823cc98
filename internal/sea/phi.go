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
    `strings`

    `github.com/deckarep/golang-set/v2`
    `github.com/oleiade/lane`
)

// IrPhi is a phi function for one register. V holds the definitions flowing
// in from each predecessor edge, indexed by the position of the predecessor
// in the owning region's predecessor list. Each slot is a list rather than a
// single node so that repeated renaming passes stay harmless; once renaming
// completes every slot holds exactly one definition.
type IrPhi struct {
    R Reg
    V [][]IrNode
}

func (self *IrPhi) String() string {
    nb := len(self.V)
    ret := make([]string, 0, nb)

    /* dump each edge */
    for i, defs := range self.V {
        ss := make([]string, 0, len(defs))
        for _, d := range defs {
            ss = append(ss, d.String())
        }
        ret = append(ret, fmt.Sprintf("%d: {%s}", i, strings.Join(ss, ", ")))
    }

    /* join them together */
    return fmt.Sprintf(
        "r%d = φ(%s)",
        self.R,
        strings.Join(ret, ", "),
    )
}

func (self *IrPhi) Uses() []Reg {
    return []Reg { self.R }
}

func (self *IrPhi) Definitions() []Reg {
    return []Reg { self.R }
}

func (self *IrPhi) Result() Reg {
    return self.R
}

/* renameToSSA records def as the definition of r flowing in from predecessor
 * edge pred. Phi functions are only ever inserted where a real definition
 * reaches every incoming edge, so a missing definition is fatal. */
func (self *IrPhi) renameToSSA(r Reg, def IrNode, pred int) {
    if def == nil {
        panic(fmt.Sprintf("sea: phi for r%d fed a nil definition on edge %d", r, pred))
    }

    /* edges are sized from the predecessor list at insertion time, but a
     * renaming pass may legitimately re-run after edges were added */
    for len(self.V) <= pred {
        self.V = append(self.V, nil)
    }

    /* record at the predecessor's edge index */
    self.V[pred] = append(self.V[pred], def)
}

// SSAUses returns the definitions recorded for predecessor edge pred. After
// renaming completes the result has exactly one element.
func (self *IrPhi) SSAUses(pred int) []IrNode {
    if pred < 0 || pred >= len(self.V) {
        panic(fmt.Sprintf("sea: phi for r%d has no edge %d", self.R, pred))
    } else {
        return self.V[pred]
    }
}

/* insertPhiNodes places phi functions for every register with more than one
 * definition site, using the standard dominance-frontier worklist. Signature
 * placeholders count as definition sites in the entry region. */
func (self *SeaGraph) insertPhiNodes() {
    sites := make(map[Reg]mapset.Set[*Region])

    /* parameter registers are defined "before" the entry */
    for _, p := range self.Params {
        markPhiSite(sites, p.R, self.Entry)
    }

    /* mark all the definition sites */
    for _, bb := range self.order {
        for r := range bb.DownExposedDefs() {
            markPhiSite(sites, r, bb)
        }
    }

    /* sort candidate registers for deterministic phi order */
    regs := make([]Reg, 0, len(sites))
    for r, v := range sites {
        if v.Cardinality() > 1 {
            regs = append(regs, r)
        }
    }
    sort.Slice(regs, func(i int, j int) bool {
        return regs[i] < regs[j]
    })

    /* insert phi functions for every multi-site register */
    for _, r := range regs {
        q := lane.NewQueue()
        seen := mapset.NewThreadUnsafeSet[*Region]()

        /* seed the worklist with the definition sites */
        for _, bb := range sortedRegions(sites[r]) {
            q.Enqueue(bb)
            seen.Add(bb)
        }

        /* every region that gains a phi becomes a definition site itself */
        for !q.Empty() {
            bb := q.Dequeue().(*Region)
            for _, y := range sortedRegions(bb.DominanceFrontier()) {
                if y.insertPhiFor(r) && seen.Add(y) {
                    q.Enqueue(y)
                }
            }
        }
    }
}

func markPhiSite(sites map[Reg]mapset.Set[*Region], r Reg, bb *Region) {
    if s, ok := sites[r]; ok {
        s.Add(bb)
    } else {
        sites[r] = mapset.NewThreadUnsafeSet[*Region](bb)
    }
}

func sortedRegions(s mapset.Set[*Region]) []*Region {
    rs := s.ToSlice()
    sort.Slice(rs, func(i int, j int) bool {
        return rs[i].Id < rs[j].Id
    })
    return rs
}
