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

/** Iterative dominator computation as described in Cooper, Harvey & Kennedy,
 *  "A Simple, Fast Dominance Algorithm".
 */

package sea

import (
    `github.com/deckarep/golang-set/v2`
)

/* computeIDominators computes the immediate dominator of every reachable
 * region. Preconditions: computeRPO has run. */
func (self *SeaGraph) computeIDominators() {
    if len(self.order) == 0 {
        panic("sea: dominator computation requires RPO numbering")
    }

    /* the entry dominates itself during the fixpoint */
    entry := self.Entry
    entry.idom = entry

    /* iterate until no immediate dominator changes in a full pass */
    for changed := true; changed; {
        changed = false

        /* process every other region in reverse-postorder */
        for _, bb := range self.order {
            if bb == entry {
                continue
            }

            /* intersect the already-processed predecessors */
            idom := (*Region)(nil)
            for _, p := range bb.Pred {
                if p.idom != nil {
                    if idom == nil {
                        idom = p
                    } else {
                        idom = intersect(p, idom)
                    }
                }
            }

            /* record the new candidate */
            if idom != nil && bb.idom != idom {
                bb.idom = idom
                changed = true
            }
        }
    }

    /* the entry region has no dominator */
    entry.idom = nil

    /* derive the sets of immediately dominated regions */
    for _, bb := range self.order {
        bb.idominated = mapset.NewThreadUnsafeSet[*Region]()
    }
    for _, bb := range self.order {
        if bb.idom != nil {
            bb.idom.idominated.Add(bb)
        }
    }
}

/* intersect walks i and j up their partially built dominator chains,
 * advancing whichever has the larger RPO number, until the chains meet at
 * the common ancestor. */
func intersect(i *Region, j *Region) *Region {
    for i != j {
        for i.rpo > j.rpo {
            i = i.idom
        }
        for j.rpo > i.rpo {
            j = j.idom
        }
    }
    return i
}

/* computeDominanceFrontier computes the dominance frontier of every
 * reachable region with the Cooper-Torczon algorithm: for every join region,
 * walk up the dominator tree from each predecessor, adding the join to every
 * frontier on the way, stopping exclusively at the join's own immediate
 * dominator. Preconditions: computeIDominators has run. */
func (self *SeaGraph) computeDominanceFrontier() {
    for _, bb := range self.order {
        if bb.idominated == nil {
            panic("sea: dominance frontier requires immediate dominators")
        }
        bb.df = mapset.NewThreadUnsafeSet[*Region]()
    }

    /* only join regions contribute to frontiers */
    for _, bb := range self.order {
        if len(bb.Pred) >= 2 {
            for _, p := range bb.Pred {
                if p.rpoState != _RpoNumbered {
                    continue
                }
                for r := p; r != bb.idom && r != nil; r = r.idom {
                    r.df.Add(bb)
                }
            }
        }
    }
}
