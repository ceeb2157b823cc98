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
    `sort`
)

/* computeRPO numbers every region reachable from the entry in reverse
 * postorder. The "visiting" state guards against descending into back edges;
 * regions never reached keep the "unvisited" state and play no further role
 * in the pipeline. */
func (self *SeaGraph) computeRPO() {
    next := len(self.Regions) - 1
    rpoVisit(self.Entry, &next)

    /* cache the reachable regions in reverse-postorder */
    self.order = self.order[:0]
    for _, bb := range self.Regions {
        if bb.rpoState == _RpoNumbered {
            self.order = append(self.order, bb)
        }
    }
    sort.Slice(self.order, func(i int, j int) bool {
        return self.order[i].rpo < self.order[j].rpo
    })
}

func rpoVisit(bb *Region, next *int) {
    bb.rpoState = _RpoVisiting

    /* number the successors first */
    for _, p := range bb.Succ {
        if p.rpoState == _RpoUnvisited {
            rpoVisit(p, next)
        }
    }

    /* indices are handed out backwards as the postorder completes, so the
     * entry ends up with the smallest number */
    bb.rpo = *next
    bb.rpoState = _RpoNumbered
    *next = *next - 1
}
