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

/* computeDownExposedDefs computes the downward-exposed definitions of every
 * reachable region. The regions are independent of each other. */
func (self *SeaGraph) computeDownExposedDefs() {
    for _, bb := range self.order {
        bb.computeDownExposedDefs()
    }
}

/* computeReachingDefs runs the reaching-definitions dataflow to its fixpoint.
 * Visitation order only affects how many passes are needed, never the result.
 * Preconditions: computeDownExposedDefs has run. */
func (self *SeaGraph) computeReachingDefs() {
    for changed := true; changed; {
        changed = false
        for _, bb := range self.order {
            if bb.updateReachingDefs() {
                changed = true
            }
        }
    }
}
