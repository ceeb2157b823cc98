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
    `testing`

    `github.com/seagraph/seair/internal/dex`
    `github.com/stretchr/testify/require`
)

func TestRPO_AcyclicEdgesAreTopological(t *testing.T) {
    g := buildGraph(testMethod(
        0,
        block(nil, 1, 2),
        block(nil, 3),
        block(nil, 3, 4),
        block(nil, 5),
        block(nil, 5),
        block(nil),
    ))
    g.computeRPO()

    /* every edge of an acyclic CFG must go from a smaller RPO index to a
     * larger one */
    for _, bb := range g.Regions {
        for _, s := range bb.Succ {
            require.Less(t, bb.RPO(), s.RPO(), "edge bb_%d -> bb_%d", bb.Id, s.Id)
        }
    }
}

func TestRPO_BackEdgeDoesNotRevisit(t *testing.T) {
    g := buildGraph(testMethod(
        0,
        block(nil, 1),
        block(nil, 2, 3),
        block(nil, 1),
        block(nil),
    ))
    g.computeRPO()

    /* the loop header is numbered before its latch, the entry first */
    require.Less(t, g.Regions[0].RPO(), g.Regions[1].RPO())
    require.Less(t, g.Regions[1].RPO(), g.Regions[2].RPO())
    require.Less(t, g.Regions[1].RPO(), g.Regions[3].RPO())
}

func TestRPO_UnreachedRegionStaysUnnumbered(t *testing.T) {
    g := buildGraph(&dex.Method {
        NumParams: 0,
        Blocks: []dex.Block {
            block(nil, 1),
            block(nil),
            block(nil, 1),    // never reached from the entry
        },
    })
    g.computeRPO()

    require.Len(t, g.order, 2)
    require.Panics(t, func() { g.Regions[2].RPO() })
}
