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

    `github.com/davecgh/go-spew/spew`
    `github.com/stretchr/testify/require`
    `gonum.org/v1/gonum/graph/flow`
    `gonum.org/v1/gonum/graph/simple`
)

func TestDominator_Diamond(t *testing.T) {
    g := buildGraph(diamondMethod())
    g.computeRPO()
    g.computeIDominators()

    /* the entry has no dominator, everything else hangs off it */
    require.Nil(t, g.Regions[0].IDom())
    require.Same(t, g.Regions[0], g.Regions[1].IDom())
    require.Same(t, g.Regions[0], g.Regions[2].IDom())
    require.Same(t, g.Regions[0], g.Regions[3].IDom())

    /* dominated sets mirror the idom links */
    require.True(t, g.Regions[0].IDominated().Contains(g.Regions[3]))
    require.Equal(t, 0, g.Regions[1].IDominated().Cardinality())
}

func TestDominator_MatchesGonumOracle(t *testing.T) {
    m := testMethod(
        0,
        block(nil, 1, 2),    // 0: entry
        block(nil, 3),       // 1
        block(nil, 3, 4),    // 2
        block(nil, 5),       // 3: join of 1 and 2
        block(nil, 5, 6),    // 4
        block(nil, 7),       // 5: join of 3 and 4
        block(nil, 2),       // 6: back edge into 2
        block(nil),          // 7: exit
    )
    g := buildGraph(m)
    g.computeRPO()
    g.computeIDominators()

    /* rebuild the same CFG for gonum */
    dg := simple.NewDirectedGraph()
    for i, blk := range m.Blocks {
        for _, s := range blk.Succ {
            dg.SetEdge(dg.NewEdge(simple.Node(int64(i)), simple.Node(int64(s))))
        }
    }

    /* cross-check every region against the oracle */
    dt := flow.Dominators(simple.Node(0), dg)
    for _, bb := range g.Regions {
        if bb == g.Entry {
            require.Nil(t, bb.IDom())
            continue
        }
        want := dt.DominatorOf(int64(bb.Id))
        require.NotNil(t, want, "oracle has no idom for bb_%d", bb.Id)
        require.Equal(t, int(want.ID()), bb.IDom().Id, "idom mismatch for bb_%d: %s", bb.Id, spew.Sdump(bb.IDom().Id))
    }
}

func TestDominator_RequiresRPO(t *testing.T) {
    g := buildGraph(diamondMethod())
    require.Panics(t, func() { g.computeIDominators() })
}

func TestFrontier_Diamond(t *testing.T) {
    g := buildGraph(diamondMethod())
    g.computeRPO()
    g.computeIDominators()
    g.computeDominanceFrontier()

    /* each branch dominates a predecessor of the join (itself) without
     * strictly dominating the join */
    require.Equal(t, 0, g.Regions[0].DominanceFrontier().Cardinality())
    require.True(t, g.Regions[1].DominanceFrontier().Contains(g.Regions[3]))
    require.True(t, g.Regions[2].DominanceFrontier().Contains(g.Regions[3]))
    require.Equal(t, 0, g.Regions[3].DominanceFrontier().Cardinality())
}

func TestFrontier_LoopHeaderInOwnFrontier(t *testing.T) {
    g := buildGraph(testMethod(
        0,
        block(nil, 1),
        block(nil, 2, 3),    // 1: loop header
        block(nil, 1),       // 2: latch
        block(nil),          // 3: exit
    ))
    g.computeRPO()
    g.computeIDominators()
    g.computeDominanceFrontier()

    /* the header dominates its own predecessor (the latch), but no region
     * strictly dominates itself */
    require.True(t, g.Regions[1].DominanceFrontier().Contains(g.Regions[1]))
    require.True(t, g.Regions[2].DominanceFrontier().Contains(g.Regions[1]))
    require.Equal(t, 0, g.Regions[3].DominanceFrontier().Cardinality())
}

func TestFrontier_RequiresDominators(t *testing.T) {
    g := buildGraph(diamondMethod())
    g.computeRPO()
    require.Panics(t, func() { g.computeDominanceFrontier() })
}
