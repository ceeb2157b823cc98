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

package seair

import (
	"github.com/seagraph/seair/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithCFGDump makes Compile write a Graphviz rendering of the finished
// SSA graph into dir, one file per compiled method.
//
// The rendering is a debugging aid; its format is not a stability contract.
// The same behavior is available process-wide through the SEAIR_DUMP_CFG and
// SEAIR_DUMP_DIR environment variables.
func WithCFGDump(dir string) Option {
	return func(o *opts.Options) {
		o.DumpCFG = true
		if dir != "" {
			o.DumpDir = dir
		}
	}
}
