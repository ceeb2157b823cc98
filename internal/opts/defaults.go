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

package opts

import (
	"os"
	"strconv"
)

const (
	_DefaultMaxRegions = 65536 // cutoff at 64k basic blocks per method
)

var (
	MaxRegions = parseOrDefault("SEAIR_MAX_REGIONS", _DefaultMaxRegions, 16)
	DumpCFG    = os.Getenv("SEAIR_DUMP_CFG") != ""
	DumpDir    = dumpDirOrDefault("SEAIR_DUMP_DIR")
)

func dumpDirOrDefault(key string) string {
	if env := os.Getenv(key); env != "" {
		return env
	} else {
		return os.TempDir()
	}
}

func parseOrDefault(key string, def int, min int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 64); err != nil {
		panic("seair: invalid value for " + key)
	} else if ret := int(val); ret <= min {
		panic("seair: value too small for " + key)
	} else {
		return ret
	}
}
