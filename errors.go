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
	"errors"
)

var (
	// ErrNoMethod occurs when Compile is called without a method body.
	ErrNoMethod = errors.New("seair: no method body")

	// ErrBadParams occurs when the decoder reports a negative formal
	// parameter count.
	ErrBadParams = errors.New("seair: negative parameter count")
)
