/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package flow

import (
	"errors"
	"fmt"
	"strings"
)

// Bound identifies which of a device's two connection bounds an error
// refers to.
type Bound string

const (
	InputBound  Bound = "INPUT"
	OutputBound Bound = "OUTPUT"
)

// GuardKind distinguishes the generic device connection guard from the
// mixer's overriding guard. The two guards produce different message text
// and existing harnesses match on the exact strings.
type GuardKind string

const (
	GenericGuard GuardKind = "GENERIC"
	MixerGuard   GuardKind = "MIXER"
)

// CapacityError is returned by AddInput/AddOutput when the respective bound
// is already met. The bound is enforced at connection time only.
type CapacityError struct {
	Bound Bound
	Guard GuardKind
}

func (ce *CapacityError) Error() string {
	if ce.Guard == MixerGuard {
		if ce.Bound == InputBound {
			return "Too much inputs"
		}
		return "Too much outputs"
	}

	return fmt.Sprintf("%s STREAM LIMIT!", ce.Bound)
}

// ErrNoOutputs is returned by a mixer asked to update before any output
// stream was connected.
var ErrNoOutputs = errors.New("Should set outputs before update")

// MissingConnectionError is returned by UpdateOutputs on a device that is
// not fully wired. It replaces what would otherwise surface as an
// out-of-range access on an unconnected slot.
type MissingConnectionError struct {
	Bound Bound
	Want  int
	Got   int
}

func (me *MissingConnectionError) Error() string {
	return fmt.Sprintf(
		"missing %s stream: %d connected but %d required before update",
		strings.ToLower(string(me.Bound)),
		me.Got,
		me.Want,
	)
}
