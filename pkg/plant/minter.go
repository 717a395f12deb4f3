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

package plant

import "flownet/pkg/flow"

// StreamMinter hands out Streams with unique default names. The ordinal
// counter is carried explicitly rather than as package state, so each
// scenario gets its own minter and starts counting from s1.
type StreamMinter interface {
	Mint() flow.Stream
	Reset()
}

type streamMinter struct {
	ordinal int
}

func (sm *streamMinter) Mint() flow.Stream {
	sm.ordinal++
	return flow.NewStream(sm.ordinal)
}

func (sm *streamMinter) Reset() {
	sm.ordinal = 0
}

func NewStreamMinter() StreamMinter {
	return &streamMinter{}
}
