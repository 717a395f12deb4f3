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
	"fmt"
	"strconv"
)

type StreamName string

// Stream is a named carrier of a scalar mass flow. Streams are shared by
// reference between devices: the same Stream may be one device's output and
// another device's input at the same time.
type Stream interface {
	Name() StreamName
	SetName(name StreamName)
	MassFlow() float64
	SetMassFlow(massFlow float64)
	String() string
	Print()
}

type stream struct {
	name     StreamName
	massFlow float64
}

func (s *stream) Name() StreamName {
	return s.name
}

func (s *stream) SetName(name StreamName) {
	s.name = name
}

func (s *stream) MassFlow() float64 {
	return s.massFlow
}

// SetMassFlow accepts any value, negative included. Physical validation is
// the caller's business.
func (s *stream) SetMassFlow(massFlow float64) {
	s.massFlow = massFlow
}

func (s *stream) String() string {
	return fmt.Sprintf("Stream %s flow = %v", s.name, s.massFlow)
}

// Print writes the diagnostic line to stdout. Device logic never calls it.
func (s *stream) Print() {
	fmt.Println(s.String())
}

// NewStream creates a Stream named "s<ordinal>" with a mass flow of 0.
func NewStream(ordinal int) Stream {
	return &stream{
		name: StreamName("s" + strconv.Itoa(ordinal)),
	}
}
