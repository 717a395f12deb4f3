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

// Device consumes input Streams and overwrites output Streams under fixed
// connection bounds. The variant set is closed: Mixer and Reactor are the
// only implementations.
//
// Devices hold shared references to Streams they do not own exclusively.
// A device only ever writes the streams it holds as outputs; when devices
// are chained, run order decides who writes before whom.
type Device interface {
	AddInput(s Stream) error
	AddOutput(s Stream) error
	Inputs() []Stream
	Outputs() []Stream

	// FullyWired reports whether every slot UpdateOutputs needs is
	// connected. UpdateOutputs is only guaranteed correct once it
	// returns true.
	FullyWired() bool

	// UpdateOutputs reads the current input flows and overwrites the
	// output flows in place. Idempotent given unchanged inputs.
	UpdateOutputs() error
}

// device is the base shared by both variants: ordered input/output
// collections with bounds fixed at construction.
type device struct {
	inputs      []Stream
	outputs     []Stream
	inputBound  int
	outputBound int
}

func (d *device) AddInput(s Stream) error {
	if len(d.inputs) >= d.inputBound {
		return &CapacityError{Bound: InputBound, Guard: GenericGuard}
	}

	d.inputs = append(d.inputs, s)
	return nil
}

func (d *device) AddOutput(s Stream) error {
	if len(d.outputs) >= d.outputBound {
		return &CapacityError{Bound: OutputBound, Guard: GenericGuard}
	}

	d.outputs = append(d.outputs, s)
	return nil
}

// Inputs returns a snapshot in connection order. Mutating the returned
// slice does not affect the device.
func (d *device) Inputs() []Stream {
	inputs := make([]Stream, len(d.inputs))
	copy(inputs, d.inputs)
	return inputs
}

// Outputs returns a snapshot in connection order.
func (d *device) Outputs() []Stream {
	outputs := make([]Stream, len(d.outputs))
	copy(outputs, d.outputs)
	return outputs
}
