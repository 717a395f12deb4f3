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

// MixerOutputs is the fixed output bound of every mixer: the merged flow
// leaves on a single stream.
const MixerOutputs = 1

// Mixer merges its input flows and emits the total on its output.
type Mixer interface {
	Device
}

type mixer struct {
	device
}

// AddInput applies the same capacity guard as the base device but reports
// the mixer's own message text.
func (m *mixer) AddInput(s Stream) error {
	if len(m.inputs) == m.inputBound {
		return &CapacityError{Bound: InputBound, Guard: MixerGuard}
	}

	m.inputs = append(m.inputs, s)
	return nil
}

func (m *mixer) AddOutput(s Stream) error {
	if len(m.outputs) == MixerOutputs {
		return &CapacityError{Bound: OutputBound, Guard: MixerGuard}
	}

	m.outputs = append(m.outputs, s)
	return nil
}

// FullyWired requires a connected output. Inputs are optional: a mixer with
// nothing flowing in merges to zero.
func (m *mixer) FullyWired() bool {
	return len(m.outputs) > 0
}

// UpdateOutputs sums the input flows and splits the total evenly across the
// connected outputs. With the output bound at 1 the split is the total
// itself, but the law is computed generally.
func (m *mixer) UpdateOutputs() error {
	totalMassFlow := 0.0
	for _, in := range m.inputs {
		totalMassFlow += in.MassFlow()
	}

	if len(m.outputs) == 0 {
		return ErrNoOutputs
	}

	outputMassFlow := totalMassFlow / float64(len(m.outputs))
	for _, out := range m.outputs {
		out.SetMassFlow(outputMassFlow)
	}

	return nil
}

// NewMixer creates a Mixer accepting up to inputBound input streams and
// exactly one output stream.
func NewMixer(inputBound int) Mixer {
	return &mixer{
		device: device{
			inputBound:  inputBound,
			outputBound: MixerOutputs,
		},
	}
}
