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

const (
	reactorInputs        = 1
	doubleReactorOutputs = 2
)

// Reactor takes exactly one input flow and splits it evenly across one or
// two outputs, conserving mass.
type Reactor interface {
	Device
}

type reactor struct {
	device
}

func (r *reactor) FullyWired() bool {
	return len(r.inputs) == r.inputBound && len(r.outputs) == r.outputBound
}

// UpdateOutputs writes inputFlow / outputBound to every output slot. Every
// required slot must already be connected; an unconnected slot is an
// explicit failure, never a silent no-op.
func (r *reactor) UpdateOutputs() error {
	if len(r.inputs) < r.inputBound {
		return &MissingConnectionError{Bound: InputBound, Want: r.inputBound, Got: len(r.inputs)}
	}

	if len(r.outputs) < r.outputBound {
		return &MissingConnectionError{Bound: OutputBound, Want: r.outputBound, Got: len(r.outputs)}
	}

	inputMassFlow := r.inputs[0].MassFlow()
	outputMassFlow := inputMassFlow / float64(r.outputBound)

	for _, out := range r.outputs {
		out.SetMassFlow(outputMassFlow)
	}

	return nil
}

// NewReactor creates a Reactor with one input slot and two output slots
// when double is true, otherwise one.
func NewReactor(double bool) Reactor {
	outputBound := 1
	if double {
		outputBound = doubleReactorOutputs
	}

	return &reactor{
		device: device{
			inputBound:  reactorInputs,
			outputBound: outputBound,
		},
	}
}
