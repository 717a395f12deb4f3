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

import (
	"fmt"

	"github.com/looplab/fsm"

	"flownet/pkg/flow"
)

type DeviceName string
type DeviceKind string

const (
	MixerKind   DeviceKind = "Mixer"
	ReactorKind DeviceKind = "Reactor"
)

// Reasons a device update was skipped during a run.
const (
	NotFullyWired = "DeviceNotFullyWired"
)

// CompletedUpdate records one successful UpdateOutputs invocation together
// with the flow totals observed immediately afterwards.
type CompletedUpdate struct {
	DeviceName DeviceName
	Kind       DeviceKind
	TotalIn    float64
	TotalOut   float64
}

// SkippedUpdate records a device whose update was not performed, and why.
type SkippedUpdate struct {
	DeviceName DeviceName
	Kind       DeviceKind
	Reason     string
}

// Flowsheet wires streams and devices into a runnable network. Devices are
// updated in registration order, which is also the single-writer discipline
// for shared streams: an upstream device writes a stream before the
// downstream device reads it.
type Flowsheet interface {
	NewStream() flow.Stream
	AddDevice(name DeviceName, kind DeviceKind, device flow.Device)
	Run() (completed []CompletedUpdate, skipped []SkippedUpdate, err error)
	Snapshot() map[flow.StreamName]float64
}

type namedDevice struct {
	name   DeviceName
	kind   DeviceKind
	device flow.Device
}

type flowsheet struct {
	name    string
	minter  StreamMinter
	streams []flow.Stream
	devices []namedDevice

	completed []CompletedUpdate
	skipped   []SkippedUpdate

	fsm *fsm.FSM
}

// NewStream mints a stream with the next default name and registers it for
// Snapshot().
func (fs *flowsheet) NewStream() flow.Stream {
	s := fs.minter.Mint()
	fs.streams = append(fs.streams, s)
	return s
}

func (fs *flowsheet) AddDevice(name DeviceName, kind DeviceKind, device flow.Device) {
	fs.devices = append(fs.devices, namedDevice{
		name:   name,
		kind:   kind,
		device: device,
	})
}

// Run updates every registered device once, in registration order. Devices
// that are not fully wired are skipped rather than updated from stale
// slots. A flowsheet runs once; a second Run fails.
func (fs *flowsheet) Run() (completed []CompletedUpdate, skipped []SkippedUpdate, err error) {
	err = fs.fsm.Event("run")
	if err != nil {
		return nil, nil, fmt.Errorf("flowsheet '%s' could not begin a run: %s", fs.name, err.Error())
	}

	for _, nd := range fs.devices {
		if !nd.device.FullyWired() {
			fs.skipped = append(fs.skipped, SkippedUpdate{
				DeviceName: nd.name,
				Kind:       nd.kind,
				Reason:     NotFullyWired,
			})
			continue
		}

		updateErr := nd.device.UpdateOutputs()
		if updateErr != nil {
			fs.skipped = append(fs.skipped, SkippedUpdate{
				DeviceName: nd.name,
				Kind:       nd.kind,
				Reason:     updateErr.Error(),
			})
			continue
		}

		fs.completed = append(fs.completed, CompletedUpdate{
			DeviceName: nd.name,
			Kind:       nd.kind,
			TotalIn:    totalMassFlow(nd.device.Inputs()),
			TotalOut:   totalMassFlow(nd.device.Outputs()),
		})
	}

	err = fs.fsm.Event("complete")
	if err != nil {
		return nil, nil, fmt.Errorf("flowsheet '%s' could not complete its run: %s", fs.name, err.Error())
	}

	return fs.completed, fs.skipped, nil
}

// Snapshot returns the current flow of every stream minted by this
// flowsheet, keyed by stream name.
func (fs *flowsheet) Snapshot() map[flow.StreamName]float64 {
	snapshot := make(map[flow.StreamName]float64, len(fs.streams))
	for _, s := range fs.streams {
		snapshot[s.Name()] = s.MassFlow()
	}
	return snapshot
}

func totalMassFlow(streams []flow.Stream) float64 {
	total := 0.0
	for _, s := range streams {
		total += s.MassFlow()
	}
	return total
}

func NewFlowsheet(name string) Flowsheet {
	fs := &flowsheet{
		name:      name,
		minter:    NewStreamMinter(),
		streams:   make([]flow.Stream, 0),
		devices:   make([]namedDevice, 0),
		completed: make([]CompletedUpdate, 0),
		skipped:   make([]SkippedUpdate, 0),
	}

	fs.fsm = fsm.NewFSM(
		"STARTING",
		fsm.Events{
			{Name: "run", Src: []string{"STARTING"}, Dst: "RUNNING"},
			{Name: "complete", Src: []string{"RUNNING"}, Dst: "COMPLETED"},
		},
		fsm.Callbacks{},
	)

	return fs
}
