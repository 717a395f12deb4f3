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

// ScenarioConfig describes the demonstration network: feed streams merged
// by a mixer whose merged stream feeds a reactor.
type ScenarioConfig struct {
	FeedFlows     []float64
	DoubleReactor bool
}

// NewMixerReactorScenario builds the canonical feed → mixer → reactor
// flowsheet. Stream ordinals run from s1 in wiring order: feeds first, then
// the merged stream, then the reactor outputs.
func NewMixerReactorScenario(conf ScenarioConfig) (Flowsheet, error) {
	fs := NewFlowsheet("mixer-reactor")

	mixer := flow.NewMixer(len(conf.FeedFlows))
	for _, feedFlow := range conf.FeedFlows {
		feed := fs.NewStream()
		feed.SetMassFlow(feedFlow)

		if err := mixer.AddInput(feed); err != nil {
			return nil, err
		}
	}

	merged := fs.NewStream()
	if err := mixer.AddOutput(merged); err != nil {
		return nil, err
	}

	reactor := flow.NewReactor(conf.DoubleReactor)
	if err := reactor.AddInput(merged); err != nil {
		return nil, err
	}

	reactorOutputs := 1
	if conf.DoubleReactor {
		reactorOutputs = 2
	}
	for i := 0; i < reactorOutputs; i++ {
		if err := reactor.AddOutput(fs.NewStream()); err != nil {
			return nil, err
		}
	}

	fs.AddDevice("Mixer", MixerKind, mixer)
	fs.AddDevice("Reactor", ReactorKind, reactor)

	return fs, nil
}
