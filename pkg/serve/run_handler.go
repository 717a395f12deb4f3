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
 *
 */

package serve

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"flownet/pkg/data"
	"flownet/pkg/plant"
)

var dbFileName = "flownet.db"

type updateLine struct {
	Position int     `json:"position"`
	Device   string  `json:"device"`
	Kind     string  `json:"kind"`
	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`
}

type skipLine struct {
	Position int    `json:"position"`
	Device   string `json:"device"`
	Kind     string `json:"kind"`
	Reason   string `json:"reason"`
}

type runResponse struct {
	FlowsheetRunId int64              `json:"flowsheet_run_id"`
	Updates        []updateLine       `json:"updates"`
	Skipped        []skipLine         `json:"skipped"`
	StreamFlows    map[string]float64 `json:"stream_flows"`
}

// RunHandler builds the mixer → reactor demonstration flowsheet from query
// parameters, runs it once, stores the run and returns the trace.
//
// Parameters: feedFlows (comma-separated floats, default "10,5") and
// doubleReactor (bool, default true).
func RunHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	conf, err := scenarioConfig(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"error": %q}`, err.Error())
		return
	}

	fs, err := plant.NewMixerReactorScenario(conf)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"error": %q}`, err.Error())
		return
	}

	completed, skipped, err := fs.Run()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error": %q}`, err.Error())
		return
	}

	store := data.NewRunStore()
	flowsheetRunId, err := store.Store(dbFileName, completed, skipped, fs.Snapshot(), "mixer-reactor", "flownet_web")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error": %q}`, err.Error())
		return
	}

	resp := runResponse{
		FlowsheetRunId: flowsheetRunId,
		Updates:        make([]updateLine, 0, len(completed)),
		Skipped:        make([]skipLine, 0, len(skipped)),
		StreamFlows:    make(map[string]float64),
	}

	for i, cu := range completed {
		resp.Updates = append(resp.Updates, updateLine{
			Position: i,
			Device:   string(cu.DeviceName),
			Kind:     string(cu.Kind),
			TotalIn:  cu.TotalIn,
			TotalOut: cu.TotalOut,
		})
	}

	for i, su := range skipped {
		resp.Skipped = append(resp.Skipped, skipLine{
			Position: i,
			Device:   string(su.DeviceName),
			Kind:     string(su.Kind),
			Reason:   su.Reason,
		})
	}

	for name, massFlow := range fs.Snapshot() {
		resp.StreamFlows[string(name)] = massFlow
	}

	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func scenarioConfig(r *http.Request) (plant.ScenarioConfig, error) {
	conf := plant.ScenarioConfig{
		FeedFlows:     []float64{10.0, 5.0},
		DoubleReactor: true,
	}

	if feeds := r.URL.Query().Get("feedFlows"); feeds != "" {
		conf.FeedFlows = nil
		for _, field := range strings.Split(feeds, ",") {
			feedFlow, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return conf, fmt.Errorf("could not parse feed flow '%s': %s", field, err.Error())
			}
			conf.FeedFlows = append(conf.FeedFlows, feedFlow)
		}
	}

	if double := r.URL.Query().Get("doubleReactor"); double != "" {
		parsed, err := strconv.ParseBool(double)
		if err != nil {
			return conf, fmt.Errorf("could not parse doubleReactor '%s': %s", double, err.Error())
		}
		conf.DoubleReactor = parsed
	}

	return conf, nil
}
