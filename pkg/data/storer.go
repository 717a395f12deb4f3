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

package data

import (
	"time"

	"github.com/bvinc/go-sqlite-lite/sqlite3"

	"flownet/pkg/flow"
	"flownet/pkg/plant"
)

// RunStore persists the results of one flowsheet run.
type RunStore interface {
	Store(
		dbFileName string,
		completed []plant.CompletedUpdate,
		skipped []plant.SkippedUpdate,
		snapshot map[flow.StreamName]float64,
		flowsheetName string,
		origin string,
	) (flowsheetRunId int64, err error)
}

type storer struct {
	conn      *sqlite3.Conn
	completed []plant.CompletedUpdate
	skipped   []plant.SkippedUpdate
	snapshot  map[flow.StreamName]float64
	origin    string
	flowsheet string
}

func (s *storer) Store(
	dbFileName string,
	completed []plant.CompletedUpdate,
	skipped []plant.SkippedUpdate,
	snapshot map[flow.StreamName]float64,
	flowsheetName string,
	origin string,
) (flowsheetRunId int64, err error) {
	s.completed = completed
	s.skipped = skipped
	s.snapshot = snapshot
	s.flowsheet = flowsheetName
	s.origin = origin

	conn, err := sqlite3.Open(dbFileName)
	if err != nil {
		return -1, err
	}
	s.conn = conn
	defer s.conn.Close()

	err = s.conn.Exec(Schema)
	if err != nil {
		return -1, err
	}

	flowsheetRunId, err = s.flowsheetRun()
	if err != nil {
		return -1, err
	}

	err = s.conn.WithTx(func() error {
		return s.runData(flowsheetRunId)
	})
	if err != nil {
		return -1, err
	}

	return flowsheetRunId, nil
}

func (s *storer) flowsheetRun() (flowsheetRunId int64, err error) {
	runStmt, err := s.conn.Prepare(`insert into flowsheet_runs(recorded, origin, flowsheet) values (?, ?, ?);`)
	if err != nil {
		return -1, err
	}
	defer runStmt.Close()

	err = runStmt.Exec(time.Now().Format(time.RFC3339), s.origin, s.flowsheet)
	if err != nil {
		return -1, err
	}

	return s.conn.LastInsertRowID(), nil
}

func (s *storer) runData(flowsheetRunId int64) error {
	deviceStmt, err := s.conn.Prepare(`insert into devices(name, kind) values (?, ?) on conflict do nothing`)
	if err != nil {
		return err
	}
	defer deviceStmt.Close()

	updateStmt, err := s.conn.Prepare(`insert into completed_updates(
            position
          , device
          , total_in
          , total_out
          , flowsheet_run_id
        ) values (
            ?
          , (select id from devices where name = ? and kind = ?)
          , ?
          , ?
          , ?)
    `)
	if err != nil {
		return err
	}
	defer updateStmt.Close()

	skipStmt, err := s.conn.Prepare(`insert into skipped_updates(
            position
          , device
          , reason
          , flowsheet_run_id
        ) values (
            ?
          , (select id from devices where name = ? and kind = ?)
          , ?
          , ?)
    `)
	if err != nil {
		return err
	}
	defer skipStmt.Close()

	flowStmt, err := s.conn.Prepare(`insert into stream_flows(stream, mass_flow, flowsheet_run_id) values (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer flowStmt.Close()

	for i, cu := range s.completed {
		err = deviceStmt.Exec(string(cu.DeviceName), string(cu.Kind))
		if err != nil {
			return err
		}

		err = updateStmt.Exec(i, string(cu.DeviceName), string(cu.Kind), cu.TotalIn, cu.TotalOut, flowsheetRunId)
		if err != nil {
			return err
		}
	}

	for i, su := range s.skipped {
		err = deviceStmt.Exec(string(su.DeviceName), string(su.Kind))
		if err != nil {
			return err
		}

		err = skipStmt.Exec(i, string(su.DeviceName), string(su.Kind), su.Reason, flowsheetRunId)
		if err != nil {
			return err
		}
	}

	for streamName, massFlow := range s.snapshot {
		err = flowStmt.Exec(string(streamName), massFlow, flowsheetRunId)
		if err != nil {
			return err
		}
	}

	return nil
}

func NewRunStore() RunStore {
	return &storer{}
}
