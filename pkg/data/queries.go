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

package data

// language=sql
var StreamFlowsQuery = `
select
    stream
  , mass_flow
from stream_flows
where flowsheet_run_id = ?
order by length(stream), stream
;
`

// language=sql
var UpdateTraceQuery = `
select
    cu.position
  , d.name
  , d.kind
  , cu.total_in
  , cu.total_out
from completed_updates cu
join devices d on d.id = cu.device
where cu.flowsheet_run_id = ?
order by cu.position
;
`

// language=sql
var SkippedTraceQuery = `
select
    su.position
  , d.name
  , d.kind
  , su.reason
from skipped_updates su
join devices d on d.id = su.device
where su.flowsheet_run_id = ?
order by su.position
;
`
