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

// language=sql
var Schema = `create table if not exists flowsheet_runs
(
    id        integer primary key, -- aliases to rowid

    recorded  text not null,
    origin    text not null,
    flowsheet text not null
);

create table if not exists devices
(
    id   integer primary key, -- aliases to rowid
    name text not null,
    kind text not null
);
create unique index if not exists devices_name_kind on devices (name, kind);

create table if not exists completed_updates
(
    id               integer primary key, -- aliases to rowid
    position         integer not null,

    device           integer not null references devices (id),
    total_in         real    not null,
    total_out        real    not null,

    flowsheet_run_id integer not null references flowsheet_runs (id)
);
create unique index if not exists update_once_per_run on completed_updates (position, flowsheet_run_id);

create table if not exists skipped_updates
(
    id               integer primary key, -- aliases to rowid
    position         integer not null,

    device           integer not null references devices (id),
    reason           text    not null,

    flowsheet_run_id integer not null references flowsheet_runs (id)
);
create unique index if not exists skip_once_per_run on skipped_updates (position, flowsheet_run_id);

create table if not exists stream_flows
(
    id               integer primary key, -- aliases to rowid
    stream           text not null,
    mass_flow        real not null,

    flowsheet_run_id integer not null references flowsheet_runs (id)
);
create unique index if not exists stream_once_per_run on stream_flows (stream, flowsheet_run_id);
`
