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

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"flownet/pkg/serve"
)

var addr = flag.String("addr", "0.0.0.0:3000", "Address the run server listens on")

func main() {
	flag.Parse()

	unsugaredLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err.Error())
	}
	logger := unsugaredLogger.Named("flownet-serve").Sugar()

	server := serve.NewFlownetServer(*addr, logger)
	server.Serve()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	<-interrupts

	server.Shutdown()
}
