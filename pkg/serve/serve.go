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

package serve

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

type FlownetServer struct {
	Addr   string
	logger *zap.SugaredLogger
	srv    *http.Server
}

func (fs *FlownetServer) Serve() {
	router := chi.NewRouter()
	router.Use(middleware.NoCache)
	router.Use(middleware.DefaultCompress)
	router.Use(middleware.Logger)

	router.HandleFunc("/run", RunHandler)

	fs.srv = &http.Server{
		Addr:    fs.Addr,
		Handler: router,
	}

	go func() {
		fs.logger.Infof("Listening on %s ...", fs.Addr)
		fs.logger.Fatal(fs.srv.ListenAndServe())
	}()
}

func (fs *FlownetServer) Shutdown() {
	fs.logger.Info("Shutting down ...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := fs.srv.Shutdown(ctx)
	if err != nil {
		fs.logger.Fatalf("shutdown error: %s", err.Error())
	}

	fs.logger.Info("Done.")
}

func NewFlownetServer(addr string, logger *zap.SugaredLogger) *FlownetServer {
	return &FlownetServer{
		Addr:   addr,
		logger: logger,
	}
}
