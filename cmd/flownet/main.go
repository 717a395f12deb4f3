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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"flownet/pkg/data"
	"flownet/pkg/flow"
	"flownet/pkg/plant"
)

var (
	startRunning  = time.Now()
	au            = aurora.NewAurora(true)
	feedFlows     = flag.String("feedFlows", "10,5", "Comma-separated mass flows of the mixer feed streams")
	doubleReactor = flag.Bool("doubleReactor", true, "Split the reactor output across two streams")
	showTrace     = flag.Bool("showTrace", true, "Show the device update trace")
	showStreams   = flag.Bool("showStreams", true, "Print every stream after the run")
	storeRun      = flag.Bool("storeRun", true, "Store run results in flownet.db")
)

func main() {
	flag.Parse()

	r, err := NewRunner()
	if err != nil {
		fmt.Printf("could not build the flowsheet: %s\n", err.Error())
		os.Exit(1)
	}

	fmt.Print("Running flowsheet ... ")

	completed, skipped, err := r.Flowsheet().Run()
	if err != nil {
		fmt.Printf("there was an error during the run: %s\n", err.Error())
		os.Exit(1)
	}

	if *storeRun {
		store := data.NewRunStore()
		flowsheetRunId, err := store.Store("flownet.db", completed, skipped, r.Flowsheet().Snapshot(), "mixer-reactor", "flownet_cli")
		if err != nil {
			r.Logger().Errorf("there was an error saving data: %s", err.Error())
		} else {
			fmt.Printf("#%d ", au.Bold(flowsheetRunId))
		}
	}

	if *showTrace {
		err = r.Report(completed, skipped, os.Stdout)
		if err != nil {
			fmt.Printf("there was an error reporting the run: %s\n", err.Error())
		}
	}
}

type Runner interface {
	Flowsheet() plant.Flowsheet
	Logger() *zap.SugaredLogger
	Report(completed []plant.CompletedUpdate, skipped []plant.SkippedUpdate, writer io.Writer) error
}

type runner struct {
	flowsheet plant.Flowsheet
	logbuf    *bytes.Buffer
	logger    *zap.SugaredLogger
}

func (r *runner) Flowsheet() plant.Flowsheet {
	return r.flowsheet
}

func (r *runner) Logger() *zap.SugaredLogger {
	return r.logger
}

func (r *runner) Report(completed []plant.CompletedUpdate, skipped []plant.SkippedUpdate, writer io.Writer) error {
	fmt.Fprintf(writer,
		"%5s      %17s %-8d  %15s %-8d  %14s %-10s\n\n",
		au.Bold("Done."),
		au.BgGreen("Completed updates"),
		au.Bold(len(completed)),
		au.BgBrown("Skipped updates"),
		au.Bold(len(skipped)),
		au.Cyan("Running time:"),
		time.Now().Sub(startRunning).String(),
	)

	printer := message.NewPrinter(language.AmericanEnglish)

	fmt.Fprintln(writer, au.BgGreen(fmt.Sprintf("%4s  %-16s %-10s %14s  %14s", "#", "Device Name", "Kind", "Total In", "Total Out")).Bold())
	for i, cu := range completed {
		fmt.Fprintln(writer, printer.Sprintf(
			"%4d  %-16s %-10s %14.2f  %14.2f",
			i,
			string(cu.DeviceName),
			string(cu.Kind),
			cu.TotalIn,
			cu.TotalOut,
		))
	}

	if len(skipped) > 0 {
		fmt.Fprint(writer, "\n")
		fmt.Fprintln(writer, au.BgBrown(fmt.Sprintf("%4s  %-16s %-10s %-48s", "#", "Device Name", "Kind", "Reason Skipped")).Bold())
		for i, su := range skipped {
			coloredReason := au.Red(su.Reason).String()
			if su.Reason == plant.NotFullyWired {
				coloredReason = au.Magenta(su.Reason).String()
			}

			fmt.Fprintln(writer, printer.Sprintf(
				"%4d  %-16s %-10s %-48s",
				i,
				string(su.DeviceName),
				string(su.Kind),
				coloredReason,
			))
		}
	}

	if *showStreams {
		fmt.Fprint(writer, "\n")
		for _, name := range sortedStreamNames(r.flowsheet.Snapshot()) {
			fmt.Fprintf(writer, "Stream %s flow = %v\n", name, r.flowsheet.Snapshot()[name])
		}
	}

	if r.logbuf.Len() > 0 {
		fmt.Fprint(writer, "\n")
		fmt.Fprintln(writer, au.Bold(fmt.Sprintf("%-80s", "          Log output")).BgBlue())
		fmt.Fprintln(writer, r.logbuf.String())
	}

	return nil
}

// sortedStreamNames orders by ordinal, so s10 sorts after s9.
func sortedStreamNames(snapshot map[flow.StreamName]float64) []flow.StreamName {
	names := make([]flow.StreamName, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}

	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && ordinalOf(names[j]) < ordinalOf(names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}

	return names
}

func ordinalOf(name flow.StreamName) int {
	ordinal, err := strconv.Atoi(strings.TrimPrefix(string(name), "s"))
	if err != nil {
		return 0
	}
	return ordinal
}

func NewRunner() (Runner, error) {
	conf, err := scenarioConfig()
	if err != nil {
		return nil, err
	}

	fs, err := plant.NewMixerReactorScenario(conf)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)

	return &runner{
		flowsheet: fs,
		logbuf:    buf,
		logger:    newLogger(buf),
	}, nil
}

func scenarioConfig() (plant.ScenarioConfig, error) {
	conf := plant.ScenarioConfig{DoubleReactor: *doubleReactor}

	for _, field := range strings.Split(*feedFlows, ",") {
		feedFlow, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return conf, fmt.Errorf("could not parse feed flow '%s': %s", field, err.Error())
		}
		conf.FeedFlows = append(conf.FeedFlows, feedFlow)
	}

	return conf, nil
}

func newLogger(buf io.Writer) *zap.SugaredLogger {
	sink := zapcore.AddSync(buf)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zap.InfoLevel,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("flownet").Sugar()
}
