package main

import (
	"bytes"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdMain(t *testing.T) {
	spec.Run(t, "cmd main", testMain, spec.Report(report.Terminal{}))
}

func testMain(t *testing.T, describe spec.G, it spec.S) {
	var subject Runner
	var err error

	it.Before(func() {
		subject, err = NewRunner()
		require.NoError(t, err)
	})

	describe("Report()", func() {
		var w bytes.Buffer
		var rpt string

		it.Before(func() {
			completed, skipped, err := subject.Flowsheet().Run()
			require.NoError(t, err)

			w = bytes.Buffer{}
			err = subject.Report(completed, skipped, &w)
			require.NoError(t, err)

			rpt = w.String()
		})

		it("reports both device updates", func() {
			assert.Contains(t, rpt, "Mixer")
			assert.Contains(t, rpt, "Reactor")
		})

		it("prints the diagnostic stream lines", func() {
			assert.Contains(t, rpt, "Stream s3 flow = 15")
			assert.Contains(t, rpt, "Stream s4 flow = 7.5")
			assert.Contains(t, rpt, "Stream s5 flow = 7.5")
		})
	})

	describe("scenarioConfig()", func() {
		it("parses the default feed flows", func() {
			conf, err := scenarioConfig()
			require.NoError(t, err)
			assert.Equal(t, []float64{10.0, 5.0}, conf.FeedFlows)
			assert.True(t, conf.DoubleReactor)
		})
	})
}
