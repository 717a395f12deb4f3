package plant

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flownet/pkg/flow"
)

func TestFlowsheet(t *testing.T) {
	suite := spec.New("Flowsheet suite", spec.Report(report.Terminal{}))
	suite("StreamMinter", testStreamMinter)
	suite("Flowsheet", testFlowsheet)
	suite("MixerReactorScenario", testScenario)

	suite.Run(t)
}

func testStreamMinter(t *testing.T, describe spec.G, it spec.S) {
	var subject StreamMinter

	it.Before(func() {
		subject = NewStreamMinter()
		assert.NotNil(t, subject)
	})

	describe("Mint()", func() {
		it("names streams with increasing ordinals", func() {
			assert.Equal(t, flow.StreamName("s1"), subject.Mint().Name())
			assert.Equal(t, flow.StreamName("s2"), subject.Mint().Name())
			assert.Equal(t, flow.StreamName("s3"), subject.Mint().Name())
		})
	})

	describe("Reset()", func() {
		it("starts the ordinals over for a fresh scenario", func() {
			subject.Mint()
			subject.Mint()
			subject.Reset()

			assert.Equal(t, flow.StreamName("s1"), subject.Mint().Name())
		})
	})
}

func testFlowsheet(t *testing.T, describe spec.G, it spec.S) {
	var subject Flowsheet

	it.Before(func() {
		subject = NewFlowsheet("test flowsheet")
		assert.NotNil(t, subject)
	})

	describe("Run()", func() {
		var completed []CompletedUpdate
		var skipped []SkippedUpdate
		var err error

		describe("with a fully wired network", func() {
			it.Before(func() {
				mixer := flow.NewMixer(2)
				s1 := subject.NewStream()
				s2 := subject.NewStream()
				s3 := subject.NewStream()
				s1.SetMassFlow(10.0)
				s2.SetMassFlow(5.0)
				require.NoError(t, mixer.AddInput(s1))
				require.NoError(t, mixer.AddInput(s2))
				require.NoError(t, mixer.AddOutput(s3))

				reactor := flow.NewReactor(true)
				require.NoError(t, reactor.AddInput(s3))
				require.NoError(t, reactor.AddOutput(subject.NewStream()))
				require.NoError(t, reactor.AddOutput(subject.NewStream()))

				subject.AddDevice("FeedMixer", MixerKind, mixer)
				subject.AddDevice("SplitReactor", ReactorKind, reactor)

				completed, skipped, err = subject.Run()
				require.NoError(t, err)
			})

			it("completes every device in registration order", func() {
				require.Len(t, completed, 2)
				assert.Equal(t, DeviceName("FeedMixer"), completed[0].DeviceName)
				assert.Equal(t, DeviceName("SplitReactor"), completed[1].DeviceName)
			})

			it("skips nothing", func() {
				assert.Empty(t, skipped)
			})

			it("records conserved totals", func() {
				assert.Equal(t, 15.0, completed[0].TotalIn)
				assert.Equal(t, 15.0, completed[0].TotalOut)
				assert.InDelta(t, completed[1].TotalIn, completed[1].TotalOut, 0.01)
			})

			it("snapshots the final stream flows", func() {
				snapshot := subject.Snapshot()
				assert.Equal(t, 15.0, snapshot[flow.StreamName("s3")])
				assert.Equal(t, 7.5, snapshot[flow.StreamName("s4")])
				assert.Equal(t, 7.5, snapshot[flow.StreamName("s5")])
			})

			it("refuses a second run", func() {
				_, _, err = subject.Run()
				assert.Error(t, err)
			})
		})

		describe("with a device missing required connections", func() {
			it.Before(func() {
				reactor := flow.NewReactor(false)
				require.NoError(t, reactor.AddInput(subject.NewStream()))

				subject.AddDevice("HalfWired", ReactorKind, reactor)

				completed, skipped, err = subject.Run()
				require.NoError(t, err)
			})

			it("skips the device instead of updating stale slots", func() {
				assert.Empty(t, completed)
				require.Len(t, skipped, 1)
				assert.Equal(t, DeviceName("HalfWired"), skipped[0].DeviceName)
				assert.Equal(t, NotFullyWired, skipped[0].Reason)
			})
		})
	})
}

func testScenario(t *testing.T, describe spec.G, it spec.S) {
	var subject Flowsheet
	var err error

	describe("a double reactor fed by a two-stream mixer", func() {
		it.Before(func() {
			subject, err = NewMixerReactorScenario(ScenarioConfig{
				FeedFlows:     []float64{10.0, 5.0},
				DoubleReactor: true,
			})
			require.NoError(t, err)
		})

		it("splits the merged feed evenly", func() {
			completed, skipped, err := subject.Run()
			require.NoError(t, err)
			assert.Len(t, completed, 2)
			assert.Empty(t, skipped)

			snapshot := subject.Snapshot()
			assert.Equal(t, 15.0, snapshot[flow.StreamName("s3")])
			assert.Equal(t, 7.5, snapshot[flow.StreamName("s4")])
			assert.Equal(t, 7.5, snapshot[flow.StreamName("s5")])
		})
	})

	describe("a single-output reactor", func() {
		it.Before(func() {
			subject, err = NewMixerReactorScenario(ScenarioConfig{
				FeedFlows:     []float64{7.0},
				DoubleReactor: false,
			})
			require.NoError(t, err)
		})

		it("passes the merged feed through unchanged", func() {
			_, _, err := subject.Run()
			require.NoError(t, err)

			snapshot := subject.Snapshot()
			assert.Equal(t, 7.0, snapshot[flow.StreamName("s2")])
			assert.Equal(t, 7.0, snapshot[flow.StreamName("s3")])
		})
	})
}
