package flow

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice(t *testing.T) {
	spec.Run(t, "Device", testDevice, spec.Report(report.Terminal{}))
}

func testDevice(t *testing.T, describe spec.G, it spec.S) {
	var subject Device
	var s1, s2, s3 Stream

	it.Before(func() {
		subject = NewMixer(3)

		s1 = NewStream(1)
		s2 = NewStream(2)
		s3 = NewStream(3)
	})

	describe("Inputs()", func() {
		it.Before(func() {
			require.NoError(t, subject.AddInput(s1))
			require.NoError(t, subject.AddInput(s2))
		})

		it("preserves connection order", func() {
			inputs := subject.Inputs()
			require.Len(t, inputs, 2)
			assert.Equal(t, StreamName("s1"), inputs[0].Name())
			assert.Equal(t, StreamName("s2"), inputs[1].Name())
		})

		it("returns the connected streams themselves, not copies", func() {
			inputs := subject.Inputs()
			assert.True(t, s1 == inputs[0])
			assert.True(t, s2 == inputs[1])
		})

		it("returns a snapshot detached from device state", func() {
			inputs := subject.Inputs()
			inputs[0] = s3

			assert.True(t, s1 == subject.Inputs()[0])
		})
	})

	describe("Outputs()", func() {
		it.Before(func() {
			require.NoError(t, subject.AddOutput(s3))
		})

		it("returns a snapshot in connection order", func() {
			outputs := subject.Outputs()
			require.Len(t, outputs, 1)
			assert.True(t, s3 == outputs[0])

			outputs[0] = s1
			assert.True(t, s3 == subject.Outputs()[0])
		})
	})

	describe("a stream shared between two devices", func() {
		it("carries one device's output into the other's input", func() {
			mixer := NewMixer(2)
			reactor := NewReactor(false)

			s1.SetMassFlow(10.0)
			s2.SetMassFlow(5.0)
			require.NoError(t, mixer.AddInput(s1))
			require.NoError(t, mixer.AddInput(s2))
			require.NoError(t, mixer.AddOutput(s3))

			tail := NewStream(4)
			require.NoError(t, reactor.AddInput(s3))
			require.NoError(t, reactor.AddOutput(tail))

			require.NoError(t, mixer.UpdateOutputs())
			require.NoError(t, reactor.UpdateOutputs())

			assert.Equal(t, 15.0, tail.MassFlow())
		})
	})
}
