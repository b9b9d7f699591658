package regime_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

func demoConfig() regime.Config {
	return regime.Config{
		Mass:      1.0,
		Stiffness: 1.0,
		Table:     regime.DefaultTable(),
		X0:        1.0,
		V0:        0.0,
		Grid:      dynamo.Grid{TMax: 20.0, Dt: 0.01},
	}
}

var _ = Describe("RunAll", func() {
	It("returns one trajectory per regime in table order", func() {
		results, err := regime.RunAll(demoConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))
		Expect(results.Labels()).To(Equal([]regime.Label{regime.Underdamped, regime.CriticallyDamped, regime.Overdamped}))

		for _, res := range results {
			Expect(res.Trajectory.Len()).To(Equal(2001))
			Expect(res.Trajectory.States[0]).To(Equal(dynamo.State{1.0, 0.0}))
		}
	})

	It("preserves a custom ordering", func() {
		cfg := demoConfig()
		cfg.Table = regime.Table{{Label: regime.Overdamped, Damping: 5.0}, {Label: regime.Underdamped, Damping: 0.5}}

		results, err := regime.RunAll(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(results.Labels()).To(Equal([]regime.Label{regime.Overdamped, regime.Underdamped}))
	})

	It("varies only the damping between regimes", func() {
		results, err := regime.RunAll(demoConfig())
		Expect(err).NotTo(HaveOccurred())

		for _, res := range results {
			Expect(res.Oscillator.Mass).To(Equal(1.0))
			Expect(res.Oscillator.Stiffness).To(Equal(1.0))
			Expect(res.Oscillator.Damping).To(Equal(res.Damping))
			Expect(res.Trajectory.Times).To(Equal(results[0].Trajectory.Times))

			direct, err := physics.Simulate(1.0, 1.0, res.Damping, 1.0, 0.0, 20.0, 0.01)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Trajectory.States).To(Equal(direct.States))
		}
	})

	It("looks results up by label", func() {
		results, err := regime.RunAll(demoConfig())
		Expect(err).NotTo(HaveOccurred())

		res, ok := results.Get(regime.CriticallyDamped)
		Expect(ok).To(BeTrue())
		Expect(res.Damping).To(Equal(2.0))

		cfg := demoConfig()
		cfg.Table = regime.Table{{Label: regime.Underdamped, Damping: 0.5}}
		partial, err := regime.RunAll(cfg)
		Expect(err).NotTo(HaveOccurred())
		_, ok = partial.Get(regime.Overdamped)
		Expect(ok).To(BeFalse())
	})

	It("decays fastest without oscillating when critically damped", func() {
		results, err := regime.RunAll(demoConfig())
		Expect(err).NotTo(HaveOccurred())

		under, _ := results.Get(regime.Underdamped)
		crit, _ := results.Get(regime.CriticallyDamped)
		over, _ := results.Get(regime.Overdamped)

		Expect(physics.Position(under.Trajectory)).To(ContainElement(BeNumerically("<", 0)))
		for _, x := range physics.Position(crit.Trajectory) {
			Expect(x).To(BeNumerically(">=", -1e-12))
		}
		at := 500
		Expect(math.Abs(crit.Trajectory.States[at][0])).To(BeNumerically("<", over.Trajectory.States[at][0]))
	})

	Context("with invalid input", func() {
		It("aborts the whole run on a bad damping value", func() {
			cfg := demoConfig()
			cfg.Table = regime.Table{{Label: regime.Underdamped, Damping: 0.5}, {Label: regime.Overdamped, Damping: -5.0}}

			results, err := regime.RunAll(cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
			Expect(err.Error()).To(ContainSubstring("Overdamped"))
			Expect(results).To(BeNil())
		})

		It("rejects shared parameters", func() {
			cfg := demoConfig()
			cfg.Mass = 0

			_, err := regime.RunAll(cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))

			cfg = demoConfig()
			cfg.Grid.Dt = -0.01
			_, err = regime.RunAll(cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
		})

		It("rejects empty and duplicate tables", func() {
			cfg := demoConfig()
			cfg.Table = nil
			_, err := regime.RunAll(cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))

			cfg.Table = regime.Table{{Label: regime.Underdamped, Damping: 0.5}, {Label: regime.Underdamped, Damping: 0.7}}
			_, err = regime.RunAll(cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
		})
	})
})

var _ = Describe("Label", func() {
	DescribeTable("parses names and keys",
		func(in string, want regime.Label) {
			got, err := regime.ParseLabel(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("display name", "Underdamped", regime.Underdamped),
		Entry("spaced", "Critically damped", regime.CriticallyDamped),
		Entry("key", "critically_damped", regime.CriticallyDamped),
		Entry("hyphen", "critically-damped", regime.CriticallyDamped),
		Entry("short", "critical", regime.CriticallyDamped),
		Entry("upper", "OVERDAMPED", regime.Overdamped),
	)

	It("rejects unknown names", func() {
		_, err := regime.ParseLabel("wobbly")
		Expect(err).To(HaveOccurred())
	})

	It("renders display names and keys", func() {
		Expect(regime.CriticallyDamped.String()).To(Equal("Critically damped"))
		Expect(regime.CriticallyDamped.Key()).To(Equal("critically_damped"))
		Expect(regime.Label(9).String()).To(Equal("Label(9)"))
	})
})

var _ = Describe("Classify", func() {
	DescribeTable("uses the sign of c^2 - 4mk",
		func(m, k, c float64, want regime.Label) {
			Expect(regime.Classify(m, k, c)).To(Equal(want))
		},
		Entry("demo underdamped", 1.0, 1.0, 0.5, regime.Underdamped),
		Entry("demo critical", 1.0, 1.0, 2.0, regime.CriticallyDamped),
		Entry("demo overdamped", 1.0, 1.0, 5.0, regime.Overdamped),
		Entry("undamped", 1.0, 1.0, 0.0, regime.Underdamped),
		Entry("critical from sqrt", 3.0, 7.0, 2*math.Sqrt(21.0), regime.CriticallyDamped),
		Entry("no spring", 1.0, 0.0, 0.1, regime.Overdamped),
	)
})
