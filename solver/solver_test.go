package solver

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"

	"github.com/notargets/quasi1d/TimeIntegrator"
	"github.com/notargets/quasi1d/mesh1D"
	"github.com/notargets/quasi1d/model_problems/Euler1D"
	"github.com/notargets/quasi1d/types"
)

var nozzleBounds = TimeIntegrator.Bounds{
	DensityMin: 1.e-4, DensityMax: 100,
	VelocityMin: -2000, VelocityMax: 5000,
	PressureMin: 10, PressureMax: 1.e7,
}

func newNozzle(N int, outflow types.BCFLAG, backPressure float64) (c *Euler1D.Euler, f *types.Field) {
	mesh, err := mesh1D.NewMesh(-1, 1, N, mesh1D.NozzleArea)
	Expect(err).NotTo(HaveOccurred())
	c = Euler1D.NewEuler(mesh, 1.4, 287, 300000, 600, outflow, backPressure)
	f = types.NewField(N)
	c.InitializeField(f)
	return
}

var _ = Describe("Driver", func() {
	var (
		mockCtrl *gomock.Controller
		logger   *logrus.Logger
		hook     *logtest.Hook
		cfg      Config
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		logger, hook = logtest.NewNullLogger()
		cfg = DefaultConfig()
		cfg.MaxIterations = 5000
		cfg.LogFrequency = 1000
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	newDriver := func(c *Euler1D.Euler, f *types.Field, obs TimeIntegrator.Observer) *Driver {
		d, err := NewDriver(cfg, c, c.Mesh, f, nozzleBounds, obs, nil)
		Expect(err).NotTo(HaveOccurred())
		d.Logger = logger
		d.Out = GinkgoWriter
		return d
	}

	It("should reject invalid settings", func() {
		c, f := newNozzle(8, types.BC_Out, 0)
		bad := cfg
		bad.CFL = 0
		_, err := NewDriver(bad, c, c.Mesh, f, nozzleBounds, nil, nil)
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())

		bad = cfg
		bad.RelaxationFactor = 1.5
		_, err = NewDriver(bad, c, c.Mesh, f, nozzleBounds, nil, nil)
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())

		_, err = NewDriver(cfg, c, c.Mesh, types.NewField(4), nozzleBounds, nil, nil)
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())

		b := nozzleBounds
		b.DensityMin = 200
		_, err = NewDriver(cfg, c, c.Mesh, f, b, nil, nil)
		Expect(err).To(HaveOccurred())
	})

	It("should converge the supersonic nozzle with local time stepping", func() {
		c, f := newNozzle(32, types.BC_Out, 0)
		d := newDriver(c, f, nil)

		res, err := d.Run(context.Background())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.Iterations).To(BeNumerically("<", cfg.MaxIterations))
		for eq := 0; eq < 3; eq++ {
			Expect(res.Norms[eq]).To(BeNumerically("<", cfg.ConvergenceTol*res.InitialNorms[eq]))
		}
		Expect(c.Mach(*f.Interior(0))).To(BeNumerically("~", 0.128, 0.01))
		Expect(c.Mach(*f.Interior(31))).To(BeNumerically(">", 2))
		Expect(f.IsFinite()).To(BeTrue())
		Expect(hook.LastEntry().Message).To(Equal("Iteration finished"))
		Expect(hook.LastEntry().Data["converged"]).To(Equal(true))
	})

	It("should converge the supersonic nozzle with global time stepping", func() {
		cfg.LocalTimeStepping = false
		c, f := newNozzle(32, types.BC_Out, 0)
		d := newDriver(c, f, nil)

		res, err := d.Run(context.Background())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(c.Mach(*f.Interior(31))).To(BeNumerically(">", 2))
	})

	It("should hold the back pressure at a subsonic exit", func() {
		c, f := newNozzle(32, types.BC_BackPressure, 200000)
		d := newDriver(c, f, nil)

		res, err := d.Run(context.Background())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		for n := 0; n < 32; n++ {
			Expect(c.Mach(*f.Interior(n))).To(BeNumerically("<", 1))
		}
		Expect(f.Interior(31)[types.Pressure]).To(BeNumerically("~", 200000, 2000))
	})

	It("should stop on a non-finite time step", func() {
		c, f := newNozzle(32, types.BC_Out, 0)
		obs := NewMockObserver(mockCtrl)
		obs.EXPECT().NonFiniteWaveSpeed(5, gomock.Any(), gomock.Any()).Times(1)
		f.Interior(5)[types.Pressure] = math.NaN()
		d := newDriver(c, f, obs)

		res, err := d.Run(context.Background())

		Expect(errors.Is(err, ErrNonFiniteTimeStep)).To(BeTrue())
		var iterErr *IterationError
		Expect(errors.As(err, &iterErr)).To(BeTrue())
		Expect(iterErr.Iteration).To(Equal(1))
		Expect(iterErr.Cell).To(Equal(5))
		Expect(res.Converged).To(BeFalse())
		Expect(hook.LastEntry().Level).To(Equal(logrus.ErrorLevel))
		Expect(hook.LastEntry().Data["nanField"]).To(Equal(true))
	})

	It("should stop on a non-finite residual when the global step hides the bad cell", func() {
		cfg.LocalTimeStepping = false
		c, f := newNozzle(32, types.BC_Out, 0)
		obs := NewMockObserver(mockCtrl)
		obs.EXPECT().NonFiniteWaveSpeed(5, gomock.Any(), gomock.Any()).Times(1)
		f.Interior(5)[types.Pressure] = math.NaN()
		d := newDriver(c, f, obs)

		_, err := d.Run(context.Background())

		Expect(errors.Is(err, ErrNonFiniteResidual)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("iteration 1"))
	})

	It("should record every iteration and flush once", func() {
		cfg.MaxIterations = 3
		c, f := newNozzle(16, types.BC_Out, 0)
		rec := NewMockRecorder(mockCtrl)
		gomock.InOrder(
			rec.EXPECT().Record(1, gomock.Any()).Return(nil),
			rec.EXPECT().Record(2, gomock.Any()).Return(nil),
			rec.EXPECT().Record(3, gomock.Any()).Return(nil),
			rec.EXPECT().Flush().Return(nil),
		)
		d := newDriver(c, f, nil)
		d.Recorder = rec

		res, err := d.Run(context.Background())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeFalse())
		Expect(res.Iterations).To(Equal(3))
	})

	It("should pass recorder failures back to the caller", func() {
		c, f := newNozzle(16, types.BC_Out, 0)
		rec := NewMockRecorder(mockCtrl)
		diskFull := errors.New("disk full")
		rec.EXPECT().Record(1, gomock.Any()).Return(diskFull)
		d := newDriver(c, f, nil)
		d.Recorder = rec

		_, err := d.Run(context.Background())

		Expect(errors.Is(err, diskFull)).To(BeTrue())
	})

	It("should honor a canceled context", func() {
		c, f := newNozzle(16, types.BC_Out, 0)
		d := newDriver(c, f, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := d.Run(ctx)

		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(res.Iterations).To(Equal(0))
	})

	It("should clear the relaxation flags after the hold count", func() {
		cfg.MaxIterations = 4
		cfg.RelaxationHold = 2
		// A vanishing growth factor flags every iteration after the first
		cfg.RelaxationGrowth = 1.e-12
		c, f := newNozzle(16, types.BC_Out, 0)
		d := newDriver(c, f, nil)

		res, err := d.Run(context.Background())

		Expect(err).NotTo(HaveOccurred())
		// Flags rise at iteration 2, are held through 3 and cleared, rise again at 4
		Expect(res.Resets).To(Equal(1))
		Expect(d.Relax.Any()).To(BeTrue())
		Expect(d.Relax.FlagCount).To(Equal(1))
	})
})
