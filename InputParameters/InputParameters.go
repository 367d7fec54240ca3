package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
	"gopkg.in/ini.v1"

	"github.com/notargets/quasi1d/TimeIntegrator"
	"github.com/notargets/quasi1d/solver"
	"github.com/notargets/quasi1d/types"
)

// Parameters obtained from the YAML or INI input file. Keys match the field names
type InputParametersNozzle struct {
	Title            string  `yaml:"Title"`
	CellNumber       int     `yaml:"CellNumber"`
	XMin             float64 `yaml:"XMin"`
	XMax             float64 `yaml:"XMax"`
	Gamma            float64 `yaml:"Gamma"`
	R                float64 `yaml:"R"`
	P0               float64 `yaml:"P0"` // Inflow stagnation pressure
	T0               float64 `yaml:"T0"` // Inflow stagnation temperature
	OutflowBC        string  `yaml:"OutflowBC"`
	BackPressure     float64 `yaml:"BackPressure"`
	CFL              float64 `yaml:"CFL"`
	LocalTimeStep    bool    `yaml:"LocalTimeStep"`
	MaxIterations    int     `yaml:"MaxIterations"`
	ConvergenceTol   float64 `yaml:"ConvergenceTol"`
	RelaxationGrowth float64 `yaml:"RelaxationGrowth"`
	RelaxationFactor float64 `yaml:"RelaxationFactor"`
	RelaxationHold   int     `yaml:"RelaxationHold"`
	LogFrequency     int     `yaml:"LogFrequency"`
	DensityMin       float64 `yaml:"DensityMin"`
	DensityMax       float64 `yaml:"DensityMax"`
	VelocityMin      float64 `yaml:"VelocityMin"`
	VelocityMax      float64 `yaml:"VelocityMax"`
	PressureMin      float64 `yaml:"PressureMin"`
	PressureMax      float64 `yaml:"PressureMax"`
	HistoryFile      string  `yaml:"HistoryFile"`
}

// NewInputParametersNozzle returns the supersonic nozzle case, parsed input overrides any of it
func NewInputParametersNozzle() (ip *InputParametersNozzle) {
	cfg := solver.DefaultConfig()
	ip = &InputParametersNozzle{
		Title:            "Quasi-1D Nozzle",
		CellNumber:       64,
		XMin:             -1,
		XMax:             1,
		Gamma:            1.4,
		R:                287,
		P0:               300000,
		T0:               600,
		OutflowBC:        "Out",
		BackPressure:     120000,
		CFL:              cfg.CFL,
		LocalTimeStep:    cfg.LocalTimeStepping,
		MaxIterations:    cfg.MaxIterations,
		ConvergenceTol:   cfg.ConvergenceTol,
		RelaxationGrowth: cfg.RelaxationGrowth,
		RelaxationFactor: cfg.RelaxationFactor,
		RelaxationHold:   cfg.RelaxationHold,
		LogFrequency:     cfg.LogFrequency,
		DensityMin:       1.e-4,
		DensityMax:       100,
		VelocityMin:      -2000,
		VelocityMax:      5000,
		PressureMin:      10,
		PressureMax:      1.e7,
	}
	return
}

func (ip *InputParametersNozzle) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

/*
ParseINI reads the same parameters from an INI file, grouped in sections:

	[nozzle]  Title, CellNumber, XMin, XMax, OutflowBC, BackPressure
	[gas]     Gamma, R, P0, T0
	[solver]  CFL, LocalTimeStep, MaxIterations, ConvergenceTol, Relaxation*, LogFrequency, HistoryFile
	[limiter] DensityMin, DensityMax, VelocityMin, VelocityMax, PressureMin, PressureMax

Missing keys keep their current value.
*/
func (ip *InputParametersNozzle) ParseINI(data []byte) (err error) {
	var (
		file *ini.File
	)
	if file, err = ini.Load(data); err != nil {
		return
	}
	nz := file.Section("nozzle")
	ip.Title = nz.Key("Title").MustString(ip.Title)
	ip.CellNumber = nz.Key("CellNumber").MustInt(ip.CellNumber)
	ip.XMin = nz.Key("XMin").MustFloat64(ip.XMin)
	ip.XMax = nz.Key("XMax").MustFloat64(ip.XMax)
	ip.OutflowBC = nz.Key("OutflowBC").MustString(ip.OutflowBC)
	ip.BackPressure = nz.Key("BackPressure").MustFloat64(ip.BackPressure)

	gas := file.Section("gas")
	ip.Gamma = gas.Key("Gamma").MustFloat64(ip.Gamma)
	ip.R = gas.Key("R").MustFloat64(ip.R)
	ip.P0 = gas.Key("P0").MustFloat64(ip.P0)
	ip.T0 = gas.Key("T0").MustFloat64(ip.T0)

	sv := file.Section("solver")
	ip.CFL = sv.Key("CFL").MustFloat64(ip.CFL)
	ip.LocalTimeStep = sv.Key("LocalTimeStep").MustBool(ip.LocalTimeStep)
	ip.MaxIterations = sv.Key("MaxIterations").MustInt(ip.MaxIterations)
	ip.ConvergenceTol = sv.Key("ConvergenceTol").MustFloat64(ip.ConvergenceTol)
	ip.RelaxationGrowth = sv.Key("RelaxationGrowth").MustFloat64(ip.RelaxationGrowth)
	ip.RelaxationFactor = sv.Key("RelaxationFactor").MustFloat64(ip.RelaxationFactor)
	ip.RelaxationHold = sv.Key("RelaxationHold").MustInt(ip.RelaxationHold)
	ip.LogFrequency = sv.Key("LogFrequency").MustInt(ip.LogFrequency)
	ip.HistoryFile = sv.Key("HistoryFile").MustString(ip.HistoryFile)

	lim := file.Section("limiter")
	ip.DensityMin = lim.Key("DensityMin").MustFloat64(ip.DensityMin)
	ip.DensityMax = lim.Key("DensityMax").MustFloat64(ip.DensityMax)
	ip.VelocityMin = lim.Key("VelocityMin").MustFloat64(ip.VelocityMin)
	ip.VelocityMax = lim.Key("VelocityMax").MustFloat64(ip.VelocityMax)
	ip.PressureMin = lim.Key("PressureMin").MustFloat64(ip.PressureMin)
	ip.PressureMax = lim.Key("PressureMax").MustFloat64(ip.PressureMax)
	return
}

func (ip *InputParametersNozzle) Outflow() (bc types.BCFLAG, err error) {
	if bc, err = types.NewBCFLAG(ip.OutflowBC); err != nil {
		return
	}
	if bc != types.BC_Out && bc != types.BC_BackPressure {
		err = fmt.Errorf("boundary condition [%s] can not be used at the outflow", ip.OutflowBC)
	}
	return
}

func (ip *InputParametersNozzle) LimiterBounds() TimeIntegrator.Bounds {
	return TimeIntegrator.Bounds{
		DensityMin:  ip.DensityMin,
		DensityMax:  ip.DensityMax,
		VelocityMin: ip.VelocityMin,
		VelocityMax: ip.VelocityMax,
		PressureMin: ip.PressureMin,
		PressureMax: ip.PressureMax,
	}
}

func (ip *InputParametersNozzle) SolverConfig() solver.Config {
	return solver.Config{
		CFL:               ip.CFL,
		LocalTimeStepping: ip.LocalTimeStep,
		MaxIterations:     ip.MaxIterations,
		ConvergenceTol:    ip.ConvergenceTol,
		RelaxationGrowth:  ip.RelaxationGrowth,
		RelaxationFactor:  ip.RelaxationFactor,
		RelaxationHold:    ip.RelaxationHold,
		LogFrequency:      ip.LogFrequency,
	}
}

func (ip *InputParametersNozzle) Validate() (err error) {
	var (
		bc types.BCFLAG
	)
	switch {
	case ip.CellNumber < 3:
		return fmt.Errorf("CellNumber must be at least 3, have %d", ip.CellNumber)
	case !(ip.XMax > ip.XMin):
		return fmt.Errorf("XMax (%v) must be greater than XMin (%v)", ip.XMax, ip.XMin)
	case !(ip.Gamma > 1):
		return fmt.Errorf("Gamma must be greater than 1, have %v", ip.Gamma)
	case !(ip.R > 0 && ip.P0 > 0 && ip.T0 > 0):
		return fmt.Errorf("R, P0 and T0 must be positive, have %v, %v, %v", ip.R, ip.P0, ip.T0)
	}
	if bc, err = ip.Outflow(); err != nil {
		return
	}
	if bc == types.BC_BackPressure && !(ip.BackPressure > 0 && ip.BackPressure < ip.P0) {
		return fmt.Errorf("BackPressure must be in (0, P0), have %v", ip.BackPressure)
	}
	if err = ip.LimiterBounds().Validate(); err != nil {
		return
	}
	return ip.SolverConfig().Validate()
}

func (ip *InputParametersNozzle) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Cell Number\n", ip.CellNumber)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%8.3f\t\t= R\n", ip.R)
	fmt.Printf("%10.2f\t\t= P0\n", ip.P0)
	fmt.Printf("%8.2f\t\t= T0\n", ip.T0)
	fmt.Printf("[%s]\t\t\t= Outflow BC\n", ip.OutflowBC)
	if bc, _ := ip.Outflow(); bc == types.BC_BackPressure {
		fmt.Printf("%10.2f\t\t= Back Pressure\n", ip.BackPressure)
	}
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%v\t\t\t= Local Time Stepping\n", ip.LocalTimeStep)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	fmt.Printf("%8.2e\t\t= Convergence Tolerance\n", ip.ConvergenceTol)
	fmt.Printf("%5.2f, %5.2f, %d\t= Relaxation Growth, Factor, Hold\n",
		ip.RelaxationGrowth, ip.RelaxationFactor, ip.RelaxationHold)
	b := ip.LimiterBounds()
	for q := 0; q < 3; q++ {
		lo, hi := b.MinMax(q)
		fmt.Printf("[%10.3e, %10.3e]\t= %s bounds\n", lo, hi, types.PrimitiveNames[q])
	}
}
