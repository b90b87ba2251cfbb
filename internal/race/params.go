package race

const (
	DefaultMinSpeed            = 0.015
	DefaultMaxSpeed            = 0.025
	DefaultSpeedChangeInterval = 10
	DefaultRubberBandStrength  = 0.0005
	DefaultPerturbRange        = 0.005
	DefaultLapsToWin           = 3
	DefaultBaseSpeed           = 0.02
	DefaultBoostDelta          = 0.01
)

// Params holds the tuning constants of a race.
type Params struct {
	MinSpeed            float64
	MaxSpeed            float64
	SpeedChangeInterval int
	RubberBandStrength  float64
	PerturbRange        float64
	LapsToWin           int
	BoostDelta          float64
}

func DefaultParams() Params {
	return Params{
		MinSpeed:            DefaultMinSpeed,
		MaxSpeed:            DefaultMaxSpeed,
		SpeedChangeInterval: DefaultSpeedChangeInterval,
		RubberBandStrength:  DefaultRubberBandStrength,
		PerturbRange:        DefaultPerturbRange,
		LapsToWin:           DefaultLapsToWin,
		BoostDelta:          DefaultBoostDelta,
	}
}
