package stats

// Reference constants: 25 readings give a reasonably stable altitude
// signal; 0.02 approximates a 2g upper bound on the acceleration
// implied by consecutive GPS speed readings.
const (
	DefaultAltitudeSmoothingFactor = 25
	DefaultMaxAcceleration         = 0.02
)

// Config tunes one TrackStatisticsUpdater. Passed explicitly; there is
// no process-wide preference state at this layer.
type Config struct {
	// Number of altitude readings in the smoothing window.
	AltitudeSmoothingFactor int
	// Speeds implying a per-second acceleration above this bound are
	// discarded as sensor glitches.
	MaxAcceleration float64
}

func DefaultConfig() Config {
	return Config{
		AltitudeSmoothingFactor: DefaultAltitudeSmoothingFactor,
		MaxAcceleration:         DefaultMaxAcceleration,
	}
}
