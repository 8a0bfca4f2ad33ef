package stats

// AltitudeBuffer smooths noisy absolute altitude readings with a
// moving average over the last N values, ring semantics.
type AltitudeBuffer struct {
	values []float64
	index  int
	count  int
}

func NewAltitudeBuffer(size int) *AltitudeBuffer {
	if size <= 0 {
		panic("altitude buffer size must be positive")
	}
	return &AltitudeBuffer{
		values: make([]float64, size),
		index:  0,
		count:  0,
	}
}

func (buffer *AltitudeBuffer) SetNext(altitude float64) {
	buffer.values[buffer.index] = altitude
	buffer.index = (buffer.index + 1) % len(buffer.values)
	if buffer.count < len(buffer.values) {
		buffer.count++
	}
}

// Average returns the mean of the stored readings; false if empty.
func (buffer *AltitudeBuffer) Average() (float64, bool) {
	if buffer.count == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range buffer.values[:buffer.count] {
		sum += v
	}
	return sum / float64(buffer.count), true
}

// Reset drops all stored readings so averaging cannot blend across a
// segment boundary.
func (buffer *AltitudeBuffer) Reset() {
	buffer.index = 0
	buffer.count = 0
}

func (buffer *AltitudeBuffer) Copy() *AltitudeBuffer {
	dup := &AltitudeBuffer{
		values: make([]float64, len(buffer.values)),
		index:  buffer.index,
		count:  buffer.count,
	}
	copy(dup.values, buffer.values)
	return dup
}
