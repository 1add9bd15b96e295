package audio

// The looping theme: the first phrase of Korobeiniki on a square wave,
// generated sample by sample so no audio assets need shipping.

type note struct {
	freq  float64 // 0 is a rest
	beats float64
}

var themeNotes = []note{
	{659.26, 1}, {493.88, 0.5}, {523.25, 0.5}, {587.33, 1},
	{523.25, 0.5}, {493.88, 0.5}, {440.00, 1}, {440.00, 0.5},
	{523.25, 0.5}, {659.26, 1}, {587.33, 0.5}, {523.25, 0.5},
	{493.88, 1.5}, {523.25, 0.5}, {587.33, 1}, {659.26, 1},
	{523.25, 1}, {440.00, 1}, {440.00, 1}, {0, 1},
}

// theme is a beep.Streamer producing an endless square-wave rendition of the
// note table above.
type theme struct {
	volume float64

	idx   int
	pos   int
	phase float64
}

const samplesPerBeat = int(sampleRate) * 4 / 10 // 150 bpm

func newTheme(volume float64) *theme {
	return &theme{volume: volume}
}

func (t *theme) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n := themeNotes[t.idx]
		if t.pos >= int(n.beats*float64(samplesPerBeat)) {
			t.pos = 0
			t.phase = 0
			t.idx = (t.idx + 1) % len(themeNotes)
			n = themeNotes[t.idx]
		}
		v := 0.0
		if n.freq > 0 {
			t.phase += n.freq / float64(sampleRate)
			if t.phase >= 1 {
				t.phase -= 1
			}
			if t.phase < 0.5 {
				v = t.volume
			} else {
				v = -t.volume
			}
		}
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *theme) Err() error { return nil }
