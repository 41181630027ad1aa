package gaudio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// GUIAudioWorker owns the process-wide audio context and every player the
// game uses. All sounds are generated, no audio assets. A nil worker (or a
// worker whose context failed) degrades silently: game logic proceeds,
// sounds simply do not play.
type GUIAudioWorker struct {
	ctx  *audio.Context
	mute bool

	drone        *audio.Player
	droneStarted bool

	snapPCM  []byte
	solvePCM []byte
}

func NewGUIAudioWorker(mute bool) *GUIAudioWorker {
	aw := &GUIAudioWorker{mute: mute}

	defer func() {
		// an unusable audio device must not kill the game
		if r := recover(); r != nil {
			aw.ctx = nil
		}
	}()
	aw.ctx = audio.NewContext(sampleRate)
	aw.snapPCM = tonePCM(880, 0.07, 0.5)
	// short rising arpeggio for the solve
	aw.solvePCM = append(aw.solvePCM, tonePCM(523.25, 0.12, 0.45)...) // C5
	aw.solvePCM = append(aw.solvePCM, tonePCM(659.25, 0.12, 0.45)...) // E5
	aw.solvePCM = append(aw.solvePCM, tonePCM(783.99, 0.12, 0.45)...) // G5
	aw.solvePCM = append(aw.solvePCM, tonePCM(1046.5, 0.28, 0.5)...)  // C6
	return aw
}

func (aw *GUIAudioWorker) Muted() bool { return aw.mute }

func (aw *GUIAudioWorker) SetMuted(m bool) {
	aw.mute = m
	if aw.drone == nil {
		return
	}
	if m {
		aw.drone.Pause()
	} else {
		aw.drone.Play()
	}
}

// StartAmbient starts the background drone. Called on the first pointer
// interaction inside the play scene, repeated calls are no-ops.
func (aw *GUIAudioWorker) StartAmbient() {
	if aw.ctx == nil || aw.droneStarted {
		return
	}
	aw.droneStarted = true

	p, err := aw.ctx.NewPlayer(newDroneStream())
	if err != nil {
		return
	}
	p.SetVolume(0.18)
	aw.drone = p
	if !aw.mute {
		p.Play()
	}
}

// PlaySnap is the placement click.
func (aw *GUIAudioWorker) PlaySnap() {
	if aw.ctx == nil || aw.mute {
		return
	}
	aw.ctx.NewPlayerFromBytes(aw.snapPCM).Play()
}

// PlaySolved is the completion melody.
func (aw *GUIAudioWorker) PlaySolved() {
	if aw.ctx == nil || aw.mute {
		return
	}
	aw.ctx.NewPlayerFromBytes(aw.solvePCM).Play()
}

// Close tears the drone down so no player outlives the board across
// sessions.
func (aw *GUIAudioWorker) Close() {
	if aw.drone != nil {
		aw.drone.Close()
		aw.drone = nil
		aw.droneStarted = false
	}
}

// tonePCM renders a sine tone as 16-bit LE stereo with a short
// attack/release envelope so snaps do not click.
func tonePCM(freq, dur, vol float64) []byte {
	n := int(dur * sampleRate)
	b := make([]byte, n*4)
	attack := int(0.005 * sampleRate)
	release := int(0.03 * sampleRate)
	for i := 0; i < n; i++ {
		env := 1.0
		if i < attack {
			env = float64(i) / float64(attack)
		} else if n-i < release {
			env = float64(n-i) / float64(release)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * vol * env
		s := int16(v * math.MaxInt16)
		b[i*4] = byte(s)
		b[i*4+1] = byte(s >> 8)
		b[i*4+2] = byte(s)
		b[i*4+3] = byte(s >> 8)
	}
	return b
}

// droneStream generates the ambient pad on the fly: two detuned low sines
// under a slow amplitude swell. Infinite reader, never errors.
type droneStream struct {
	pos int64
}

func newDroneStream() *droneStream {
	return &droneStream{}
}

func (s *droneStream) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		t := float64(s.pos) / sampleRate
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*0.05*t)
		v := (math.Sin(2*math.Pi*110*t) + math.Sin(2*math.Pi*110.7*t)) / 2
		sample := int16(v * swell * 0.5 * math.MaxInt16)
		p[i*4] = byte(sample)
		p[i*4+1] = byte(sample >> 8)
		p[i*4+2] = byte(sample)
		p[i*4+3] = byte(sample >> 8)
		s.pos++
	}
	return n * 4, nil
}
