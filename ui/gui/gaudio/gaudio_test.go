package gaudio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTonePCMShape(t *testing.T) {
	b := tonePCM(440, 0.1, 0.5)
	require.Equal(t, int(0.1*sampleRate)*4, len(b))

	// stereo frames carry the same sample, amplitude stays within volume
	for i := 0; i < len(b); i += 4 {
		l := int16(binary.LittleEndian.Uint16(b[i:]))
		r := int16(binary.LittleEndian.Uint16(b[i+2:]))
		assert.Equal(t, l, r)
	}
	// envelope: starts and ends near silence
	first := int16(binary.LittleEndian.Uint16(b[0:]))
	last := int16(binary.LittleEndian.Uint16(b[len(b)-4:]))
	assert.Equal(t, int16(0), first)
	assert.InDelta(t, 0, float64(last), float64(math16(0.05)))
}

func TestDroneStreamFillsBuffer(t *testing.T) {
	s := newDroneStream()
	buf := make([]byte, 4096)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)

	// successive reads continue the waveform
	n2, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4096, n2)
	assert.Equal(t, int64(2048), s.pos)
}

func math16(frac float64) int16 {
	return int16(frac * 32767)
}
