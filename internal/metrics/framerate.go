package metrics

import "github.com/finnegancarroll/graphdrift/internal/frame"

type MeanFPS struct {
	name    string
	sum     float64
	samples int
}

func NewMeanFPS() *MeanFPS {
	return &MeanFPS{
		name: "mean_fps",
	}
}

func (m *MeanFPS) Name() string {
	return m.name
}

func (m *MeanFPS) Observe(s frame.Sample) {
	m.sum += s.FPS
	m.samples++
}

func (m *MeanFPS) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanFPS) Reset() {
	m.sum = 0
	m.samples = 0
}
