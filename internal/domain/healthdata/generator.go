package healthdata

import (
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
)

// Generator produce series de prueba mientras no haya dispositivos conectados.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator usa src como fuente; nil usa una fuente aleatoria del proceso.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rnd: rand.New(src)}
}

// Series genera un punto por día del rango:
// temp 36.4–37.3, hr 65–85, sleep 6.0–8.5, med 85–100.
func (g *Generator) Series(r Range) []Point {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := r.Points()
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		label := strconv.Itoa(i + 1)
		if r != RangeMonth {
			label = "D" + label
		}
		out = append(out, Point{
			Label:       label,
			Temperature: round1(36.4 + g.rnd.Float64()*0.9),
			HeartRate:   int(math.Round(65 + g.rnd.Float64()*20)),
			Sleep:       round1(6 + g.rnd.Float64()*2.5),
			Medication:  int(math.Round(85 + g.rnd.Float64()*15)),
		})
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
