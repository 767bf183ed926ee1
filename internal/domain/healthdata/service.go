package healthdata

type Service struct {
	gen *Generator
}

func NewService(gen *Generator) *Service {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Service{gen: gen}
}

// Chart es todo lo que necesita la pantalla de datos de salud para un indicador.
type Chart struct {
	Range   Range
	Metric  Metric
	Points  []Point
	Summary Summary
	Scale   Scale
	Text    string
}

func (s *Service) Chart(r Range, m Metric) Chart {
	points := s.gen.Series(r)
	sum := Summarize(points, m)
	return Chart{
		Range:   r,
		Metric:  m,
		Points:  points,
		Summary: sum,
		Scale:   ScaleFor(m),
		Text:    SummaryText(r, m, sum),
	}
}

func (s *Service) Today() Status {
	return Today()
}
