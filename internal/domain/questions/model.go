package questions

import "time"

// Question es una pregunta o síntoma que el cuidador deja para el paciente.
type Question struct {
	ID          string
	CaregiverID string
	Text        string
	CreatedAt   time.Time
}

var quickChips = []string{"발열", "기침", "호흡곤란", "식욕저하", "수면", "복약 누락"}

// QuickChips son los atajos de síntomas frecuentes.
func QuickChips() []string {
	out := make([]string, len(quickChips))
	copy(out, quickChips)
	return out
}
