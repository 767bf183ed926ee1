package records

// HospitalID identifica un hospital. Es un string abierto: los hospitales
// conocidos están en Hospitals(), pero IDs desconocidos no son un error.
type HospitalID string

// AllHospitals es el comodín "todos los hospitales" del filtro de listado.
const AllHospitals HospitalID = "ALL"

const (
	HospitalSNUH HospitalID = "SNUH"
	HospitalAMC  HospitalID = "AMC"
)

// HospitalMeta describe un hospital conocido.
type HospitalMeta struct {
	ID   HospitalID
	Name string
}

// AttachmentKind define el tipo de adjunto de una visita.
// @Enum document, image
type AttachmentKind string

const (
	AttachmentDocument AttachmentKind = "document"
	AttachmentImage    AttachmentKind = "image"
)

type Attachment struct {
	Kind AttachmentKind
	Name string
}

// Vitals son los signos vitales tomados en la visita; cada campo es opcional.
type Vitals struct {
	BloodPressure *string  // "142/90"
	HeartRate     *int     // bpm
	Temperature   *float64 // °C
}

// HospitalRecord representa una visita hospitalaria (solo lectura).
type HospitalRecord struct {
	ID string

	HospitalID   HospitalID
	HospitalName string // copia del nombre al momento de la visita

	VisitDate Date

	Department string
	Doctor     string

	Diagnosis   []string
	Medications []string
	Notes       string

	Vitals      *Vitals
	Attachments []Attachment
}

// Clone devuelve una copia profunda; el dataset compartido nunca se entrega por referencia.
func (r HospitalRecord) Clone() HospitalRecord {
	out := r
	out.Diagnosis = cloneStrings(r.Diagnosis)
	out.Medications = cloneStrings(r.Medications)

	if r.Vitals != nil {
		v := Vitals{}
		if r.Vitals.BloodPressure != nil {
			bp := *r.Vitals.BloodPressure
			v.BloodPressure = &bp
		}
		if r.Vitals.HeartRate != nil {
			hr := *r.Vitals.HeartRate
			v.HeartRate = &hr
		}
		if r.Vitals.Temperature != nil {
			t := *r.Vitals.Temperature
			v.Temperature = &t
		}
		out.Vitals = &v
	}

	if r.Attachments != nil {
		out.Attachments = make([]Attachment, len(r.Attachments))
		copy(out.Attachments, r.Attachments)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
