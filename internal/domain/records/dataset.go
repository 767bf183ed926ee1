package records

var knownHospitals = []HospitalMeta{
	{ID: HospitalSNUH, Name: "서울대병원"},
	{ID: HospitalAMC, Name: "아산병원"},
}

// dataset se construye una sola vez al iniciar el proceso y nunca se modifica.
var dataset = []HospitalRecord{
	{
		ID:           "AMC-2025-09-01-001",
		HospitalID:   HospitalAMC,
		HospitalName: "아산병원",
		VisitDate:    MustParseDate("2025-09-01"),
		Department:   "순환기내과",
		Doctor:       "박의사",
		Diagnosis:    []string{"고혈압"},
		Medications:  []string{"암로디핀 5mg"},
		Notes:        "혈압 가정 모니터링 권장(아침/저녁). 2주 뒤 외래 추적.",
		Vitals:       vitals("142/90", 88, 36.9),
		Attachments:  []Attachment{{Kind: AttachmentDocument, Name: "심전도_결과.pdf"}},
	},
	{
		ID:           "SNUH-2025-08-31-001",
		HospitalID:   HospitalSNUH,
		HospitalName: "서울대병원",
		VisitDate:    MustParseDate("2025-08-31"),
		Department:   "호흡기내과",
		Doctor:       "김의사",
		Diagnosis:    []string{"상기도 감염", "기침"},
		Medications:  []string{"아세트아미노펜 500mg", "덱스트로메토르판 시럽"},
		Notes:        "야간 기침 증가. 3일 후 증상 지속 시 재내원.",
		Vitals:       vitals("122/78", 82, 37.3),
		Attachments:  []Attachment{{Kind: AttachmentDocument, Name: "진료확인서.pdf"}},
	},
	{
		ID:           "SNUH-2025-07-12-002",
		HospitalID:   HospitalSNUH,
		HospitalName: "서울대병원",
		VisitDate:    MustParseDate("2025-07-12"),
		Department:   "가정의학과",
		Doctor:       "이의사",
		Diagnosis:    []string{"위염 의심"},
		Medications:  []string{"에소메프라졸 20mg"},
		Notes:        "식사 조절 및 자극적 음식 제한. 복약 순응도 체크 필요.",
		Vitals:       vitals("118/76", 76, 36.8),
	},
	{
		ID:           "AMC-2025-06-21-003",
		HospitalID:   HospitalAMC,
		HospitalName: "아산병원",
		VisitDate:    MustParseDate("2025-06-21"),
		Department:   "정형외과",
		Doctor:       "최의사",
		Diagnosis:    []string{"무릎 통증"},
		Medications:  []string{"이부프로펜 200mg", "파스"},
		Notes:        "운동 전 스트레칭 및 얼음찜질. 필요 시 물리치료 권장.",
		Vitals:       vitals("124/80", 74, 36.6),
	},
	{
		ID:           "SNUH-2025-05-05-004",
		HospitalID:   HospitalSNUH,
		HospitalName: "서울대병원",
		VisitDate:    MustParseDate("2025-05-05"),
		Department:   "안과",
		Doctor:       "정의사",
		Diagnosis:    []string{"안구건조증"},
		Medications:  []string{"인공눈물 점안액"},
		Notes:        "화면 사용 시 20-20-20 룰 안내. 실내 습도 유지.",
	},
	{
		ID:           "AMC-2025-04-10-005",
		HospitalID:   HospitalAMC,
		HospitalName: "아산병원",
		VisitDate:    MustParseDate("2025-04-10"),
		Department:   "이비인후과",
		Doctor:       "한의사",
		Diagnosis:    []string{"알레르기 비염"},
		Medications:  []string{"로라타딘 10mg"},
		Notes:        "꽃가루 농도 높은 날 외출 시 마스크 착용.",
	},
}

// Dataset devuelve una copia del dataset estático.
func Dataset() []HospitalRecord {
	out := make([]HospitalRecord, 0, len(dataset))
	for _, r := range dataset {
		out = append(out, r.Clone())
	}
	return out
}

// Hospitals devuelve la lista fija de hospitales conocidos.
func Hospitals() []HospitalMeta {
	out := make([]HospitalMeta, len(knownHospitals))
	copy(out, knownHospitals)
	return out
}

// HospitalName resuelve el nombre de un hospital conocido.
func HospitalName(id HospitalID) (string, bool) {
	for _, h := range knownHospitals {
		if h.ID == id {
			return h.Name, true
		}
	}
	return "", false
}

func vitals(bp string, hr int, temp float64) *Vitals {
	return &Vitals{BloodPressure: &bp, HeartRate: &hr, Temperature: &temp}
}
