package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mediconnect/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

// Columnas JSONB: listas y signos vitales se guardan como documentos.
type vitalsDoc struct {
	BloodPressure *string  `json:"bp,omitempty"`
	HeartRate     *int     `json:"hr,omitempty"`
	Temperature   *float64 `json:"temp,omitempty"`
}

type attachmentDoc struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

const recordColumns = `
	id, hospital_id, hospital_name,
	visit_date, department, doctor,
	diagnosis, medications, notes,
	vitals, attachments`

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.HospitalRecord, error) {
	if id == "" {
		return records.HospitalRecord{}, records.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT`+recordColumns+`
		FROM hospital_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.HospitalRecord{}, records.ErrNotFound
		}
		return records.HospitalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) ListByHospital(ctx context.Context, hospitalID records.HospitalID) ([]records.HospitalRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if hospitalID == records.AllHospitals {
		rows, err = r.db.QueryContext(ctx, `SELECT`+recordColumns+`
			FROM hospital_records
			ORDER BY visit_date DESC, id ASC
		`)
	} else {
		rows, err = r.db.QueryContext(ctx, `SELECT`+recordColumns+`
			FROM hospital_records
			WHERE hospital_id = $1
			ORDER BY visit_date DESC, id ASC
		`, string(hospitalID))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.HospitalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) Hospitals(ctx context.Context) ([]records.HospitalMeta, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM hospitals
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.HospitalMeta, 0)
	for rows.Next() {
		var h records.HospitalMeta
		var id string
		if err := rows.Scan(&id, &h.Name); err != nil {
			return nil, err
		}
		h.ID = records.HospitalID(id)
		out = append(out, h)
	}
	return out, rows.Err()
}

// UpsertHospital la usa el comando seed.
func (r *RecordsRepo) UpsertHospital(ctx context.Context, h records.HospitalMeta, position int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hospitals (id, name, position)
		VALUES ($1,$2,$3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position
	`, string(h.ID), h.Name, position)
	return err
}

// Insert guarda una visita; si el ID ya existe no hace nada (las visitas no se modifican).
// Devuelve inserted=false en ese caso.
func (r *RecordsRepo) Insert(ctx context.Context, rec records.HospitalRecord) (bool, error) {
	diagnosis, err := json.Marshal(nonNil(rec.Diagnosis))
	if err != nil {
		return false, fmt.Errorf("marshal diagnosis: %w", err)
	}
	medications, err := json.Marshal(nonNil(rec.Medications))
	if err != nil {
		return false, fmt.Errorf("marshal medications: %w", err)
	}
	vitals, err := marshalVitals(rec.Vitals)
	if err != nil {
		return false, err
	}
	attachments, err := marshalAttachments(rec.Attachments)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO hospital_records (`+recordColumns+`
		) VALUES ($1,$2,$3,$4::date,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO NOTHING
	`,
		rec.ID,
		string(rec.HospitalID),
		rec.HospitalName,
		rec.VisitDate.String(),
		rec.Department,
		rec.Doctor,
		diagnosis,
		medications,
		rec.Notes,
		vitals,
		attachments,
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (records.HospitalRecord, error) {
	var (
		rec                    records.HospitalRecord
		hospitalID             string
		visit                  time.Time
		diagnosis, medications []byte
		vitals, attachments    []byte
	)
	if err := s.Scan(
		&rec.ID,
		&hospitalID,
		&rec.HospitalName,
		&visit,
		&rec.Department,
		&rec.Doctor,
		&diagnosis,
		&medications,
		&rec.Notes,
		&vitals,
		&attachments,
	); err != nil {
		return records.HospitalRecord{}, err
	}

	rec.HospitalID = records.HospitalID(hospitalID)
	// visit_date es DATE; pgx lo devuelve como medianoche UTC
	rec.VisitDate = records.DateOf(visit.UTC())

	if err := unmarshalList(diagnosis, &rec.Diagnosis); err != nil {
		return records.HospitalRecord{}, fmt.Errorf("record %s diagnosis: %w", rec.ID, err)
	}
	if err := unmarshalList(medications, &rec.Medications); err != nil {
		return records.HospitalRecord{}, fmt.Errorf("record %s medications: %w", rec.ID, err)
	}

	if len(vitals) > 0 && string(vitals) != "null" {
		var v vitalsDoc
		if err := json.Unmarshal(vitals, &v); err != nil {
			return records.HospitalRecord{}, fmt.Errorf("record %s vitals: %w", rec.ID, err)
		}
		rec.Vitals = &records.Vitals{
			BloodPressure: v.BloodPressure,
			HeartRate:     v.HeartRate,
			Temperature:   v.Temperature,
		}
	}

	if len(attachments) > 0 && string(attachments) != "null" {
		var docs []attachmentDoc
		if err := json.Unmarshal(attachments, &docs); err != nil {
			return records.HospitalRecord{}, fmt.Errorf("record %s attachments: %w", rec.ID, err)
		}
		for _, d := range docs {
			rec.Attachments = append(rec.Attachments, records.Attachment{
				Kind: records.AttachmentKind(d.Type),
				Name: d.Name,
			})
		}
	}

	return rec, nil
}

func unmarshalList(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = []string{}
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}

func marshalVitals(v *records.Vitals) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(vitalsDoc{
		BloodPressure: v.BloodPressure,
		HeartRate:     v.HeartRate,
		Temperature:   v.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal vitals: %w", err)
	}
	return b, nil
}

func marshalAttachments(in []records.Attachment) ([]byte, error) {
	if len(in) == 0 {
		return nil, nil
	}
	docs := make([]attachmentDoc, 0, len(in))
	for _, a := range in {
		docs = append(docs, attachmentDoc{Type: string(a.Kind), Name: a.Name})
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal attachments: %w", err)
	}
	return b, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
