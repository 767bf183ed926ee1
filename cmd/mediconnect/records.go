package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"mediconnect/internal/domain/records"

	"github.com/spf13/cobra"
)

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Consulta el historial de visitas incluido",
	}

	var (
		hospital string
		preset   string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista visitas por hospital y preset de fecha",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			return runRecordsList(cmd.OutOrStdout(), hospital, preset, time.Now().In(cfg.Location()))
		},
	}
	list.Flags().StringVar(&hospital, "hospital", string(records.AllHospitals), "ID de hospital o ALL")
	list.Flags().StringVar(&preset, "preset", string(records.DefaultPreset), "last_7_days, last_30_days, this_year, all_time")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Muestra una visita",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordsGet(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

type recordLine struct {
	ID          string   `json:"id"`
	Hospital    string   `json:"hospital"`
	VisitDate   string   `json:"visit_date"`
	DisplayDate string   `json:"display_date"`
	Department  string   `json:"department"`
	Doctor      string   `json:"doctor"`
	Diagnosis   []string `json:"diagnosis"`
	Medications []string `json:"medications,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

func toLine(rec records.HospitalRecord) recordLine {
	return recordLine{
		ID:          rec.ID,
		Hospital:    rec.HospitalName,
		VisitDate:   rec.VisitDate.String(),
		DisplayDate: records.FormatDisplayDate(rec.VisitDate),
		Department:  rec.Department,
		Doctor:      rec.Doctor,
		Diagnosis:   rec.Diagnosis,
		Medications: rec.Medications,
		Notes:       rec.Notes,
	}
}

func runRecordsList(w io.Writer, hospital, preset string, now time.Time) error {
	p, err := records.ParsePreset(preset)
	if err != nil {
		return err
	}
	items, err := records.ListRecords(records.Query{HospitalID: records.HospitalID(hospital), Preset: p}, now)
	if err != nil {
		return err
	}

	out := make([]recordLine, 0, len(items))
	for _, rec := range items {
		out = append(out, toLine(rec))
	}
	return printJSON(w, out)
}

func runRecordsGet(w io.Writer, id string) error {
	rec, ok := records.GetRecordByID(id)
	if !ok {
		return fmt.Errorf("record %q not found", id)
	}
	return printJSON(w, toLine(rec))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
