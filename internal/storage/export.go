package storage

import (
	"encoding/json"
	"io"

	"github.com/finnegancarroll/graphdrift/internal/frame"
)

type ExportData struct {
	RunMetadata
	Records []frame.Record `json:"records"`
}

// ExportJSON writes a run's metadata and frames as one JSON document.
func (s *Store) ExportJSON(out io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	records, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Records: records})
}

// ExportCSV copies a run's frames.csv to out.
func (s *Store) ExportCSV(out io.Writer, runID string) error {
	records, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	return WriteFramesCSV(out, records)
}
