package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/finnegancarroll/graphdrift/internal/frame"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Topology     string             `json:"topology"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	CrossSeconds float64            `json:"cross_seconds"`
	Policy       string             `json:"policy"`
	Points       int                `json:"points"`
	Frames       int                `json:"frames"`
	Metrics      map[string]float64 `json:"metrics"`
}

// RunInfo describes the run being saved.
type RunInfo struct {
	Topology     string
	Seed         int64
	CrossSeconds float64
	Policy       string
}

// Save writes metadata.json and frames.csv for a recorded run and returns
// the run ID.
func (s *Store) Save(info RunInfo, result *frame.Result) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", info.Topology, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	points := 0
	if len(result.Records) > 0 {
		points = len(result.Records[0].Positions) / 2
	}

	meta := RunMetadata{
		ID:           runID,
		Topology:     info.Topology,
		Timestamp:    ts,
		Seed:         info.Seed,
		CrossSeconds: info.CrossSeconds,
		Policy:       info.Policy,
		Points:       points,
		Frames:       result.Frames,
		Metrics:      result.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if err := writeFramesFile(filepath.Join(runDir, framesFile), result.Records); err != nil {
		return "", err
	}
	return runID, nil
}

// writeFramesFile reports close errors too, since a full disk may only
// surface when the file is closed.
func writeFramesFile(path string, records []frame.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFramesCSV(file, records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteFramesCSV writes one row per record: frame, time, fps, x0, y0, ...
func WriteFramesCSV(out io.Writer, records []frame.Record) error {
	w := csv.NewWriter(out)

	if len(records) == 0 {
		w.Flush()
		return w.Error()
	}

	header := []string{"frame", "time", "fps"}
	for i := 0; i < len(records[0].Positions)/2; i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Frame),
			strconv.FormatFloat(rec.Time, 'f', 6, 64),
			strconv.FormatFloat(rec.FPS, 'f', 3, 64),
		}
		for _, val := range rec.Positions {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads the recorded frames of a run.
func (s *Store) LoadFrames(runID string) ([]frame.Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []frame.Record{}, nil
	}

	records := make([]frame.Record, 0, len(rows)-1)
	for line, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, line+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string) (frame.Record, error) {
	var rec frame.Record
	var err error

	if rec.Frame, err = strconv.Atoi(row[0]); err != nil {
		return rec, err
	}
	if rec.Time, err = strconv.ParseFloat(row[1], 64); err != nil {
		return rec, err
	}
	if rec.FPS, err = strconv.ParseFloat(row[2], 64); err != nil {
		return rec, err
	}

	rec.Positions = make([]float64, 0, len(row)-3)
	for _, field := range row[3:] {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return rec, err
		}
		rec.Positions = append(rec.Positions, val)
	}
	return rec, nil
}

// Series returns the x (axis 0) or y (axis 1) trajectory of one vertex.
func Series(records []frame.Record, vertex, axis int) []float64 {
	idx := vertex*2 + axis
	out := make([]float64, 0, len(records))
	for _, rec := range records {
		if idx < len(rec.Positions) {
			out = append(out, rec.Positions[idx])
		}
	}
	return out
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
