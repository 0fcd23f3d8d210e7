// Package store persists analysis runs: per-run directories holding JSON
// metadata and the orbit as CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/phaseline/internal/dynamo"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved analysis run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Map       string             `json:"map"`
	Param     float64            `json:"param"`
	X0        float64            `json:"x0"`
	Steps     int                `json:"steps"`
	XTol      float64            `json:"xtol"`
	MaxIter   int                `json:"maxiter"`
	Timestamp time.Time          `json:"timestamp"`
	Results   map[string]float64 `json:"results,omitempty"`
}

// Save writes a run directory containing metadata.json and orbit.csv and
// returns the run id.
func (s *Store) Save(meta RunMetadata, orbit dynamo.Orbit) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Map, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return "", err
	}
	if err := metaFile.Close(); err != nil {
		return "", err
	}

	orbitFile, err := os.Create(filepath.Join(runDir, "orbit.csv"))
	if err != nil {
		return "", err
	}
	defer orbitFile.Close()

	w := csv.NewWriter(orbitFile)
	if err := w.Write([]string{"t", "x"}); err != nil {
		return "", err
	}
	for t, x := range orbit {
		row := []string{
			strconv.Itoa(t),
			strconv.FormatFloat(x, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()

	return runID, w.Error()
}

// Load reads the metadata of a saved run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadOrbit reads a saved orbit back from its CSV.
func (s *Store) LoadOrbit(runID string) (dynamo.Orbit, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "orbit.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	orbit := make(dynamo.Orbit, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("malformed orbit row %d in %s", i, runID)
		}
		x, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		orbit = append(orbit, x)
	}
	return orbit, nil
}

// List returns the metadata of every saved run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip corrupt run dirs
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
