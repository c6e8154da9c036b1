package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/lifesim/internal/config"
)

// ErrRunNotFound indicates a run id with no metadata on disk.
var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "[Init] failed to create %s", s.baseDir)
}

// RunMetadata summarises one finished run. Grid contents are never stored.
type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Config      config.Config      `json:"config"`
	Frames      int                `json:"frames"`
	Generations int                `json:"generations"`
	FinalLiving int                `json:"final_living"`
	Peak        int                `json:"peak"`
	State       string             `json:"state"`
	Period      float64            `json:"period,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes the metadata and the per-generation population of a run and
// returns the new run id.
func (s *Store) Save(meta RunMetadata, population []int) (string, error) {
	now := time.Now()
	if meta.Timestamp.IsZero() {
		meta.Timestamp = now
	}
	meta.ID = fmt.Sprintf("life_%d_%d", meta.Config.Seed, now.UnixNano())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "[Save] failed to create %s", runDir)
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", errors.Wrap(err, "[Save] failed to create metadata")
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", errors.Wrap(err, "[Save] failed to encode metadata")
	}

	csvFile, err := os.Create(filepath.Join(runDir, populationFile))
	if err != nil {
		return "", errors.Wrap(err, "[Save] failed to create population csv")
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"generation", "living"}); err != nil {
		return "", errors.Wrap(err, "[Save] failed to write header")
	}
	for gen, living := range population {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(living)}); err != nil {
			return "", errors.Wrap(err, "[Save] failed to write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "[Save] failed to flush population csv")
	}

	return meta.ID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrapf(err, "[List] failed to read %s", s.baseDir)
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRunNotFound, "%s", runID)
		}
		return nil, errors.Wrapf(err, "[Load] failed to read metadata for %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal metadata for %s", runID)
	}
	return &meta, nil
}

// LoadPopulation reads the per-generation living counts of a run.
func (s *Store) LoadPopulation(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRunNotFound, "%s", runID)
		}
		return nil, errors.Wrapf(err, "[LoadPopulation] failed to open %s", runID)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPopulation] failed to parse %s", runID)
	}

	population := make([]int, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		living, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		population = append(population, living)
	}
	return population, nil
}
