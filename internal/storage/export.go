package storage

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type ExportData struct {
	RunMetadata
	Population []int `json:"population"`
}

// ExportJSON writes a run's metadata and population into a single file.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	population, err := s.LoadPopulation(runID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(ExportData{RunMetadata: *meta, Population: population}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[ExportJSON] failed to marshal")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "[ExportJSON] failed to write %s", path)
}
