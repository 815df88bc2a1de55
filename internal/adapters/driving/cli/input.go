package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

// readJSON decodes a JSON file into v, rejecting unknown fields so a
// misspelt key is reported rather than silently dropped.
func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func readSnapshot(path string) (*domain.InspectionSnapshot, error) {
	var s domain.InspectionSnapshot
	if err := readJSON(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func readJob(path string) (domain.JobMeta, error) {
	var j domain.JobMeta
	err := readJSON(path, &j)
	return j, err
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
