// Package catalog loads the job posting catalog from its tabular source.
// The catalog is re-read on every recommendation call: the file is small, the
// parse is cheap, and re-reading picks up external edits without a restart.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Job is a single posting from the catalog. RequiredSkills preserves the
// catalog's order, duplicates included.
type Job struct {
	ID              string
	Title           string
	Company         string
	Location        string
	ExperienceLevel string
	SalaryRange     string
	RequiredSkills  []string
	Description     string
}

// LoadError indicates the catalog file is absent, unreadable or has no usable
// header. Callers surface it as a service-unavailable condition.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load job catalog %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

var requiredColumns = []string{
	"job_id", "title", "company", "location",
	"experience_level", "salary_range", "skills_required", "description",
}

// Load reads the job catalog CSV. Columns are resolved by header name.
// Rows missing a required column are skipped rather than failing the whole
// load; skipped counts are returned so callers can log them.
func Load(path string) ([]Job, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &LoadError{Path: path, Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // row length is validated per row below

	header, err := reader.Read()
	if err != nil {
		return nil, 0, &LoadError{Path: path, Cause: fmt.Errorf("reading header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, 0, &LoadError{Path: path, Cause: fmt.Errorf("missing column %q", col)}
		}
	}

	var jobs []Job
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if !rowComplete(row, index) {
			skipped++
			continue
		}

		jobs = append(jobs, Job{
			ID:              row[index["job_id"]],
			Title:           row[index["title"]],
			Company:         row[index["company"]],
			Location:        row[index["location"]],
			ExperienceLevel: row[index["experience_level"]],
			SalaryRange:     row[index["salary_range"]],
			RequiredSkills:  splitSkills(row[index["skills_required"]]),
			Description:     row[index["description"]],
		})
	}

	return jobs, skipped, nil
}

// rowComplete reports whether the row is long enough to carry every required
// column.
func rowComplete(row []string, index map[string]int) bool {
	for _, i := range index {
		if i >= len(row) {
			return false
		}
	}
	return true
}

// splitSkills splits the pipe-delimited required-skills column, trimming
// whitespace around each entry. Order and duplicates are preserved.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, "|")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
