package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glabops/cli/models"
)

// ReadProjects reads project records from a header-mapped CSV file.
// Required columns: id, path_with_namespace, name. Optional columns:
// description, default_branch, visibility (defaults to "private"), web_url,
// topics (one comma-joined cell).
func ReadProjects(path string) ([]models.Project, error) {
	header, rows, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	for i, row := range rows {
		idStr := field(header, row, "id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid project id %q", i+2, idStr)
		}

		pathWithNamespace := field(header, row, "path_with_namespace")
		name := field(header, row, "name")
		if pathWithNamespace == "" || name == "" {
			return nil, fmt.Errorf("row %d: path_with_namespace and name are required", i+2)
		}

		visibility := field(header, row, "visibility")
		if visibility == "" {
			visibility = "private"
		}

		projects = append(projects, models.Project{
			ID:                id,
			PathWithNamespace: pathWithNamespace,
			Name:              name,
			Description:       field(header, row, "description"),
			DefaultBranch:     field(header, row, "default_branch"),
			Visibility:        visibility,
			WebURL:            field(header, row, "web_url"),
			Topics:            splitTopics(field(header, row, "topics")),
		})
	}

	return projects, nil
}

// ReadUsers reads user records from a header-mapped CSV file. Required
// columns: id, username, name. Optional: email. State is assumed active.
func ReadUsers(path string) ([]models.User, error) {
	header, rows, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	var users []models.User
	for i, row := range rows {
		idStr := field(header, row, "id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid user id %q", i+2, idStr)
		}

		username := field(header, row, "username")
		name := field(header, row, "name")
		if username == "" || name == "" {
			return nil, fmt.Errorf("row %d: username and name are required", i+2)
		}

		users = append(users, models.User{
			ID:       id,
			Username: username,
			Name:     name,
			State:    "active",
			Email:    field(header, row, "email"),
		})
	}

	return users, nil
}

func readRecords(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
	}
	if len(records) == 0 {
		return map[string]int{}, nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}

	return header, records[1:], nil
}

func field(header map[string]int, row []string, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitTopics(cell string) []string {
	var topics []string
	for _, t := range strings.Split(cell, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
