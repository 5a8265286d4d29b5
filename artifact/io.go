package artifact

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes an artifact to a JSON file.
func WriteJSON(a *Artifact, filename string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ReadJSON reads an artifact from a JSON file.
func ReadJSON(filename string) (*Artifact, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal artifact: %w", err)
	}
	return &a, nil
}

// ToJSON converts an artifact to an indented JSON string.
func ToJSON(a *Artifact) (string, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses an artifact from a JSON string.
func FromJSON(jsonStr string) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal([]byte(jsonStr), &a); err != nil {
		return nil, err
	}
	return &a, nil
}
