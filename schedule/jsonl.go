package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONL writes schedule entries as JSON Lines, one entry per line.
func WriteJSONL(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	for i, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("encode entry %d: %w", i, err)
		}
	}
	return nil
}

// WriteJSONLFile writes schedule entries to a JSONL file.
func WriteJSONLFile(filename string, entries []Entry) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if err := WriteJSONL(f, entries); err != nil {
		return err
	}
	return f.Close()
}

// ReadJSONL reads schedule entries from a JSONL stream.
func ReadJSONL(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	var entries []Entry
	for dec.More() {
		var entry Entry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("decode entry %d: %w", len(entries), err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
