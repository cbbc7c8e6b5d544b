package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/backup.schema.json
var backupSchemaBytes []byte

var (
	backupSchema *jsonschema.Schema
	schemaOnce   sync.Once
	schemaErr    error
	printer      = message.NewPrinter(language.English)
)

// getBackupSchema compiles the embedded backup schema once.
func getBackupSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(backupSchemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshaling backup schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("backup.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		backupSchema, schemaErr = c.Compile("backup.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compiling backup schema: %w", schemaErr)
		}
	})
	return backupSchema, schemaErr
}

// Backup serializes every entry as a flat JSON object mapping normalized
// path to preference code, pretty-printed with 4-space indentation, and
// overwrites destination.
func (s *Store) Backup(destination string) error {
	entries, err := s.ReadAll()
	if err != nil {
		return err
	}
	doc := make(map[string]int, len(entries))
	for _, e := range entries {
		doc[e.Path] = e.Preference.Code()
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(destination, data, 0644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// Restore replaces the store contents with the mapping read from source.
// The document is validated before any mutation, so an invalid file leaves
// the store untouched. The replace itself is delete-all-then-repopulate
// and is not transactional: a write failure partway through leaves the
// store partially restored.
func (s *Store) Restore(source string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}
	doc, err := parseBackup(data)
	if err != nil {
		return err
	}

	entries, err := s.ReadAll()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := s.Delete(e.Path); err != nil {
			return err
		}
	}
	for path, code := range doc {
		if err := s.SetPreference(path, FromCode(code)); err != nil {
			return err
		}
	}
	return nil
}

// parseBackup validates raw bytes against the backup schema and decodes
// the path-to-code mapping.
func parseBackup(data []byte) (map[string]int, error) {
	schema, err := getBackupSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBackup, validationMessage(ve))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var doc map[string]int
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return doc, nil
}

// validationMessage renders the first leaf issue of a validation error.
func validationMessage(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.ErrorKind == nil {
		return ve.Error()
	}
	msg := ve.ErrorKind.LocalizedString(printer)
	if len(ve.InstanceLocation) > 0 {
		return "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
	}
	return msg
}
