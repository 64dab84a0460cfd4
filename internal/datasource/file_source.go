package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yourusername/fight-predictor/internal/models"
)

const fileSourceName = "file"

// JSONFileSource reads a roster from a JSON array on disk.
type JSONFileSource struct {
	path string
}

// NewJSONFileSource creates a source reading path.
func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{path: path}
}

// Name returns the name of the data source
func (s *JSONFileSource) Name() string {
	return fileSourceName
}

// FetchFighters reads and decodes the whole file.
func (s *JSONFileSource) FetchFighters(ctx context.Context) ([]models.Fighter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewDataSourceError(fileSourceName, ErrCodeNotFound, fmt.Sprintf("roster file %s not found", s.path), err)
		}
		return nil, NewDataSourceError(fileSourceName, ErrCodeNetworkError, "failed to open roster file", err)
	}
	defer f.Close()

	return decodeRoster(fileSourceName, f)
}

func decodeRoster(source string, r io.Reader) ([]models.Fighter, error) {
	var fighters []models.Fighter
	if err := json.NewDecoder(r).Decode(&fighters); err != nil {
		return nil, NewDataSourceError(source, ErrCodeInvalidData, "failed to parse roster", err)
	}
	return fighters, nil
}
