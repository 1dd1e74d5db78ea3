package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"invoice-manifest/internal/domain"
)

// ReplayAnalyzer implements the DocumentAnalyzer interface by returning analyze results
// previously saved from the field-extraction service, one JSON file per document.
type ReplayAnalyzer struct {
	dir string
}

// NewReplayAnalyzer creates an analyzer reading results from dir.
func NewReplayAnalyzer(dir string) *ReplayAnalyzer {
	return &ReplayAnalyzer{dir: dir}
}

// analyzeResponse accepts both the bare result and the service's response envelope.
type analyzeResponse struct {
	Status        string                `json:"status"`
	AnalyzeResult *domain.AnalyzeResult `json:"analyzeResult"`
}

// AnalyzeDocument loads <dir>/<name without extension>.json. content is not inspected.
func (a *ReplayAnalyzer) AnalyzeDocument(ctx context.Context, modelID, name string, content []byte) (*domain.AnalyzeResult, error) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	path := filepath.Join(a.dir, base+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ExtractionError(fmt.Sprintf("no saved analyze result for %s", name), err)
	}

	var envelope analyzeResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, domain.ParseError(fmt.Sprintf("could not parse analyze result %s", path), err)
	}

	result := envelope.AnalyzeResult
	if result != nil {
		if envelope.Status != "" && envelope.Status != "succeeded" {
			return nil, domain.ExtractionError(fmt.Sprintf("analysis of %s ended with status %q", name, envelope.Status), nil)
		}
	} else {
		result = &domain.AnalyzeResult{}
		if err := json.Unmarshal(data, result); err != nil {
			return nil, domain.ParseError(fmt.Sprintf("could not parse analyze result %s", path), err)
		}
	}

	if result.ModelID != "" && modelID != "" && result.ModelID != modelID {
		return nil, domain.ExtractionError(fmt.Sprintf("analyze result for %s was produced by model %s, want %s", name, result.ModelID, modelID), nil)
	}
	return result, nil
}
