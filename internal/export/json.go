package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/trace"
)

// Document is the JSON form of one traced run.
type Document struct {
	ID        string             `json:"id"`
	Algorithm algorithms.ID      `json:"algorithm"`
	Name      string             `json:"name,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	Input     trace.Array        `json:"input"`
	Converged bool               `json:"converged"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Frames    trace.Trace        `json:"frames"`
}

func NewDocument(r *experiment.Result) Document {
	doc := Document{
		ID:        uuid.NewString(),
		Algorithm: r.Algorithm,
		CreatedAt: time.Now().UTC(),
		Input:     r.Input,
		Converged: r.Converged,
		Metrics:   r.Metrics,
		Frames:    r.Trace,
	}
	if d, err := algorithms.Lookup(r.Algorithm); err == nil {
		doc.Name = d.Name
	}
	return doc
}

func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, err
	}
	if _, err := uuid.Parse(doc.ID); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func ExportJSON(path string, r *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, NewDocument(r))
}

func ExportJSONStdout(r *experiment.Result) error {
	return WriteJSON(os.Stdout, NewDocument(r))
}
