package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

func sampleResult(t *testing.T) *experiment.Result {
	t.Helper()
	input := trace.FromValues([]int{5, 3, 8, 1})
	tr, err := algorithms.Trace(algorithms.BubbleID, input)
	if err != nil {
		t.Fatal(err)
	}
	return &experiment.Result{
		Algorithm: algorithms.BubbleID,
		Input:     input,
		Trace:     tr,
		Metrics:   metrics.Collect(tr, metrics.Standard()...),
		Converged: tr.Converged(),
	}
}

func TestJSONRoundTrip(t *testing.T) {
	r := sampleResult(t)
	doc := NewDocument(r)

	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Fatalf("document id is not a uuid: %v", err)
	}
	if doc.Name != "Bubble Sort" {
		t.Errorf("expected name Bubble Sort, got %q", doc.Name)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"state": "comparing"`) {
		t.Error("expected lowercase state names in output")
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.ID != doc.ID || len(got.Frames) != len(doc.Frames) {
		t.Errorf("round trip mismatch: %s/%d vs %s/%d", got.ID, len(got.Frames), doc.ID, len(doc.Frames))
	}
	if got.Frames[len(got.Frames)-1].Description != trace.CompleteDescription {
		t.Error("final frame lost its description")
	}
}

func TestReadJSON_BadID(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"id":"nope","frames":[]}`)); err == nil {
		t.Error("expected error for invalid id")
	}
}

func TestWriteCSV(t *testing.T) {
	r := sampleResult(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, r.Trace); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv unreadable: %v", err)
	}
	if len(rows) != len(r.Trace)+1 {
		t.Fatalf("expected %d rows, got %d", len(r.Trace)+1, len(rows))
	}
	last := rows[len(rows)-1]
	if last[4] != "1 3 5 8" || last[5] != "sorted sorted sorted sorted" {
		t.Errorf("unexpected final row %v", last)
	}
}

func TestFrameToSVG(t *testing.T) {
	f := trace.Frame{
		Array: trace.Array{
			{Value: 10, State: trace.Comparing},
			{Value: 5, State: trace.Sorted},
		},
		Description: "a < b & c",
	}
	svg := FrameToSVG(f, 200, 100)

	if strings.Count(svg, "<rect") != 3 {
		t.Errorf("expected background plus two bars:\n%s", svg)
	}
	if !strings.Contains(svg, StateColors[trace.Comparing]) || !strings.Contains(svg, StateColors[trace.Sorted]) {
		t.Error("missing state colors")
	}
	if !strings.Contains(svg, "a &lt; b &amp; c") {
		t.Error("description not escaped")
	}
}

func TestCountersToSVG(t *testing.T) {
	r := sampleResult(t)
	svg := CountersToSVG(r.Trace, 300, 100)
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected two paths:\n%s", svg)
	}
	if CountersToSVG(r.Trace[:1], 300, 100) != "" {
		t.Error("expected empty output for a single frame")
	}
}
