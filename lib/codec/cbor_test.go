// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

type sampleRecord struct {
	ID   string   `json:"id"`
	Year int      `json:"year"`
	Crew []string `json:"crew,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{ID: "apollo-11", Year: 1969, Crew: []string{"Armstrong", "Aldrin", "Collins"}}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.ID != original.ID || decoded.Year != original.Year || len(decoded.Crew) != 3 {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{"b": 2, "a": 1, "c": []string{"x"}}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestJSONTagFallback(t *testing.T) {
	data, err := Marshal(sampleRecord{ID: "sts-1", Year: 1981})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["id"] != "sts-1" {
		t.Errorf("decoded[id] = %v, expected sts-1", decoded["id"])
	}
	if _, exists := decoded["crew"]; exists {
		t.Error("omitempty crew should not be encoded")
	}
}

func TestIsArray(t *testing.T) {
	list, err := Marshal([]sampleRecord{{ID: "a"}})
	if err != nil {
		t.Fatal(err)
	}
	document, err := Marshal(map[string]any{"missions": []sampleRecord{{ID: "a"}}})
	if err != nil {
		t.Fatal(err)
	}

	if !IsArray(list) {
		t.Error("IsArray(list) = false, expected true")
	}
	if IsArray(document) {
		t.Error("IsArray(map) = true, expected false")
	}
	if IsArray(nil) {
		t.Error("IsArray(nil) = true, expected false")
	}
}
