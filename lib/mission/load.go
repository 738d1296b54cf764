// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package mission

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/tidwall/jsonc"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/orbitdeck/missions/lib/codec"
)

// Format identifies the encoding of a dataset payload.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
)

// Compression identifies the outer compression of a dataset file.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Dataset is a validated, immutable collection of missions.
type Dataset struct {
	// Missions in file order. Filtering preserves this order, and
	// stable sorts break ties by it.
	Missions []Mission

	// Digest is the hex BLAKE3-256 of the decompressed payload.
	Digest string

	// Path is the file the dataset was loaded from, empty for
	// datasets built in memory.
	Path string

	index map[string]int
}

// document is the wrapped on-disk layout: {"missions": [...]}.
type document struct {
	Missions []Mission `json:"missions" yaml:"missions"`
}

// NewDataset validates missions and builds a Dataset. IDs must be
// non-empty and unique. Non-finite costs are normalized to unknown.
// The digest is left empty; [Parse] fills it from the raw payload.
func NewDataset(missions []Mission) (*Dataset, error) {
	normalized := make([]Mission, len(missions))
	index := make(map[string]int, len(missions))
	for position, entry := range missions {
		if entry.ID == "" {
			return nil, fmt.Errorf("mission %d: missing id field", position)
		}
		if previous, exists := index[entry.ID]; exists {
			return nil, fmt.Errorf("mission %d: duplicate id %q (first seen at mission %d)", position, entry.ID, previous)
		}
		if entry.Cost != nil && !entry.HasCost() {
			entry.Cost = nil
		}
		if entry.Crew != nil {
			entry.Crew = append([]string(nil), entry.Crew...)
		}
		normalized[position] = entry
		index[entry.ID] = position
	}
	return &Dataset{Missions: normalized, index: index}, nil
}

// Get returns the mission with the given ID.
func (dataset *Dataset) Get(id string) (Mission, bool) {
	position, exists := dataset.index[id]
	if !exists {
		return Mission{}, false
	}
	return dataset.Missions[position], true
}

// Len returns the number of missions.
func (dataset *Dataset) Len() int {
	return len(dataset.Missions)
}

// FormatFromPath infers the payload format and outer compression from
// a file name. "missions.yaml.zst" is YAML compressed with zstd.
func FormatFromPath(path string) (Format, Compression, error) {
	name := strings.ToLower(filepath.Base(path))

	compression := CompressionNone
	switch {
	case strings.HasSuffix(name, ".zst"):
		compression = CompressionZstd
		name = strings.TrimSuffix(name, ".zst")
	case strings.HasSuffix(name, ".lz4"):
		compression = CompressionLZ4
		name = strings.TrimSuffix(name, ".lz4")
	}

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compression, nil
	case ".jsonc":
		return FormatJSONC, compression, nil
	case ".yaml", ".yml":
		return FormatYAML, compression, nil
	case ".cbor":
		return FormatCBOR, compression, nil
	default:
		return "", "", fmt.Errorf("unrecognized dataset extension in %q (expected .json, .jsonc, .yaml, .yml, or .cbor)", filepath.Base(path))
	}
}

// Load reads, decompresses, decodes, and validates a dataset file.
func Load(path string) (*Dataset, error) {
	format, compression, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	payload, err := Decompress(raw, compression)
	if err != nil {
		return nil, fmt.Errorf("decompress dataset %s: %w", filepath.Base(path), err)
	}

	dataset, err := Parse(payload, format)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", filepath.Base(path), err)
	}
	dataset.Path = path
	return dataset, nil
}

// Decompress undoes the outer compression of a dataset file.
func Decompress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		return decoder.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unknown compression %q", compression)
	}
}

// Parse decodes an uncompressed payload in the given format.
func Parse(payload []byte, format Format) (*Dataset, error) {
	missions, err := decode(payload, format)
	if err != nil {
		return nil, err
	}

	dataset, err := NewDataset(missions)
	if err != nil {
		return nil, err
	}
	dataset.Digest = Digest(payload)
	return dataset, nil
}

// Digest returns the hex BLAKE3-256 of a payload.
func Digest(payload []byte) string {
	sum := blake3.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func decode(payload []byte, format Format) ([]Mission, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(payload)
	case FormatJSONC:
		return decodeJSON(jsonc.ToJSON(payload))
	case FormatYAML:
		return decodeYAML(payload)
	case FormatCBOR:
		return decodeCBOR(payload)
	default:
		return nil, fmt.Errorf("unknown dataset format %q", format)
	}
}

func decodeJSON(payload []byte) ([]Mission, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var missions []Mission
		if err := json.Unmarshal(trimmed, &missions); err != nil {
			return nil, err
		}
		return missions, nil
	}
	var wrapped document
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Missions, nil
}

func decodeYAML(payload []byte) ([]Mission, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(payload, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	body := root.Content[0]
	if body.Kind == yaml.SequenceNode {
		var missions []Mission
		if err := body.Decode(&missions); err != nil {
			return nil, err
		}
		return missions, nil
	}
	var wrapped document
	if err := body.Decode(&wrapped); err != nil {
		return nil, err
	}
	return wrapped.Missions, nil
}

func decodeCBOR(payload []byte) ([]Mission, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	if codec.IsArray(payload) {
		var missions []Mission
		if err := codec.Unmarshal(payload, &missions); err != nil {
			return nil, err
		}
		return missions, nil
	}
	var wrapped document
	if err := codec.Unmarshal(payload, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Missions, nil
}
