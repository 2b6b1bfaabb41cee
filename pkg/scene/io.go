package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// MarshalScene converts a scene to pretty-printed JSON bytes.
func MarshalScene(s *Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeSceneTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSceneFile writes a scene to a file. Files ending in .toml are
// encoded as TOML; everything else as JSON, mirroring [ReadSceneFile].
// The file is created with 0644 permissions.
func WriteSceneFile(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.NewEncoder(f).Encode(s); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return nil
	}
	return writeSceneTo(s, f)
}

// WriteScene writes a scene as JSON to an io.Writer.
func WriteScene(s *Scene, w io.Writer) error {
	return writeSceneTo(s, w)
}

// ReadScene decodes a JSON scene from an io.Reader and validates it.
func ReadScene(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadSceneFile reads a scenario file and returns the validated scene.
// Files ending in .toml are parsed as TOML; everything else as JSON.
func ReadSceneFile(path string) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return readTOMLFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadScene(f)
}

// UnmarshalScene deserializes JSON bytes to a validated scene.
func UnmarshalScene(data []byte) (*Scene, error) {
	return ReadScene(bytes.NewReader(data))
}

func writeSceneTo(s *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readTOMLFile(path string) (*Scene, error) {
	var s Scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
