package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest описывает пакет сравнений в YAML-файле
type Manifest struct {
	Pairs []ImagePair `yaml:"pairs"`
}

// ReadManifest читает список пар из YAML-файла
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	for i, pair := range manifest.Pairs {
		if pair.Reference == "" || pair.Current == "" {
			return nil, fmt.Errorf("manifest %s: pair %d has empty paths", path, i)
		}
	}
	return &manifest, nil
}

// WriteManifest сохраняет список пар в YAML-файл
func WriteManifest(manifest *Manifest, path string) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
