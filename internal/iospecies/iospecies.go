// Package iospecies loads the species registry from the config
// directory.
package iospecies

import (
	"os"

	"github.com/gnames/gngenes/pkg/config"
	"github.com/gnames/gngenes/pkg/species"
)

type iospecies struct {
	cfg *config.Config
}

func New(cfg *config.Config) species.Resolver {
	res := iospecies{cfg: cfg}
	return &res
}

func (s *iospecies) Load() (*species.Registry, error) {
	speciesPath := config.SpeciesFilePath(s.cfg.HomeDir)
	registry, err := loadRegistry(speciesPath)
	if err != nil {
		return nil, SpeciesRegistryError(speciesPath, err)
	}
	return registry, nil
}

func loadRegistry(path string) (*species.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return species.Parse(data)
}
