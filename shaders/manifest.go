package shaders

import (
	"errors"
	"fmt"
	"os"

	"github.com/bloeys/nshader/logging"
	"github.com/pelletier/go-toml/v2"
)

// Manifest lists programs to load into a collection. In TOML:
//
//	[[program]]
//	name = "basic"
//	file = "shaders/basic"        # basic.vert + basic.frag
//
//	[[program]]
//	name = "tinted"
//	vertex = "shaders/basic.vert"
//	fragment = "shaders/tinted.frag"
//
//	[[program]]
//	name = "lit"
//	combined = "shaders/lit.glsl"
type Manifest struct {
	Programs []ManifestProgram `toml:"program"`
}

type ManifestProgram struct {
	Name     string `toml:"name"`
	File     string `toml:"file"`
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Combined string `toml:"combined"`
}

func (mp *ManifestProgram) validate() error {

	if mp.Name == "" {
		return errors.New("program entry has no name")
	}

	sourceCount := 0
	if mp.File != "" {
		sourceCount++
	}
	if mp.Vertex != "" || mp.Fragment != "" {
		if mp.Vertex == "" || mp.Fragment == "" {
			return fmt.Errorf("program '%s' must set both 'vertex' and 'fragment'", mp.Name)
		}
		sourceCount++
	}
	if mp.Combined != "" {
		sourceCount++
	}

	if sourceCount != 1 {
		return fmt.Errorf("program '%s' must set exactly one of 'file', 'vertex'+'fragment' or 'combined'", mp.Name)
	}

	return nil
}

func ParseManifest(data []byte) (Manifest, error) {

	m := Manifest{}
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse shader manifest: %w", err)
	}

	for i := 0; i < len(m.Programs); i++ {
		if err := m.Programs[i].validate(); err != nil {
			return Manifest{}, err
		}
	}

	return m, nil
}

// LoadManifest reads a TOML manifest and loads every program it lists.
// Loading stops at the first file error. Compile/link failures don't stop it and are
// reported in the returned names of invalid programs.
func (sc *ShaderCollection) LoadManifest(manifestPath string) (invalid []string, err error) {

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	return sc.LoadFromManifest(m)
}

func (sc *ShaderCollection) LoadFromManifest(m Manifest) (invalid []string, err error) {

	for i := 0; i < len(m.Programs); i++ {

		mp := &m.Programs[i]

		var sp *ShaderProgram
		switch {
		case mp.File != "":
			sp, err = sc.LoadProgram(mp.Name, mp.File)
		case mp.Combined != "":
			sp, err = sc.LoadCombinedProgram(mp.Name, mp.Combined)
		default:
			sp, err = sc.LoadProgram(mp.Name, mp.Vertex, mp.Fragment)
		}

		if err != nil {
			return invalid, fmt.Errorf("failed to load shader program '%s': %w", mp.Name, err)
		}

		if !sp.IsValid {
			logging.ErrLog.Printf("Shader program '%s' is invalid. Err: %s\n", mp.Name, sp.ErrorString)
			invalid = append(invalid, mp.Name)
		}
	}

	return invalid, nil
}
