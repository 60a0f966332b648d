// Package configfile persists triangulate.Settings as YAML, a dedicated
// serializable struct separate from the live settings, so CLI tools and
// batch jobs can externalize tuning without recompiling.
package configfile

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trimesh2d/cdt/preprocess"
	"github.com/trimesh2d/cdt/triangulate"
)

// File is the serializable form of triangulate.Settings. Field names are
// spelled out in snake_case for the YAML surface.
type File struct {
	Preprocessor         string  `yaml:"preprocessor"`
	AutoHolesAndBoundary bool    `yaml:"auto_holes_and_boundary"`
	RestoreBoundary      bool    `yaml:"restore_boundary"`
	ConstrainBoundary    bool    `yaml:"constrain_boundary"`
	RefineMesh           bool    `yaml:"refine_mesh"`
	ValidateInput        bool    `yaml:"validate_input"`
	CollectDiagnostics   bool    `yaml:"collect_diagnostics"`
	SloanMaxIters        int     `yaml:"sloan_max_iters"`
	RefinementArea       float64 `yaml:"refinement_area"`
	RefinementAngle      float64 `yaml:"refinement_angle_degrees"`
}

var preprocessorNames = map[preprocess.Kind]string{
	preprocess.None: "none",
	preprocess.COM:  "com",
	preprocess.PCA:  "pca",
}

var preprocessorKinds = map[string]preprocess.Kind{
	"none": preprocess.None,
	"com":  preprocess.COM,
	"pca":  preprocess.PCA,
	"":     preprocess.None,
}

// FromSettings captures s as a File, ready to be written out with Save.
func FromSettings(s triangulate.Settings) File {
	return File{
		Preprocessor:         preprocessorNames[s.Preprocessor],
		AutoHolesAndBoundary: s.AutoHolesAndBoundary,
		RestoreBoundary:      s.RestoreBoundary,
		ConstrainBoundary:    s.ConstrainBoundary,
		RefineMesh:           s.RefineMesh,
		ValidateInput:        s.ValidateInput,
		CollectDiagnostics:   s.CollectDiagnostics,
		SloanMaxIters:        s.SloanMaxIters,
		RefinementArea:       s.RefinementArea,
		RefinementAngle:      s.RefinementAngle * 180 / math.Pi,
	}
}

// ToOptions converts f into the triangulate.Option list Run expects.
func (f File) ToOptions() []triangulate.Option {
	return []triangulate.Option{
		triangulate.WithPreprocessor(preprocessorKinds[f.Preprocessor]),
		triangulate.WithAutoHolesAndBoundary(f.AutoHolesAndBoundary),
		triangulate.WithRestoreBoundary(f.RestoreBoundary),
		triangulate.WithConstrainBoundary(f.ConstrainBoundary),
		triangulate.WithRefineMesh(f.RefineMesh),
		triangulate.WithValidateInput(f.ValidateInput),
		triangulate.WithCollectDiagnostics(f.CollectDiagnostics),
		triangulate.WithSloanMaxIters(f.SloanMaxIters),
		triangulate.WithRefinementArea(f.RefinementArea),
		triangulate.WithRefinementAngle(f.RefinementAngle * math.Pi / 180),
	}
}

// Default returns the File form of triangulate's own defaults.
func Default() File {
	return File{
		Preprocessor:    "none",
		SloanMaxIters:   1_000_000,
		RefinementArea:  1,
		RefinementAngle: 5,
	}
}

// Load reads a settings file as YAML.
func Load(filename string) (File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return File{}, err
	}
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Save writes f to filename as YAML.
func Save(filename string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
