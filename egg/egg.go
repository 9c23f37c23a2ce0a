package egg

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Egg is the top level view of a PTDL_v2 egg document. Only the fields the
// tooling reads are mapped; everything else passes through the converter
// untouched. The schema itself belongs to the panel, not to this repository.
type Egg struct {
	Name        string `yaml:"name" json:"name"`
	Author      string `yaml:"author" json:"author"`
	Description string `yaml:"description" json:"description"`

	// DockerImages maps a user facing label to the runtime image tag used
	// for the server container.
	DockerImages map[string]string `yaml:"docker_images" json:"docker_images"`

	// Startup is the command template with {{VARIABLE}} placeholders.
	Startup string `yaml:"startup" json:"startup"`

	Variables []Variable `yaml:"variables" json:"variables"`
}

// Variable is a user facing egg variable with its panel validation rules.
type Variable struct {
	Name         string `yaml:"name" json:"name"`
	Description  string `yaml:"description" json:"description"`
	EnvVariable  string `yaml:"env_variable" json:"env_variable"`
	DefaultValue string `yaml:"default_value" json:"default_value"`
	UserViewable bool   `yaml:"user_viewable" json:"user_viewable"`
	UserEditable bool   `yaml:"user_editable" json:"user_editable"`
	Rules        string `yaml:"rules" json:"rules"`
}

// LoadFromDisk reads an egg document from either of the repository formats.
// JSON eggs parse through the same decoder, JSON being a YAML subset.
func LoadFromDisk(path string) (*Egg, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	e := &Egg{}
	if err := yaml.Unmarshal(f, e); err != nil {
		return nil, err
	}

	return e, nil
}
