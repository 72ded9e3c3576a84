package config

// dependenciesFile is the top-level shape of hass-deps.yaml.
type dependenciesFile struct {
	Dependencies []dependencyNode `yaml:"dependencies"`
}

// dependencyEntry is the object form of a declared dependency.
// A missing list decodes as nil and an explicit [] as an empty slice.
type dependencyEntry struct {
	Source                 string   `yaml:"source"`
	RootIsCustomComponents bool     `yaml:"root_is_custom_components"`
	Include                []string `yaml:"include"`
	Assets                 []string `yaml:"assets"`
}

// lockEntry is a single record of hass-deps.lock.
type lockEntry struct {
	Version    string   `yaml:"version"`
	Type       string   `yaml:"type"`
	IsRelease  bool     `yaml:"is_release"`
	Components []string `yaml:"components"`
}

const (
	fieldDependencies           = "dependencies"
	fieldSource                 = "source"
	fieldRootIsCustomComponents = "root_is_custom_components"
	fieldInclude                = "include"
	fieldAssets                 = "assets"
	fieldVersion                = "version"
	fieldType                   = "type"
	fieldIsRelease              = "is_release"
	fieldComponents             = "components"
)
