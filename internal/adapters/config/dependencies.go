package config

import (
	"errors"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// dependencyNode accepts either a bare source string or an object entry.
type dependencyNode struct {
	dep domain.Dependency
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *dependencyNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var source string
		if err := value.Decode(&source); err != nil {
			return err
		}
		if source == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidDependency, "empty source"), "line", value.Line)
		}
		n.dep = domain.NewDependency(source)
	case yaml.MappingNode:
		var entry dependencyEntry
		if err := value.Decode(&entry); err != nil {
			return err
		}
		if entry.Source == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidDependency, "missing source"), "line", value.Line)
		}
		n.dep = domain.Dependency{
			Source:                 entry.Source,
			RootIsCustomComponents: entry.RootIsCustomComponents,
			Include:                entry.Include,
			Assets:                 entry.Assets,
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidDependency, "expected a source or an object"), "line", value.Line)
	}
	return nil
}

func decodeDependencies(data []byte) (*domain.Dependencies, error) {
	var file dependenciesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		if errors.Is(err, domain.ErrInvalidDependency) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}

	deps := domain.NewOrderedMap[domain.Dependency]()
	for _, n := range file.Dependencies {
		deps.Set(n.dep.Source, n.dep)
	}
	return deps, nil
}

// encodeDependencies renders deps in minimal form: a bare string unless an
// advanced field is set.
func encodeDependencies(deps *domain.Dependencies) *yaml.Node {
	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if deps != nil {
		for _, dep := range deps.All() {
			list.Content = append(list.Content, encodeDependency(dep))
		}
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	root.Content = append(root.Content, stringNode(fieldDependencies), list)
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}

func encodeDependency(dep domain.Dependency) *yaml.Node {
	if !dep.IsAdvanced() {
		return stringNode(dep.Source)
	}

	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content, stringNode(fieldSource), stringNode(dep.Source))
	if dep.RootIsCustomComponents {
		m.Content = append(m.Content, stringNode(fieldRootIsCustomComponents), boolNode(true))
	}
	if dep.Include != nil {
		m.Content = append(m.Content, stringNode(fieldInclude), stringsNode(dep.Include))
	}
	if dep.Assets != nil {
		m.Content = append(m.Content, stringNode(fieldAssets), stringsNode(dep.Assets))
	}
	return m
}

func stringNode(s string) *yaml.Node {
	n := &yaml.Node{}
	n.SetString(s)
	return n
}

func boolNode(b bool) *yaml.Node {
	v := "false"
	if b {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

func stringsNode(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range items {
		n.Content = append(n.Content, stringNode(s))
	}
	return n
}
