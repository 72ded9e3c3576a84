package config

import (
	"errors"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func decodeLocks(data []byte) (*domain.LockedDependencies, error) {
	locks := domain.NewOrderedMap[domain.LockedDependency]()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(domain.ErrLockParseFailed, err)
	}
	if len(doc.Content) == 0 {
		return locks, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return locks, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockParseFailed, "expected a mapping of sources"), "line", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var source string
		if err := keyNode.Decode(&source); err != nil {
			return nil, errors.Join(domain.ErrLockParseFailed, err)
		}

		var entry lockEntry
		if err := valueNode.Decode(&entry); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrLockParseFailed, err), "source", source)
		}
		if entry.Version == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockParseFailed, "missing version"), "source", source)
		}
		typ, err := domain.ParseDependencyType(entry.Type)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrLockParseFailed, err), "source", source)
		}

		locks.Set(source, domain.LockedDependency{
			Source:     source,
			Version:    entry.Version,
			IsRelease:  entry.IsRelease,
			Type:       typ,
			Components: entry.Components,
		})
	}

	return locks, nil
}

// encodeLocks renders locks with is_release omitted when false and components
// omitted when nil. An empty components list is kept.
func encodeLocks(locks *domain.LockedDependencies) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if locks != nil {
		for source, lock := range locks.All() {
			entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			entry.Content = append(entry.Content,
				stringNode(fieldVersion), stringNode(lock.Version),
				stringNode(fieldType), stringNode(lock.Type.String()),
			)
			if lock.IsRelease {
				entry.Content = append(entry.Content, stringNode(fieldIsRelease), boolNode(true))
			}
			if lock.Components != nil {
				entry.Content = append(entry.Content, stringNode(fieldComponents), stringsNode(lock.Components))
			}
			root.Content = append(root.Content, stringNode(source), entry)
		}
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}
