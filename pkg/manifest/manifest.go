// Package manifest loads declarative contract manifests: YAML documents that
// declare interfaces and the candidate types implementing them.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"iface/iface-go/pkg/sig"
)

// MemberSpec describes one member entry of an interface or type body.
type MemberSpec struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind,omitempty"`
	Signature string `yaml:"signature,omitempty"`
	Default   bool   `yaml:"default,omitempty"`
}

// InterfaceSpec describes one interface declaration.
type InterfaceSpec struct {
	Name    string       `yaml:"name"`
	Doc     string       `yaml:"doc,omitempty"`
	Members []MemberSpec `yaml:"members"`
}

// TypeSpec describes one candidate type declaration. Bases must name types
// declared earlier in the manifest.
type TypeSpec struct {
	Name       string       `yaml:"name"`
	Doc        string       `yaml:"doc,omitempty"`
	Implements []string     `yaml:"implements,omitempty"`
	Bases      []string     `yaml:"bases,omitempty"`
	Members    []MemberSpec `yaml:"members,omitempty"`
}

// Manifest represents the parsed contents of a contracts.yml document.
type Manifest struct {
	Path       string          `yaml:"-"`
	Interfaces []InterfaceSpec `yaml:"interfaces"`
	Types      []TypeSpec      `yaml:"types"`
}

// ValidationError aggregates manifest validation failures so every issue is
// reported from one pass.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid document"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest: reading %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "manifest: decoding yaml")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

var memberKinds = map[string]bool{
	"":                true,
	"function":        true,
	"type function":   true,
	"static function": true,
	"property":        true,
}

func (m *Manifest) validate() error {
	var issues []string
	report := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	seenIfaces := make(map[string]bool)
	for idx, spec := range m.Interfaces {
		label := spec.Name
		if label == "" {
			label = fmt.Sprintf("interfaces[%d]", idx)
			report("%s: interface requires a name", label)
		}
		if seenIfaces[spec.Name] {
			report("interface %s declared twice", spec.Name)
		}
		seenIfaces[spec.Name] = true
		if len(spec.Members) == 0 {
			report("interface %s declares no members", label)
		}
		validateMembers(label, spec.Members, report)
	}

	seenTypes := make(map[string]bool)
	for idx, spec := range m.Types {
		label := spec.Name
		if label == "" {
			label = fmt.Sprintf("types[%d]", idx)
			report("%s: type requires a name", label)
		}
		if seenTypes[spec.Name] {
			report("type %s declared twice", spec.Name)
		}
		seenTypes[spec.Name] = true
		for _, iface := range spec.Implements {
			if !seenIfaces[iface] {
				report("type %s implements unknown interface %s", label, iface)
			}
		}
		for _, base := range spec.Bases {
			if !seenTypes[base] {
				report("type %s extends %s, which is not declared earlier in the manifest", label, base)
			}
		}
		for _, member := range spec.Members {
			if member.Default {
				report("type %s member %s: only interface members may be defaults", label, member.Name)
			}
		}
		validateMembers(label, spec.Members, report)
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func validateMembers(owner string, members []MemberSpec, report func(string, ...any)) {
	seen := make(map[string]bool)
	for idx, member := range members {
		name := member.Name
		if name == "" {
			report("%s: members[%d] requires a name", owner, idx)
			continue
		}
		if seen[name] {
			report("%s declares member %s twice", owner, name)
		}
		seen[name] = true
		if !memberKinds[member.Kind] {
			report("%s member %s has unknown kind %q", owner, name, member.Kind)
		}
		if member.Kind == "property" {
			if member.Signature != "" {
				report("%s member %s: properties take no signature", owner, name)
			}
			continue
		}
		if member.Signature == "" {
			report("%s member %s requires a signature", owner, name)
			continue
		}
		if _, err := sig.Parse(member.Signature); err != nil {
			report("%s member %s: %v", owner, name, err)
		}
	}
}
