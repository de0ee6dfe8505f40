// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Repository report data model

package report

import (
	"bytes"
	"encoding/json"

	"github.com/sony-level/stackprobe/internal/scanner"
	"github.com/sony-level/stackprobe/internal/stacks"
)

// ServiceFinding is a detected backing service
type ServiceFinding = scanner.ServiceFinding

// ExistingDocker records containerization files already in the repository
type ExistingDocker = stacks.DockerArtifacts

// Report is the result of analyzing one repository.
// Runtime is nil when no classifier matched.
type Report struct {
	Path           string
	Name           string
	Runtime        stacks.Runtime
	Services       []ServiceFinding
	Ports          []int
	ExistingDocker ExistingDocker
}

// ErrorReport replaces the report when the input cannot be analyzed
type ErrorReport struct {
	Error string `json:"error" yaml:"error"`
}

// NewErrorReport wraps err in an error document
func NewErrorReport(err error) *ErrorReport {
	return &ErrorReport{Error: err.Error()}
}

// RuntimeKind returns the runtime name, or "" when none was detected
func (r *Report) RuntimeKind() string {
	if r.Runtime == nil {
		return ""
	}
	return r.Runtime.Kind()
}

// MarshalJSON writes the fields in a fixed order: path, name, runtime,
// services, ports, the runtime's own fields, existing_docker.
// Empty services and ports are written as [] rather than null.
func (r Report) MarshalJSON() ([]byte, error) {
	var kind any
	if r.Runtime != nil {
		kind = r.Runtime.Kind()
	}

	services := r.Services
	if services == nil {
		services = []ServiceFinding{}
	}
	ports := r.Ports
	if ports == nil {
		ports = []int{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	fields := []struct {
		key   string
		value any
	}{
		{"path", r.Path},
		{"name", r.Name},
		{"runtime", kind},
		{"services", services},
		{"ports", ports},
	}
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeField(&buf, f.key, f.value); err != nil {
			return nil, err
		}
	}

	if r.Runtime != nil {
		inner, err := compactJSON(r.Runtime)
		if err != nil {
			return nil, err
		}
		// Splice the variant's fields into the top-level object
		if len(inner) > 2 {
			buf.WriteByte(',')
			buf.Write(inner[1 : len(inner)-1])
		}
	}

	buf.WriteByte(',')
	if err := writeField(&buf, "existing_docker", r.ExistingDocker); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key string, value any) error {
	k, err := compactJSON(key)
	if err != nil {
		return err
	}
	v, err := compactJSON(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// compactJSON encodes v on a single line without HTML escaping
func compactJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
