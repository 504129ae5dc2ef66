// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// rawConfig is the YAML form of a Config. Pointer fields let the
// validator tell a missing field from a zero value.
type rawConfig struct {
	Module    *string `yaml:"sdram_module" validate:"required"`
	DataWidth *int    `yaml:"sdram_data_width" validate:"required,gt=0"`
	Length    *int    `yaml:"bist_length" validate:"required,gt=0"`
	Random    *bool   `yaml:"bist_random" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report YAML keys rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Load reads a YAML document mapping benchmark names to
// configurations, for example:
//
//	test-0:
//	  sdram_module: MT48LC16M16
//	  sdram_data_width: 32
//	  bist_length: 4096
//	  bist_random: false
//
// Every entry must give exactly the four configuration fields.
// The result is in document order.
func Load(r io.Reader) ([]Named, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raws map[string]rawConfig
	if err := dec.Decode(&raws); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	names, err := documentOrder(data)
	if err != nil {
		return nil, err
	}

	configs := make([]Named, 0, len(names))
	for _, name := range names {
		raw := raws[name]
		if err := validate.Struct(&raw); err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", name, validationError(err))
		}
		configs = append(configs, Named{
			Name: name,
			Config: Config{
				Module:    *raw.Module,
				DataWidth: *raw.DataWidth,
				Length:    *raw.Length,
				Random:    *raw.Random,
			},
		})
	}
	return configs, nil
}

// LoadFile is like Load, but reads the named file.
func LoadFile(path string) ([]Named, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	configs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return configs, nil
}

// documentOrder returns the top-level keys of the YAML mapping in
// data, in the order they are written.
func documentOrder(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of benchmark names", m.Line)
	}
	var names []string
	for i := 0; i+1 < len(m.Content); i += 2 {
		names = append(names, m.Content[i].Value)
	}
	return names, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Tag() == "required" {
			msgs[i] = fmt.Sprintf("missing field %s", fe.Field())
		} else {
			msgs[i] = fmt.Sprintf("field %s must be %s %s", fe.Field(), fe.Tag(), fe.Param())
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
