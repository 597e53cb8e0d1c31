package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Conf is the construction-time configuration of the pipeline. All
// fields are read-only after loading; the pipeline holds no other
// state between calls.
type Conf struct {
	Log       Log       `yaml:"log"`
	App       App       `yaml:"app"`
	Cipher    Cipher    `yaml:"cipher"`
	Session   Session   `yaml:"session"`
	Transport Transport `yaml:"transport"`
	Network   Network   `yaml:"network"`
	Link      Link      `yaml:"link"`
}

// LoadFromFile reads, defaults and validates a YAML configuration.
func LoadFromFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var conf Conf

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return &conf, err
	}

	conf.setDefaults()
	if err := conf.validate(); err != nil {
		return &conf, err
	}

	return &conf, nil
}

// Default returns a configuration with every field at its default,
// for library callers that do not load a file.
func Default() *Conf {
	var conf Conf
	conf.setDefaults()
	if err := conf.validate(); err != nil {
		// Defaults are constants; they cannot fail validation.
		panic("conf: invalid defaults: " + err.Error())
	}
	return &conf
}

func (c *Conf) setDefaults() {
	c.Log.setDefaults()
	c.App.setDefaults()
	c.Cipher.setDefaults()
	c.Session.setDefaults()
	c.Transport.setDefaults()
	c.Network.setDefaults()
	c.Link.setDefaults()
}

func (c *Conf) validate() error {
	var allErrors []error

	allErrors = append(allErrors, c.Log.validate()...)
	allErrors = append(allErrors, c.App.validate()...)
	allErrors = append(allErrors, c.Cipher.validate()...)
	allErrors = append(allErrors, c.Session.validate()...)
	allErrors = append(allErrors, c.Transport.validate()...)
	allErrors = append(allErrors, c.Network.validate()...)
	allErrors = append(allErrors, c.Link.validate()...)

	return writeErr(allErrors)
}

func writeErr(allErrors []error) error {
	if len(allErrors) > 0 {
		var messages []string
		for _, err := range allErrors {
			messages = append(messages, err.Error())
		}
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(messages, "\n  - "))
	}
	return nil
}
