package conf

import "fmt"

// App configures the application-layer request header.
type App struct {
	Host string `yaml:"host"`
	Path string `yaml:"path"`
}

func (a *App) setDefaults() {
	if a.Host == "" {
		a.Host = "example.com"
	}
	if a.Path == "" {
		a.Path = "/api/message"
	}
}

func (a *App) validate() []error {
	var errors []error

	if a.Path[0] != '/' {
		errors = append(errors, fmt.Errorf("app path must start with '/'"))
	}

	return errors
}
