package shell

import (
	"os"
	"strings"
)

// Environment reads process environment variables, trimming surrounding
// whitespace from their values.
type Environment struct {
	lookup func(key string) (string, bool)
}

func NewEnvironment() *Environment {
	return &Environment{lookup: os.LookupEnv}
}

func (this *Environment) LookupEnv(key string) (value string, set bool) {
	value, set = this.lookup(key)
	return strings.TrimSpace(value), set
}
