package registry

import (
	"fmt"

	"github.com/spf13/viper"

	"admin-command-console/internal/command/domain"
)

// catalogEntry is one shell-backed command in the YAML catalog:
//
//	commands:
//	  - name: vacuum-db
//	    usage: "vacuum-db [--full]  # reclaim dead rows"
//	    category: database
//	    shell: "psql $DATABASE_URL -c 'VACUUM'"
type catalogEntry struct {
	Name     string `mapstructure:"name"`
	Usage    string `mapstructure:"usage"`
	Category string `mapstructure:"category"`
	Shell    string `mapstructure:"shell"`
}

type catalog struct {
	Commands []catalogEntry `mapstructure:"commands"`
}

// LoadCatalog reads the YAML catalog at path and registers every entry.
// Entries missing a name or shell line fail the load; the server refuses to
// start with a half-usable catalog.
func (r *Registry) LoadCatalog(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var c catalog
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	for i, e := range c.Commands {
		if e.Name == "" {
			return fmt.Errorf("catalog: entry %d has no name", i)
		}
		if e.Shell == "" {
			return fmt.Errorf("catalog: command %q has no shell line", e.Name)
		}
		if err := r.Register(toDescriptor(e)); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}

func toDescriptor(e catalogEntry) domain.Descriptor {
	usage := e.Usage
	if usage == "" {
		usage = e.Name
	}
	return domain.Descriptor{
		Name:     e.Name,
		Usage:    usage,
		Category: e.Category,
		Shell:    e.Shell,
	}
}
