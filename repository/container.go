package repository

import (
	"github.com/tabulaorm/tabula/config"
	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
	"github.com/tabulaorm/tabula/log"
	"github.com/tabulaorm/tabula/query"
)

var ctr = newContainer()

// RegisterFactory registers provided Factory within the container.
func RegisterFactory(f Factory) error {
	log.Infof("Registering factory: '%s'", f.DriverName())
	return ctr.registerFactory(f)
}

// GetFactory gets the factory with given driver 'name'.
func GetFactory(name string) Factory {
	f, ok := ctr.factories[name]
	if ok {
		return f
	}
	return nil
}

// New creates a new query.Builder for the provided connection config using
// the factory registered under the config's driver name.
func New(cfg *config.Repository) (query.Builder, error) {
	f := GetFactory(cfg.DriverName)
	if f == nil {
		return nil, errors.Newf(class.RepositoryFactoryNotFound, "factory: '%s' not registered", cfg.DriverName)
	}
	return f.New(cfg)
}

// container stores the mapping between the driver names and their factories.
type container struct {
	factories map[string]Factory
}

func newContainer() *container {
	return &container{
		factories: map[string]Factory{},
	}
}

func (c *container) registerFactory(f Factory) error {
	name := f.DriverName()

	_, ok := c.factories[name]
	if ok {
		log.Debugf("Repository Factory: '%s' already registered", name)
		return errors.Newf(class.RepositoryFactoryAlreadyRegistered, "factory: '%s' already registered", name)
	}

	c.factories[name] = f

	log.Debugf("Repository Factory: '%s' registered successfully.", name)
	return nil
}
