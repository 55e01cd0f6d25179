package app

import (
	"github.com/specialistvlad/porrinha/internal/registry"
	"github.com/specialistvlad/porrinha/modules/fixed"
	"github.com/specialistvlad/porrinha/modules/mean"
	"github.com/specialistvlad/porrinha/modules/random"
)

// coreModules is the definitive list of all player modules that are compiled
// into the porrinha binary.
var coreModules = []registry.Module{
	&fixed.Module{},
	&mean.Module{},
	&random.Module{},
}
