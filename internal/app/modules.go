package app

import (
	"github.com/inferlab/infergraph/internal/registry"
	"github.com/inferlab/infergraph/modules/concat"
	"github.com/inferlab/infergraph/modules/delay"
	"github.com/inferlab/infergraph/modules/env"
	"github.com/inferlab/infergraph/modules/template"
)

// coreModules is the default set of op modules registered when the caller
// does not inject its own.
var coreModules = []registry.Module{
	&concat.Module{},
	&delay.Module{},
	&env.Module{},
	&template.Module{},
}
