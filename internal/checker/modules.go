package checker

import (
	"github.com/funvibe/pyvet/internal/config"
	"github.com/funvibe/pyvet/internal/types"
)

// LoadModule returns the bindings table for an imported module. Imports are
// resolved against a fixed table; unknown modules import as empty.
func LoadModule(path string) map[string]types.ScopedType {
	bindings := make(map[string]types.ScopedType)
	switch path {
	case "sys":
		bindings["version_info"] = types.NewScoped(types.TTuple{Elements: []types.Type{
			types.TLiteral{Value: types.IntLiteral(int64(config.PythonVersionMajor))},
			types.TLiteral{Value: types.IntLiteral(int64(config.PythonVersionMinor))},
		}})
	case "typing":
		bindings["reveal_type"] = types.NewScoped(types.NewFunc(
			[]types.Type{types.Any}, []string{"obj"}, types.Any))
	}
	return bindings
}
