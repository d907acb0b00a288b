package tabula

import (
	"github.com/tabulaorm/tabula/config"
	"github.com/tabulaorm/tabula/query"
)

// softDeletePolicy decides whether a delete request is rewritten into a
// column update and computes the replacement value. It is read once at the
// model construction and stays immutable afterwards.
type softDeletePolicy struct {
	enabled   bool
	column    string
	timestamp bool
}

func newSoftDeletePolicy(cfg *config.SoftDelete) softDeletePolicy {
	if cfg == nil {
		return softDeletePolicy{}
	}
	return softDeletePolicy{
		enabled:   cfg.Enabled,
		column:    cfg.Column,
		timestamp: cfg.Value != "bool",
	}
}

// rewrite returns the update columns substituting the delete, or false when
// the delete passes through to the physical deletion. An empty column name
// with the policy enabled is not validated here - the execution layer
// surfaces it.
func (p softDeletePolicy) rewrite() (map[string]interface{}, bool) {
	if !p.enabled {
		return nil, false
	}
	if p.timestamp {
		return map[string]interface{}{p.column: query.CurrentTimestamp}, true
	}
	return map[string]interface{}{p.column: true}, true
}
