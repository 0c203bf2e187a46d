package orchestrator

import (
	"log"
	"strings"

	"video-planner/beats"
	"video-planner/config"
	"video-planner/selector"
	"video-planner/shots"
	"video-planner/supervisor"
)

// Resolve wires a concrete implementation behind each stage contract. A stage
// listed in disable_enhanced routes to its legacy variant and the supervisor
// records the fallback; in strict mode that is fatal.
func Resolve(cfg *config.Config, sup *supervisor.Supervisor) (supervisor.CapabilityContext, error) {
	caps := supervisor.CapabilityContext{Supervisor: sup}

	if cfg.EnhancedDisabled("beats") {
		if err := sup.RecordFallback("beats", supervisor.ReasonExplicitOverride); err != nil {
			return caps, err
		}
		caps.Beats = beats.NewLegacy(cfg)
	} else {
		caps.Beats = beats.New(cfg)
	}

	if cfg.EnhancedDisabled("shots") {
		if err := sup.RecordFallback("shots", supervisor.ReasonExplicitOverride); err != nil {
			return caps, err
		}
		caps.Shots = shots.NewLegacy(cfg)
	} else {
		caps.Shots = shots.New(cfg)
	}

	return caps, nil
}

// resolveCatalog loads the configured capability catalog. A missing or
// malformed file degrades to the built-in snapshot rather than blocking
// startup, unless strict mode is on.
func resolveCatalog(cfg *config.Config, sup *supervisor.Supervisor) (selector.Catalog, error) {
	if cfg.Selector.CatalogPath == "" {
		return selector.DefaultCatalog(), nil
	}

	cat, err := selector.LoadCatalog(cfg.Selector.CatalogPath)
	if err != nil {
		reason := supervisor.ReasonComponentMissing
		if strings.Contains(err.Error(), "schema version") {
			reason = supervisor.ReasonVersionMismatch
		}
		if ferr := sup.RecordFallback("selector", reason); ferr != nil {
			return selector.Catalog{}, ferr
		}
		log.Printf("[orchestrator] catalog %s unusable (%v), using built-in catalog",
			cfg.Selector.CatalogPath, err)
		return selector.DefaultCatalog(), nil
	}
	return cat, nil
}
