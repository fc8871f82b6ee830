package handlers

import (
	"petroflow/internal/config"
	"petroflow/internal/tenant"
	"petroflow/internal/theme"
	"petroflow/internal/theme/css"
)

// ThemeRuntime bundles the theme pipeline shared by the HTTP handlers: one
// validator, one stylesheet cache, one target document and the debounced
// variable batcher on top of it.
type ThemeRuntime struct {
	Validator *theme.Validator
	Composer  *tenant.Composer
	Document  *css.MemoryDocument
	Applier   *css.Applier
	Batcher   *css.Batcher
}

// NewThemeRuntime wires a complete pipeline from configuration.
func NewThemeRuntime(cfg config.ThemeConfig) *ThemeRuntime {
	validator := theme.NewValidator(theme.PolicyFromConfig(cfg))
	document := css.NewMemoryDocument()
	cache := css.NewCache(cfg.CacheTTL, cfg.CacheCapacity, cfg.CompressionMinBytes)

	return &ThemeRuntime{
		Validator: validator,
		Composer:  tenant.NewComposer(validator),
		Document:  document,
		Applier:   css.NewApplier(validator, cache, document),
		Batcher:   css.NewBatcher(document, cfg.BatchFlushDelay),
	}
}
