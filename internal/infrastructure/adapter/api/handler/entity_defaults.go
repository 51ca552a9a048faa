package handler

import (
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

// EntityDefaults seeds an entity's default rules on its first request
type EntityDefaults struct {
	rules  usecase.RuleUseCase
	logger coreport.Logger
}

// NewEntityDefaults creates the seeding middleware holder
func NewEntityDefaults(rules usecase.RuleUseCase, logger coreport.Logger) *EntityDefaults {
	return &EntityDefaults{rules: rules, logger: logger}
}

// Ensure runs before every /entities/:entityId route
func (h *EntityDefaults) Ensure(c *gin.Context) {
	if err := h.rules.EnsureDefaultRules(c.Request.Context(), c.Param("entityId")); err != nil {
		respondError(c, h.logger, "ensure_default_rules", err)
		c.Abort()
		return
	}
	c.Next()
}
