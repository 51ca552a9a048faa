package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RuleHandler manages an entity's system rules and lists learned overrides
type RuleHandler struct {
	rules  usecase.RuleUseCase
	logger coreport.Logger
}

// NewRuleHandler creates a new rule handler instance
func NewRuleHandler(rules usecase.RuleUseCase, logger coreport.Logger) *RuleHandler {
	return &RuleHandler{rules: rules, logger: logger}
}

// ListRules handles GET /entities/:entityId/rules
func (h *RuleHandler) ListRules(c *gin.Context) {
	rules, err := h.rules.ListRules(c.Request.Context(), c.Param("entityId"))
	if err != nil {
		respondError(c, h.logger, "list_rules", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRules(rules))
}

// CreateRule handles POST /entities/:entityId/rules
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	spec, err := req.Matcher.ToSpec()
	if err != nil {
		respondError(c, h.logger, "create_rule", err)
		return
	}

	rule, err := h.rules.CreateRule(c.Request.Context(), usecase.CreateRuleRequest{
		EntityID:            c.Param("entityId"),
		Priority:            req.Priority,
		Matcher:             spec,
		CategoryID:          req.CategoryID,
		CategoryCode:        req.CategoryCode,
		ExplanationTemplate: req.ExplanationTemplate,
		Enabled:             req.Enabled,
	})
	if err != nil {
		respondError(c, h.logger, "create_rule", err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromRule(rule))
}

// UpdateRule handles PATCH /entities/:entityId/rules/:ruleId
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	rule, err := h.rules.SetRuleEnabled(c.Request.Context(), c.Param("entityId"), c.Param("ruleId"), *req.Enabled)
	if err != nil {
		respondError(c, h.logger, "update_rule", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRule(rule))
}

// ListOverrideRules handles GET /entities/:entityId/override-rules
func (h *RuleHandler) ListOverrideRules(c *gin.Context) {
	rules, err := h.rules.ListOverrideRules(c.Request.Context(), c.Param("entityId"))
	if err != nil {
		respondError(c, h.logger, "list_override_rules", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOverrideRules(rules))
}
