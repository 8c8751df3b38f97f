package handler

import (
	"log/slog"
	"net/http"

	"github.com/coachhub/catalog/internal/handler/dto"
	"github.com/coachhub/catalog/internal/response"
	"github.com/coachhub/catalog/internal/service"
	"github.com/coachhub/catalog/internal/validation"
)

// SkillHandler handles HTTP requests for coach skills.
type SkillHandler struct {
	responder
	svc *service.CatalogService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(svc *service.CatalogService, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{
		responder: responder{logger: logger},
		svc:       svc,
	}
}

// List handles GET /api/coaches/skill.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.ListSkills(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	response.OK(w, dto.ToSkillList(skills))
}

// Create handles POST /api/coaches/skill.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	fields, ok := validation.Skill(payload)
	if !ok {
		h.invalidFields(w)
		return
	}

	skill, err := h.svc.CreateSkill(r.Context(), fields.Name)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.Info("skill_created", "id", skill.ID)
	response.OK(w, dto.ToSkillResponse(skill))
}

// Delete handles DELETE /api/coaches/skill/{id}.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if validation.IsNotValidID(id) {
		h.invalidID(w)
		return
	}

	if err := h.svc.DeleteSkill(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.Info("skill_deleted", "id", id)
	response.OK(w, nil)
}
