package handler

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/coachhub/catalog/internal/handler/dto"
	"github.com/coachhub/catalog/internal/response"
	"github.com/coachhub/catalog/internal/service"
	"github.com/coachhub/catalog/internal/validation"
)

// CreditPackageHandler handles HTTP requests for credit packages.
type CreditPackageHandler struct {
	responder
	svc *service.CatalogService
}

// NewCreditPackageHandler creates a new CreditPackageHandler.
func NewCreditPackageHandler(svc *service.CatalogService, logger *slog.Logger) *CreditPackageHandler {
	return &CreditPackageHandler{
		responder: responder{logger: logger},
		svc:       svc,
	}
}

// List handles GET /api/credit-package.
func (h *CreditPackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.svc.ListCreditPackages(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	response.OK(w, dto.ToCreditPackageList(packages))
}

// Create handles POST /api/credit-package.
func (h *CreditPackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	fields, ok := validation.CreditPackage(payload)
	if !ok {
		h.invalidFields(w)
		return
	}

	pkg, err := h.svc.CreateCreditPackage(r.Context(), service.CreateCreditPackageInput{
		Name:         fields.Name,
		CreditAmount: int(fields.CreditAmount),
		Price:        decimal.NewFromFloat(fields.Price),
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.Info("credit_package_created",
		"id", pkg.ID,
		"credit_amount", pkg.CreditAmount,
	)

	response.OK(w, dto.ToCreditPackageResponse(pkg))
}

// Delete handles DELETE /api/credit-package/{id}.
func (h *CreditPackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if validation.IsNotValidID(id) {
		h.invalidID(w)
		return
	}

	if err := h.svc.DeleteCreditPackage(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.Info("credit_package_deleted", "id", id)
	response.OK(w, nil)
}
