package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// uploadField campo multipart que recibe el archivo de pedidos.
const uploadField = "file"

// UploadView carga de pedidos de venta desde la exportación de la plataforma.
type UploadView struct {
	api     BackendAPI
	metrics *metrics.Metrics
}

// NewUploadView construye la vista.
func NewUploadView(deps ViewDeps) *UploadView {
	return &UploadView{api: deps.API, metrics: deps.Metrics}
}

// Handle
//
//	GET  /upload  → descripción del formulario
//	POST /upload  → reenvía el archivo del campo "file" a POST /sales/upload
func (v *UploadView) Handle(c *fiber.Ctx) error {
	if len(subPath(c)) > 0 {
		return notFound(c)
	}
	switch c.Method() {
	case fiber.MethodGet:
		return page(c, ViewUpload, dto.UploadDTO{Field: uploadField, Action: "/upload"})
	case fiber.MethodPost:
		return v.upload(c)
	default:
		return methodNotAllowed(c)
	}
}

func (v *UploadView) upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FORM", Message: "se requiere el archivo en el campo \"" + uploadField + "\"",
		})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORM", Message: err.Error()})
	}
	defer f.Close()

	form := backend.NewFormData().AddFile(uploadField, fh.Filename, f)
	resp, err := v.api.UploadSalesOrder(c.UserContext(), form)
	if err != nil {
		return backendError(c, ViewUpload, v.metrics, err)
	}
	return relay(c, resp)
}
