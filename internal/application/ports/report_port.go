package ports

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// InventoryReportGenerator define el puerto de salida para el reporte de inventario.
// La implementación concreta usa Maroto (PDF); para tests se puede inyectar un mock.
type InventoryReportGenerator interface {
	// GenerateInventoryReport devuelve los bytes del documento.
	GenerateInventoryReport(
		ctx context.Context,
		stats entity.InventoryStats,
		products []entity.Product,
	) ([]byte, error)
}
