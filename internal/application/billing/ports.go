package billing

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/document"
)

// DocumentPDFGenerator renderiza un documento de venta (factura o recibo) a PDF.
// Lo implementa infrastructure/pdf.MarotoPDFGenerator.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc document.Document) ([]byte, error)
}
