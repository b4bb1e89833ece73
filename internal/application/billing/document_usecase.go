// Package billing arma y renderiza los documentos de venta (factura y recibo).
package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/document"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/currency"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// DocumentUseCase compone la factura o el recibo de una venta y genera su PDF.
type DocumentUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    DocumentPDFGenerator
	currency     currency.Currency
	log          *logger.Logger
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
// cur vacío usa NGN; log nil descarta.
func NewDocumentUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator DocumentPDFGenerator,
	cur currency.Currency,
	log *logger.Logger,
) *DocumentUseCase {
	if cur.Code == "" {
		cur = currency.NGN
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
		currency:     cur,
		log:          log.Component("billing"),
	}
}

// Compose carga la venta con sus líneas, cliente y nombres de producto y arma el documento.
//
// Retorna:
//   - domain.ErrNotFound si la venta o su cliente no existen.
//   - domain.ErrInvalidInput si kind no es invoice ni receipt.
func (uc *DocumentUseCase) Compose(ctx context.Context, saleID, kind string) (*document.Document, error) {
	k, err := document.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	// ── 1. Cargar venta ───────────────────────────────────────────────────────
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("billing: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	// ── 2. Cargar cliente ─────────────────────────────────────────────────────
	customer, err := uc.customerRepo.GetByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("billing: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s de la venta %s", domain.ErrNotFound, sale.CustomerID, sale.ID)
	}

	// ── 3. Cargar líneas + nombres de producto ────────────────────────────────
	lines, err := uc.saleRepo.GetLines(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("billing: obtener líneas: %w", err)
	}
	names := make(map[string]string, len(lines))
	for _, l := range lines {
		if _, ok := names[l.ProductID]; ok {
			continue
		}
		product, pErr := uc.productRepo.GetByID(ctx, l.ProductID)
		if pErr != nil {
			return nil, fmt.Errorf("billing: obtener producto: %w", pErr)
		}
		if product != nil {
			names[l.ProductID] = product.ProductName
		}
	}

	// ── 4. Componer ───────────────────────────────────────────────────────────
	doc := document.Compose(*sale, lines, *customer, document.Options{
		Kind:         k,
		ProductNames: names,
		Currency:     uc.currency,
	})
	return &doc, nil
}

// Document devuelve el documento listo para JSON.
func (uc *DocumentUseCase) Document(ctx context.Context, saleID, kind string) (*dto.DocumentDTO, error) {
	doc, err := uc.Compose(ctx, saleID, kind)
	if err != nil {
		return nil, err
	}
	out := documentDTO(*doc)
	return &out, nil
}

// PDF genera el PDF del documento.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *DocumentUseCase) PDF(ctx context.Context, saleID, kind string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.Compose(ctx, saleID, kind)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateDocumentPDF(ctx, *doc)
	if err != nil {
		return nil, "", fmt.Errorf("billing: generación de PDF fallida: %w", err)
	}
	uc.log.Debug().
		Str("sale_id", saleID).
		Str("kind", string(doc.Kind)).
		Int("bytes", len(pdfBytes)).
		Msg("PDF generado")
	return pdfBytes, doc.FileName(), nil
}

func documentDTO(doc document.Document) dto.DocumentDTO {
	out := dto.DocumentDTO{
		Kind:          string(doc.Kind),
		Title:         doc.Title,
		InvoiceNumber: doc.InvoiceNumber,
		IssuedAt:      doc.IssuedAt,
		SaleDate:      doc.SaleDate,
		Status:        string(doc.Status),
		Currency:      doc.Currency.Code,
		Customer:      partyDTO(doc.Customer),
		Items:         make([]dto.DocumentItemDTO, 0, len(doc.Items)),
		Totals: dto.DocumentTotalsDTO{
			Subtotal:       doc.Totals.Subtotal.Decimal(),
			Total:          doc.Totals.Total.Decimal(),
			AmountDue:      doc.Totals.AmountDue.Decimal(),
			AmountPaid:     doc.Totals.AmountPaid.Decimal(),
			SubtotalText:   doc.Totals.SubtotalText,
			TotalText:      doc.Totals.TotalText,
			AmountDueText:  doc.Totals.AmountDueText,
			AmountPaidText: doc.Totals.AmountPaidText,
		},
		AmountPaidInWords: doc.AmountPaidInWords,
		FileName:          doc.FileName(),
	}
	if doc.Seller != nil {
		s := partyDTO(*doc.Seller)
		out.Seller = &s
	}
	for _, it := range doc.Items {
		out.Items = append(out.Items, dto.DocumentItemDTO{
			LineID:       it.LineID,
			ProductName:  it.ProductName,
			SerialNumber: it.SerialNumber,
			Description:  it.Description,
			Amount:       it.Amount.Decimal(),
			AmountText:   it.AmountText,
		})
	}
	return out
}

func partyDTO(p document.Party) dto.PartyDTO {
	return dto.PartyDTO{Name: p.Name, Email: p.Email, Phone: p.Phone}
}
