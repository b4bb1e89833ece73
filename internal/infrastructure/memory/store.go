// Package memory implementa los repositorios del dominio en memoria.
// Lo usan los tests de casos de uso y de handlers; también sirve para demos sin PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
)

// Store datos en memoria compartidos por los repositorios.
type Store struct {
	mu        sync.RWMutex
	sales     map[string]entity.Sale
	lines     map[string][]entity.SaleLine // por SaleID, en orden de inserción
	products  map[string]entity.Product
	customers map[string]entity.Customer
	expenses  []entity.Expense

	// FailWith, si no es nil, se devuelve en toda lectura o escritura.
	FailWith error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		sales:     make(map[string]entity.Sale),
		lines:     make(map[string][]entity.SaleLine),
		products:  make(map[string]entity.Product),
		customers: make(map[string]entity.Customer),
	}
}

// ── Carga de datos ────────────────────────────────────────────────────────────

// AddSale registra una venta con sus líneas. Los totales de la venta se recalculan.
func (s *Store) AddSale(sale entity.Sale, lines ...entity.SaleLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range lines {
		lines[i].SaleID = sale.ID
	}
	sale.Recalculate(lines)
	s.sales[sale.ID] = sale
	s.lines[sale.ID] = append([]entity.SaleLine(nil), lines...)
}

// AddProduct registra un producto.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.SerialNumbers = append([]string(nil), p.SerialNumbers...)
	s.products[p.ID] = p
}

// AddCustomer registra un cliente.
func (s *Store) AddCustomer(c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

// AddExpense registra un gasto.
func (s *Store) AddExpense(e entity.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

// Sales repositorio de ventas sobre el store.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{s: s} }

// Products repositorio de productos sobre el store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Customers repositorio de clientes sobre el store.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Expenses repositorio de gastos sobre el store.
func (s *Store) Expenses() *ExpenseRepo { return &ExpenseRepo{s: s} }

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleRepo implementación en memoria de repository.SaleRepository.
type SaleRepo struct{ s *Store }

// GetByID devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

// GetLines devuelve una copia de las líneas de la venta.
func (r *SaleRepo) GetLines(_ context.Context, saleID string) ([]entity.SaleLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	return append([]entity.SaleLine(nil), r.s.lines[saleID]...), nil
}

// GetLine devuelve (nil, nil) si la línea no existe o es de otra venta.
func (r *SaleRepo) GetLine(_ context.Context, saleID, lineID string) (*entity.SaleLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, l := range r.s.lines[saleID] {
		if l.ID == lineID {
			line := l
			return &line, nil
		}
	}
	return nil, nil
}

// ListLineViews une líneas con su venta y producto, ordenadas por fecha de venta.
func (r *SaleRepo) ListLineViews(_ context.Context, from, to *time.Time) ([]entity.SaleLineView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	var out []entity.SaleLineView
	for saleID, lines := range r.s.lines {
		sale := r.s.sales[saleID]
		if from != nil && sale.Date.Before(*from) {
			continue
		}
		if to != nil && sale.Date.After(*to) {
			continue
		}
		for _, l := range lines {
			p := r.s.products[l.ProductID]
			out = append(out, entity.SaleLineView{
				SaleLine:       l,
				SaleDate:       sale.Date,
				SaleStatus:     sale.Status,
				InvoiceNumber:  sale.InvoiceNumber,
				ProductName:    p.ProductName,
				PurchaseAmount: p.PurchaseAmount,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SaleDate.Equal(out[j].SaleDate) {
			return out[i].SaleDate.Before(out[j].SaleDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UpdateLine reemplaza la línea y los totales de la venta.
func (r *SaleRepo) UpdateLine(_ context.Context, line *entity.SaleLine, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	lines := r.s.lines[sale.ID]
	for i := range lines {
		if lines[i].ID == line.ID {
			lines[i] = *line
			r.s.sales[sale.ID] = *sale
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct{ s *Store }

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	p.SerialNumbers = append([]string(nil), p.SerialNumbers...)
	return &p, nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(_ context.Context) ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p.SerialNumbers = append([]string(nil), p.SerialNumbers...)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ReplaceSerial devuelve released al pool y retira taken.
//   - taken ausente del pool → domain.ErrSerialUnavailable.
//   - released ya presente en el pool → domain.ErrConflict.
func (r *ProductRepo) ReplaceSerial(_ context.Context, productID, released, taken string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	pool := make([]string, 0, len(p.SerialNumbers)+1)
	removed := false
	for _, sn := range p.SerialNumbers {
		if sn == taken && !removed {
			removed = true
			continue
		}
		pool = append(pool, sn)
	}
	if !removed {
		return domain.ErrSerialUnavailable
	}
	if released != "" {
		for _, sn := range pool {
			if sn == released {
				return fmt.Errorf("%w: serial %q ya está en el pool", domain.ErrConflict, released)
			}
		}
		pool = append(pool, released)
	}
	p.SerialNumbers = pool
	r.s.products[productID] = p
	return nil
}

// ── Clientes y gastos ─────────────────────────────────────────────────────────

// CustomerRepo implementación en memoria de repository.CustomerRepository.
type CustomerRepo struct{ s *Store }

// GetByID devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ExpenseRepo implementación en memoria de repository.ExpenseRepository.
type ExpenseRepo struct{ s *Store }

// ListBetween devuelve los gastos con fecha en [from, to], ordenados por fecha.
func (r *ExpenseRepo) ListBetween(_ context.Context, from, to time.Time) ([]entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	var out []entity.Expense
	for _, e := range r.s.expenses {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// TxRunner ejecuta fn sobre el store y restaura el estado anterior si fn falla.
type TxRunner struct{ s *Store }

// TxRunner runner de transacciones sobre el store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// Run ejecuta fn con los repositorios del store. Si fn devuelve error, los
// cambios se descartan.
func (t *TxRunner) Run(ctx context.Context, fn func(sales repository.SaleRepository, products repository.ProductRepository) error) error {
	snap := t.s.snapshot()
	if err := fn(t.s.Sales(), t.s.Products()); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	sales    map[string]entity.Sale
	lines    map[string][]entity.SaleLine
	products map[string]entity.Product
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := storeSnapshot{
		sales:    make(map[string]entity.Sale, len(s.sales)),
		lines:    make(map[string][]entity.SaleLine, len(s.lines)),
		products: make(map[string]entity.Product, len(s.products)),
	}
	for k, v := range s.sales {
		snap.sales[k] = v
	}
	for k, v := range s.lines {
		snap.lines[k] = append([]entity.SaleLine(nil), v...)
	}
	for k, v := range s.products {
		v.SerialNumbers = append([]string(nil), v.SerialNumbers...)
		snap.products[k] = v
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = snap.sales
	s.lines = snap.lines
	s.products = snap.products
}
