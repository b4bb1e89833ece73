// seed genera un script SQL con el esquema y el inventario inicial a partir de
// un CSV de productos (una fila por producto, seriales separados por "|").
//
// Uso: go run ./cmd/seed [ruta/productos.csv] [ventas_demo]
// Por defecto busca productos.csv en el directorio actual. Con ventas_demo > 0
// agrega clientes, ventas y gastos ficticios de los últimos 90 días; los
// seriales vendidos salen del pool.
// Escribe: internal/infrastructure/postgres/seed/001_inventario.sql
//
// Columnas: product_name,size,purchase_amount,sales_price,serial_numbers
// El CSV puede venir en UTF-8 o ISO-8859-1 (exportado desde hojas de cálculo).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	demoSales := 0
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 0 {
			fmt.Fprintf(os.Stderr, "Cantidad de ventas demo inválida: %q\n", os.Args[2])
			os.Exit(1)
		}
		demoSales = n
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	rows, err := parseProducts(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outDir := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "seed")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "001_inventario.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	assignIDs(rows, newID)
	var demo *demoData
	if demoSales > 0 {
		demo = buildDemo(rows, demoSales, gofakeit.New(0), newID, time.Now())
	}
	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if demo != nil {
		if err := writeDemoSQL(out, demo); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir ventas demo: %v\n", err)
			os.Exit(1)
		}
	}

	serials := 0
	for _, r := range rows {
		serials += len(r.Serials)
	}
	fmt.Printf("Generado %s: %d productos, %d seriales en stock", outPath, len(rows), serials)
	if demo != nil {
		fmt.Printf(", %d ventas demo, %d gastos demo", len(demo.Sales), len(demo.Expenses))
	}
	fmt.Println()
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
