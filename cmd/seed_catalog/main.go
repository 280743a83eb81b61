// seed_catalog genera el script SQL para poblar el catálogo de productos
// a partir del CSV de listas de precios que exportan las plataformas
// (soundtrack / beatbreeze). Los exports vienen en ISO-8859-1.
//
// Formato esperado del CSV (con cabecera):
//
//	code,name,description,platform,thailand_only,unit_price,tax_rate
//
// Uso: go run ./cmd/seed_catalog [ruta/precios.csv]
// Por defecto busca precios.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/010_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	code, name, description, platform string
	thailandOnly                      bool
	unitPrice, taxRate                decimal.Decimal
}

func main() {
	csvPath := "precios.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports de precios llegan en ISO-8859-1, no UTF-8
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var products []productRow
	for i, rec := range records[1:] { // saltar cabecera
		if len(rec) < 7 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperaban 7 columnas, hay %d\n", i+2, len(rec))
			os.Exit(1)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[5]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q\n", i+2, rec[5])
			os.Exit(1)
		}
		tax, err := decimal.NewFromString(strings.TrimSpace(rec[6]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: tasa de impuesto inválida %q\n", i+2, rec[6])
			os.Exit(1)
		}
		platform := strings.ToLower(strings.TrimSpace(rec[3]))
		if platform != "" && platform != "soundtrack" && platform != "beatbreeze" {
			fmt.Fprintf(os.Stderr, "Fila %d: plataforma desconocida %q\n", i+2, rec[3])
			os.Exit(1)
		}
		products = append(products, productRow{
			code:         strings.TrimSpace(rec[0]),
			name:         strings.TrimSpace(rec[1]),
			description:  strings.TrimSpace(rec[2]),
			platform:     platform,
			thailandOnly: strings.EqualFold(strings.TrimSpace(rec[4]), "true"),
			unitPrice:    price,
			taxRate:      tax,
		})
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "010_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de productos por plataforma\n")
	out.WriteString("-- Generado desde el CSV de listas de precios\n\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO catalog_products (id, code, name, description, platform, thailand_only, unit_price, tax_rate, status, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', '%s', %s, %t, %s, %s, 'active', now(), now())\n",
			escapeSQL(p.code), escapeSQL(p.name), escapeSQL(p.description),
			sqlNullable(p.platform), p.thailandOnly,
			p.unitPrice.StringFixed(2), p.taxRate.StringFixed(2))
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, unit_price = EXCLUDED.unit_price, tax_rate = EXCLUDED.tax_rate, updated_at = now();\n")
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// sqlNullable convierte "" en NULL literal, cualquier otro valor en string SQL.
func sqlNullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
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
