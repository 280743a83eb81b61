package quote

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// Catalog es la tabla productID → producto, cargada antes de reconciliar.
// El lookup es total: un producto desconocido no tiene plataforma y por lo
// tanto no aporta ubicaciones.
type Catalog map[string]*entity.CatalogProduct

// NewCatalog construye la tabla desde la lista de productos.
func NewCatalog(products []*entity.CatalogProduct) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		if p != nil && p.ID != "" {
			c[p.ID] = p
		}
	}
	return c
}

// PlatformOf devuelve la plataforma del producto o vacío si no existe o no tiene.
func (c Catalog) PlatformOf(productID string) string {
	if p, ok := c[productID]; ok {
		return p.Platform
	}
	return entity.PlatformNone
}

// platforms en orden de procesamiento estable: se agota una plataforma antes
// de pasar a la siguiente, así el resultado es reproducible entre pasadas.
var platforms = []string{entity.PlatformSoundtrack, entity.PlatformBeatbreeze}

// ReconcileLocations sincroniza las ubicaciones de servicio existentes con lo
// que implican las líneas: por plataforma, requerido = Σ round(max(0, qty))
// de las líneas cuyo producto mapea a esa plataforma.
//
// Si faltan ubicaciones se agregan con nombre vacío (IDs nuevos vía newID).
// Si sobran, se eliminan primero las sin nombre; solo si aún sobran se
// recortan las nombradas por el final (se conservan las primeras en orden
// original) y la cantidad de nombradas eliminadas se reporta en namedDropped
// como aviso no fatal: es el único caso en que se pierde dato del usuario y
// el caller debe mostrarlo.
//
// La función es idempotente: sin cambios en las líneas, dos pasadas devuelven
// la misma lista (mismos IDs, nombres y orden). No retiene estado entre
// llamadas; el generador de IDs lo aporta el caller.
func ReconcileLocations(
	items []*entity.QuoteItem,
	existing []entity.ServiceLocation,
	catalog Catalog,
	newID func() string,
) (locations []entity.ServiceLocation, namedDropped int) {
	required := requiredPerPlatform(items, catalog)

	for _, platform := range platforms {
		current := filterPlatform(existing, platform)
		kept, dropped := reconcilePlatform(current, required[platform], platform, newID)
		namedDropped += dropped
		locations = append(locations, kept...)
	}

	// Posición estable para persistencia y render.
	for i := range locations {
		locations[i].Position = i
	}
	return locations, namedDropped
}

// requiredPerPlatform suma las cantidades por plataforma. Cantidades negativas
// cuentan como cero; el redondeo es al entero más cercano.
func requiredPerPlatform(items []*entity.QuoteItem, catalog Catalog) map[string]int {
	req := make(map[string]int, len(platforms))
	for _, it := range items {
		if it == nil {
			continue
		}
		platform := catalog.PlatformOf(it.ProductID)
		if platform == entity.PlatformNone {
			continue
		}
		qty := it.Quantity
		if qty.LessThan(decimal.Zero) {
			qty = decimal.Zero
		}
		req[platform] += int(qty.Round(0).IntPart())
	}
	return req
}

func filterPlatform(locations []entity.ServiceLocation, platform string) []entity.ServiceLocation {
	var out []entity.ServiceLocation
	for _, loc := range locations {
		if loc.Platform == platform {
			out = append(out, loc)
		}
	}
	return out
}

// reconcilePlatform ajusta las ubicaciones de una sola plataforma al conteo
// requerido, preservando identidad y nombre de las que se conservan.
func reconcilePlatform(
	current []entity.ServiceLocation,
	required int,
	platform string,
	newID func() string,
) (kept []entity.ServiceLocation, namedDropped int) {
	if required < 0 {
		required = 0
	}

	if len(current) <= required {
		// Conservar todas tal cual y agregar las que falten, vacías.
		kept = append(kept, current...)
		for i := len(current); i < required; i++ {
			kept = append(kept, entity.ServiceLocation{
				ID:       newID(),
				Platform: platform,
				Name:     "",
			})
		}
		return kept, 0
	}

	// Sobran: eliminar primero las sin nombre, nunca una nombrada mientras
	// quede una sin nombre de la misma plataforma.
	named := 0
	for _, loc := range current {
		if strings.TrimSpace(loc.Name) != "" {
			named++
		}
	}

	if named >= required {
		// Ni eliminando todas las sin nombre alcanza: quedan solo las primeras
		// `required` nombradas, en orden original.
		for _, loc := range current {
			if strings.TrimSpace(loc.Name) == "" {
				continue
			}
			if len(kept) < required {
				kept = append(kept, loc)
			} else {
				namedDropped++
			}
		}
		return kept, namedDropped
	}

	// Las nombradas caben todas; completar con sin-nombre hasta el requerido.
	unnamedToKeep := required - named
	for _, loc := range current {
		if strings.TrimSpace(loc.Name) != "" {
			kept = append(kept, loc)
			continue
		}
		if unnamedToKeep > 0 {
			kept = append(kept, loc)
			unnamedToKeep--
		}
	}
	return kept, 0
}
