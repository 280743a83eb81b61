package entity

// ServiceLocation representa una ubicación de servicio: una instancia desplegada
// de un producto con plataforma (una tienda, una sucursal). La cantidad de
// ubicaciones por plataforma se deriva de las líneas de la cotización; el
// nombre lo escribe el usuario y debe preservarse entre reconciliaciones.
type ServiceLocation struct {
	ID       string // identificador temporal estable entre pasadas de reconciliación
	QuoteID  string
	Platform string // soundtrack | beatbreeze
	Name     string // puede ser vacío hasta que el usuario lo nombre
	Position int    // orden estable dentro de su plataforma
}
