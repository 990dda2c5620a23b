package entities

// Document-store collection names. They match the collections the original
// dashboard wrote, so existing data can be read in place.
const (
	CollectionClientes     = "clientes"
	CollectionProyectos    = "proyectos"
	CollectionSemanas      = "semanas"
	CollectionInspecciones = "inspecciones"
	CollectionFacturas     = "facturas"
	CollectionPagos        = "pagos"
	CollectionTickets      = "tickets"
)
