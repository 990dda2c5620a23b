package rules

// Badge is the presentation color pair for a status label.
type Badge struct {
	Color      string `json:"ec"`
	Background string `json:"eb"`
}

var (
	badgeGreen = Badge{Color: "#059669", Background: "#ECFDF5"}
	badgeRed   = Badge{Color: "#DC2626", Background: "#FEF2F2"}
	badgeAmber = Badge{Color: "#D97706", Background: "#FFFBEB"}
	badgeBlue  = Badge{Color: "#2563EB", Background: "#EFF6FF"}
	badgeGray  = Badge{Color: "#6B7280", Background: "#F3F4F6"}
)

var badges = map[string]Badge{
	"En Proceso":          {Color: "#10B981", Background: "#ECFDF5"},
	"En Espera":           {Color: "#EF4444", Background: "#FEF2F2"},
	"Cerrado":             badgeGray,
	"Completo":            badgeGreen,
	"Incompleto":          badgeRed,
	"Confirmado":          badgeGreen,
	"Pendiente":           badgeAmber,
	"Vencido":             badgeRed,
	"Activo":              badgeGreen,
	"Inactivo":            badgeGray,
	"Bloqueado":           badgeRed,
	"Lista para Facturar": badgeGreen,
	"Bloqueada":           badgeRed,
	"Facturada":           badgeBlue,
	"Pagada":              badgeGreen,
	"Enviada":             badgeBlue,
	"Vencida":             badgeRed,
}

// BadgeFor maps any status label to its colors. Unknown labels are gray.
func BadgeFor[S ~string](status S) Badge {
	if b, ok := badges[string(status)]; ok {
		return b
	}
	return badgeGray
}
