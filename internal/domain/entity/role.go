package entity

// Roles de usuario. Viajan en el claim "role" del JWT.
const (
	RoleAdmin   = "admin"   // todo
	RoleManager = "manager" // reportes y enmiendas
	RoleSales   = "sales"   // documentos de venta y stock
)
