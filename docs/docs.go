// Package docs registra la especificación OpenAPI de la API en swag.
// swagger.json.tmpl se mantiene junto a las anotaciones de los handlers.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json.tmpl
var docTemplate string

// SwaggerInfo información de la especificación, expuesta para cambiarla en runtime.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ventas API",
	Description:      "Reportes de ventas, saldos, stock y documentos de venta.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// SwaggerJSON devuelve la especificación renderizada (para el middleware de Swagger UI).
func SwaggerJSON() []byte {
	return []byte(SwaggerInfo.ReadDoc())
}
