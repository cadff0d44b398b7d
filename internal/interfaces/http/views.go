package http

import (
	"embed"
	"fmt"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
)

//go:embed views/*.html views/layouts/*.html
var viewsFS embed.FS

// layout plantilla base de todas las páginas.
const layout = "layouts/main"

// NewViews motor html/v2 sobre las vistas embebidas.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(fmt.Sprintf("views: %v", err))
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("money", func(d decimal.Decimal) string { return d.StringFixed(2) })
	engine.AddFunc("datetime", func(t time.Time) string { return t.Format("2006-01-02 15:04") })
	engine.AddFunc("date", func(t time.Time) string { return t.Format("2006-01-02") })
	engine.AddFunc("prev", func(p dto.PageResponse) int { return p.Page - 1 })
	engine.AddFunc("next", func(p dto.PageResponse) int { return p.Page + 1 })
	return engine
}

// respond JSON si el cliente lo pide; si no, renderiza la vista con el layout.
func respond(c *fiber.Ctx, view string, data fiber.Map, body interface{}) error {
	if wantsJSON(c) {
		return c.JSON(body)
	}
	if data == nil {
		data = fiber.Map{}
	}
	if a := GetActor(c); a.UserID != 0 {
		data["Actor"] = a
	}
	data["Data"] = body
	return c.Render(view, data, layout)
}

func pageRequest(c *fiber.Ctx) dto.PageRequest {
	var p dto.PageRequest
	_ = c.QueryParser(&p)
	p.Normalize()
	return p
}
