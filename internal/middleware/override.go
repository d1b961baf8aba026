package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// MethodOverride rewrites POST requests carrying a _method form field into
// the verb the form intends. Plain HTML forms can only submit GET and POST,
// so the edit and delete forms tunnel PUT/DELETE through this field.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			switch c.FormValue("_method") {
			case fiber.MethodPut:
				c.Method(fiber.MethodPut)
			case fiber.MethodDelete:
				c.Method(fiber.MethodDelete)
			}
		}
		return c.Next()
	}
}
