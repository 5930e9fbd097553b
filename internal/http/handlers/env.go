package handlers

import (
	"superstar/internal/order"

	"github.com/gofiber/fiber/v2"
)

// requestEnv adapts one request into the order.Env capability port.
type requestEnv struct {
	c *fiber.Ctx
}

func newRequestEnv(c *fiber.Ctx) order.Env { return requestEnv{c: c} }

// CopyText: a server cannot reach the visitor's clipboard; the page
// script does the copy and this reports the fallback path.
func (requestEnv) CopyText(string) error { return order.ErrClipboardUnavailable }

// Embedded reads the fetch-metadata header: sites previewing the shop
// in an iframe get the copy-link fallback because wa.me refuses to
// open in nested contexts.
func (e requestEnv) Embedded() bool {
	return e.c.Get("Sec-Fetch-Dest") == "iframe"
}
