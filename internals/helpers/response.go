// file: internals/helpers/response.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Response writers (API envelope)

   Sukses : {"event": {...}} / {"events": [...]} / {"message": "..."}
   Error  : {"error": {"message": "...", ...detail}}
=================================*/

// JsonOK menulis payload sukses apa adanya (caller menentukan key resource).
func JsonOK(c *fiber.Ctx, payload fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// JsonCreated: payload sukses untuk resource baru (201).
func JsonCreated(c *fiber.Ctx, payload fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(payload)
}

// JsonMessage: sukses tanpa resource, hanya pesan.
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// JsonError: error generic.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{"message": message},
	})
}

// JsonErrorWithDetails: error + field tambahan di dalam objek error
// (misal daftar conflicts pada 409 scheduling conflict).
func JsonErrorWithDetails(c *fiber.Ctx, status int, message string, details fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range details {
		body[k] = v
	}
	return c.Status(status).JSON(fiber.Map{"error": body})
}
