// utils/response.go - JSON envelope helpers
//
// Every API response uses the shape {success, message?, data?}. Handlers go
// through these helpers so the envelope stays consistent.
package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Success sends {success:true, data:...}.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// SuccessMessage sends {success:true, message:...} for mutations that return
// no payload.
func SuccessMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// Created sends {success:true, message, data} with status 201.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Fail sends {success:false, message:...} with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
