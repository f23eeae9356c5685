// Package registry provides a generic, type-safe registry system
// for managing named items such as the card catalog. Registration
// order is preserved so lookup precedence can follow declaration
// order, and registration through init() functions is supported.
package registry
