// Package menu contains the menu item aggregate of the catalog.
// A menu item is created and edited by the admin role and referenced by order
// line items. The aggregate enforces the catalog invariants: a non-empty name
// and a non-negative price. The image reference is an opaque string obtained
// from an external file store and is never interpreted here.
package menu
