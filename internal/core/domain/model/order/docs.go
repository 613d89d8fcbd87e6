// Package order contains the order aggregate and its lifecycle state machine.
//
// An Order is created by the waiter with a fixed set of line items, advanced
// between Pending, Preparing, Ready and Cancelled by the kitchen, and closed
// by the cashier through payment, which is the only way to reach the terminal
// Paid status. The aggregate owns its line items exclusively and keeps the
// total equal to the sum of their subtotals at all times.
package order
