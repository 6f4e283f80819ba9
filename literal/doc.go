// Package literal parses and formats typed array literals for the reversible
// converter, e.g. ints(1, -2, 0x10), doubles(1.5), chars("abc").
package literal
