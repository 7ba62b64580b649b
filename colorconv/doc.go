// Package colorconv parses textual color representations into a canonical
// 8-bit RGBA value and renders that value back to text.
//
// # Supported Grammars
//
// Five input syntaxes are recognized:
//   - Hex: "#rrggbb" and "#rrggbbaa"
//   - Shorthand hex: "#rgb" and "#rgba", each digit doubled ("#abc" = "#aabbcc")
//   - rgb(): "rgb(255,188,202)" or "rgb(100%,73.725%,79.216%)"
//   - rgba(): "rgba(255,188,202,0.5)", alpha as a fraction in [0.0, 1.0]
//   - Slash-hex (xrgba): "ff/bc/ca/ff"
//
// Grammar names are case-insensitive for rgb()/rgba() and hex digits may be
// upper or lower case. The three color channels of rgb()/rgba() must use one
// unit: "rgb(255,50%,10)" is rejected.
//
// # Output Formats
//
// A Color renders to hex, hex8, rgb, rgba and xrgba forms, plus "stripped"
// variants without the wrapper and percentage variants with three-decimal or
// whole-number precision. See Format for the full list.
//
// # Error Handling
//
// Parsing is strict: every parse failure is an *InvalidFormatError carrying
// the input and the expected grammar, and matches ErrInvalidFormat with
// errors.Is. Numeric conversions are permissive: out-of-range percentages and
// fractions are clamped, never rejected.
//
// # Rounding
//
// Two fraction-to-byte conversions exist on purpose. FractionToU8 truncates;
// FractionToU8Rounded rounds to nearest and is what rgba() parsing uses, so
// that every alpha rendered by Color.RGBA parses back to the same byte.
//
// # Thread Safety
//
// All functions are pure. The compiled grammar table is built at package
// initialization and never mutated, so everything here is safe for
// concurrent use.
package colorconv
