// Command color-mcp serves the color conversion tools over MCP and converts
// colors from the command line.
package main

func main() {
	Execute()
}
