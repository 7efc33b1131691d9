package main

import "github.com/gaurav-prasanna/folio/cmd"

func main() {
	cmd.Execute()
}
