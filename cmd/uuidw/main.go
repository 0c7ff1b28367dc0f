package main

import "github.com/d-kuro/uuidw/internal/cmd"

func main() {
	cmd.Execute()
}
