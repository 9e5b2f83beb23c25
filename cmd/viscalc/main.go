package main

import "viscosity-service/internal/cli"

func main() {
	cli.Execute()
}
