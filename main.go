package main

import "github.com/licet/licet/cmd/licet"

func main() { licet.Execute() }
