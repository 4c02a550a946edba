package main

import "github.com/goplus/cptb/cmd/cptb/internal"

func main() {
	internal.Execute()
}
