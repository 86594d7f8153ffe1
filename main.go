package main

import "github.com/ValentinKolb/dShelf/cmd"

func main() {
	cmd.Execute()
}
