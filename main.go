package main

import "github.com/prasant081/jj-starship/cmd"

func main() {
	cmd.Execute()
}
