package main

import "trithemius-backend/cmd"

func main() {
	cmd.Execute()
}
