package main

import "github.com/hotelops/hotel-operations/cmd"

func main() {
	cmd.Execute()
}
