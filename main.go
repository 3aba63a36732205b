package main

import "payment-reconciler/cmd"

func main() {
	cmd.Execute()
}
