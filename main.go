package main

import "stratum/cmd/run"

func main() {
	run.Execute()
}
