package main

import "job-tracker/cmd"

func main() {
	cmd.Execute()
}
